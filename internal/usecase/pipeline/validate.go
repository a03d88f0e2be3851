package pipeline

import (
	"context"
	"time"

	"github.com/ayoqsh/loyalty-service/internal/domain"
)

// validateCheck applies the business rules in order, short-circuiting on
// the first failure: duplicate, then staleness, then daily limit. It has
// no side effects; the duplicate condition is re-checked inside the
// settlement transaction against the race window between validation and
// commit.
func (uc *DefaultPipelineUsecase) validateCheck(ctx context.Context, check *domain.CanonicalCheck, customerID string, now time.Time) error {
	exists, err := uc.LedgerRepo.FiscalIDExists(ctx, check.FiscalID)
	if err != nil {
		return domain.ErrStoreUnavailable
	}
	if exists {
		return domain.ErrDuplicateCheck
	}

	loc := uc.Opts.Location
	checkYear, checkMonth, checkDay := check.IssuedAt.In(loc).Date()
	nowYear, nowMonth, nowDay := now.In(loc).Date()
	if checkYear != nowYear || checkMonth != nowMonth || checkDay != nowDay {
		return domain.ErrCheckNotToday
	}

	limit := uc.dailyCheckLimit(ctx)
	dayStart := time.Date(nowYear, nowMonth, nowDay, 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)
	// Counting committed rows only: two concurrent submissions can both
	// read limit-1 and both commit. Accepted soft bound, not worth a
	// serializable transaction or per-customer lock.
	count, err := uc.LedgerRepo.CountChecksForDay(ctx, customerID, dayStart, dayEnd)
	if err != nil {
		return domain.ErrStoreUnavailable
	}
	if count >= int64(limit) {
		return domain.ErrDailyLimitExceeded
	}

	return nil
}
