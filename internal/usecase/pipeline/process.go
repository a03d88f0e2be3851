package pipeline

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/kafka"
	"github.com/ayoqsh/loyalty-service/internal/usecase/cashback"
	pipelinedto "github.com/ayoqsh/loyalty-service/internal/usecase/dto/pipeline"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProcessSubmission is the single entry point for one QR submission. The
// states run strictly in order, none is skipped or re-entered:
// RECEIVED -> FETCHED -> VALIDATED -> PRICED -> SETTLED, or FAILED from
// any of them. Only transient fetch failures are retried.
func (uc *DefaultPipelineUsecase) ProcessSubmission(ctx context.Context, input *pipelinedto.SubmissionInput) *pipelinedto.SubmissionOutput {
	requestID := uc.newRequestID()
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	uc.Logger.Info("submission received",
		zap.String("request_id", requestID),
		zap.String("customer_external_id", input.CustomerExternalID))

	customer, err := uc.CustomerRepo.GetOrCreateByExternalID(ctx, input.CustomerExternalID)
	if err != nil {
		return uc.fail(requestID, input, domain.StateReceived, domain.ErrStoreUnavailable, err)
	}

	if uc.Guard != nil {
		acquired, guardErr := uc.Guard.Acquire(ctx, customer.ID)
		if guardErr != nil {
			// Guard is advisory; the ledger constraint still holds.
			uc.Logger.Warn("submission guard unavailable, continuing without it",
				zap.String("request_id", requestID), zap.Error(guardErr))
		} else if !acquired {
			uc.recordGuardRejection()
			return uc.fail(requestID, input, domain.StateReceived, domain.ErrDuplicateCheck, domain.ErrDuplicateCheck)
		} else {
			defer uc.Guard.Release(ctx, customer.ID)
		}
	}

	check, err := uc.fetchWithRetry(ctx, requestID, strings.TrimSpace(input.QRPayload))
	if err != nil {
		return uc.fail(requestID, input, domain.StateReceived, err, err)
	}
	uc.Logger.Info("check fetched",
		zap.String("request_id", requestID),
		zap.String("fiscal_id", check.FiscalID),
		zap.String("amount", check.Amount.String()))

	if err := uc.validateCheck(ctx, check, customer.ID, now); err != nil {
		return uc.fail(requestID, input, domain.StateFetched, err, err)
	}

	rules, err := uc.RuleRepo.ListActiveRules(ctx)
	if err != nil {
		return uc.fail(requestID, input, domain.StateValidated, domain.ErrStoreUnavailable, err)
	}
	evaluation := cashback.Evaluate(check.Amount, rules)
	if evaluation.Clamped {
		// Misconfigured rule; the submission still settles with zero bonus.
		uc.recordClampedEvaluation()
		uc.Logger.Warn("negative rule payout clamped to zero",
			zap.String("request_id", requestID),
			zap.String("rule_id", evaluation.RuleID),
			zap.String("rule_name", evaluation.RuleName))
	}

	fiscalCheck := &domain.FiscalCheck{
		ID:             uuid.NewString(),
		CustomerID:     customer.ID,
		FiscalID:       check.FiscalID,
		Amount:         check.Amount,
		IssuedAt:       check.IssuedAt,
		CashbackAmount: evaluation.Amount,
		SourceURL:      check.SourceURL,
		RawJSON:        check.RawJSON,
	}
	visit := &domain.Visit{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		CheckID:    fiscalCheck.ID,
	}

	settleStart := time.Now()
	newBalance, err := uc.LedgerRepo.SettleCheck(ctx, fiscalCheck, visit)
	if err != nil {
		uc.recordSettle("failed", time.Since(settleStart))
		if domain.KindOf(err) == domain.KindDuplicate {
			// Lost the uniqueness race after validation passed.
			uc.Logger.Warn("duplicate fiscal id surfaced at settlement",
				zap.String("request_id", requestID),
				zap.String("fiscal_id", check.FiscalID))
			return uc.fail(requestID, input, domain.StatePriced, domain.ErrDuplicateCheck, err)
		}
		return uc.fail(requestID, input, domain.StatePriced, domain.ErrStoreUnavailable, err)
	}
	uc.recordSettle("settled", time.Since(settleStart))

	output := &pipelinedto.SubmissionOutput{
		RequestID:     requestID,
		Status:        domain.StateSettled,
		FiscalID:      check.FiscalID,
		CheckID:       fiscalCheck.ID,
		CheckAmount:   check.Amount,
		Cashback:      evaluation.Amount,
		TotalCashback: newBalance,
	}

	uc.publishSettled(requestID, input.CustomerExternalID, fiscalCheck)
	uc.notify(output, input.CustomerExternalID, now)
	uc.recordSettled(check.Amount.InexactFloat64(), evaluation.Amount.InexactFloat64())

	uc.Logger.Info("submission settled",
		zap.String("request_id", requestID),
		zap.String("fiscal_id", check.FiscalID),
		zap.String("cashback", evaluation.Amount.String()),
		zap.String("total_cashback", newBalance.String()))

	return output
}

// fetchWithRetry retries only transient fiscal-authority failures, with
// linear backoff, respecting caller cancellation.
func (uc *DefaultPipelineUsecase) fetchWithRetry(ctx context.Context, requestID, rawURL string) (*domain.CanonicalCheck, error) {
	var lastErr error
	for attempt := 1; attempt <= uc.Opts.FetchRetries; attempt++ {
		fetchStart := time.Now()
		check, err := uc.Fetcher.Fetch(ctx, rawURL)
		if err == nil {
			uc.recordFetch("ok", time.Since(fetchStart))
			return check, nil
		}
		lastErr = err

		if domain.KindOf(err) != domain.KindUnavailable {
			uc.recordFetch("failed", time.Since(fetchStart))
			return nil, err
		}
		uc.recordFetch("unavailable", time.Since(fetchStart))
		uc.Logger.Warn("fiscal fetch failed, retrying",
			zap.String("request_id", requestID),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt == uc.Opts.FetchRetries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, domain.ErrFetchUnavailable
		case <-time.After(uc.Opts.FetchBackoff * time.Duration(attempt)):
		}
	}
	return nil, lastErr
}

func (uc *DefaultPipelineUsecase) dailyCheckLimit(ctx context.Context) int {
	setting, err := uc.SettingsRepo.GetSetting(ctx, domain.SettingDailyCheckLimit)
	if err != nil {
		return domain.DefaultDailyCheckLimit
	}
	limit, err := strconv.Atoi(setting.Value)
	if err != nil || limit <= 0 {
		return domain.DefaultDailyCheckLimit
	}
	return limit
}

func (uc *DefaultPipelineUsecase) fail(requestID string, input *pipelinedto.SubmissionInput, state domain.SubmissionState, userErr, cause error) *pipelinedto.SubmissionOutput {
	kind := domain.KindOf(userErr)

	uc.Logger.Info("submission failed",
		zap.String("request_id", requestID),
		zap.String("customer_external_id", input.CustomerExternalID),
		zap.String("state", string(state)),
		zap.String("reason", string(kind)),
		zap.Error(cause))

	output := &pipelinedto.SubmissionOutput{
		RequestID: requestID,
		Status:    domain.StateFailed,
		Reason:    kind,
	}

	uc.recordFailed(string(kind))
	uc.notify(output, input.CustomerExternalID, time.Now())

	return output
}

func (uc *DefaultPipelineUsecase) publishSettled(requestID, customerExternalID string, check *domain.FiscalCheck) {
	if uc.Publisher == nil {
		return
	}

	go func(event kafka.CheckSettledEvent) {
		if err := uc.Publisher.PublishCheckSettled(uc.Opts.EventTopic, event); err != nil {
			uc.Logger.Error("failed to publish CheckSettledEvent",
				zap.String("request_id", requestID), zap.Error(err))
		}
	}(kafka.CheckSettledEvent{
		CheckID:            check.ID,
		CustomerExternalID: customerExternalID,
		FiscalID:           check.FiscalID,
		Amount:             check.Amount,
		Cashback:           check.CashbackAmount,
		Currency:           uc.Opts.Currency,
		SettledAt:          time.Now(),
	})
}

func (uc *DefaultPipelineUsecase) notify(output *pipelinedto.SubmissionOutput, customerExternalID string, processedAt time.Time) {
	if uc.Notifier == nil {
		return
	}
	uc.Notifier.Notify(domain.SubmissionNotification{
		RequestID:          output.RequestID,
		CustomerExternalID: customerExternalID,
		Status:             output.Status,
		Reason:             output.Reason,
		FiscalID:           output.FiscalID,
		CheckAmount:        output.CheckAmount,
		Cashback:           output.Cashback,
		TotalCashback:      output.TotalCashback,
		ProcessedAt:        processedAt,
	})
}
