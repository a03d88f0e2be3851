package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type LedgerRepository interface {
	// FiscalIDExists is the cheap pre-settlement duplicate check. The
	// authoritative check is the unique constraint inside SettleCheck.
	FiscalIDExists(ctx context.Context, fiscalID string) (bool, error)
	CountChecksForDay(ctx context.Context, customerID string, dayStart, dayEnd time.Time) (int64, error)
	// SettleCheck atomically inserts the check and its visit and credits
	// the customer's cashback balance. Returns the new total balance.
	// A lost uniqueness race surfaces as ErrDuplicateCheck.
	SettleCheck(ctx context.Context, check *FiscalCheck, visit *Visit) (decimal.Decimal, error)
	GetCheckByFiscalID(ctx context.Context, fiscalID string) (*FiscalCheck, error)
	GetChecksByCustomerID(ctx context.Context, customerID string, page, limit int64) ([]*FiscalCheck, int64, error)
}
