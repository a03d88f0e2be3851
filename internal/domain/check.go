package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CanonicalCheck is the normalized form of a fiscal receipt fetched from
// the fiscal authority, before it is validated and settled.
type CanonicalCheck struct {
	FiscalID  string
	Amount    decimal.Decimal
	IssuedAt  time.Time
	SourceURL string
	RawJSON   string
}

type FiscalCheck struct {
	ID             string
	CustomerID     string
	FiscalID       string
	Amount         decimal.Decimal
	IssuedAt       time.Time
	CashbackAmount decimal.Decimal
	SourceURL      string
	RawJSON        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Visit links a customer to one settled check. Exactly one visit exists
// per check, written in the same transaction.
type Visit struct {
	ID         string
	CustomerID string
	CheckID    string
	CreatedAt  time.Time
}
