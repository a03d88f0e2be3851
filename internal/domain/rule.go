package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RuleKind string

const (
	RuleKindFixed      RuleKind = "fixed"
	RuleKindPercentage RuleKind = "percentage"
	RuleKindTiered     RuleKind = "tiered"
)

type CashbackRule struct {
	ID         string
	Kind       RuleKind
	Name       string
	Threshold  decimal.Decimal
	CashAmount decimal.Decimal
	Percentage decimal.Decimal
	Priority   int32
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
