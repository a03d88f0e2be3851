package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID            string
	ExternalID    string
	Phone         string
	CarName       string
	CarNumber     string
	RegisteredAt  time.Time
	IsActive      bool
	TotalCashback decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
