package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type RuleResponse struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	Name       string          `json:"name"`
	Threshold  decimal.Decimal `json:"threshold"`
	CashAmount decimal.Decimal `json:"cash_amount"`
	Percentage decimal.Decimal `json:"percentage"`
	Priority   int32           `json:"priority"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type SettingResponse struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CustomerResponse struct {
	ExternalID    string          `json:"external_id"`
	Phone         string          `json:"phone,omitempty"`
	CarName       string          `json:"car_name,omitempty"`
	CarNumber     string          `json:"car_number,omitempty"`
	RegisteredAt  time.Time       `json:"registered_at"`
	IsActive      bool            `json:"is_active"`
	TotalCashback decimal.Decimal `json:"total_cashback"`
}

type CheckResponse struct {
	ID             string          `json:"id"`
	FiscalID       string          `json:"fiscal_id"`
	Amount         decimal.Decimal `json:"amount"`
	IssuedAt       time.Time       `json:"issued_at"`
	CashbackAmount decimal.Decimal `json:"cashback_amount"`
	CreatedAt      time.Time       `json:"created_at"`
}

type CheckListResponse struct {
	Checks []CheckResponse `json:"checks"`
	Total  int64           `json:"total"`
}
