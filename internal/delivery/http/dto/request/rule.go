package request

import "github.com/shopspring/decimal"

type RuleRequest struct {
	Kind       string          `json:"kind"`
	Name       string          `json:"name"`
	Threshold  decimal.Decimal `json:"threshold"`
	CashAmount decimal.Decimal `json:"cash_amount"`
	Percentage decimal.Decimal `json:"percentage"`
	Priority   int32           `json:"priority"`
	IsActive   bool            `json:"is_active"`
}

type SettingRequest struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}
