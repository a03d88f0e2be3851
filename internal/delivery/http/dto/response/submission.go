package response

import "github.com/shopspring/decimal"

type SubmissionResponse struct {
	RequestID     string          `json:"request_id"`
	Status        string          `json:"status"`
	Reason        string          `json:"reason,omitempty"`
	FiscalID      string          `json:"fiscal_id,omitempty"`
	CheckID       string          `json:"check_id,omitempty"`
	CheckAmount   decimal.Decimal `json:"check_amount"`
	Cashback      decimal.Decimal `json:"cashback"`
	TotalCashback decimal.Decimal `json:"total_cashback"`
	Retryable     bool            `json:"retryable"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
