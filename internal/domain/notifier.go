package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubmissionNotification struct {
	RequestID          string          `json:"request_id"`
	CustomerExternalID string          `json:"customer_external_id"`
	Status             SubmissionState `json:"status"`
	Reason             ErrorKind       `json:"reason,omitempty"`
	FiscalID           string          `json:"fiscal_id,omitempty"`
	CheckAmount        decimal.Decimal `json:"check_amount"`
	Cashback           decimal.Decimal `json:"cashback"`
	TotalCashback      decimal.Decimal `json:"total_cashback"`
	ProcessedAt        time.Time       `json:"processed_at"`
}

// SubmissionNotifier delivers the outcome back to the chat collaborator.
// Delivery is best-effort and must never block settlement.
type SubmissionNotifier interface {
	Notify(notification SubmissionNotification)
}
