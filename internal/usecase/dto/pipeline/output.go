package pipelinedto

import (
	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/shopspring/decimal"
)

type SubmissionOutput struct {
	RequestID     string
	Status        domain.SubmissionState
	Reason        domain.ErrorKind
	FiscalID      string
	CheckID       string
	CheckAmount   decimal.Decimal
	Cashback      decimal.Decimal
	TotalCashback decimal.Decimal
}

func (o *SubmissionOutput) Settled() bool {
	return o.Status == domain.StateSettled
}
