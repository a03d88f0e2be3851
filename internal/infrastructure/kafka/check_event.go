package kafka

import (
	"encoding/json"
	"time"

	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/shopspring/decimal"
)

// CheckSettledEvent is published to the check-events topic after a
// settlement commits, keyed by the customer's chat id so one customer's
// events stay ordered.
type CheckSettledEvent struct {
	CheckID            string          `json:"check_id"`
	CustomerExternalID string          `json:"customer_external_id"`
	FiscalID           string          `json:"fiscal_id"`
	Amount             decimal.Decimal `json:"amount"`
	Cashback           decimal.Decimal `json:"cashback"`
	Currency           string          `json:"currency"`
	SettledAt          time.Time       `json:"settled_at"`
}

func (k *DefaultKafkaPublisher) PublishCheckSettled(topic string, event CheckSettledEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(topic, domain.Message{Key: []byte(event.CustomerExternalID), Value: v})
}
