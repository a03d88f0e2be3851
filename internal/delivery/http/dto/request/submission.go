package request

import "time"

type SubmissionRequest struct {
	CustomerExternalID string     `json:"customer_external_id"`
	QRPayload          string     `json:"qr_payload"`
	SubmittedAt        *time.Time `json:"submitted_at,omitempty"`
}
