package pipelinedto

import "time"

type SubmissionInput struct {
	CustomerExternalID string
	QRPayload          string
	// Now is the submission clock; injected so date rules are testable.
	Now time.Time
}
