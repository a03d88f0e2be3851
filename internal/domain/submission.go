package domain

type SubmissionState string

const (
	StateReceived  SubmissionState = "RECEIVED"
	StateFetched   SubmissionState = "FETCHED"
	StateValidated SubmissionState = "VALIDATED"
	StatePriced    SubmissionState = "PRICED"
	StateSettled   SubmissionState = "SETTLED"
	StateFailed    SubmissionState = "FAILED"
)
