package domain

import "errors"

var (
	ErrMalformedPayload   = errors.New("malformed qr payload")
	ErrFetchUnavailable   = errors.New("fiscal service unavailable")
	ErrUnparsableResponse = errors.New("unparsable fiscal response")
	ErrDuplicateCheck     = errors.New("check already settled")
	ErrCheckNotToday      = errors.New("check is not dated today")
	ErrDailyLimitExceeded = errors.New("daily check limit exceeded")
	ErrStoreUnavailable   = errors.New("store unavailable")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrRuleNotFound     = errors.New("cashback rule not found")
	ErrSettingNotFound  = errors.New("setting not found")
	ErrNegativePayout   = errors.New("rule payout must not be negative")
)

// ErrorKind is the user-facing failure category surfaced to the bot.
type ErrorKind string

const (
	KindMalformed          ErrorKind = "MALFORMED"
	KindUnavailable        ErrorKind = "UNAVAILABLE"
	KindUnparsableResponse ErrorKind = "UNPARSABLE_RESPONSE"
	KindDuplicate          ErrorKind = "DUPLICATE"
	KindNotToday           ErrorKind = "NOT_TODAY"
	KindDailyLimitExceeded ErrorKind = "DAILY_LIMIT_EXCEEDED"
	KindStoreUnavailable   ErrorKind = "STORE_UNAVAILABLE"
)

// KindOf collapses component-level errors into one user-facing category.
// Unknown errors are reported as a transient store failure so the customer
// is told to retry rather than shown an internal detail.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrMalformedPayload):
		return KindMalformed
	case errors.Is(err, ErrFetchUnavailable):
		return KindUnavailable
	case errors.Is(err, ErrUnparsableResponse):
		return KindUnparsableResponse
	case errors.Is(err, ErrDuplicateCheck):
		return KindDuplicate
	case errors.Is(err, ErrCheckNotToday):
		return KindNotToday
	case errors.Is(err, ErrDailyLimitExceeded):
		return KindDailyLimitExceeded
	default:
		return KindStoreUnavailable
	}
}

// Retryable reports whether the customer may succeed by resubmitting the
// same receipt later.
func (k ErrorKind) Retryable() bool {
	return k == KindUnavailable || k == KindStoreUnavailable
}
