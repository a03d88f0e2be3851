package domain

import "context"

// ReceiptFetcher retrieves raw fiscal-check data from the fiscal authority
// by the URL extracted from a QR code and normalizes it.
// Errors are one of ErrMalformedPayload, ErrFetchUnavailable,
// ErrUnparsableResponse (possibly wrapped).
type ReceiptFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*CanonicalCheck, error)
}
