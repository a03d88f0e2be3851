package domain

import "context"

// SubmissionGuard serializes in-flight submissions per customer so a
// double-tapped photo cannot race itself through the fetch phase.
// It is advisory only; the ledger's unique constraint stays authoritative.
type SubmissionGuard interface {
	Acquire(ctx context.Context, customerID string) (bool, error)
	Release(ctx context.Context, customerID string)
}
