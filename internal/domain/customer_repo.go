package domain

import "context"

type CustomerRepository interface {
	// GetOrCreateByExternalID registers the customer on first contact.
	GetOrCreateByExternalID(ctx context.Context, externalID string) (*Customer, error)
	GetByExternalID(ctx context.Context, externalID string) (*Customer, error)
	UpdateContact(ctx context.Context, customer *Customer) error
	Deactivate(ctx context.Context, externalID string) error
}
