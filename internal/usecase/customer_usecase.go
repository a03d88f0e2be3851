package usecase

import (
	"context"

	"github.com/ayoqsh/loyalty-service/internal/domain"
)

type CustomerUsecase interface {
	GetCustomerByExternalID(ctx context.Context, externalID string) (*domain.Customer, error)
	UpdateContact(ctx context.Context, customer *domain.Customer) error
	DeactivateCustomer(ctx context.Context, externalID string) error
	GetCustomerChecks(ctx context.Context, externalID string, page, limit int64) ([]*domain.FiscalCheck, int64, error)
}

type DefaultCustomerUsecase struct {
	CustomerRepo domain.CustomerRepository
	LedgerRepo   domain.LedgerRepository
}

func NewDefaultCustomerUsecase(customerRepo domain.CustomerRepository, ledgerRepo domain.LedgerRepository) *DefaultCustomerUsecase {
	return &DefaultCustomerUsecase{CustomerRepo: customerRepo, LedgerRepo: ledgerRepo}
}

func (uc *DefaultCustomerUsecase) GetCustomerByExternalID(ctx context.Context, externalID string) (*domain.Customer, error) {
	return uc.CustomerRepo.GetByExternalID(ctx, externalID)
}

func (uc *DefaultCustomerUsecase) UpdateContact(ctx context.Context, customer *domain.Customer) error {
	existing, err := uc.CustomerRepo.GetByExternalID(ctx, customer.ExternalID)
	if err != nil {
		return err
	}
	customer.ID = existing.ID
	return uc.CustomerRepo.UpdateContact(ctx, customer)
}

func (uc *DefaultCustomerUsecase) DeactivateCustomer(ctx context.Context, externalID string) error {
	return uc.CustomerRepo.Deactivate(ctx, externalID)
}

func (uc *DefaultCustomerUsecase) GetCustomerChecks(ctx context.Context, externalID string, page, limit int64) ([]*domain.FiscalCheck, int64, error) {
	customer, err := uc.CustomerRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.LedgerRepo.GetChecksByCustomerID(ctx, customer.ID, page, limit)
}
