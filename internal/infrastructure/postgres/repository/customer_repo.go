package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres/mappers"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultCustomerRepository struct {
	DB *gorm.DB
}

func NewDefaultCustomerRepository(db *gorm.DB) *DefaultCustomerRepository {
	return &DefaultCustomerRepository{DB: db}
}

func (r *DefaultCustomerRepository) GetOrCreateByExternalID(ctx context.Context, externalID string) (*domain.Customer, error) {
	customerModel := models.CustomerModel{
		ID:            uuid.NewString(),
		ExternalID:    externalID,
		RegisteredAt:  time.Now(),
		IsActive:      true,
		TotalCashback: decimal.Zero,
	}

	// ON CONFLICT DO NOTHING + re-read keeps first contact race-safe
	// across concurrent submissions from one chat.
	if err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoNothing: true,
		}).
		Create(&customerModel).Error; err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return r.GetByExternalID(ctx, externalID)
}

func (r *DefaultCustomerRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.Customer, error) {
	var customerModel models.CustomerModel
	if err := r.DB.WithContext(ctx).First(&customerModel, "external_id = ?", externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCustomer(&customerModel), nil
}

func (r *DefaultCustomerRepository) UpdateContact(ctx context.Context, customer *domain.Customer) error {
	return r.DB.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"phone":      customer.Phone,
			"car_name":   customer.CarName,
			"car_number": customer.CarNumber,
		}).Error
}

func (r *DefaultCustomerRepository) Deactivate(ctx context.Context, externalID string) error {
	result := r.DB.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("external_id = ?", externalID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
