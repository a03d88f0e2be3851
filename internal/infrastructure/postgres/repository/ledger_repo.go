package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres/mappers"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DefaultLedgerRepository struct {
	DB *gorm.DB
}

func NewDefaultLedgerRepository(db *gorm.DB) *DefaultLedgerRepository {
	return &DefaultLedgerRepository{DB: db}
}

func (r *DefaultLedgerRepository) FiscalIDExists(ctx context.Context, fiscalID string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).
		Model(&models.FiscalCheckModel{}).
		Where("fiscal_id = ?", fiscalID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count checks by fiscal_id: %w", err)
	}
	return count > 0, nil
}

func (r *DefaultLedgerRepository) CountChecksForDay(ctx context.Context, customerID string, dayStart, dayEnd time.Time) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).
		Model(&models.FiscalCheckModel{}).
		Where("customer_id = ?", customerID).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count daily checks: %w", err)
	}
	return count, nil
}

// SettleCheck commits the check, its visit and the balance credit as one
// transaction. The unique index on fiscal_id decides concurrent races:
// exactly one insert wins, the loser gets domain.ErrDuplicateCheck.
func (r *DefaultLedgerRepository) SettleCheck(ctx context.Context, check *domain.FiscalCheck, visit *domain.Visit) (decimal.Decimal, error) {
	var newBalance decimal.Decimal

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		checkModel := mappers.ToGORMCheck(check)
		if err := tx.Create(checkModel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateCheck
			}
			return fmt.Errorf("insert check: %w", err)
		}

		visitModel := mappers.ToGORMVisit(visit)
		if err := tx.Create(visitModel).Error; err != nil {
			return fmt.Errorf("insert visit: %w", err)
		}

		result := tx.Model(&models.CustomerModel{}).
			Where("id = ?", check.CustomerID).
			UpdateColumn("total_cashback", gorm.Expr("total_cashback + ?", check.CashbackAmount))
		if result.Error != nil {
			return fmt.Errorf("credit cashback: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrCustomerNotFound
		}

		var customerModel models.CustomerModel
		if err := tx.Select("total_cashback").First(&customerModel, "id = ?", check.CustomerID).Error; err != nil {
			return fmt.Errorf("read balance: %w", err)
		}
		newBalance = customerModel.TotalCashback

		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return newBalance, nil
}

func (r *DefaultLedgerRepository) GetCheckByFiscalID(ctx context.Context, fiscalID string) (*domain.FiscalCheck, error) {
	var checkModel models.FiscalCheckModel
	if err := r.DB.WithContext(ctx).First(&checkModel, "fiscal_id = ?", fiscalID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainCheck(&checkModel), nil
}

func (r *DefaultLedgerRepository) GetChecksByCustomerID(ctx context.Context, customerID string, page, limit int64) ([]*domain.FiscalCheck, int64, error) {
	var checkModels []models.FiscalCheckModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).
		Model(&models.FiscalCheckModel{}).
		Where("customer_id = ?", customerID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count checks: %w", err)
	}

	offset := (page - 1) * limit
	if err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&checkModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find checks: %w", err)
	}

	checks := make([]*domain.FiscalCheck, len(checkModels))
	for i, checkModel := range checkModels {
		checks[i] = mappers.ToDomainCheck(&checkModel)
	}

	return checks, total, nil
}
