package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres/mappers"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRuleRepository struct {
	DB *gorm.DB
}

func NewDefaultRuleRepository(db *gorm.DB) *DefaultRuleRepository {
	return &DefaultRuleRepository{DB: db}
}

func (r *DefaultRuleRepository) CreateRule(ctx context.Context, rule *domain.CashbackRule) error {
	ruleModel := mappers.ToGORMRule(rule)
	if err := r.DB.WithContext(ctx).Create(ruleModel).Error; err != nil {
		return fmt.Errorf("create rule: %w", err)
	}
	return nil
}

func (r *DefaultRuleRepository) UpdateRule(ctx context.Context, rule *domain.CashbackRule) error {
	ruleModel := mappers.ToGORMRule(rule)
	result := r.DB.WithContext(ctx).
		Model(&models.CashbackRuleModel{}).
		Where("id = ?", rule.ID).
		Updates(map[string]interface{}{
			"kind":        ruleModel.Kind,
			"name":        ruleModel.Name,
			"threshold":   ruleModel.Threshold,
			"cash_amount": ruleModel.CashAmount,
			"percentage":  ruleModel.Percentage,
			"priority":    ruleModel.Priority,
			"is_active":   ruleModel.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRuleNotFound
	}
	return nil
}

func (r *DefaultRuleRepository) DeactivateRule(ctx context.Context, ruleID string) error {
	result := r.DB.WithContext(ctx).
		Model(&models.CashbackRuleModel{}).
		Where("id = ?", ruleID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRuleNotFound
	}
	return nil
}

func (r *DefaultRuleRepository) GetRuleByID(ctx context.Context, ruleID string) (*domain.CashbackRule, error) {
	var ruleModel models.CashbackRuleModel
	if err := r.DB.WithContext(ctx).First(&ruleModel, "id = ?", ruleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRuleNotFound
		}
		return nil, err
	}
	return mappers.ToDomainRule(&ruleModel), nil
}

func (r *DefaultRuleRepository) ListActiveRules(ctx context.Context) ([]*domain.CashbackRule, error) {
	var ruleModels []models.CashbackRuleModel
	if err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("priority ASC").
		Find(&ruleModels).Error; err != nil {
		return nil, fmt.Errorf("list active rules: %w", err)
	}

	rules := make([]*domain.CashbackRule, len(ruleModels))
	for i, ruleModel := range ruleModels {
		rules[i] = mappers.ToDomainRule(&ruleModel)
	}

	return rules, nil
}

func (r *DefaultRuleRepository) ListRules(ctx context.Context) ([]*domain.CashbackRule, error) {
	var ruleModels []models.CashbackRuleModel
	if err := r.DB.WithContext(ctx).
		Order("priority ASC").
		Find(&ruleModels).Error; err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}

	rules := make([]*domain.CashbackRule, len(ruleModels))
	for i, ruleModel := range ruleModels {
		rules[i] = mappers.ToDomainRule(&ruleModel)
	}

	return rules, nil
}
