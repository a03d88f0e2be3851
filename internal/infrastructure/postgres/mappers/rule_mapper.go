package mappers

import (
	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres/models"
)

func ToDomainRule(model *models.CashbackRuleModel) *domain.CashbackRule {
	return &domain.CashbackRule{
		ID:         model.ID,
		Kind:       domain.RuleKind(model.Kind),
		Name:       model.Name,
		Threshold:  model.Threshold,
		CashAmount: model.CashAmount,
		Percentage: model.Percentage,
		Priority:   model.Priority,
		IsActive:   model.IsActive,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func ToGORMRule(rule *domain.CashbackRule) *models.CashbackRuleModel {
	return &models.CashbackRuleModel{
		ID:         rule.ID,
		Kind:       string(rule.Kind),
		Name:       rule.Name,
		Threshold:  rule.Threshold,
		CashAmount: rule.CashAmount,
		Percentage: rule.Percentage,
		Priority:   rule.Priority,
		IsActive:   rule.IsActive,
		CreatedAt:  rule.CreatedAt,
		UpdatedAt:  rule.UpdatedAt,
	}
}

func ToDomainSetting(model *models.SettingModel) *domain.Setting {
	return &domain.Setting{
		Key:         model.Key,
		Value:       model.Value,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMSetting(setting *domain.Setting) *models.SettingModel {
	return &models.SettingModel{
		Key:         setting.Key,
		Value:       setting.Value,
		Description: setting.Description,
		CreatedAt:   setting.CreatedAt,
		UpdatedAt:   setting.UpdatedAt,
	}
}
