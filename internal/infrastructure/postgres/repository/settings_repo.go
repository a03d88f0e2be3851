package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres/mappers"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultSettingsRepository struct {
	DB *gorm.DB
}

func NewDefaultSettingsRepository(db *gorm.DB) *DefaultSettingsRepository {
	return &DefaultSettingsRepository{DB: db}
}

func (r *DefaultSettingsRepository) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	var settingModel models.SettingModel
	if err := r.DB.WithContext(ctx).First(&settingModel, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSettingNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSetting(&settingModel), nil
}

func (r *DefaultSettingsRepository) SetSetting(ctx context.Context, setting *domain.Setting) error {
	settingModel := mappers.ToGORMSetting(setting)
	if err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
		}).
		Create(settingModel).Error; err != nil {
		return fmt.Errorf("set setting %s: %w", setting.Key, err)
	}
	return nil
}

func (r *DefaultSettingsRepository) ListSettings(ctx context.Context) ([]*domain.Setting, error) {
	var settingModels []models.SettingModel
	if err := r.DB.WithContext(ctx).Order("key ASC").Find(&settingModels).Error; err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	settings := make([]*domain.Setting, len(settingModels))
	for i, settingModel := range settingModels {
		settings[i] = mappers.ToDomainSetting(&settingModel)
	}

	return settings, nil
}
