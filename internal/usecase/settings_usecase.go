package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ayoqsh/loyalty-service/internal/domain"
)

type SettingsUsecase interface {
	GetSetting(ctx context.Context, key string) (*domain.Setting, error)
	SetSetting(ctx context.Context, setting *domain.Setting) error
	ListSettings(ctx context.Context) ([]*domain.Setting, error)
}

type DefaultSettingsUsecase struct {
	SettingsRepo domain.SettingsRepository
}

func NewDefaultSettingsUsecase(settingsRepo domain.SettingsRepository) *DefaultSettingsUsecase {
	return &DefaultSettingsUsecase{SettingsRepo: settingsRepo}
}

func (uc *DefaultSettingsUsecase) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	return uc.SettingsRepo.GetSetting(ctx, key)
}

func (uc *DefaultSettingsUsecase) SetSetting(ctx context.Context, setting *domain.Setting) error {
	if setting.Key == "" {
		return fmt.Errorf("setting key must not be empty")
	}
	if setting.Key == domain.SettingDailyCheckLimit {
		limit, err := strconv.Atoi(setting.Value)
		if err != nil || limit <= 0 {
			return fmt.Errorf("%s must be a positive integer", domain.SettingDailyCheckLimit)
		}
	}
	return uc.SettingsRepo.SetSetting(ctx, setting)
}

func (uc *DefaultSettingsUsecase) ListSettings(ctx context.Context) ([]*domain.Setting, error) {
	return uc.SettingsRepo.ListSettings(ctx)
}
