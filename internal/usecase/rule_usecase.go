package usecase

import (
	"context"
	"fmt"

	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type RuleUsecase interface {
	CreateRule(ctx context.Context, rule *domain.CashbackRule) (*domain.CashbackRule, error)
	UpdateRule(ctx context.Context, rule *domain.CashbackRule) error
	DeactivateRule(ctx context.Context, ruleID string) error
	GetRuleByID(ctx context.Context, ruleID string) (*domain.CashbackRule, error)
	ListRules(ctx context.Context) ([]*domain.CashbackRule, error)
}

type DefaultRuleUsecase struct {
	RuleRepo domain.RuleRepository
}

func NewDefaultRuleUsecase(ruleRepo domain.RuleRepository) *DefaultRuleUsecase {
	return &DefaultRuleUsecase{RuleRepo: ruleRepo}
}

func (uc *DefaultRuleUsecase) CreateRule(ctx context.Context, rule *domain.CashbackRule) (*domain.CashbackRule, error) {
	if err := validateRule(rule); err != nil {
		return nil, err
	}
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}
	if err := uc.RuleRepo.CreateRule(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (uc *DefaultRuleUsecase) UpdateRule(ctx context.Context, rule *domain.CashbackRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}
	return uc.RuleRepo.UpdateRule(ctx, rule)
}

func (uc *DefaultRuleUsecase) DeactivateRule(ctx context.Context, ruleID string) error {
	return uc.RuleRepo.DeactivateRule(ctx, ruleID)
}

func (uc *DefaultRuleUsecase) GetRuleByID(ctx context.Context, ruleID string) (*domain.CashbackRule, error) {
	return uc.RuleRepo.GetRuleByID(ctx, ruleID)
}

func (uc *DefaultRuleUsecase) ListRules(ctx context.Context) ([]*domain.CashbackRule, error) {
	return uc.RuleRepo.ListRules(ctx)
}

// validateRule rejects bad payout configuration at save time, so the
// engine's runtime clamp stays a last resort rather than the norm.
func validateRule(rule *domain.CashbackRule) error {
	switch rule.Kind {
	case domain.RuleKindFixed, domain.RuleKindPercentage, domain.RuleKindTiered:
	default:
		return fmt.Errorf("unknown rule kind %q", rule.Kind)
	}
	if rule.CashAmount.IsNegative() || rule.Percentage.IsNegative() || rule.Threshold.IsNegative() {
		return domain.ErrNegativePayout
	}
	if rule.Percentage.GreaterThan(hundred) {
		return fmt.Errorf("percentage must not exceed 100")
	}
	return nil
}
