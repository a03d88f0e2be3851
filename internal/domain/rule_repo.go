package domain

import "context"

type RuleRepository interface {
	CreateRule(ctx context.Context, rule *CashbackRule) error
	UpdateRule(ctx context.Context, rule *CashbackRule) error
	DeactivateRule(ctx context.Context, ruleID string) error
	GetRuleByID(ctx context.Context, ruleID string) (*CashbackRule, error)
	// ListActiveRules is read fresh on every pipeline run; there is no
	// cross-run cache that could go stale under admin edits.
	ListActiveRules(ctx context.Context) ([]*CashbackRule, error)
	ListRules(ctx context.Context) ([]*CashbackRule, error)
}

type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (*Setting, error)
	SetSetting(ctx context.Context, setting *Setting) error
	ListSettings(ctx context.Context) ([]*Setting, error)
}
