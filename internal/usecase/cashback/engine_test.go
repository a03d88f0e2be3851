package cashback

import (
	"testing"

	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEvaluate_FirstMatchingRuleByPriority(t *testing.T) {
	rules := []*domain.CashbackRule{
		{ID: "fixed-50", Kind: domain.RuleKindFixed, CashAmount: dec("50"), Priority: 2, IsActive: true},
		{ID: "pct-1", Kind: domain.RuleKindPercentage, Percentage: dec("1"), Priority: 1, IsActive: true},
	}

	evaluation := Evaluate(dec("1000"), rules)

	assert.Equal(t, "pct-1", evaluation.RuleID)
	assert.True(t, evaluation.Amount.Equal(dec("10")), "got %s", evaluation.Amount)
	assert.False(t, evaluation.Clamped)
}

func TestEvaluate_TieredThreshold(t *testing.T) {
	rules := []*domain.CashbackRule{
		{ID: "tier-500", Kind: domain.RuleKindTiered, Threshold: dec("500"), CashAmount: dec("30"), Priority: 1, IsActive: true},
	}

	below := Evaluate(dec("400"), rules)
	assert.True(t, below.Amount.IsZero(), "got %s", below.Amount)
	assert.Empty(t, below.RuleID)

	at := Evaluate(dec("500"), rules)
	assert.True(t, at.Amount.Equal(dec("30")), "got %s", at.Amount)

	above := Evaluate(dec("600"), rules)
	assert.True(t, above.Amount.Equal(dec("30")), "got %s", above.Amount)
	assert.Equal(t, "tier-500", above.RuleID)
}

func TestEvaluate_TieredBelowThresholdFallsThrough(t *testing.T) {
	rules := []*domain.CashbackRule{
		{ID: "tier-500", Kind: domain.RuleKindTiered, Threshold: dec("500"), CashAmount: dec("30"), Priority: 1, IsActive: true},
		{ID: "pct-2", Kind: domain.RuleKindPercentage, Percentage: dec("2"), Priority: 2, IsActive: true},
	}

	evaluation := Evaluate(dec("400"), rules)

	assert.Equal(t, "pct-2", evaluation.RuleID)
	assert.True(t, evaluation.Amount.Equal(dec("8")), "got %s", evaluation.Amount)
}

func TestEvaluate_PercentageRoundsHalfToEven(t *testing.T) {
	rules := []*domain.CashbackRule{
		{ID: "pct-1", Kind: domain.RuleKindPercentage, Percentage: dec("1"), Priority: 1, IsActive: true},
	}

	// 1% of 1250.50 is 12.505, which rounds to the even cent.
	evaluation := Evaluate(dec("1250.50"), rules)
	assert.True(t, evaluation.Amount.Equal(dec("12.50")), "got %s", evaluation.Amount)

	// 1% of 1350.50 is 13.505, also even.
	evaluation = Evaluate(dec("1350.50"), rules)
	assert.True(t, evaluation.Amount.Equal(dec("13.50")), "got %s", evaluation.Amount)
}

func TestEvaluate_InactiveRulesIgnored(t *testing.T) {
	rules := []*domain.CashbackRule{
		{ID: "pct-10", Kind: domain.RuleKindPercentage, Percentage: dec("10"), Priority: 1, IsActive: false},
		{ID: "fixed-5", Kind: domain.RuleKindFixed, CashAmount: dec("5"), Priority: 2, IsActive: true},
	}

	evaluation := Evaluate(dec("1000"), rules)

	assert.Equal(t, "fixed-5", evaluation.RuleID)
	assert.True(t, evaluation.Amount.Equal(dec("5")))
}

func TestEvaluate_NoRulesMeansZero(t *testing.T) {
	evaluation := Evaluate(dec("1000"), nil)

	assert.True(t, evaluation.Amount.IsZero())
	assert.Empty(t, evaluation.RuleID)
	assert.False(t, evaluation.Clamped)
}

func TestEvaluate_NegativePayoutClampedToZero(t *testing.T) {
	rules := []*domain.CashbackRule{
		{ID: "bad-fixed", Kind: domain.RuleKindFixed, CashAmount: dec("-25"), Priority: 1, IsActive: true},
	}

	evaluation := Evaluate(dec("1000"), rules)

	assert.True(t, evaluation.Amount.IsZero(), "got %s", evaluation.Amount)
	assert.True(t, evaluation.Clamped)
	assert.Equal(t, "bad-fixed", evaluation.RuleID)
}

func TestEvaluate_NonPositiveAmount(t *testing.T) {
	rules := []*domain.CashbackRule{
		{ID: "fixed-5", Kind: domain.RuleKindFixed, CashAmount: dec("5"), Priority: 1, IsActive: true},
	}

	assert.True(t, Evaluate(decimal.Zero, rules).Amount.IsZero())
	assert.True(t, Evaluate(dec("-10"), rules).Amount.IsZero())
}

func TestEvaluate_UnknownKindSkipped(t *testing.T) {
	rules := []*domain.CashbackRule{
		{ID: "weird", Kind: domain.RuleKind("lottery"), CashAmount: dec("99"), Priority: 1, IsActive: true},
		{ID: "fixed-5", Kind: domain.RuleKindFixed, CashAmount: dec("5"), Priority: 2, IsActive: true},
	}

	evaluation := Evaluate(dec("1000"), rules)

	assert.Equal(t, "fixed-5", evaluation.RuleID)
}
