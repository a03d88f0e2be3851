package cashback

import (
	"sort"

	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Evaluation is the outcome of running the active rule set over one
// check amount.
type Evaluation struct {
	Amount   decimal.Decimal
	RuleID   string
	RuleName string
	// Clamped is set when a matched rule carried a negative payout; the
	// amount is forced to zero and the orchestrator logs it as a
	// configuration fault.
	Clamped bool
}

// Evaluate filters to active rules, orders them ascending by priority and
// applies the first rule whose kind matches the amount. Rules are
// mutually exclusive: priority breaks ties, nothing stacks. No match
// means zero cashback, which is a valid outcome rather than an error.
func Evaluate(amount decimal.Decimal, rules []*domain.CashbackRule) Evaluation {
	if !amount.IsPositive() {
		return Evaluation{Amount: decimal.Zero}
	}

	active := make([]*domain.CashbackRule, 0, len(rules))
	for _, rule := range rules {
		if rule.IsActive {
			active = append(active, rule)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority < active[j].Priority
	})

	for _, rule := range active {
		payout, applies := payoutFor(rule, amount)
		if !applies {
			continue
		}
		evaluation := Evaluation{
			Amount:   payout,
			RuleID:   rule.ID,
			RuleName: rule.Name,
		}
		if payout.IsNegative() {
			evaluation.Amount = decimal.Zero
			evaluation.Clamped = true
		}
		return evaluation
	}

	return Evaluation{Amount: decimal.Zero}
}

func payoutFor(rule *domain.CashbackRule, amount decimal.Decimal) (decimal.Decimal, bool) {
	switch rule.Kind {
	case domain.RuleKindFixed:
		return rule.CashAmount, true
	case domain.RuleKindPercentage:
		// Round half-to-even to the currency's minor unit.
		return amount.Mul(rule.Percentage).Div(decimal.NewFromInt(100)).RoundBank(2), true
	case domain.RuleKindTiered:
		if amount.GreaterThanOrEqual(rule.Threshold) {
			return rule.CashAmount, true
		}
		return decimal.Zero, false
	default:
		return decimal.Zero, false
	}
}
