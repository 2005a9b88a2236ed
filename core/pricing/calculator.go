// Package pricing - Component cost calculation
// All per-component pricing math flows through ComputeCost.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"webdev-cost/core/catalog"
)

// ComputeCost prices one component:
//
//	extra = max(0, quantity - threshold)
//	cost  = base + extra*unit
//
// Negative quantities count as 0. Fixed rules (unit 0) always cost base.
func ComputeCost(quantity int, rule catalog.PricingRule) decimal.Decimal {
	cost := rule.Base
	if extra := Extra(quantity, rule); rule.Unit.IsPositive() && extra > 0 {
		cost = cost.Add(rule.Unit.Mul(decimal.NewFromInt(int64(extra))))
	}
	return cost
}

// Extra returns the billable quantity beyond the rule threshold
func Extra(quantity int, rule catalog.PricingRule) int {
	if quantity < 0 {
		quantity = 0
	}
	if extra := quantity - rule.Threshold; extra > 0 {
		return extra
	}
	return 0
}

// Formula describes how ComputeCost priced a component
func Formula(quantity int, rule catalog.PricingRule) string {
	if rule.IsFixed() {
		return fmt.Sprintf("fixed %s", rule.Base)
	}
	extra := Extra(quantity, rule)
	return fmt.Sprintf("%s + %d extra * %s", rule.Base, extra, rule.Unit)
}
