// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"fmt"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(PricingRule) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateNonNegative,
		validateFixedRuleBinding,
		validateUnitRuleBinding,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errs []error

	for _, siteType := range c.order {
		seen := make(map[string]bool)
		for _, entry := range c.entries[siteType] {
			if entry.Component == "" {
				errs = append(errs, fmt.Errorf("%s: component name is empty", siteType))
				continue
			}
			if seen[entry.Component] {
				errs = append(errs, fmt.Errorf("%s:%s: duplicate component", siteType, entry.Component))
			}
			seen[entry.Component] = true

			for _, rule := range rules {
				if err := rule(entry); err != nil {
					errs = append(errs, fmt.Errorf("%s:%s: %w", siteType, entry.Component, err))
				}
			}
		}
	}

	return errs
}

func validateNonNegative(r PricingRule) error {
	if r.Base.IsNegative() {
		return fmt.Errorf("base must be non-negative, got %s", r.Base)
	}
	if r.Unit.IsNegative() {
		return fmt.Errorf("unit must be non-negative, got %s", r.Unit)
	}
	if r.Threshold < 0 {
		return fmt.Errorf("threshold must be non-negative, got %d", r.Threshold)
	}
	return nil
}

// validateFixedRuleBinding: fixed rules read no quantity and include nothing
func validateFixedRuleBinding(r PricingRule) error {
	if !r.IsFixed() {
		return nil
	}
	if r.Quantity != "" {
		return fmt.Errorf("fixed rule must not read quantity %q", r.Quantity)
	}
	if r.Threshold != 0 {
		return fmt.Errorf("fixed rule must have threshold 0, got %d", r.Threshold)
	}
	return nil
}

func validateUnitRuleBinding(r PricingRule) error {
	if !r.IsFixed() && r.Quantity == "" {
		return fmt.Errorf("unit-priced rule must name its input quantity")
	}
	return nil
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	errs := c.Validate(DefaultValidationRules())
	if len(errs) > 0 {
		panic(fmt.Sprintf("catalog has %d validation errors, first: %v", len(errs), errs[0]))
	}
}
