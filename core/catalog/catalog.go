// Package catalog - Authoritative pricing catalog
// Defines the per-site-type rule tables. This is the source of truth for
// every component price.
package catalog

import (
	"github.com/shopspring/decimal"

	"webdev-cost/core/types"
	"webdev-cost/internal/errors"
)

// PricingRule prices one cost component
type PricingRule struct {
	// Component is the component name, unique within a site type
	Component string `json:"component"`

	// Base is charged once the component is included
	Base decimal.Decimal `json:"base"`

	// Unit is charged per quantity beyond Threshold
	Unit decimal.Decimal `json:"unit"`

	// Threshold is the quantity covered by Base
	Threshold int `json:"threshold"`

	// Quantity names the input this rule reads; QuantityNone for fixed rules
	Quantity types.QuantityKey `json:"quantity,omitempty"`

	// Description is presentation text only
	Description string `json:"description"`
}

// IsFixed reports whether the cost is always Base
func (r PricingRule) IsFixed() bool {
	return r.Unit.IsZero()
}

// Rules is the ordered rule list for one site type
type Rules []PricingRule

// Get returns the rule for a component
func (r Rules) Get(component string) (PricingRule, bool) {
	for _, rule := range r {
		if rule.Component == component {
			return rule, true
		}
	}
	return PricingRule{}, false
}

// Components returns the component names in catalog order
func (r Rules) Components() []string {
	names := make([]string, len(r))
	for i, rule := range r {
		names[i] = rule.Component
	}
	return names
}

// Catalog maps site types to their rules. A Catalog is never mutated after
// construction; Rules hands out copies.
type Catalog struct {
	order   []types.SiteType
	entries map[types.SiteType]Rules
}

// NewCatalog creates a catalog from the given tables. Site type order
// follows the order of the arguments.
func NewCatalog(tables ...Table) *Catalog {
	c := &Catalog{
		entries: make(map[types.SiteType]Rules, len(tables)),
	}
	for _, t := range tables {
		if _, exists := c.entries[t.SiteType]; !exists {
			c.order = append(c.order, t.SiteType)
		}
		c.entries[t.SiteType] = append(Rules(nil), t.Rules...)
	}
	return c
}

// Table is the rule list for one site type
type Table struct {
	SiteType types.SiteType
	Rules    Rules
}

// Rules returns the ordered rules for a site type
func (c *Catalog) Rules(siteType types.SiteType) (Rules, error) {
	rules, ok := c.entries[siteType]
	if !ok {
		return nil, errors.UnknownSiteType(string(siteType))
	}
	return append(Rules(nil), rules...), nil
}

// SiteTypes returns the site types in catalog order
func (c *Catalog) SiteTypes() []types.SiteType {
	return append([]types.SiteType(nil), c.order...)
}

var defaultCatalog = mustBuild(
	Table{SiteType: types.SiteDynamic, Rules: dynamicRules()},
	Table{SiteType: types.SiteStatic, Rules: staticRules()},
)

// mustBuild creates a catalog and panics if any rule fails validation
func mustBuild(tables ...Table) *Catalog {
	c := NewCatalog(tables...)
	c.MustValidate()
	return c
}

// Default returns the builtin catalog
func Default() *Catalog {
	return defaultCatalog
}

// GetRules returns the builtin rules for a site type
func GetRules(siteType types.SiteType) (Rules, error) {
	return defaultCatalog.Rules(siteType)
}
