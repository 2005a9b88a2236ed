package catalog

import (
	"webdev-cost/core/types"
)

// RuleSummary is the display row for one rule on the pricing table
type RuleSummary struct {
	Component   string `json:"component"`
	BaseText    string `json:"base"`
	UnitText    string `json:"unit"`
	Description string `json:"description"`
}

// TableSummary is the display table for one site type
type TableSummary struct {
	SiteType types.SiteType `json:"site_type"`
	Title    string         `json:"title"`
	Rows     []RuleSummary  `json:"rows"`
}

// Summarize renders every table of the catalog for display
func (c *Catalog) Summarize() []TableSummary {
	summaries := make([]TableSummary, 0, len(c.order))
	for _, siteType := range c.order {
		summaries = append(summaries, SummarizeTable(siteType, c.entries[siteType]))
	}
	return summaries
}

// SummarizeTable renders one site type's rules for display
func SummarizeTable(siteType types.SiteType, rules Rules) TableSummary {
	rows := make([]RuleSummary, len(rules))
	for i, r := range rules {
		rows[i] = Summarize(r)
	}
	return TableSummary{
		SiteType: siteType,
		Title:    siteType.Title() + " Site Pricing",
		Rows:     rows,
	}
}

// Summarize renders one rule for display
func Summarize(r PricingRule) RuleSummary {
	base := "N/A"
	if r.Base.IsPositive() {
		base = types.FormatAmount(r.Base)
	}
	return RuleSummary{
		Component:   r.Component,
		BaseText:    base,
		UnitText:    unitText(r),
		Description: r.Description,
	}
}

func unitText(r PricingRule) string {
	unit := "+" + types.FormatAmount(r.Unit)
	switch r.Quantity {
	case types.QuantityPages:
		return unit + "/page"
	case types.QuantityTables:
		return unit + "/add'l table"
	case types.QuantityRoles:
		return unit + "/add'l role"
	}
	if r.Unit.IsPositive() && r.Threshold == 0 {
		return unit + " per unit"
	}
	return "Fixed"
}
