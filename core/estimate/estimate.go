// Package estimate assembles cost breakdowns from the pricing catalog and
// applies the client-location multiplier.
package estimate

import (
	"github.com/shopspring/decimal"

	"webdev-cost/core/types"
)

// ForeignMultiplier is applied to the subtotal for foreign clients
var ForeignMultiplier = decimal.NewFromInt(2)

// Estimate is a derived, fully recomputed price estimate
type Estimate struct {
	SiteType   types.SiteType      `json:"site_type"`
	ClientType types.ClientType    `json:"client_type"`
	Inputs     Inputs              `json:"inputs"`
	Breakdown  types.CostBreakdown `json:"breakdown"`

	// Subtotal is the sum of the breakdown before the multiplier
	Subtotal decimal.Decimal `json:"subtotal"`

	// Multiplier is 2 for foreign clients, 1 otherwise
	Multiplier decimal.Decimal `json:"multiplier"`

	// Total is Subtotal * Multiplier, unrounded
	Total decimal.Decimal `json:"total"`
}

// Placeholder returns the "no estimate yet" state: no breakdown, zero total
func Placeholder() *Estimate {
	return &Estimate{
		ClientType: types.ClientLocal,
		Breakdown:  types.CostBreakdown{},
		Subtotal:   decimal.Zero,
		Multiplier: decimal.NewFromInt(1),
		Total:      decimal.Zero,
	}
}

// IsPlaceholder reports whether e carries no estimate
func (e *Estimate) IsPlaceholder() bool {
	return e == nil || len(e.Breakdown) == 0
}

// DisplayTotal is Total rounded to the nearest whole currency unit
func (e *Estimate) DisplayTotal() decimal.Decimal {
	if e == nil {
		return decimal.Zero
	}
	return e.Total.Round(0)
}

// Headline is the on-screen total line
func (e *Estimate) Headline() string {
	return "Estimated Price: " + types.FormatAmount(e.DisplayTotal())
}

// ChartPalette is cycled by slice index
var ChartPalette = []string{
	"#007bff", "#28a745", "#ffc107", "#dc3545", "#17a2b8",
	"#6f42c1", "#fd7e14", "#20c997", "#e83e8c",
}

// ChartSlice is one labeled chart value
type ChartSlice struct {
	Label      string          `json:"label"`
	Value      decimal.Decimal `json:"value"`
	Color      string          `json:"color"`
	Percentage string          `json:"percentage,omitempty"`
}

// ChartData is the labeled series handed to a chart renderer, in catalog order
type ChartData struct {
	Slices []ChartSlice `json:"slices"`
}

// Labels returns the slice labels in order
func (c ChartData) Labels() []string {
	labels := make([]string, len(c.Slices))
	for i, s := range c.Slices {
		labels[i] = s.Label
	}
	return labels
}

// Values returns the slice values in order
func (c ChartData) Values() []decimal.Decimal {
	values := make([]decimal.Decimal, len(c.Slices))
	for i, s := range c.Slices {
		values[i] = s.Value
	}
	return values
}

// IsEmpty reports whether there is nothing to draw
func (c ChartData) IsEmpty() bool {
	return len(c.Slices) == 0
}

// Chart builds chart data from the breakdown. Percentages are of the
// subtotal with one decimal; zero-valued slices carry none.
func (e *Estimate) Chart() ChartData {
	if e.IsPlaceholder() {
		return ChartData{Slices: []ChartSlice{}}
	}

	hundred := decimal.NewFromInt(100)
	slices := make([]ChartSlice, len(e.Breakdown))
	for i, item := range e.Breakdown {
		slices[i] = ChartSlice{
			Label: item.Component,
			Value: item.Amount,
			Color: ChartPalette[i%len(ChartPalette)],
		}
		if item.Amount.IsPositive() && e.Subtotal.IsPositive() {
			pct := item.Amount.Div(e.Subtotal).Mul(hundred)
			slices[i].Percentage = pct.StringFixed(1) + "%"
		}
	}
	return ChartData{Slices: slices}
}
