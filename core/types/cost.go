// Package types - Cost breakdown types
package types

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyPHP Currency = "PHP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// CurrencySymbol prefixes every displayed amount
const CurrencySymbol = "₱"

// FormatNumber rounds an amount to the nearest whole unit and inserts
// thousands separators.
func FormatNumber(amount decimal.Decimal) string {
	return humanize.Comma(amount.Round(0).IntPart())
}

// FormatAmount is FormatNumber with the currency symbol
func FormatAmount(amount decimal.Decimal) string {
	return CurrencySymbol + FormatNumber(amount)
}

// LineItem is one computed component cost
type LineItem struct {
	// Component is the catalog component name
	Component string `json:"component"`

	// Quantity is the input quantity the cost was computed from
	Quantity int `json:"quantity"`

	// Amount is the computed cost
	Amount decimal.Decimal `json:"amount"`

	// Formula describes how the cost was calculated
	Formula string `json:"formula"`
}

// CostBreakdown is an ordered list of component costs. Order mirrors the
// catalog order of the site type it was computed for.
type CostBreakdown []LineItem

// Sum adds the amounts left to right
func (b CostBreakdown) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b {
		total = total.Add(item.Amount)
	}
	return total
}

// Get returns the amount for a component
func (b CostBreakdown) Get(component string) (decimal.Decimal, bool) {
	for _, item := range b {
		if item.Component == component {
			return item.Amount, true
		}
	}
	return decimal.Zero, false
}

// Components returns the component names in order
func (b CostBreakdown) Components() []string {
	names := make([]string, len(b))
	for i, item := range b {
		names[i] = item.Component
	}
	return names
}

// Amounts returns the amounts in order
func (b CostBreakdown) Amounts() []decimal.Decimal {
	amounts := make([]decimal.Decimal, len(b))
	for i, item := range b {
		amounts[i] = item.Amount
	}
	return amounts
}
