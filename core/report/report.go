// Package report builds the report-ready structure handed to document
// renderers.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"webdev-cost/core/estimate"
	"webdev-cost/core/types"
	"webdev-cost/internal/errors"
)

// Options controls report branding and notes
type Options struct {
	Company      string `mapstructure:"company" json:"company"`
	Tagline      string `mapstructure:"tagline" json:"tagline"`
	ValidityDays int    `mapstructure:"validity_days" json:"validity_days"`
}

// DefaultOptions returns the stock branding
func DefaultOptions() Options {
	return Options{
		Company:      "EZ Web Solutions",
		Tagline:      "Providing innovative web development solutions.",
		ValidityDays: 30,
	}
}

// Title heads every report
const Title = "Web Development Price Estimation Report"

// BreakdownTitle heads the itemized table. Items are pre-multiplier.
const BreakdownTitle = "Price Breakdown (Before Multiplier)"

// Report is a captured estimate ready for layout. It holds copies, so
// later estimates never change a report already built.
type Report struct {
	ID          string              `json:"id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Company     string              `json:"company"`
	Tagline     string              `json:"tagline"`
	SiteType    types.SiteType      `json:"site_type"`
	Pages       int                 `json:"pages"`
	ClientType  types.ClientType    `json:"client_type"`
	Total       decimal.Decimal     `json:"total"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	Breakdown   types.CostBreakdown `json:"breakdown"`
	Notes       []string            `json:"notes"`
}

// Build captures est into a report. The placeholder estimate cannot be
// reported.
func Build(est *estimate.Estimate, opts Options, now time.Time) (*Report, error) {
	if est.IsPlaceholder() {
		return nil, errors.InvalidInput("calculation needed before generating a report")
	}
	if opts.ValidityDays <= 0 {
		opts.ValidityDays = DefaultOptions().ValidityDays
	}

	return &Report{
		ID:          uuid.NewString(),
		GeneratedAt: now,
		Company:     opts.Company,
		Tagline:     opts.Tagline,
		SiteType:    est.SiteType,
		Pages:       est.Inputs.Pages,
		ClientType:  est.ClientType,
		Total:       est.DisplayTotal(),
		Subtotal:    est.Subtotal,
		Breakdown:   append(types.CostBreakdown(nil), est.Breakdown...),
		Notes:       Notes(opts.ValidityDays),
	}, nil
}

// Notes returns the disclaimer lines printed under the breakdown
func Notes(validityDays int) []string {
	return []string{
		"IMPORTANT NOTES:",
		"1. This is an ESTIMATION only and is subject to change upon detailed final scoping and requirements gathering.",
		"2. The quoted price INCLUDES initial hosting and domain registration for the first 1 year, but ongoing maintenance and fees thereafter are not covered.",
		"3. A multiplier of x2 is applied to Foreign Clients to ensure the financial value of the contract is commensurate with international market rates and to mitigate risks associated with cross-currency fluctuation.",
		"4. Features requiring complex third-party API integration may incur additional costs.",
		"5. Revisions or major changes requested post-deployment will be billed separately from this contract.",
		fmt.Sprintf("6. This estimate is valid for %d days from the date of issuance.", validityDays),
	}
}

// TotalLine is the headline total as printed on the report
func (r *Report) TotalLine() string {
	return fmt.Sprintf("TOTAL ESTIMATED PRICE: %s php", types.FormatNumber(r.Total))
}

// SummaryLines are the project summary rows
func (r *Report) SummaryLines() []string {
	return []string{
		"Site Type: " + r.SiteType.Title(),
		fmt.Sprintf("Number of Pages: %d", r.Pages),
		"Client Type: " + r.ClientType.Label(),
	}
}
