package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdev-cost/core/catalog"
	"webdev-cost/core/discount"
	"webdev-cost/core/estimate"
	"webdev-cost/core/types"
)

func sampleResult(t *testing.T) *EstimationResult {
	t.Helper()
	est, err := estimate.BuildEstimate(types.SiteDynamic, estimate.Inputs{Pages: 5, Tables: 5, Roles: 1}, types.ClientLocal)
	require.NoError(t, err)
	return NewResult(est, nil)
}

func render(t *testing.T, f Formatter, result *EstimationResult) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, result))
	return buf.String()
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry(true, true)
	assert.Equal(t, []Format{FormatCLI, FormatJSON, FormatMarkdown}, r.Formats())

	f, err := r.Get(FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f.Format())

	_, err = r.Get("html")
	assert.Error(t, err)
	assert.Error(t, r.Register(NewJSONFormatter()))
}

func TestCLIFormatter(t *testing.T) {
	out := render(t, NewCLIFormatter(true, true), sampleResult(t))

	assert.Contains(t, out, "Dynamic Site Estimate")
	assert.Contains(t, out, "Estimated Price: ₱34,000")
	assert.Contains(t, out, "Backend Development")
	assert.Contains(t, out, "1500 + 4 extra * 500")
	assert.Contains(t, out, "Share of subtotal")
}

func TestCLIFormatterPlaceholder(t *testing.T) {
	_, err := estimate.BuildEstimate(types.SiteStatic, estimate.Inputs{}, types.ClientLocal)
	out := render(t, NewCLIFormatter(false, true), NewResult(nil, err))

	assert.Contains(t, out, "at least 1 page is required")
	assert.Contains(t, out, "Estimated Price: ₱0")
}

func TestCLIFormatterDiscount(t *testing.T) {
	r := discount.ApplyDiscount(decimal.NewFromInt(34000), discount.Student)
	result := NewResult(nil, nil)
	result.Discount = &r

	out := render(t, NewCLIFormatter(false, true), result)
	assert.NotContains(t, out, "Site Estimate")
	assert.Contains(t, out, "- Student/Thesis Discount (10%)")
	assert.Contains(t, out, "-₱3,400")
	assert.Contains(t, out, "Final Price: ₱30,600")
}

func TestJSONFormatter(t *testing.T) {
	out := render(t, NewJSONFormatter(), sampleResult(t))

	var decoded struct {
		Estimate struct {
			SiteType string `json:"site_type"`
			Total    string `json:"total"`
		} `json:"estimate"`
		Chart struct {
			Slices []struct {
				Label string `json:"label"`
			} `json:"slices"`
		} `json:"chart"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "dynamic", decoded.Estimate.SiteType)
	assert.Equal(t, "34000", decoded.Estimate.Total)
	assert.Len(t, decoded.Chart.Slices, 9)
}

func TestMarkdownFormatter(t *testing.T) {
	out := render(t, NewMarkdownFormatter(), sampleResult(t))

	assert.Contains(t, out, "# Web Development Price Estimation Report")
	assert.Contains(t, out, "## Price Breakdown (Before Multiplier)")
	assert.Contains(t, out, "| System Architecture & DB | 3,500 |")
	assert.Contains(t, out, "| **Subtotal** | **₱34,000** |")
}

func TestRenderCatalog(t *testing.T) {
	tables := catalog.Default().Summarize()
	for _, format := range []Format{FormatCLI, FormatJSON, FormatMarkdown} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderCatalog(&buf, tables, format, true))
			assert.Contains(t, buf.String(), "Payment Gateways")
			assert.Contains(t, buf.String(), fmt.Sprintf("+%s3,000 per unit", types.CurrencySymbol))
		})
	}

	assert.Error(t, RenderCatalog(&bytes.Buffer{}, tables, "html", true))
}
