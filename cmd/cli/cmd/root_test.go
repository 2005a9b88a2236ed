package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdev-cost/core/discount"
	"webdev-cost/core/output"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestEstimateCommand(t *testing.T) {
	out, err := run(t, "estimate", "--site-type", "dynamic")
	require.NoError(t, err)
	assert.Contains(t, out, "Estimated Price: ₱34,000")
	assert.Contains(t, out, "System Architecture")
	assert.Contains(t, out, "Local Client")
}

func TestEstimateCommandLenientQuantities(t *testing.T) {
	out, err := run(t, "estimate", "-s", "dynamic", "--pages", "8abc", "--tables", "oops")
	require.NoError(t, err)
	// 8 pages adds 1500 over the default 5; no tables keeps the base.
	assert.Contains(t, out, "Estimated Price: ₱35,500")
}

func TestEstimateCommandJSON(t *testing.T) {
	out, err := run(t, "estimate", "-s", "static", "--client", "foreign", "--format", "json", "--discount", "student")
	require.NoError(t, err)

	var result output.EstimationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	assert.True(t, result.Estimate.Subtotal.Equal(decimal.NewFromInt(13000)))
	assert.True(t, result.Estimate.Total.Equal(decimal.NewFromInt(26000)))
	require.NotNil(t, result.Discount)
	assert.True(t, result.Discount.FinalPrice.Equal(decimal.NewFromInt(23400)))
	assert.Equal(t, Version, result.Metadata.Version)
}

func TestEstimateCommandInvalidInput(t *testing.T) {
	out, err := run(t, "estimate", "--site-type", "ecommerce")
	require.Error(t, err)
	assert.Contains(t, out, "Waiting for input...")
	assert.Contains(t, out, "Estimated Price: ₱0")

	_, err = run(t, "estimate", "-s", "static", "--format", "yaml")
	assert.Error(t, err)
}

func TestEstimateCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
project "landing" {
  site_type = "static"
  client    = "foreign"
  pages     = 1
  discount  = "referral"
}
`), 0o600))

	out, err := run(t, "estimate", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Estimated Price: ₱22,000")
	assert.Contains(t, out, "Referral Discount (5%)")
	assert.Contains(t, out, "Final Price: ₱20,900")
}

func TestDiscountCommand(t *testing.T) {
	out, err := run(t, "discount", "--price", "34,000", "--referral", "--student")
	require.NoError(t, err)
	assert.Contains(t, out, "Referral Discount (5%)")
	assert.NotContains(t, out, "Student/Thesis")
	assert.Contains(t, out, "Final Price: ₱32,300")

	out, err = run(t, "discount", "--price", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, discount.MessageNoDiscount)
	assert.Contains(t, out, "Final Price: ₱1,000")
}

func TestDiscountCommandFromEstimate(t *testing.T) {
	out, err := run(t, "discount", "--from-estimate", "-s", "dynamic", "--client", "foreign", "--student")
	require.NoError(t, err)
	assert.Contains(t, out, "Estimated Price: ₱68,000")
	assert.Contains(t, out, "-₱6,800")
	assert.Contains(t, out, "Final Price: ₱61,200")
}

func TestDiscountCommandInvalidPrice(t *testing.T) {
	for _, price := range []string{"0", "-50", "abc", ""} {
		out, err := run(t, "discount", "--price", price, "--student")
		require.Error(t, err, price)
		assert.Contains(t, out, discount.MessageInvalidPrice, price)
		assert.Contains(t, out, "Final Price: ₱0", price)
	}
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "Dynamic Site Pricing")
	assert.Contains(t, out, "Static Site Pricing")

	out, err = run(t, "catalog", "static", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "## Static Site Pricing")
	assert.NotContains(t, out, "Dynamic")

	_, err = run(t, "catalog", "ecommerce")
	assert.Error(t, err)
}

func TestReportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimate.pdf")
	out, err := run(t, "report", "-s", "dynamic", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	missing := filepath.Join(t.TempDir(), "never.pdf")
	_, err = run(t, "report", "-s", "bogus", "--out", missing)
	require.Error(t, err)
	_, statErr := os.Stat(missing)
	assert.True(t, os.IsNotExist(statErr))
}

func TestReportCommandVerboseShowsReportID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimate.pdf")
	out, err := run(t, "report", "-s", "static", "--out", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "generated")

	out, err = run(t, "--verbose", "report", "-s", "static", "--out", path)
	require.NoError(t, err)
	assert.Regexp(t, `report [0-9a-f-]{36} generated`, out)
}

func TestVersionAndConfigCommands(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "webdev-cost version "+Version+"\n", out)

	path := filepath.Join(t.TempDir(), "webdev-cost.yaml")
	out, err = run(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")
	_, err = os.Stat(path)
	require.NoError(t, err)

	out, err = run(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "server.addr = :8080"), out)
	assert.Contains(t, out, "report.output_path = Website_Estimate.pdf")
}
