package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSiteTypeValidity(t *testing.T) {
	assert.True(t, SiteDynamic.IsValid())
	assert.True(t, SiteStatic.IsValid())
	assert.False(t, SiteType("").IsValid())
	assert.False(t, SiteType("blog").IsValid())
	assert.Equal(t, "Dynamic", SiteDynamic.Title())
}

func TestParseClientType(t *testing.T) {
	assert.Equal(t, ClientForeign, ParseClientType(" Foreign "))
	assert.Equal(t, ClientLocal, ParseClientType("local"))
	assert.Equal(t, ClientLocal, ParseClientType(""))
	assert.Equal(t, "Foreign Client", ClientForeign.Label())
	assert.Equal(t, "Local Client", ClientLocal.Label())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₱34,000", FormatAmount(decimal.NewFromInt(34000)))
	assert.Equal(t, "₱0", FormatAmount(decimal.Zero))
	assert.Equal(t, "1,235", FormatNumber(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "1,234,567", FormatNumber(decimal.NewFromInt(1234567)))
}

func TestCostBreakdownSumAndLookup(t *testing.T) {
	b := CostBreakdown{
		{Component: "Frontend Development", Amount: decimal.NewFromInt(1500)},
		{Component: "Miscellaneous", Amount: decimal.NewFromInt(3000)},
	}

	assert.True(t, b.Sum().Equal(decimal.NewFromInt(4500)))
	amount, ok := b.Get("Miscellaneous")
	assert.True(t, ok)
	assert.True(t, amount.Equal(decimal.NewFromInt(3000)))
	_, ok = b.Get("Notifications")
	assert.False(t, ok)
	assert.Equal(t, []string{"Frontend Development", "Miscellaneous"}, b.Components())
}
