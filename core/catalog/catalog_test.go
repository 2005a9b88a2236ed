package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdev-cost/core/types"
	"webdev-cost/internal/errors"
)

func TestDynamicCatalogOrder(t *testing.T) {
	rules, err := GetRules(types.SiteDynamic)
	require.NoError(t, err)

	assert.Equal(t, []string{
		SystemArchitecture,
		BackendDevelopment,
		FrontendDevelopment,
		Notifications,
		PaymentGateways,
		Cybersecurity,
		Deployment,
		Testing,
		Miscellaneous,
	}, rules.Components())
}

func TestStaticCatalogOrder(t *testing.T) {
	rules, err := GetRules(types.SiteStatic)
	require.NoError(t, err)

	assert.Equal(t, []string{FrontendDevelopment, Deployment, Testing, Miscellaneous}, rules.Components())

	deploy, ok := rules.Get(Deployment)
	require.True(t, ok)
	assert.True(t, deploy.Base.Equal(decimal.NewFromInt(3500)))
	assert.True(t, deploy.IsFixed())
}

func TestUnknownSiteType(t *testing.T) {
	for _, siteType := range []types.SiteType{"", "blog", "Dynamic"} {
		_, err := GetRules(siteType)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeUnknownSiteType), "site type %q", siteType)
	}
}

func TestRulesReturnsCopy(t *testing.T) {
	rules, err := GetRules(types.SiteStatic)
	require.NoError(t, err)
	rules[0].Base = decimal.NewFromInt(1)

	again, err := GetRules(types.SiteStatic)
	require.NoError(t, err)
	assert.True(t, again[0].Base.Equal(decimal.NewFromInt(1500)))
}

func TestBuiltinCatalogValidates(t *testing.T) {
	assert.Empty(t, Default().Validate(DefaultValidationRules()))
	assert.NotPanics(t, Default().MustValidate)
	assert.Equal(t, []types.SiteType{types.SiteDynamic, types.SiteStatic}, Default().SiteTypes())
}

func TestValidateRejectsBadRules(t *testing.T) {
	c := NewCatalog(Table{
		SiteType: types.SiteStatic,
		Rules: Rules{
			{Component: "A", Base: decimal.NewFromInt(-1)},
			{Component: "A"},
			{Component: "B", Unit: decimal.NewFromInt(10)},
			{Component: "C", Threshold: 2},
		},
	})

	errs := c.Validate(DefaultValidationRules())
	assert.Len(t, errs, 4)
	assert.Panics(t, c.MustValidate)
}

func TestBuiltinTablesAreCheckedAtConstruction(t *testing.T) {
	assert.NotPanics(t, func() {
		mustBuild(Table{SiteType: types.SiteStatic, Rules: staticRules()})
	})
	assert.Panics(t, func() {
		mustBuild(Table{SiteType: types.SiteStatic, Rules: Rules{{Component: "Hosting", Threshold: 3}}})
	})
}

func TestSummarize(t *testing.T) {
	tables := Default().Summarize()
	require.Len(t, tables, 2)
	assert.Equal(t, "Dynamic Site Pricing", tables[0].Title)

	byName := map[string]RuleSummary{}
	for _, row := range tables[0].Rows {
		byName[row.Component] = row
	}

	assert.Equal(t, "+₱500/add'l table", byName[SystemArchitecture].UnitText)
	assert.Equal(t, "+₱1,000/add'l role", byName[BackendDevelopment].UnitText)
	assert.Equal(t, "+₱500/page", byName[FrontendDevelopment].UnitText)
	assert.Equal(t, "+₱2,500 per unit", byName[Notifications].UnitText)
	assert.Equal(t, "N/A", byName[Notifications].BaseText)
	assert.Equal(t, "Fixed", byName[Cybersecurity].UnitText)
	assert.Equal(t, "₱5,000", byName[Cybersecurity].BaseText)
}
