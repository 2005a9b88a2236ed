package estimate

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"webdev-cost/core/catalog"
	"webdev-cost/core/pricing"
	"webdev-cost/core/types"
	"webdev-cost/internal/errors"
	"webdev-cost/internal/logging"
)

// Engine builds estimates against one catalog. It holds no per-estimate
// state; every Build recomputes from scratch.
type Engine struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewEngine creates an engine. A nil catalog selects the builtin one.
func NewEngine(c *catalog.Catalog, logger *zap.Logger) *Engine {
	if c == nil {
		c = catalog.Default()
	}
	return &Engine{
		catalog: c,
		logger:  logging.OrNop(logger),
	}
}

// Catalog returns the catalog the engine prices against
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Build prices every component of siteType in catalog order, sums the
// subtotal, and applies the foreign multiplier to the total only.
func (e *Engine) Build(siteType types.SiteType, in Inputs, client types.ClientType) (*Estimate, error) {
	if siteType == "" {
		return nil, errors.InvalidInput("site type is required")
	}
	if in.Pages < 1 {
		return nil, errors.InvalidInput("at least 1 page is required").WithContext("pages", in.Pages)
	}

	rules, err := e.catalog.Rules(siteType)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInvalidInput, "site type is not recognized", err)
	}

	breakdown := make(types.CostBreakdown, 0, len(rules))
	for _, rule := range rules {
		q := in.Quantity(rule.Quantity)
		breakdown = append(breakdown, types.LineItem{
			Component: rule.Component,
			Quantity:  q,
			Amount:    pricing.ComputeCost(q, rule),
			Formula:   pricing.Formula(q, rule),
		})
	}

	if client != types.ClientForeign {
		client = types.ClientLocal
	}
	multiplier := decimal.NewFromInt(1)
	if client.IsForeign() {
		multiplier = ForeignMultiplier
	}

	subtotal := breakdown.Sum()
	est := &Estimate{
		SiteType:   siteType,
		ClientType: client,
		Inputs:     in,
		Breakdown:  breakdown,
		Subtotal:   subtotal,
		Multiplier: multiplier,
		Total:      subtotal.Mul(multiplier),
	}

	e.logger.Debug("estimate built",
		zap.String("site_type", siteType.String()),
		zap.String("client_type", client.String()),
		zap.Int("components", len(breakdown)),
		zap.String("subtotal", subtotal.String()),
		zap.String("total", est.Total.String()),
	)
	return est, nil
}

// BuildOrPlaceholder is Build with the failure recovered into the
// placeholder estimate. The error is still returned for display.
func (e *Engine) BuildOrPlaceholder(siteType types.SiteType, in Inputs, client types.ClientType) (*Estimate, error) {
	est, err := e.Build(siteType, in, client)
	if err != nil {
		e.logger.Warn("estimate unavailable", zap.Error(err))
		return Placeholder(), err
	}
	return est, nil
}

var defaultEngine = NewEngine(nil, nil)

// BuildEstimate builds an estimate against the builtin catalog
func BuildEstimate(siteType types.SiteType, in Inputs, client types.ClientType) (*Estimate, error) {
	return defaultEngine.Build(siteType, in, client)
}
