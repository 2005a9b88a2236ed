package ui

import (
	"sync"

	"go.uber.org/zap"

	"webdev-cost/core/estimate"
	"webdev-cost/core/types"
	"webdev-cost/internal/logging"
)

// PlaceholderText is shown in the breakdown list before any estimate
const PlaceholderText = "Waiting for input..."

// Display owns the currently shown estimate and at most one chart. Every
// Show or Clear replaces both; the previous chart is released first.
type Display struct {
	mu      sync.Mutex
	w       *Writer
	engine  *estimate.Engine
	logger  *zap.Logger
	current *estimate.Estimate
	chart   *Chart
}

// NewDisplay creates a display showing the placeholder
func NewDisplay(w *Writer, engine *estimate.Engine, logger *zap.Logger) *Display {
	if engine == nil {
		engine = estimate.NewEngine(nil, logger)
	}
	return &Display{
		w:       w,
		engine:  engine,
		logger:  logging.OrNop(logger),
		current: estimate.Placeholder(),
	}
}

// Current returns the estimate on screen
func (d *Display) Current() *estimate.Estimate {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Chart returns the active chart, or nil when showing the placeholder
func (d *Display) Chart() *Chart {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.chart
}

// Recalculate rebuilds the estimate from the given inputs and shows it. On
// failure the placeholder is shown and the error returned.
func (d *Display) Recalculate(siteType types.SiteType, in estimate.Inputs, client types.ClientType) (*estimate.Estimate, error) {
	est, err := d.engine.Build(siteType, in, client)
	if err != nil {
		d.logger.Debug("showing placeholder", zap.Error(err))
		d.Clear()
		return estimate.Placeholder(), err
	}
	d.Show(est)
	return est, nil
}

// Show replaces the displayed estimate and chart
func (d *Display) Show(est *estimate.Estimate) {
	if est.IsPlaceholder() {
		d.Clear()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.replaceChart(newChart(est.Chart()))
	d.current = est

	d.w.Header("Estimate")
	box := d.w.NewTotalBox()
	box.Headline = est.Headline()
	box.Subtotal = "Subtotal (before multiplier): " + types.FormatAmount(est.Subtotal)
	box.Client = est.ClientType.Label()
	box.Render()
	d.w.Println("")

	table := d.w.NewTable("Component", "Cost").AlignRight(1)
	for _, item := range est.Breakdown {
		table.AddRow(item.Component, types.FormatAmount(item.Amount))
	}
	table.Render()
	d.w.Println("")

	if err := d.chart.Render(d.w); err != nil {
		d.logger.Error("chart render failed", zap.Error(err))
	}
}

// Clear shows the "no estimate yet" placeholder
func (d *Display) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.replaceChart(nil)
	d.current = estimate.Placeholder()

	d.w.Println("%s", d.current.Headline())
	d.w.Println("%s", d.w.color(Dim, PlaceholderText))
}

// replaceChart releases the active chart before installing next. Callers
// hold d.mu.
func (d *Display) replaceChart(next *Chart) {
	if d.chart != nil {
		d.chart.Release()
	}
	d.chart = next
}
