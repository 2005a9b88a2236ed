package ui

import (
	"context"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"webdev-cost/core/estimate"
	"webdev-cost/core/report"
	"webdev-cost/internal/errors"
	"webdev-cost/internal/logging"
)

// Renderer lays a report out as a document
type Renderer interface {
	Render(ctx context.Context, r *report.Report) ([]byte, error)
}

// CaptureFunc recomputes the estimate to export
type CaptureFunc func() (*estimate.Estimate, error)

// Exporter writes report documents one at a time. The estimate is captured
// synchronously before rendering starts; rendering only ever sees that
// captured report.
type Exporter struct {
	mu       sync.Mutex
	renderer Renderer
	opts     report.Options
	now      func() time.Time
	logger   *zap.Logger
}

// NewExporter creates an exporter
func NewExporter(renderer Renderer, opts report.Options, logger *zap.Logger) *Exporter {
	return &Exporter{
		renderer: renderer,
		opts:     opts,
		now:      time.Now,
		logger:   logging.OrNop(logger),
	}
}

type renderResult struct {
	doc []byte
	err error
}

// Export captures, renders, and writes one report. A second Export while
// one is in flight fails with EXPORT_BUSY.
func (x *Exporter) Export(ctx context.Context, capture CaptureFunc, out io.Writer) (*report.Report, error) {
	if !x.mu.TryLock() {
		return nil, errors.New(errors.TypeExportBusy, "a report export is already in progress")
	}
	defer x.mu.Unlock()

	est, err := capture()
	if err != nil {
		return nil, err
	}
	rep, err := report.Build(est, x.opts, x.now())
	if err != nil {
		return nil, err
	}

	done := make(chan renderResult, 1)
	go func() {
		doc, err := x.renderer.Render(ctx, rep)
		done <- renderResult{doc: doc, err: err}
	}()

	var res renderResult
	select {
	case res = <-done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.err != nil {
		return nil, errors.Internal("render report", res.err)
	}

	if _, err := out.Write(res.doc); err != nil {
		return nil, errors.Internal("write report", err)
	}

	x.logger.Info("report exported",
		zap.String("report_id", rep.ID),
		zap.String("site_type", rep.SiteType.String()),
		zap.Int("bytes", len(res.doc)),
	)
	return rep, nil
}

// ExportCurrent exports whatever the display shows right now
func (x *Exporter) ExportCurrent(ctx context.Context, d *Display, out io.Writer) (*report.Report, error) {
	return x.Export(ctx, func() (*estimate.Estimate, error) {
		return d.Current(), nil
	}, out)
}
