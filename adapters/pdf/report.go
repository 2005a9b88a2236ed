// Package pdf renders estimate reports as PDF documents.
package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"webdev-cost/core/report"
	"webdev-cost/core/types"
)

var (
	brandBlue = &props.Color{Red: 0, Green: 123, Blue: 255}
	totalRed  = &props.Color{Red: 220, Green: 53, Blue: 69}
	noteGrey  = &props.Color{Red: 108, Green: 117, Blue: 125}
)

// ReportRenderer lays out estimate reports on A4 pages
type ReportRenderer struct{}

// New creates a report renderer
func New() *ReportRenderer {
	return &ReportRenderer{}
}

// Render builds the PDF for r
func (p *ReportRenderer) Render(ctx context.Context, r *report.Report) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	// Header
	m.AddRow(8,
		col.New(6),
		text.NewCol(6, "Date: "+r.GeneratedAt.Format("01/02/2006"), props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(10,
		text.NewCol(12, report.Title, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
			Color: brandBlue,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, "Prepared by "+r.Company, props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Center}),
	)
	m.AddRow(4, line.NewCol(12))

	// Summary
	m.AddRow(9, text.NewCol(12, "Project Summary", props.Text{Size: 14, Style: fontstyle.Bold}))
	for _, s := range r.SummaryLines() {
		m.AddRow(6, text.NewCol(12, s, props.Text{Size: 12}))
	}
	m.AddRow(12,
		text.NewCol(12, r.TotalLine(), props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Top:   3,
			Color: totalRed,
		}),
	)

	// Breakdown
	m.AddRow(10, text.NewCol(12, "Detailed "+report.BreakdownTitle, props.Text{Size: 14, Style: fontstyle.Bold, Top: 2}))
	m.AddRow(8,
		text.NewCol(8, "Component", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(4, "Estimated Cost (PHP)", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)
	for _, item := range r.Breakdown {
		m.AddRow(7,
			text.NewCol(8, item.Component, props.Text{Size: 10}),
			text.NewCol(4, phpAmount(item.Amount), props.Text{Size: 10, Align: align.Right}),
		)
	}
	m.AddRow(8,
		text.NewCol(8, "Subtotal", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(4, phpAmount(r.Subtotal), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
	)

	// Notes
	m.AddRow(6, col.New(12))
	for _, note := range r.Notes {
		m.AddRow(9, text.NewCol(12, note, props.Text{Size: 9, Color: noteGrey}))
	}

	// Footer
	m.AddRow(4, line.NewCol(12))
	m.AddRow(8,
		text.NewCol(4, r.Company, props.Text{Size: 10, Style: fontstyle.Bold, Color: brandBlue}),
		text.NewCol(8, r.Tagline, props.Text{Size: 10, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate report pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// phpAmount spells the currency out; the core PDF fonts have no ₱ glyph
func phpAmount(v decimal.Decimal) string {
	return types.FormatNumber(v) + " php"
}
