package output

import (
	"io"
	"strconv"

	"webdev-cost/core/discount"
	"webdev-cost/core/estimate"
	"webdev-cost/core/types"
	"webdev-cost/core/ui"
)

// CLIFormatter renders boxed tables for a terminal
type CLIFormatter struct {
	showDetails bool
	noColor     bool
}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter(showDetails, noColor bool) *CLIFormatter {
	return &CLIFormatter{showDetails: showDetails, noColor: noColor}
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the estimate and discount sections
func (f *CLIFormatter) Render(out io.Writer, result *EstimationResult) error {
	w := ui.NewWriter(out, f.noColor)

	if result.Error != "" {
		w.Warning("%s", result.Error)
		w.Println("%s", estimate.Placeholder().Headline())
		w.Println("%s", ui.PlaceholderText)
	} else if !result.Estimate.IsPlaceholder() {
		f.renderEstimate(w, result.Estimate, result.Chart)
	}

	if result.Discount != nil {
		f.renderDiscount(w, result.Discount)
	}
	return nil
}

func (f *CLIFormatter) renderEstimate(w *ui.Writer, est *estimate.Estimate, chart estimate.ChartData) {
	w.Header(est.SiteType.Title() + " Site Estimate")

	box := w.NewTotalBox()
	box.Headline = est.Headline()
	box.Subtotal = "Subtotal (before multiplier): " + types.FormatAmount(est.Subtotal)
	box.Client = est.ClientType.Label()
	box.Render()
	w.Println("")

	var table *ui.Table
	if f.showDetails {
		table = w.NewTable("Component", "Qty", "Formula", "Cost").AlignRight(1, 3)
	} else {
		table = w.NewTable("Component", "Cost").AlignRight(1)
	}
	for _, item := range est.Breakdown {
		if f.showDetails {
			table.AddRow(item.Component, strconv.Itoa(item.Quantity), item.Formula, types.FormatAmount(item.Amount))
		} else {
			table.AddRow(item.Component, types.FormatAmount(item.Amount))
		}
	}
	table.Render()

	if f.showDetails && !chart.IsEmpty() {
		w.Println("")
		w.SubHeader("Share of subtotal")
		table := w.NewTable("Component", "Share").AlignRight(1)
		for _, s := range chart.Slices {
			if s.Percentage != "" {
				table.AddRow(s.Label, s.Percentage)
			}
		}
		table.Render()
	}
}

func (f *CLIFormatter) renderDiscount(w *ui.Writer, r *discount.Result) {
	w.Header("Discount")
	if r.Message != "" {
		w.Warning("%s", r.Message)
	}

	table := w.NewTable("Item", "Amount").AlignRight(1)
	for _, line := range r.Lines {
		if line.Text != "" {
			table.AddRow(line.Text, "")
			continue
		}
		table.AddRow(line.Label, signedAmount(line))
	}
	table.Render()
	w.Println("")
	w.Success("%s", r.Headline())
}

func signedAmount(line discount.Line) string {
	if line.Amount.IsNegative() {
		return "-" + types.FormatAmount(line.Amount.Neg())
	}
	return types.FormatAmount(line.Amount)
}
