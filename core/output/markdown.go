package output

import (
	"fmt"
	"io"
	"strings"

	"webdev-cost/core/report"
	"webdev-cost/core/types"
)

// MarkdownFormatter renders a markdown report
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes result as markdown
func (f *MarkdownFormatter) Render(w io.Writer, result *EstimationResult) error {
	var b strings.Builder

	est := result.Estimate
	switch {
	case result.Error != "":
		fmt.Fprintf(&b, "> %s\n\n**%s**\n", result.Error, est.Headline())
	case !est.IsPlaceholder():
		fmt.Fprintf(&b, "# %s\n\n", report.Title)
		fmt.Fprintf(&b, "- Site Type: %s\n", est.SiteType.Title())
		fmt.Fprintf(&b, "- Number of Pages: %d\n", est.Inputs.Pages)
		fmt.Fprintf(&b, "- Client Type: %s\n\n", est.ClientType.Label())
		fmt.Fprintf(&b, "**%s**\n\n", est.Headline())
		fmt.Fprintf(&b, "## %s\n\n", report.BreakdownTitle)
		b.WriteString("| Component | Estimated Cost (₱) |\n|---|---:|\n")
		for _, item := range est.Breakdown {
			fmt.Fprintf(&b, "| %s | %s |\n", item.Component, types.FormatNumber(item.Amount))
		}
		fmt.Fprintf(&b, "| **Subtotal** | **%s** |\n", types.FormatAmount(est.Subtotal))
	}

	if d := result.Discount; d != nil {
		b.WriteString("\n## Discount\n\n")
		if d.Message != "" {
			fmt.Fprintf(&b, "> %s\n\n", d.Message)
		}
		for _, line := range d.Lines {
			if line.Text != "" {
				fmt.Fprintf(&b, "- _%s_\n", line.Text)
				continue
			}
			fmt.Fprintf(&b, "- %s: %s\n", line.Label, signedAmount(line))
		}
		fmt.Fprintf(&b, "\n**%s**\n", d.Headline())
	}

	_, err := io.WriteString(w, b.String())
	return err
}
