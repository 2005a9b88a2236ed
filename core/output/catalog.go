package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"webdev-cost/core/catalog"
	"webdev-cost/core/ui"
)

// RenderCatalog writes the pricing tables in the given format
func RenderCatalog(w io.Writer, tables []catalog.TableSummary, format Format, noColor bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tables)

	case FormatMarkdown:
		var b strings.Builder
		for _, t := range tables {
			fmt.Fprintf(&b, "## %s\n\n", t.Title)
			b.WriteString("| Component | Base Cost (PHP) | Unit Cost / Fee | Description |\n|---|---|---|---|\n")
			for _, row := range t.Rows {
				fmt.Fprintf(&b, "| **%s** | %s | %s | %s |\n", row.Component, row.BaseText, row.UnitText, row.Description)
			}
			b.WriteString("\n")
		}
		_, err := io.WriteString(w, b.String())
		return err

	case FormatCLI:
		uw := ui.NewWriter(w, noColor)
		for _, t := range tables {
			uw.Header(t.Title)
			table := uw.NewTable("Component", "Base Cost (PHP)", "Unit Cost / Fee", "Description")
			for _, row := range t.Rows {
				table.AddRow(row.Component, row.BaseText, row.UnitText, row.Description)
			}
			table.Render()
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}
