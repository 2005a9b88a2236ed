package cmd

import (
	"github.com/spf13/cobra"

	"webdev-cost/core/catalog"
	"webdev-cost/core/output"
	"webdev-cost/core/types"
)

func newCatalogCommand(root *rootOptions) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "catalog [site-type]",
		Short: "Show the pricing tables",
		Long: `Print the base and unit price of every component.

Examples:
  webdev-cost catalog
  webdev-cost catalog static --format markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Default()
			tables := c.Summarize()
			if len(args) == 1 {
				siteType := types.SiteType(args[0])
				rules, err := c.Rules(siteType)
				if err != nil {
					return err
				}
				tables = []catalog.TableSummary{catalog.SummarizeTable(siteType, rules)}
			}
			return output.RenderCatalog(cmd.OutOrStdout(), tables, output.Format(outputFormat), root.noColor)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json, markdown)")
	return cmd
}
