// Package cmd - estimate command
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"webdev-cost/core/discount"
	"webdev-cost/core/estimate"
	"webdev-cost/core/output"
	"webdev-cost/internal/config"
)

func newEstimateCommand(root *rootOptions) *cobra.Command {
	var (
		inputs       inputFlags
		outputFormat string
		showDetails  bool
		discountName string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the price of a website project",
		Long: `Price every component of the chosen site type and print the breakdown.

Inputs that cannot be priced print the empty estimate and exit non-zero.

Examples:
  webdev-cost estimate --site-type dynamic
  webdev-cost estimate -s dynamic --pages 12 --tables 9 --roles 3 --gateways 1
  webdev-cost estimate -s static --client foreign --discount referral
  webdev-cost estimate --file projects.hcl --project acme-store --format markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			if !cmd.Flags().Changed("format") {
				outputFormat = cfg.Output.DefaultFormat
			}
			if !cmd.Flags().Changed("details") {
				showDetails = cfg.Output.ShowDetails
			}

			formatter, err := output.DefaultRegistry(showDetails, root.noColor).Get(output.Format(outputFormat))
			if err != nil {
				return err
			}

			siteType, in, client, kind, err := inputs.resolve()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("discount") {
				if kind, err = discount.ParseKind(discountName); err != nil {
					return err
				}
			}

			logger := root.logger("estimate")
			est, buildErr := estimate.NewEngine(nil, logger).BuildOrPlaceholder(siteType, in, client)

			result := output.NewResult(est, buildErr)
			result.Metadata = output.EstimationMetadata{
				Timestamp: time.Now().Format(time.RFC3339),
				Version:   Version,
			}
			if buildErr == nil && kind != discount.None {
				d := discount.NewEngine(logger).Apply(est.DisplayTotal(), kind)
				result.Discount = &d
			}

			if err := formatter.Render(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			return buildErr
		},
	}

	inputs.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json, markdown)")
	cmd.Flags().BoolVarP(&showDetails, "details", "d", false, "show quantity and formula per component")
	cmd.Flags().StringVar(&discountName, "discount", "", "apply a discount to the total (referral, student, plan_a)")
	return cmd
}
