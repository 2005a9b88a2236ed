package cmd

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"webdev-cost/core/discount"
	"webdev-cost/core/estimate"
	"webdev-cost/core/output"
	"webdev-cost/internal/config"
)

func newDiscountCommand(root *rootOptions) *cobra.Command {
	var (
		inputs       inputFlags
		price        string
		discountName string
		flags        discount.Flags
		fromEstimate bool
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "discount",
		Short: "Apply a discount to an estimated price",
		Long: `Take at most one discount off a base price.

When several discount flags are set, referral wins over student, which
wins over Plan A. With --from-estimate the base price is the estimate's
rounded client total, after the foreign multiplier.

Examples:
  webdev-cost discount --price 34000 --referral
  webdev-cost discount --price 34000 --discount plan_a
  webdev-cost discount --from-estimate -s dynamic --client foreign --student`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				outputFormat = config.Get().Output.DefaultFormat
			}
			formatter, err := output.DefaultRegistry(false, root.noColor).Get(output.Format(outputFormat))
			if err != nil {
				return err
			}

			kind := flags.Selection()
			if discountName != "" {
				if kind, err = discount.ParseKind(discountName); err != nil {
					return err
				}
			}

			logger := root.logger("discount")
			result := output.NewResult(nil, nil)

			var base decimal.Decimal
			if fromEstimate {
				siteType, in, client, fileKind, err := inputs.resolve()
				if err != nil {
					return err
				}
				if kind == discount.None {
					kind = fileKind
				}
				est, err := estimate.NewEngine(nil, logger).Build(siteType, in, client)
				if err != nil {
					return err
				}
				result = output.NewResult(est, nil)
				base = est.DisplayTotal()
			} else {
				base = parsePrice(price)
			}

			d := discount.NewEngine(logger).Apply(base, kind)
			result.Discount = &d
			if err := formatter.Render(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			return d.Err
		},
	}

	inputs.register(cmd)
	cmd.Flags().StringVar(&price, "price", "", "base estimated price")
	cmd.Flags().StringVar(&discountName, "discount", "", "discount to apply (referral, student, plan_a)")
	cmd.Flags().BoolVar(&flags.Referral, "referral", false, "referral discount (5%)")
	cmd.Flags().BoolVar(&flags.Student, "student", false, "student/thesis discount (10%)")
	cmd.Flags().BoolVar(&flags.PlanA, "plan-a", false, "Plan A discount (10%)")
	cmd.Flags().BoolVar(&fromEstimate, "from-estimate", false, "use the estimate described by the input flags as the base price")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json, markdown)")
	cmd.MarkFlagsMutuallyExclusive("price", "from-estimate")
	return cmd
}

// parsePrice reads a price the way the form does: separators are ignored
// and text that is not a number is zero.
func parsePrice(s string) decimal.Decimal {
	s = strings.NewReplacer(",", "", "₱", "", " ", "").Replace(s)
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}
