package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"webdev-cost/adapters/pdf"
	"webdev-cost/core/estimate"
	"webdev-cost/core/report"
	"webdev-cost/core/ui"
	"webdev-cost/internal/config"
)

func newReportCommand(root *rootOptions) *cobra.Command {
	var (
		inputs inputFlags
		out    string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the estimate as a PDF report",
		Long: `Compute the estimate and write it as a PDF report.

Examples:
  webdev-cost report --site-type dynamic --pages 8
  webdev-cost report --file projects.hcl --out acme.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			if out == "" {
				out = cfg.Report.OutputPath
			}

			siteType, in, client, _, err := inputs.resolve()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			logger := root.logger("report")
			w := root.writer(cmd.ErrOrStderr())
			display := ui.NewDisplay(w, estimate.NewEngine(nil, logger), logger)
			if _, err := display.Recalculate(siteType, in, client); err != nil {
				return err
			}

			rep, err := exportToFile(ctx, ui.NewExporter(pdf.New(), cfg.Report.Options, logger), display, out)
			if err != nil {
				return err
			}
			w.Success("Report written to %s", out)
			w.Debug("report %s generated %s", rep.ID, rep.GeneratedAt.Format(time.RFC3339))
			return nil
		},
	}

	inputs.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default from config, Website_Estimate.pdf)")
	return cmd
}

// exportToFile writes the report next to path and renames it into place,
// so a failed export never leaves a partial file.
func exportToFile(ctx context.Context, x *ui.Exporter, d *ui.Display, path string) (*report.Report, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".webdev-cost-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("creating report file: %w", err)
	}
	defer os.Remove(tmp.Name())

	rep, err := x.ExportCurrent(ctx, d, tmp)
	if err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing report file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, err
	}
	return rep, nil
}
