// Package cmd provides the CLI commands for webdev-cost.
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"webdev-cost/core/ui"
	"webdev-cost/internal/config"
	"webdev-cost/internal/logging"
)

// Version is stamped at build time
var Version = "0.1.0"

// rootOptions are the persistent flags shared by every command
type rootOptions struct {
	cfgFile string
	verbose bool
	noColor bool
}

// NewRootCommand builds the full command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "webdev-cost",
		Short: "Estimate web development prices",
		Long: `webdev-cost prices static and dynamic website projects from a fixed
catalog, applies the foreign client multiplier, and takes off at most one
discount.

Examples:
  webdev-cost estimate --site-type dynamic --pages 8 --tables 10
  webdev-cost estimate --site-type static --client foreign --format json
  webdev-cost discount --price 34000 --student
  webdev-cost report --site-type dynamic --out estimate.pdf`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig()
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./webdev-cost.yaml or $HOME/.webdev-cost/webdev-cost.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newEstimateCommand(opts),
		newDiscountCommand(opts),
		newCatalogCommand(opts),
		newReportCommand(opts),
		newServeCommand(opts),
		newVersionCommand(),
		newConfigCommand(opts),
	)
	return root
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return NewRootCommand().Execute()
}

func (o *rootOptions) initConfig() error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config.Set(cfg)

	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	return nil
}

func (o *rootOptions) logger(component string) *zap.Logger {
	return logging.Named(component)
}

// writer returns a terminal writer that shows debug lines under --verbose
func (o *rootOptions) writer(out io.Writer) *ui.Writer {
	w := ui.NewWriter(out, o.noColor)
	if o.verbose {
		w.SetVerbosity(2)
	}
	return w
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "webdev-cost version %s\n", Version)
		},
	}
}
