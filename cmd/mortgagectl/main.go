package main

import (
	"fmt"
	"os"

	"github.com/rpgo/mortgage-explorer/internal/calculation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configFile string
	logLevel   string
	format     string
	outputDir  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "mortgagectl",
		Short:         "Explore mortgage amortization and buy-versus-rent net worth projections",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "YAML input file (loan and/or projection blocks)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		newScheduleCmd(opts),
		newCompareCmd(opts),
		newReportCmd(opts),
		newSimulateCmd(opts),
		newServeCmd(opts),
		newExampleConfigCmd(),
		newFormatsCmd(),
	)
	return root
}

// addOutputFlags registers the flags shared by every command that renders a report.
func addOutputFlags(cmd *cobra.Command, opts *rootOptions, defaultFormat string) {
	cmd.Flags().StringVarP(&opts.format, "format", "f", defaultFormat, "output format (see 'mortgagectl formats'); 'all' writes every format")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "write timestamped report files to this directory instead of stdout")
}

// newEngine returns an engine logging through zap at the requested level.
func newEngine(opts *rootOptions) (*calculation.CalculationEngine, *zap.Logger, error) {
	logger, err := calculation.NewZapLogger(opts.logLevel)
	if err != nil {
		return nil, nil, err
	}
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger.Sugar())
	return engine, logger, nil
}
