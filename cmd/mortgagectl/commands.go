package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/mortgage-explorer/internal/config"
	"github.com/rpgo/mortgage-explorer/internal/domain"
	"github.com/rpgo/mortgage-explorer/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newScheduleCmd(opts *rootOptions) *cobra.Command {
	var lf loanFlags
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the amortization schedule of a fixed-rate loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(opts)
			if err != nil {
				return err
			}
			loan, err := lf.apply(cmd, cfg.Loan)
			if err != nil {
				return err
			}
			return run(cmd, opts, &domain.Configuration{Loan: loan})
		},
	}
	lf.register(cmd)
	addOutputFlags(cmd, opts, "console")
	return cmd
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var pf projectionFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Project net worth of buying cash, buying with a mortgage and renting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(opts)
			if err != nil {
				return err
			}
			projection, err := pf.apply(cmd, cfg.Projection)
			if err != nil {
				return err
			}
			return run(cmd, opts, &domain.Configuration{Projection: projection})
		},
	}
	pf.register(cmd)
	addOutputFlags(cmd, opts, "console")
	return cmd
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render every block of the configuration file (defaults without --config)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(opts)
			if err != nil {
				return err
			}
			if cfg.Loan == nil && cfg.Projection == nil {
				cfg = config.NewInputParser().CreateExampleConfiguration()
			}
			return run(cmd, opts, cfg)
		},
	}
	addOutputFlags(cmd, opts, "console")
	return cmd
}

// run calculates the configuration and writes the report to stdout or to files.
func run(cmd *cobra.Command, opts *rootOptions, cfg *domain.Configuration) error {
	engine, logger, err := newEngine(opts)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	report, err := engine.Run(cfg)
	if err != nil {
		return err
	}

	if opts.outputDir != "" || strings.EqualFold(opts.format, "all") {
		files, err := output.GenerateReport(report, opts.format, opts.outputDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", f)
		}
		return nil
	}

	data, err := output.Render(report, opts.format)
	if err != nil {
		return fmt.Errorf("%w. Try one of: %s", err, strings.Join(output.AvailableFormatterNames(), ", "))
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func newExampleConfigCmd() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write an example configuration with the default inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			example := config.NewInputParser().CreateExampleConfiguration()
			if outFile != "" {
				if err := config.SaveConfiguration(example, outFile); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outFile)
				return nil
			}
			return writeYAML(cmd.OutOrStdout(), example)
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "file to write instead of stdout")
	return cmd
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available report formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			fmt.Fprintln(w, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(w, "  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
		},
	}
}
