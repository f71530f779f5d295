package main

import (
	"github.com/rpgo/mortgage-explorer/internal/calculation"
	"github.com/rpgo/mortgage-explorer/internal/output"
	"github.com/spf13/cobra"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var pf projectionFlags
	mc := calculation.DefaultMonteCarloConfig()
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Rerun the net worth projection with uncertain investment returns and house prices",
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

			logger, err := calculation.NewZapLogger(opts.logLevel)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			simulator := calculation.NewMonteCarloSimulator(mc)
			simulator.SetLogger(logger.Sugar())
			result, err := simulator.RunSimulation(projection.Parameters())
			if err != nil {
				return err
			}
			data, err := output.RenderSimulation(result, opts.format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	pf.register(cmd)
	cmd.Flags().IntVar(&mc.NumSimulations, "simulations", mc.NumSimulations, "number of Monte Carlo runs")
	cmd.Flags().Int64Var(&mc.Seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().Float64Var(&mc.ReturnVolatility, "return-volatility", mc.ReturnVolatility, "standard deviation of the investment return (percentage points)")
	cmd.Flags().Float64Var(&mc.AppreciationVolatility, "appreciation-volatility", mc.AppreciationVolatility, "standard deviation of house appreciation (percentage points)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "console", "output format: console, csv or json")
	return cmd
}
