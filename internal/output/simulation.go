package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rpgo/mortgage-explorer/internal/calculation"
)

// RenderSimulation formats a Monte Carlo result. Only console, csv and json make sense for
// a distribution summary; other formats return ErrUnsupportedFormat.
func RenderSimulation(result *calculation.MonteCarloResult, format string) ([]byte, error) {
	switch name := NormalizeFormatName(format); name {
	case "console", "console-lite":
		return simulationConsole(result), nil
	case "csv", "detailed-csv":
		return simulationCSV(result)
	case "json":
		return json.MarshalIndent(result, "", "  ")
	default:
		return nil, fmt.Errorf("%w for simulations: %q (use console, csv or json)", ErrUnsupportedFormat, format)
	}
}

func simulationConsole(result *calculation.MonteCarloResult) []byte {
	var buf bytes.Buffer
	cfg := result.Config
	fmt.Fprintln(&buf, "MONTE CARLO PROJECTION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Runs: %d  Seed: %d  Horizon: %d years\n", cfg.NumSimulations, cfg.Seed, result.Horizon)
	fmt.Fprintf(&buf, "Volatility: return ±%s pp, house appreciation ±%s pp\n\n",
		strconv.FormatFloat(cfg.ReturnVolatility, 'f', 2, 64), strconv.FormatFloat(cfg.AppreciationVolatility, 'f', 2, 64))

	fmt.Fprintf(&buf, "%-10s %8s %16s %16s %16s\n", "Strategy", "Wins", "P10", "Median", "P90")
	for _, d := range result.Strategies {
		fmt.Fprintf(&buf, "%-10s %8s %16s %16s %16s\n", d.Strategy, FormatPercentage(d.WinRate*100),
			FormatWhole(d.PercentileRanges.P10), FormatWhole(d.MedianNetWorth), FormatWhole(d.PercentileRanges.P90))
	}
	return buf.Bytes()
}

func simulationCSV(result *calculation.MonteCarloResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	rows := [][]string{{"Strategy", "WinRate", "P10", "P25", "P50", "P75", "P90"}}
	for _, d := range result.Strategies {
		pr := d.PercentileRanges
		rows = append(rows, []string{
			d.Strategy.String(),
			strconv.FormatFloat(d.WinRate, 'f', 4, 64),
			fixed(pr.P10), fixed(pr.P25), fixed(pr.P50), fixed(pr.P75), fixed(pr.P90),
		})
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
