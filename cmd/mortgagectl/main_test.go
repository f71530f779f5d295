package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestScheduleDefaults(t *testing.T) {
	out, err := execute(t, "schedule", "--format", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "Installment=€843.21")
	assert.Contains(t, out, "Payments=360")
}

func TestScheduleFlagsOverride(t *testing.T) {
	out, err := execute(t, "schedule", "--policy", "term", "--format", "detailed-csv", "--start", "2025-01-15")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 313)
	assert.True(t, strings.HasPrefix(lines[1], "1,2025-01,January,1,"))
}

func TestScheduleRejectsInvalidInput(t *testing.T) {
	_, err := execute(t, "schedule", "--years", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "term must be")

	_, err = execute(t, "schedule", "--policy", "sideways")
	assert.Error(t, err)

	_, err = execute(t, "schedule", "--start", "15/01/2025")
	assert.Error(t, err)

	_, err = execute(t, "schedule", "--format", "docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Try one of")
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "projection,30,mortgage,2726376.07")

	out, err = execute(t, "compare", "--down-payment", "100", "--format", "console")
	require.NoError(t, err)
	assert.Contains(t, out, "Mortgage principal:")
}

func TestReportFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "input.yaml")
	content := "loan:\n  amount: 10000\n  annual_rate: 6\n  term_years: 2\n  annual_extra_payment: 20000\n  policy: reduce_term\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	out, err := execute(t, "report", "--config", cfgPath, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"payments": 12`)
	assert.NotContains(t, out, `"projection"`)

	out, err = execute(t, "report", "--config", cfgPath, "--format", "all", "--output-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(out, "Wrote "))
}

func TestReportWithoutConfigUsesDefaults(t *testing.T) {
	out, err := execute(t, "report", "--format", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "Payments=360")
	assert.Contains(t, out, "Best: Mortgage")
}

func TestExampleConfigRoundTrip(t *testing.T) {
	out, err := execute(t, "example-config")
	require.NoError(t, err)
	assert.Contains(t, out, "loan:")
	assert.Contains(t, out, "projection:")

	path := filepath.Join(t.TempDir(), "example.yaml")
	_, err = execute(t, "example-config", "--output", path)
	require.NoError(t, err)

	out, err = execute(t, "schedule", "--config", path, "--extra", "0", "--format", "console-lite")
	require.NoError(t, err)
	assert.NotContains(t, out, "InterestSaved")
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "  xlsx\n")
	assert.Contains(t, out, "excel -> xlsx")
}

func TestSimulate(t *testing.T) {
	out, err := execute(t, "simulate", "--simulations", "50", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "MONTE CARLO PROJECTION")
	assert.Contains(t, out, "Runs: 50  Seed: 7  Horizon: 30 years")

	out, err = execute(t, "simulate", "--simulations", "20", "--seed", "7", "--return-volatility", "0", "--appreciation-volatility", "0", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Mortgage,1.0000,2726376.07,")

	_, err = execute(t, "simulate", "--simulations", "0")
	assert.Error(t, err)

	_, err = execute(t, "simulate", "--format", "pdf", "--simulations", "5")
	assert.Error(t, err)
}
