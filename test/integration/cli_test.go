package integration

import (
	"strings"
	"testing"

	"github.com/rpgo/mortgage-explorer/internal/calculation"
	"github.com/rpgo/mortgage-explorer/internal/config"
	"github.com/rpgo/mortgage-explorer/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	// Load configuration
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	// Run calculations
	engine := calculation.NewCalculationEngine()
	report, err := engine.Run(cfg)
	require.NoError(t, err)

	for _, format := range []string{"console", "console-lite", "json", "csv", "detailed-csv", "html"} {
		data, err := output.Render(report, format)
		assert.NoError(t, err, format)
		assert.NotEmpty(t, data, format)
	}

	// calendar dates flow from the config into the schedule export
	data, err := output.Render(report, "detailed-csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 313)
	assert.True(t, strings.HasPrefix(lines[312], "312,2050-12,December,26,"), lines[312])
}
