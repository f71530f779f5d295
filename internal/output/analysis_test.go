package output

import (
	"testing"

	"github.com/rpgo/mortgage-explorer/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeProjection_SelectsHighestFinalNetWorth(t *testing.T) {
	projection := &domain.ProjectionReport{
		Points: []domain.ProjectionPoint{
			{Year: 0, Scenario1: 300000, Scenario2: 300000, Scenario3: 300000},
			{Year: 5, Scenario1: 480000, Scenario2: 510000, Scenario3: 500000},
		},
	}

	rec := AnalyzeProjection(projection)
	assert.Equal(t, domain.StrategyMortgage, rec.Strategy)
	assert.Equal(t, domain.StrategyRent, rec.RunnerUp)
	assert.Equal(t, 5, rec.Year)
	assert.InDelta(t, 510000, rec.NetWorth, 1e-9)
	assert.InDelta(t, 10000, rec.Margin, 1e-9)
	assert.InDelta(t, 2.0, rec.PercentageMargin, 1e-9)
}

func TestAnalyzeProjection_TieKeepsPresentationOrder(t *testing.T) {
	projection := &domain.ProjectionReport{
		Points: []domain.ProjectionPoint{{Year: 0, Scenario1: 100, Scenario2: 100, Scenario3: 100}},
	}
	rec := AnalyzeProjection(projection)
	assert.Equal(t, domain.StrategyCash, rec.Strategy)
	assert.Equal(t, domain.StrategyMortgage, rec.RunnerUp)
	assert.Zero(t, rec.Margin)
}

func TestAnalyzeProjection_Empty(t *testing.T) {
	assert.Equal(t, Recommendation{}, AnalyzeProjection(nil))
	assert.Equal(t, Recommendation{}, AnalyzeProjection(&domain.ProjectionReport{}))
}
