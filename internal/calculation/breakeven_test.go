package calculation

import (
	"testing"

	"github.com/rpgo/mortgage-explorer/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculateCrossovers_DefaultParameters(t *testing.T) {
	points := ProjectNetWorth(defaultProjection())
	crossovers := CalculateCrossovers(points)

	assert.Equal(t, []domain.Crossover{
		{Leader: domain.StrategyMortgage, Trailer: domain.StrategyCash, Year: 5, Found: true},
		{Leader: domain.StrategyRent, Trailer: domain.StrategyCash, Year: 5, Found: true},
		{Leader: domain.StrategyMortgage, Trailer: domain.StrategyRent, Year: 5, Found: true},
	}, crossovers)
}

func TestFindCrossover(t *testing.T) {
	points := []domain.ProjectionPoint{
		{Year: 0, Scenario1: 100, Scenario2: 100, Scenario3: 100},
		{Year: 5, Scenario1: 150, Scenario2: 140, Scenario3: 120},
		{Year: 10, Scenario1: 180, Scenario2: 190, Scenario3: 130},
		{Year: 15, Scenario1: 200, Scenario2: 230, Scenario3: 140},
	}

	tests := []struct {
		name     string
		leader   domain.Strategy
		trailer  domain.Strategy
		expected domain.Crossover
	}{
		{"overtakes later", domain.StrategyMortgage, domain.StrategyCash, domain.Crossover{Leader: domain.StrategyMortgage, Trailer: domain.StrategyCash, Year: 10, Found: true}},
		{"ahead after the start", domain.StrategyCash, domain.StrategyRent, domain.Crossover{Leader: domain.StrategyCash, Trailer: domain.StrategyRent, Year: 5, Found: true}},
		{"never finishes ahead", domain.StrategyCash, domain.StrategyMortgage, domain.Crossover{Leader: domain.StrategyCash, Trailer: domain.StrategyMortgage}},
		{"same strategy", domain.StrategyRent, domain.StrategyRent, domain.Crossover{Leader: domain.StrategyRent, Trailer: domain.StrategyRent}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindCrossover(points, tt.leader, tt.trailer))
		})
	}
}

func TestCalculateCrossovers_SkipsTies(t *testing.T) {
	points := []domain.ProjectionPoint{
		{Year: 0, Scenario1: 100, Scenario2: 100, Scenario3: 100},
		{Year: 5, Scenario1: 120, Scenario2: 120, Scenario3: 90},
	}
	crossovers := CalculateCrossovers(points)
	assert.Len(t, crossovers, 2)
	for _, c := range crossovers {
		assert.Equal(t, domain.StrategyRent, c.Trailer)
	}
	assert.Empty(t, CalculateCrossovers(nil))
}
