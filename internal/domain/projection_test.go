package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategy_TextRoundTrip(t *testing.T) {
	for _, s := range Strategies {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var back Strategy
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}

	var s Strategy
	assert.Error(t, s.UnmarshalText([]byte("Lease")))
	assert.Equal(t, "Unknown", Strategy(0).String())
}

func TestProjectionParameters_DownPayment(t *testing.T) {
	pp := ProjectionParameters{HouseValue: 200000, DownPaymentPercentage: 20}
	assert.InDelta(t, 40000, pp.DownPayment(), 1e-9)
	assert.InDelta(t, 160000, pp.MortgagePrincipal(), 1e-9)

	// more than the house price never produces a negative loan
	pp.DownPaymentPercentage = 120
	assert.Zero(t, pp.MortgagePrincipal())
}

func TestProjectionParameters_MonthlyOwnershipCost(t *testing.T) {
	pp := ProjectionParameters{HouseValue: 240000, PropertyTaxRate: 1, HomeInsurance: 1200, MaintenanceRate: 0.5}
	// 200 tax + 100 insurance + 100 maintenance
	assert.InDelta(t, 400, pp.MonthlyOwnershipCost(), 1e-9)
}

func TestProjectionPoint_Leader(t *testing.T) {
	testCases := []struct {
		desc     string
		point    ProjectionPoint
		expected Strategy
	}{
		{"mortgage ahead", ProjectionPoint{Scenario1: 10, Scenario2: 30, Scenario3: 20}, StrategyMortgage},
		{"rent ahead", ProjectionPoint{Scenario1: 10, Scenario2: 5, Scenario3: 20}, StrategyRent},
		{"tie goes to earlier strategy", ProjectionPoint{Scenario1: 20, Scenario2: 20, Scenario3: 20}, StrategyCash},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.point.Leader())
		})
	}

	p := ProjectionPoint{Scenario1: 1, Scenario2: 2, Scenario3: 3}
	assert.Equal(t, 1.0, p.NetWorth(StrategyCash))
	assert.Equal(t, 2.0, p.NetWorth(StrategyMortgage))
	assert.Equal(t, 3.0, p.NetWorth(StrategyRent))
	assert.Zero(t, p.NetWorth(Strategy(9)))
}

func TestProjectionReport_JSONUsesStrategyNames(t *testing.T) {
	data, err := json.Marshal(ProjectionReport{FinalLeader: StrategyRent})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"final_leader":"Rent"`)
}
