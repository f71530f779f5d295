package calculation

import (
	"testing"

	"github.com/rpgo/mortgage-explorer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultProjection() domain.ProjectionParameters {
	return domain.ProjectionParameters{
		InitialInvestment:     300000,
		HouseValue:            200000,
		MonthlySavings:        2500,
		InvestmentReturn:      5,
		HouseAppreciation:     0.5,
		MortgageRate:          2.7,
		MortgageYears:         30,
		MonthlyRent:           750,
		RentIncrease:          0.5,
		PropertyTaxRate:       0,
		HomeInsurance:         1000,
		MaintenanceRate:       1,
		DownPaymentPercentage: 20,
	}
}

func TestProjectionYears(t *testing.T) {
	tests := []struct {
		years    int
		expected []int
	}{
		{30, []int{0, 5, 10, 15, 20, 25, 30}},
		{32, []int{0, 5, 10, 15, 20, 25, 30, 35}},
		{1, []int{0, 5}},
		{0, []int{0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ProjectionYears(tt.years), "mortgage years %d", tt.years)
	}
}

func TestProjectNetWorth_Baseline(t *testing.T) {
	params := defaultProjection()
	points := ProjectNetWorth(params)
	require.Len(t, points, 7)

	start := points[0]
	assert.Equal(t, 0, start.Year)
	assert.InDelta(t, params.InitialInvestment, start.Scenario1, 1e-6)
	assert.InDelta(t, params.InitialInvestment, start.Scenario2, 1e-6)
	assert.InDelta(t, params.InitialInvestment, start.Scenario3, 1e-6)
	assert.Equal(t, params.HouseValue, start.HouseValue)
	assert.InDelta(t, 160000, start.MortgageBalance, 1e-6)
}

func TestProjectNetWorth_ReferenceValues(t *testing.T) {
	points := ProjectNetWorth(defaultProjection())
	require.Len(t, points, 7)

	expected := []struct {
		year       int
		cash       float64
		mortgage   float64
		rent       float64
		houseValue float64
		balance    float64
	}{
		{5, 486399.8049, 506144.0691, 502730.3194, 205050.2506, 141460.1555},
		{10, 724314.1049, 766820.3881, 759890.9711, 210228.0264, 120243.8391},
		{30, 2551636.3775, 2726376.0699, 2696030.9465, 232280.0166, 0},
	}
	byYear := map[int]domain.ProjectionPoint{}
	for _, p := range points {
		byYear[p.Year] = p
	}
	for _, e := range expected {
		p, ok := byYear[e.year]
		require.True(t, ok, "missing year %d", e.year)
		assert.InDelta(t, e.cash, p.Scenario1, 0.01, "cash at %d", e.year)
		assert.InDelta(t, e.mortgage, p.Scenario2, 0.01, "mortgage at %d", e.year)
		assert.InDelta(t, e.rent, p.Scenario3, 0.01, "rent at %d", e.year)
		assert.InDelta(t, e.houseValue, p.HouseValue, 0.01, "house at %d", e.year)
		assert.InDelta(t, e.balance, p.MortgageBalance, 0.01, "balance at %d", e.year)
		assert.InDelta(t, 648.9562, p.MonthlyMortgagePayment, 0.0001)
	}
}

func TestProjectAt_IsIndependentOfOtherCheckpoints(t *testing.T) {
	params := defaultProjection()
	points := ProjectNetWorth(params)
	for _, p := range points {
		assert.Equal(t, p, ProjectAt(params, p.Year))
	}
}

func TestProjectAt_StrategyComponents(t *testing.T) {
	params := defaultProjection()
	year := 10
	p := ProjectAt(params, year)

	ownership := params.MonthlyOwnershipCost()
	cash := CompoundGrowth(params.InitialInvestment-params.HouseValue, params.MonthlySavings-ownership, params.InvestmentReturn, year)
	assert.InDelta(t, cash+p.HouseValue, p.Scenario1, 1e-6)

	mortgaged := CompoundGrowth(params.InitialInvestment-params.DownPayment(), params.MonthlySavings-p.MonthlyMortgagePayment-ownership, params.InvestmentReturn, year)
	assert.InDelta(t, mortgaged+p.HouseValue-p.MortgageBalance, p.Scenario2, 1e-6)

	renting := CompoundGrowth(params.InitialInvestment, params.MonthlySavings-p.MonthlyRent, params.InvestmentReturn, year)
	assert.InDelta(t, renting, p.Scenario3, 1e-6)
}

func TestProjectAt_FullDownPaymentHasNoMortgage(t *testing.T) {
	params := defaultProjection()
	params.DownPaymentPercentage = 100
	for _, p := range ProjectNetWorth(params) {
		assert.Zero(t, p.MonthlyMortgagePayment)
		assert.Zero(t, p.MortgageBalance)
		assert.InDelta(t, p.Scenario1, p.Scenario2, 1e-6, "full down payment equals buying cash at year %d", p.Year)
	}
}

func TestProjectAt_ZeroRates(t *testing.T) {
	params := defaultProjection()
	params.MortgageRate = 0
	params.InvestmentReturn = 0
	p := ProjectAt(params, 15)

	assert.InDelta(t, 160000.0/360, p.MonthlyMortgagePayment, 1e-9)
	assert.InDelta(t, 80000, p.MortgageBalance, 1e-6)
	assert.NotPanics(t, func() { ProjectNetWorth(params) })
}
