package calculation

import (
	"math"

	"github.com/rpgo/mortgage-explorer/internal/domain"
)

// ProjectionInterval is the spacing, in years, between projection checkpoints.
const ProjectionInterval = 5

// ProjectionYears returns the checkpoints 0, 5, 10, ... up to the mortgage term
// rounded up to the next multiple of five.
func ProjectionYears(mortgageYears int) []int {
	if mortgageYears < 0 {
		mortgageYears = 0
	}
	n := (mortgageYears+ProjectionInterval-1)/ProjectionInterval + 1
	years := make([]int, n)
	for i := range years {
		years[i] = i * ProjectionInterval
	}
	return years
}

// ProjectNetWorth compares the net worth of buying cash, buying with a mortgage and
// renting at every checkpoint.
//
// Each checkpoint is computed from t=0 with closed-form house, rent and mortgage values
// and a fresh compound-growth run; nothing is carried from one checkpoint to the next.
// This is equivalent to a running simulation only while all rates stay constant.
func ProjectNetWorth(params domain.ProjectionParameters) []domain.ProjectionPoint {
	years := ProjectionYears(params.MortgageYears)
	points := make([]domain.ProjectionPoint, 0, len(years))
	for _, year := range years {
		points = append(points, ProjectAt(params, year))
	}
	return points
}

// ProjectAt computes the three strategies' net worth after the given number of years.
func ProjectAt(params domain.ProjectionParameters, year int) domain.ProjectionPoint {
	ownership := params.MonthlyOwnershipCost()
	houseValue := params.HouseValue * math.Pow(1+params.HouseAppreciation/100, float64(year))

	// Buy cash: the house is paid from the investment, savings cover ownership costs.
	cash := CompoundGrowth(
		params.InitialInvestment-params.HouseValue,
		params.MonthlySavings-ownership,
		params.InvestmentReturn,
		year,
	)

	// Mortgage: down payment from the investment, installment plus ownership costs from savings.
	downPayment := params.DownPayment()
	mortgagePrincipal := params.MortgagePrincipal()
	monthlyMortgage := 0.0
	if mortgagePrincipal > 0 {
		monthlyMortgage = MortgagePayment(mortgagePrincipal, params.MortgageRate, params.MortgageYears)
	}
	mortgaged := CompoundGrowth(
		params.InitialInvestment-downPayment,
		params.MonthlySavings-(monthlyMortgage+ownership),
		params.InvestmentReturn,
		year,
	)
	mortgageBalance := 0.0
	if mortgagePrincipal > 0 {
		mortgageBalance = RemainingBalance(mortgagePrincipal, params.MortgageRate, params.MortgageYears, year)
	}

	// Rent: everything stays invested, rent grows yearly.
	rent := params.MonthlyRent * math.Pow(1+params.RentIncrease/100, float64(year))
	renting := CompoundGrowth(
		params.InitialInvestment,
		params.MonthlySavings-rent,
		params.InvestmentReturn,
		year,
	)

	return domain.ProjectionPoint{
		Year:                   year,
		Scenario1:              cash + houseValue,
		Scenario2:              mortgaged + houseValue - mortgageBalance,
		Scenario3:              renting,
		HouseValue:             houseValue,
		MonthlyMortgagePayment: monthlyMortgage,
		MortgageBalance:        mortgageBalance,
		MonthlyRent:            rent,
	}
}
