package calculation

import "math"

// FixedPayment returns the level installment that retires principal over the given
// number of months at a periodic rate: P·r·(1+r)^n / ((1+r)^n − 1).
// A zero rate falls back to straight-line repayment P/n.
func FixedPayment(principal, monthlyRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / float64(months)
	}
	growth := math.Pow(1+monthlyRate, float64(months))
	return principal * monthlyRate * growth / (growth - 1)
}

// MortgagePayment is FixedPayment parameterized by an annual percentage rate and a term in years.
func MortgagePayment(principal, annualRatePct float64, years int) float64 {
	return FixedPayment(principal, annualRatePct/12/100, years*12)
}

// RemainingBalance returns the outstanding balance of a level-payment loan after
// elapsedYears of scheduled payments, as the present value of the payments still due.
func RemainingBalance(principal, annualRatePct float64, years, elapsedYears int) float64 {
	remaining := (years - elapsedYears) * 12
	if remaining <= 0 {
		return 0
	}
	monthlyRate := annualRatePct / 12 / 100
	if monthlyRate == 0 {
		return principal * float64(remaining) / float64(years*12)
	}
	payment := MortgagePayment(principal, annualRatePct, years)
	return payment / monthlyRate * (1 - math.Pow(1+monthlyRate, -float64(remaining)))
}

// CompoundGrowth simulates month-by-month compounding of principal over years.
// Each month the balance grows first and the contribution is added afterwards,
// so the final month's contribution earns nothing. Contributions may be negative.
func CompoundGrowth(principal, monthlyContribution, annualRatePct float64, years int) float64 {
	total := principal
	monthlyRate := annualRatePct / 12 / 100
	for i := 0; i < years*12; i++ {
		total *= 1 + monthlyRate
		total += monthlyContribution
	}
	return total
}
