package output

import (
	"strconv"

	"github.com/rpgo/mortgage-explorer/internal/domain"
)

// ParameterRow is one labelled input value as shown above a report.
type ParameterRow struct {
	Key   string
	Label string
	Value string
}

// Column headings shared by every tabular formatter.
var (
	ScheduleColumns   = []string{"Month", "Interest", "Principal", "Extra Payment", "Total Payment", "Balance"}
	YearlyColumns     = []string{"Year", "Interest", "Principal", "Extra Payment", "Total Payment", "Balance"}
	ProjectionColumns = []string{"Year", "Buying Cash", "Buying (Mortgage)", "Keep Renting", "House Value"}
)

// PolicyLabel names a reduction policy the way the explorer presents it.
func PolicyLabel(p domain.ReductionPolicy) string {
	switch p {
	case domain.ReduceTerm:
		return "Reduce Term"
	case domain.ReduceInstallment:
		return "Reduce Installments amount"
	default:
		return string(p)
	}
}

// LoanParameterRows lists the loan inputs in display order.
func LoanParameterRows(p domain.LoanParameters) []ParameterRow {
	rows := []ParameterRow{
		{"amount", "Loan Amount", FormatCurrency(p.Amount)},
		{"annual_rate", "Interest Rate (%)", FormatPercentage(p.AnnualRate)},
		{"term_years", "Loan Term (years)", strconv.Itoa(p.TermYears)},
		{"annual_extra_payment", "Additional Annual Payment", FormatCurrency(p.AnnualExtraPayment)},
	}
	if p.AnnualExtraPayment > 0 {
		rows = append(rows, ParameterRow{"policy", "Extra Payment Policy", PolicyLabel(p.Policy)})
	}
	return rows
}

// ProjectionParameterRows lists the projection inputs in display order.
func ProjectionParameterRows(p domain.ProjectionParameters) []ParameterRow {
	return []ParameterRow{
		{"initial_investment", "Initial Investments", FormatCurrency(p.InitialInvestment)},
		{"house_value", "House Value", FormatCurrency(p.HouseValue)},
		{"monthly_savings", "Monthly Savings", FormatCurrency(p.MonthlySavings)},
		{"investment_return", "Investments Return (year %)", FormatPercentage(p.InvestmentReturn)},
		{"house_appreciation", "House Appreciation (year %)", FormatPercentage(p.HouseAppreciation)},
		{"mortgage_rate", "Mortgage Rate (fixed %)", FormatPercentage(p.MortgageRate)},
		{"mortgage_years", "Mortgage Years", strconv.Itoa(p.MortgageYears)},
		{"monthly_rent", "Monthly Rent", FormatCurrency(p.MonthlyRent)},
		{"rent_increase", "Rent Increase (year %)", FormatPercentage(p.RentIncrease)},
		{"property_tax_rate", "Property Tax Rate (%)", FormatPercentage(p.PropertyTaxRate)},
		{"home_insurance", "Home Insurance (Annual)", FormatCurrency(p.HomeInsurance)},
		{"maintenance_rate", "Maintenance Rate (year %)", FormatPercentage(p.MaintenanceRate)},
		{"down_payment_percentage", "House Down Payment (%)", FormatPercentage(p.DownPaymentPercentage)},
	}
}

// MortgageColumnLabel is the projection heading of the mortgage strategy, carrying the down payment.
func MortgageColumnLabel(downPayment float64) string {
	return "Buying (Down Pay: " + FormatCurrency(downPayment) + ")"
}
