package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LoanInput is the loan block of an input file. Rates are percentages.
type LoanInput struct {
	Amount             decimal.Decimal `yaml:"amount" json:"amount"`
	AnnualRate         decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
	TermYears          int             `yaml:"term_years" json:"term_years"`
	AnnualExtraPayment decimal.Decimal `yaml:"annual_extra_payment" json:"annual_extra_payment"`
	Policy             ReductionPolicy `yaml:"policy" json:"policy"`

	// Optional first payment date; when set, reports show calendar dates next to month numbers.
	StartDate *time.Time `yaml:"start_date,omitempty" json:"start_date,omitempty"`
}

// Parameters converts the input block into engine parameters.
func (li LoanInput) Parameters() LoanParameters {
	return LoanParameters{
		Amount:             li.Amount.InexactFloat64(),
		AnnualRate:         li.AnnualRate.InexactFloat64(),
		TermYears:          li.TermYears,
		AnnualExtraPayment: li.AnnualExtraPayment.InexactFloat64(),
		Policy:             li.Policy,
	}
}

// ProjectionInput is the projection block of an input file.
type ProjectionInput struct {
	InitialInvestment     decimal.Decimal `yaml:"initial_investment" json:"initial_investment"`
	HouseValue            decimal.Decimal `yaml:"house_value" json:"house_value"`
	MonthlySavings        decimal.Decimal `yaml:"monthly_savings" json:"monthly_savings"`
	InvestmentReturn      decimal.Decimal `yaml:"investment_return" json:"investment_return"`
	HouseAppreciation     decimal.Decimal `yaml:"house_appreciation" json:"house_appreciation"`
	MortgageRate          decimal.Decimal `yaml:"mortgage_rate" json:"mortgage_rate"`
	MortgageYears         int             `yaml:"mortgage_years" json:"mortgage_years"`
	MonthlyRent           decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	RentIncrease          decimal.Decimal `yaml:"rent_increase" json:"rent_increase"`
	PropertyTaxRate       decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate"`
	HomeInsurance         decimal.Decimal `yaml:"home_insurance" json:"home_insurance"`
	MaintenanceRate       decimal.Decimal `yaml:"maintenance_rate" json:"maintenance_rate"`
	DownPaymentPercentage decimal.Decimal `yaml:"down_payment_percentage" json:"down_payment_percentage"`
}

// Parameters converts the input block into engine parameters.
func (pi ProjectionInput) Parameters() ProjectionParameters {
	return ProjectionParameters{
		InitialInvestment:     pi.InitialInvestment.InexactFloat64(),
		HouseValue:            pi.HouseValue.InexactFloat64(),
		MonthlySavings:        pi.MonthlySavings.InexactFloat64(),
		InvestmentReturn:      pi.InvestmentReturn.InexactFloat64(),
		HouseAppreciation:     pi.HouseAppreciation.InexactFloat64(),
		MortgageRate:          pi.MortgageRate.InexactFloat64(),
		MortgageYears:         pi.MortgageYears,
		MonthlyRent:           pi.MonthlyRent.InexactFloat64(),
		RentIncrease:          pi.RentIncrease.InexactFloat64(),
		PropertyTaxRate:       pi.PropertyTaxRate.InexactFloat64(),
		HomeInsurance:         pi.HomeInsurance.InexactFloat64(),
		MaintenanceRate:       pi.MaintenanceRate.InexactFloat64(),
		DownPaymentPercentage: pi.DownPaymentPercentage.InexactFloat64(),
	}
}

// Configuration represents the complete input configuration.
// Either block may be omitted. Fields missing from a block read from a file take the
// explorer defaults (see config.InputParser.Parse).
type Configuration struct {
	Loan       *LoanInput       `yaml:"loan,omitempty" json:"loan,omitempty"`
	Projection *ProjectionInput `yaml:"projection,omitempty" json:"projection,omitempty"`
}

// GenerateAssumptions creates the assumptions list printed with reports from actual config values
func (c *Configuration) GenerateAssumptions() []string {
	var out []string
	if c.Loan != nil {
		out = append(out,
			fmt.Sprintf("Fixed loan rate: %s%% annually, compounded monthly", c.Loan.AnnualRate.StringFixed(2)),
			fmt.Sprintf("Extra payment of %s applied at the end of every loan year (%s)", c.Loan.AnnualExtraPayment.StringFixed(2), c.Loan.Policy),
		)
	}
	if c.Projection != nil {
		out = append(out,
			fmt.Sprintf("Investment return: %s%% annually, compounded monthly", c.Projection.InvestmentReturn.StringFixed(2)),
			fmt.Sprintf("House appreciation: %s%% annually", c.Projection.HouseAppreciation.StringFixed(2)),
			fmt.Sprintf("Rent increase: %s%% annually", c.Projection.RentIncrease.StringFixed(2)),
			"Monthly savings are invested after each month's growth",
			"No taxes on investment gains or property sales",
		)
	}
	return out
}

// UnmarshalText accepts the same spellings as ParseReductionPolicy, so YAML and JSON
// inputs may use any of them.
func (rp *ReductionPolicy) UnmarshalText(text []byte) error {
	p, err := ParseReductionPolicy(string(text))
	if err != nil {
		return err
	}
	*rp = p
	return nil
}
