package domain

import "fmt"

// Strategy identifies one of the three compared wealth strategies.
type Strategy int

const (
	// StrategyCash buys the house outright from the initial investment.
	StrategyCash Strategy = iota + 1
	// StrategyMortgage pays a down payment and finances the rest.
	StrategyMortgage
	// StrategyRent keeps renting and invests everything.
	StrategyRent
)

func (s Strategy) String() string {
	switch s {
	case StrategyCash:
		return "Buy Cash"
	case StrategyMortgage:
		return "Mortgage"
	case StrategyRent:
		return "Rent"
	default:
		return "Unknown"
	}
}

// MarshalText renders the strategy by name in JSON and YAML output.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (s *Strategy) UnmarshalText(text []byte) error {
	for _, candidate := range Strategies {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown strategy %q", text)
}

// Strategies lists the strategies in presentation order.
var Strategies = []Strategy{StrategyCash, StrategyMortgage, StrategyRent}

// ProjectionParameters is the immutable input of a net worth projection.
// Rates are percentages; HomeInsurance is annual; MonthlySavings and MonthlyRent are monthly.
type ProjectionParameters struct {
	InitialInvestment     float64 `json:"initial_investment"`
	HouseValue            float64 `json:"house_value"`
	MonthlySavings        float64 `json:"monthly_savings"`
	InvestmentReturn      float64 `json:"investment_return"`
	HouseAppreciation     float64 `json:"house_appreciation"`
	MortgageRate          float64 `json:"mortgage_rate"`
	MortgageYears         int     `json:"mortgage_years"`
	MonthlyRent           float64 `json:"monthly_rent"`
	RentIncrease          float64 `json:"rent_increase"`
	PropertyTaxRate       float64 `json:"property_tax_rate"`
	HomeInsurance         float64 `json:"home_insurance"`
	MaintenanceRate       float64 `json:"maintenance_rate"`
	DownPaymentPercentage float64 `json:"down_payment_percentage"`
}

// DownPayment returns the cash paid up front in the mortgage strategy.
func (pp ProjectionParameters) DownPayment() float64 {
	return pp.HouseValue * pp.DownPaymentPercentage / 100
}

// MortgagePrincipal returns the financed part of the house price, never negative.
func (pp ProjectionParameters) MortgagePrincipal() float64 {
	p := pp.HouseValue - pp.DownPayment()
	if p < 0 {
		return 0
	}
	return p
}

// MonthlyOwnershipCost is property tax, insurance and maintenance as a monthly amount.
func (pp ProjectionParameters) MonthlyOwnershipCost() float64 {
	return pp.HouseValue*pp.PropertyTaxRate/100/12 +
		pp.HomeInsurance/12 +
		pp.HouseValue*pp.MaintenanceRate/100/12
}

// ProjectionPoint is the net worth of each strategy at a year offset.
type ProjectionPoint struct {
	Year       int     `json:"year"`
	Scenario1  float64 `json:"scenario1"`
	Scenario2  float64 `json:"scenario2"`
	Scenario3  float64 `json:"scenario3"`
	HouseValue float64 `json:"house_value"`

	MonthlyMortgagePayment float64 `json:"monthly_mortgage_payment"`
	MortgageBalance        float64 `json:"mortgage_balance"`
	MonthlyRent            float64 `json:"monthly_rent"`
}

// NetWorth returns the net worth of the given strategy at this point.
func (p ProjectionPoint) NetWorth(s Strategy) float64 {
	switch s {
	case StrategyCash:
		return p.Scenario1
	case StrategyMortgage:
		return p.Scenario2
	case StrategyRent:
		return p.Scenario3
	default:
		return 0
	}
}

// Leader returns the strategy with the highest net worth. Ties go to the earlier strategy.
func (p ProjectionPoint) Leader() Strategy {
	best := StrategyCash
	for _, s := range Strategies[1:] {
		if p.NetWorth(s) > p.NetWorth(best) {
			best = s
		}
	}
	return best
}

// Crossover records the first checkpoint at which one strategy catches up with another.
type Crossover struct {
	Leader  Strategy `json:"leader"`
	Trailer Strategy `json:"trailer"`
	Year    int      `json:"year"`
	Found   bool     `json:"found"`
}

// ProjectionReport bundles projection points with the headline figures.
type ProjectionReport struct {
	Parameters             ProjectionParameters `json:"parameters"`
	Points                 []ProjectionPoint    `json:"points"`
	DownPayment            float64              `json:"down_payment"`
	MortgagePrincipal      float64              `json:"mortgage_principal"`
	MonthlyMortgagePayment float64              `json:"monthly_mortgage_payment"`
	FinalLeader            Strategy             `json:"final_leader"`
	Crossovers             []Crossover          `json:"crossovers"`
}

// Report is what the output formatters render.
type Report struct {
	Loan        *LoanReport       `json:"loan,omitempty"`
	Projection  *ProjectionReport `json:"projection,omitempty"`
	Assumptions []string          `json:"assumptions,omitempty"`
}
