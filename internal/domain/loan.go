package domain

import (
	"fmt"
	"time"
)

// ReductionPolicy selects how an annual extra payment is applied to the loan.
type ReductionPolicy string

const (
	// ReduceTerm keeps the installment fixed so the loan finishes early.
	ReduceTerm ReductionPolicy = "reduce_term"
	// ReduceInstallment keeps the term fixed and lowers the ongoing installment.
	ReduceInstallment ReductionPolicy = "reduce_installment"
)

// ParseReductionPolicy resolves a policy name, accepting a few spellings used on the command line.
func ParseReductionPolicy(s string) (ReductionPolicy, error) {
	switch s {
	case "reduce_term", "reduce-term", "term":
		return ReduceTerm, nil
	case "reduce_installment", "reduce-installment", "installment", "":
		return ReduceInstallment, nil
	default:
		return "", fmt.Errorf("unknown reduction policy %q (want reduce_term or reduce_installment)", s)
	}
}

// LoanParameters is the immutable input of one amortization run.
// AnnualRate is a percentage (3 means 3%).
type LoanParameters struct {
	Amount             float64         `json:"amount"`
	AnnualRate         float64         `json:"annual_rate"`
	TermYears          int             `json:"term_years"`
	AnnualExtraPayment float64         `json:"annual_extra_payment"`
	Policy             ReductionPolicy `json:"policy"`
}

// Months returns the nominal number of installments.
func (lp LoanParameters) Months() int {
	return lp.TermYears * 12
}

// MonthlyRate returns the periodic rate as a fraction.
func (lp LoanParameters) MonthlyRate() float64 {
	return lp.AnnualRate / 100 / 12
}

// PaymentRecord is one month of an amortization schedule.
type PaymentRecord struct {
	Month        int     `json:"month"`
	MonthName    string  `json:"month_name"`
	Interest     float64 `json:"interest"`
	Principal    float64 `json:"principal"`
	ExtraPayment float64 `json:"extra_payment"`
	Balance      float64 `json:"balance"`
	TotalPayment float64 `json:"total_payment"`
}

// YearlyAggregate sums a block of up to twelve payment records.
// Balance is the closing balance of the block, the flows are sums.
type YearlyAggregate struct {
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	Label        string  `json:"label"`
	Interest     float64 `json:"interest"`
	Principal    float64 `json:"principal"`
	ExtraPayment float64 `json:"extra_payment"`
	Balance      float64 `json:"balance"`
	TotalPayment float64 `json:"total_payment"`
}

// ScheduleSummary holds the totals shown next to a schedule.
type ScheduleSummary struct {
	Payments           int     `json:"payments"`
	InitialInstallment float64 `json:"initial_installment"`
	FinalInstallment   float64 `json:"final_installment"`
	TotalPayments      float64 `json:"total_payments"`
	TotalInterest      float64 `json:"total_interest"`
	TotalPrincipal     float64 `json:"total_principal"`
	TotalExtraPayments float64 `json:"total_extra_payments"`
	PayoffMonth        int     `json:"payoff_month"`
	PayoffYear         int     `json:"payoff_year"`
}

// LoanReport bundles a schedule with its derived views.
type LoanReport struct {
	Parameters LoanParameters    `json:"parameters"`
	Schedule   []PaymentRecord   `json:"schedule"`
	Yearly     []YearlyAggregate `json:"yearly"`
	Summary    ScheduleSummary   `json:"summary"`

	// Baseline is the same loan without extra payments.
	Baseline      ScheduleSummary `json:"baseline"`
	InterestSaved float64         `json:"interest_saved"`
	MonthsSaved   int             `json:"months_saved"`

	StartDate *time.Time `json:"start_date,omitempty"`
}
