package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoanInput_Parameters(t *testing.T) {
	in := LoanInput{
		Amount:             decimal.NewFromInt(150000),
		AnnualRate:         decimal.RequireFromString("3.25"),
		TermYears:          25,
		AnnualExtraPayment: decimal.NewFromInt(500),
		Policy:             ReduceTerm,
	}
	p := in.Parameters()
	assert.Equal(t, 150000.0, p.Amount)
	assert.Equal(t, 3.25, p.AnnualRate)
	assert.Equal(t, 25, p.TermYears)
	assert.Equal(t, 500.0, p.AnnualExtraPayment)
	assert.Equal(t, ReduceTerm, p.Policy)
}

func TestProjectionInput_Parameters(t *testing.T) {
	in := ProjectionInput{
		InitialInvestment:     decimal.NewFromInt(300000),
		HouseValue:            decimal.NewFromInt(200000),
		InvestmentReturn:      decimal.RequireFromString("5"),
		MortgageYears:         30,
		DownPaymentPercentage: decimal.NewFromInt(20),
	}
	p := in.Parameters()
	assert.Equal(t, 300000.0, p.InitialInvestment)
	assert.Equal(t, 5.0, p.InvestmentReturn)
	assert.Equal(t, 30, p.MortgageYears)
	assert.InDelta(t, 40000, p.DownPayment(), 1e-9)
}

func TestConfiguration_GenerateAssumptions(t *testing.T) {
	assert.Empty(t, (&Configuration{}).GenerateAssumptions())

	loanOnly := &Configuration{Loan: &LoanInput{
		AnnualRate:         decimal.NewFromInt(3),
		AnnualExtraPayment: decimal.NewFromInt(1000),
		Policy:             ReduceTerm,
	}}
	got := loanOnly.GenerateAssumptions()
	assert.Len(t, got, 2)
	assert.Equal(t, "Fixed loan rate: 3.00% annually, compounded monthly", got[0])
	assert.Contains(t, got[1], "1000.00")
	assert.Contains(t, got[1], "reduce_term")

	both := &Configuration{Loan: loanOnly.Loan, Projection: &ProjectionInput{InvestmentReturn: decimal.NewFromInt(5)}}
	got = both.GenerateAssumptions()
	assert.Len(t, got, 7)
	assert.Contains(t, got, "Investment return: 5.00% annually, compounded monthly")
}
