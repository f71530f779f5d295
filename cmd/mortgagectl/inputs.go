package main

import (
	"fmt"
	"time"

	"github.com/rpgo/mortgage-explorer/internal/config"
	"github.com/rpgo/mortgage-explorer/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// loadConfiguration reads the --config file, or returns an empty configuration without one.
func loadConfiguration(opts *rootOptions) (*domain.Configuration, error) {
	if opts.configFile == "" {
		return &domain.Configuration{}, nil
	}
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

type loanFlags struct {
	amount, rate, extra float64
	years               int
	policy, start       string
}

func (f *loanFlags) register(cmd *cobra.Command) {
	d := config.DefaultLoanInput()
	cmd.Flags().Float64Var(&f.amount, "amount", d.Amount.InexactFloat64(), "loan amount")
	cmd.Flags().Float64Var(&f.rate, "rate", d.AnnualRate.InexactFloat64(), "annual interest rate in percent")
	cmd.Flags().IntVar(&f.years, "years", d.TermYears, "loan term in years")
	cmd.Flags().Float64Var(&f.extra, "extra", d.AnnualExtraPayment.InexactFloat64(), "extra payment made at the end of every loan year")
	cmd.Flags().StringVar(&f.policy, "policy", string(d.Policy), "what extra payments reduce: reduce_term or reduce_installment")
	cmd.Flags().StringVar(&f.start, "start", "", "first payment date (YYYY-MM-DD) to show calendar months")
}

// apply overlays explicitly set flags on base; unset flags keep the file value (or the default).
func (f *loanFlags) apply(cmd *cobra.Command, base *domain.LoanInput) (*domain.LoanInput, error) {
	in := config.DefaultLoanInput()
	if base != nil {
		in = *base
	}
	flags := cmd.Flags()
	if flags.Changed("amount") {
		in.Amount = decimal.NewFromFloat(f.amount)
	}
	if flags.Changed("rate") {
		in.AnnualRate = decimal.NewFromFloat(f.rate)
	}
	if flags.Changed("years") {
		in.TermYears = f.years
	}
	if flags.Changed("extra") {
		in.AnnualExtraPayment = decimal.NewFromFloat(f.extra)
	}
	if flags.Changed("policy") {
		p, err := domain.ParseReductionPolicy(f.policy)
		if err != nil {
			return nil, err
		}
		in.Policy = p
	}
	if flags.Changed("start") {
		t, err := time.Parse("2006-01-02", f.start)
		if err != nil {
			return nil, fmt.Errorf("invalid --start %q: %w", f.start, err)
		}
		in.StartDate = &t
	}
	if err := config.ValidateLoan(in.Parameters()); err != nil {
		return nil, err
	}
	return &in, nil
}

type projectionFlags struct {
	initial, house, savings, ret, appreciation, mortgageRate float64
	rent, rentIncrease, propertyTax, insurance, maintenance  float64
	downPayment                                              float64
	mortgageYears                                            int
}

func (f *projectionFlags) register(cmd *cobra.Command) {
	d := config.DefaultProjectionInput()
	fl := cmd.Flags()
	fl.Float64Var(&f.initial, "initial", d.InitialInvestment.InexactFloat64(), "initial investments")
	fl.Float64Var(&f.house, "house", d.HouseValue.InexactFloat64(), "house value")
	fl.Float64Var(&f.savings, "savings", d.MonthlySavings.InexactFloat64(), "monthly savings")
	fl.Float64Var(&f.ret, "return", d.InvestmentReturn.InexactFloat64(), "investments return (year %)")
	fl.Float64Var(&f.appreciation, "appreciation", d.HouseAppreciation.InexactFloat64(), "house appreciation (year %)")
	fl.Float64Var(&f.mortgageRate, "mortgage-rate", d.MortgageRate.InexactFloat64(), "mortgage rate (fixed %)")
	fl.IntVar(&f.mortgageYears, "mortgage-years", d.MortgageYears, "mortgage years")
	fl.Float64Var(&f.rent, "rent", d.MonthlyRent.InexactFloat64(), "monthly rent")
	fl.Float64Var(&f.rentIncrease, "rent-increase", d.RentIncrease.InexactFloat64(), "rent increase (year %)")
	fl.Float64Var(&f.propertyTax, "property-tax", d.PropertyTaxRate.InexactFloat64(), "property tax rate (%)")
	fl.Float64Var(&f.insurance, "insurance", d.HomeInsurance.InexactFloat64(), "home insurance (annual)")
	fl.Float64Var(&f.maintenance, "maintenance", d.MaintenanceRate.InexactFloat64(), "maintenance rate (year %)")
	fl.Float64Var(&f.downPayment, "down-payment", d.DownPaymentPercentage.InexactFloat64(), "house down payment (%)")
}

func (f *projectionFlags) apply(cmd *cobra.Command, base *domain.ProjectionInput) (*domain.ProjectionInput, error) {
	in := config.DefaultProjectionInput()
	if base != nil {
		in = *base
	}
	set := func(name string, dst *decimal.Decimal, v float64) {
		if cmd.Flags().Changed(name) {
			*dst = decimal.NewFromFloat(v)
		}
	}
	set("initial", &in.InitialInvestment, f.initial)
	set("house", &in.HouseValue, f.house)
	set("savings", &in.MonthlySavings, f.savings)
	set("return", &in.InvestmentReturn, f.ret)
	set("appreciation", &in.HouseAppreciation, f.appreciation)
	set("mortgage-rate", &in.MortgageRate, f.mortgageRate)
	set("rent", &in.MonthlyRent, f.rent)
	set("rent-increase", &in.RentIncrease, f.rentIncrease)
	set("property-tax", &in.PropertyTaxRate, f.propertyTax)
	set("insurance", &in.HomeInsurance, f.insurance)
	set("maintenance", &in.MaintenanceRate, f.maintenance)
	set("down-payment", &in.DownPaymentPercentage, f.downPayment)
	if cmd.Flags().Changed("mortgage-years") {
		in.MortgageYears = f.mortgageYears
	}
	if err := config.ValidateProjection(in.Parameters()); err != nil {
		return nil, err
	}
	return &in, nil
}
