package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/rpgo/mortgage-explorer/internal/calculation"
	"github.com/rpgo/mortgage-explorer/internal/domain"
)

// Prints a schedule next to the checks every schedule must pass. Handy when changing
// the amortization loop.
func main() {
	amount := flag.Float64("amount", 200000, "loan amount")
	rate := flag.Float64("rate", 3, "annual rate in percent")
	years := flag.Int("years", 30, "term in years")
	extra := flag.Float64("extra", 1000, "annual extra payment")
	policy := flag.String("policy", "reduce_installment", "reduce_term or reduce_installment")
	flag.Parse()

	p, err := domain.ParseReductionPolicy(*policy)
	if err != nil {
		fmt.Println(err)
		return
	}
	params := domain.LoanParameters{Amount: *amount, AnnualRate: *rate, TermYears: *years, AnnualExtraPayment: *extra, Policy: p}
	schedule := calculation.GenerateSchedule(params)

	fmt.Printf("%6s %12s %12s %12s %12s %14s\n", "Month", "Interest", "Principal", "Extra", "Total", "Balance")
	var paid float64
	prev := params.Amount
	decreasing := true
	for _, r := range schedule {
		fmt.Printf("%6d %12.2f %12.2f %12.2f %12.2f %14.2f\n", r.Month, r.Interest, r.Principal, r.ExtraPayment, r.TotalPayment, r.Balance)
		paid += r.Principal + r.ExtraPayment
		if r.Balance >= prev {
			decreasing = false
		}
		prev = r.Balance
	}

	s := calculation.SummarizeSchedule(schedule)
	fmt.Println()
	fmt.Printf("payments:            %d (max %d)\n", s.Payments, params.Months())
	fmt.Printf("total interest:      %.2f\n", s.TotalInterest)
	fmt.Printf("principal residual:  %.9f\n", math.Abs(paid-params.Amount))
	fmt.Printf("final balance zero:  %v\n", len(schedule) > 0 && schedule[len(schedule)-1].Balance == 0)
	fmt.Printf("strictly decreasing: %v\n", decreasing)

	yearly := calculation.AggregateYearly(schedule)
	var monthlyTotal, yearlyTotal float64
	for _, r := range schedule {
		monthlyTotal += r.TotalPayment
	}
	for _, y := range yearly {
		yearlyTotal += y.TotalPayment
	}
	fmt.Printf("yearly sums match:   %v (%d years)\n", math.Abs(monthlyTotal-yearlyTotal) < 1e-6, len(yearly))
}
