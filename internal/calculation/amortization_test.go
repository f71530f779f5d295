package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/mortgage-explorer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultLoan(extra float64, policy domain.ReductionPolicy) domain.LoanParameters {
	return domain.LoanParameters{
		Amount:             200000,
		AnnualRate:         3,
		TermYears:          30,
		AnnualExtraPayment: extra,
		Policy:             policy,
	}
}

func sumPrincipalAndExtra(schedule []domain.PaymentRecord) float64 {
	total := 0.0
	for _, r := range schedule {
		total += r.Principal + r.ExtraPayment
	}
	return total
}

// assertScheduleInvariants checks the properties every schedule must hold.
func assertScheduleInvariants(t *testing.T, params domain.LoanParameters, schedule []domain.PaymentRecord) {
	t.Helper()
	require.NotEmpty(t, schedule)
	assert.LessOrEqual(t, len(schedule), params.Months())
	assert.Equal(t, 0.0, schedule[len(schedule)-1].Balance, "final balance must be exactly zero")
	assert.InDelta(t, params.Amount, sumPrincipalAndExtra(schedule), 1e-6)

	previous := params.Amount
	for i, r := range schedule {
		assert.Equal(t, i+1, r.Month)
		assert.Less(t, r.Balance, previous, "balance must strictly decrease at month %d", r.Month)
		assert.GreaterOrEqual(t, r.Balance, 0.0)
		assert.GreaterOrEqual(t, r.ExtraPayment, 0.0)
		assert.InDelta(t, r.Interest+r.Principal+r.ExtraPayment, r.TotalPayment, 1e-9)
		expected := math.Max(0, previous-r.Principal-r.ExtraPayment)
		assert.InDelta(t, expected, r.Balance, 1e-6, "balance recurrence at month %d", r.Month)
		if r.Month%12 != 0 {
			assert.Zero(t, r.ExtraPayment, "extra payment outside a year end at month %d", r.Month)
		}
		if r.Balance == 0 {
			assert.Equal(t, len(schedule)-1, i, "schedule continued after payoff")
		}
		previous = r.Balance
	}
}

func TestGenerateSchedule_ReferenceLoanWithoutExtra(t *testing.T) {
	params := defaultLoan(0, domain.ReduceTerm)
	schedule := GenerateSchedule(params)

	require.Len(t, schedule, 360)
	assertScheduleInvariants(t, params, schedule)

	first := schedule[0]
	assert.InDelta(t, 843.21, first.Interest+first.Principal, 0.01)
	assert.InDelta(t, 500.0, first.Interest, 1e-9)
	assert.Equal(t, "January", first.MonthName)
	assert.Equal(t, "December", schedule[359].MonthName)

	summary := SummarizeSchedule(schedule)
	assert.InDelta(t, 103554.90, summary.TotalInterest, 0.01)
	assert.InDelta(t, 303554.90, summary.TotalPayments, 0.01)
	assert.Zero(t, summary.TotalExtraPayments)
}

func TestGenerateSchedule_ReduceTermFinishesEarly(t *testing.T) {
	params := defaultLoan(1000, domain.ReduceTerm)
	schedule := GenerateSchedule(params)

	assertScheduleInvariants(t, params, schedule)
	assert.Len(t, schedule, 312)
	assert.Equal(t, 1000.0, schedule[11].ExtraPayment)

	// The installment never changes under ReduceTerm.
	installment := schedule[0].Interest + schedule[0].Principal
	for _, r := range schedule[:len(schedule)-1] {
		assert.InDelta(t, installment, r.Interest+r.Principal, 1e-9)
	}

	// The last extra payment is capped at what the regular payment leaves outstanding.
	last := schedule[len(schedule)-1]
	assert.InDelta(t, 320.99, last.ExtraPayment, 0.01)
}

func TestGenerateSchedule_ReduceInstallmentKeepsTerm(t *testing.T) {
	params := defaultLoan(1000, domain.ReduceInstallment)
	schedule := GenerateSchedule(params)

	assertScheduleInvariants(t, params, schedule)
	assert.Len(t, schedule, 360)

	// The first year pays the original installment; it drops once recomputation starts.
	original := schedule[0].Interest + schedule[0].Principal
	assert.InDelta(t, original, schedule[12].Interest+schedule[12].Principal, 1e-9)
	assert.InDelta(t, 837.37, schedule[13].Interest+schedule[13].Principal, 0.01)
	assert.Less(t, schedule[13].Interest+schedule[13].Principal, original)

	summary := SummarizeSchedule(schedule)
	assert.InDelta(t, 96626.09, summary.TotalInterest, 0.01)
}

func TestGenerateSchedule_PolicyLengths(t *testing.T) {
	term := GenerateSchedule(defaultLoan(1000, domain.ReduceTerm))
	installment := GenerateSchedule(defaultLoan(1000, domain.ReduceInstallment))

	assert.LessOrEqual(t, len(term), 360)
	assert.Equal(t, 360, len(installment))
	assert.GreaterOrEqual(t, len(installment), len(term))
}

func TestGenerateSchedule_NoExtraIgnoresPolicy(t *testing.T) {
	term := GenerateSchedule(defaultLoan(0, domain.ReduceTerm))
	installment := GenerateSchedule(defaultLoan(0, domain.ReduceInstallment))
	assert.Equal(t, term, installment)
}

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	tests := []struct {
		name     string
		params   domain.LoanParameters
		expected int
	}{
		{"straight line", domain.LoanParameters{Amount: 12000, TermYears: 1, Policy: domain.ReduceTerm}, 12},
		{"reduce term with extra", domain.LoanParameters{Amount: 200000, TermYears: 30, AnnualExtraPayment: 1000, Policy: domain.ReduceTerm}, 314},
		{"reduce installment with extra", domain.LoanParameters{Amount: 200000, TermYears: 30, AnnualExtraPayment: 1000, Policy: domain.ReduceInstallment}, 360},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := GenerateSchedule(tt.params)
			assert.Len(t, schedule, tt.expected)
			assertScheduleInvariants(t, tt.params, schedule)
			for _, r := range schedule {
				assert.Zero(t, r.Interest)
				assert.False(t, math.IsNaN(r.Principal) || math.IsNaN(r.Balance))
			}
		})
	}
}

func TestGenerateSchedule_ExtraClearsLoanAtYearEnd(t *testing.T) {
	params := domain.LoanParameters{Amount: 10000, AnnualRate: 6, TermYears: 2, AnnualExtraPayment: 20000, Policy: domain.ReduceTerm}
	schedule := GenerateSchedule(params)

	require.Len(t, schedule, 12)
	assertScheduleInvariants(t, params, schedule)
	last := schedule[11]
	assert.Less(t, last.ExtraPayment, params.AnnualExtraPayment)
	assert.InDelta(t, 5149.58, last.ExtraPayment, 0.01)
}

func TestGenerateSchedule_InvariantsAcrossParameters(t *testing.T) {
	for _, amount := range []float64{1000, 75000, 350000} {
		for _, rate := range []float64{0, 0.5, 3, 7.25, 15} {
			for _, years := range []int{1, 5, 15, 30} {
				for _, extra := range []float64{0, 250, 5000} {
					for _, policy := range []domain.ReductionPolicy{domain.ReduceTerm, domain.ReduceInstallment} {
						params := domain.LoanParameters{Amount: amount, AnnualRate: rate, TermYears: years, AnnualExtraPayment: extra, Policy: policy}
						assertScheduleInvariants(t, params, GenerateSchedule(params))
					}
				}
			}
		}
	}
}

func TestGenerateSchedule_InvalidParametersYieldNothing(t *testing.T) {
	assert.Empty(t, GenerateSchedule(domain.LoanParameters{Amount: 0, AnnualRate: 3, TermYears: 30}))
	assert.Empty(t, GenerateSchedule(domain.LoanParameters{Amount: 1000, AnnualRate: 3, TermYears: 0}))
}

func TestSummarizeSchedule(t *testing.T) {
	schedule := GenerateSchedule(defaultLoan(1000, domain.ReduceTerm))
	summary := SummarizeSchedule(schedule)

	assert.Equal(t, 312, summary.Payments)
	assert.Equal(t, 312, summary.PayoffMonth)
	assert.Equal(t, 26, summary.PayoffYear)
	assert.InDelta(t, 843.21, summary.InitialInstallment, 0.01)
	assert.InDelta(t, 200000, summary.TotalPrincipal+summary.TotalExtraPayments, 1e-6)
	assert.InDelta(t, summary.TotalPrincipal+summary.TotalInterest+summary.TotalExtraPayments, summary.TotalPayments, 1e-6)
	assert.InDelta(t, 25320.99, summary.TotalExtraPayments, 0.01)

	assert.Equal(t, domain.ScheduleSummary{}, SummarizeSchedule(nil))
}
