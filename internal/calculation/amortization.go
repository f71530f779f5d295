package calculation

import (
	"github.com/rpgo/mortgage-explorer/internal/domain"
	"github.com/rpgo/mortgage-explorer/pkg/dateutil"
	money "github.com/rpgo/mortgage-explorer/pkg/decimal"
)

// balanceEpsilon is the residual below which a balance counts as paid off.
const balanceEpsilon = 1e-6

// GenerateSchedule produces the monthly amortization schedule of a fixed-rate loan.
//
// An extra payment is made at the end of every twelfth month. Under ReduceTerm the
// installment never changes and the schedule ends early; under ReduceInstallment the
// installment is recomputed every month after the first year over n−month+1 months.
// The schedule stops the first month the balance reaches zero and never exceeds
// TermYears*12 records. Parameters are assumed valid (positive amount and term,
// non-negative rate and extra payment).
func GenerateSchedule(params domain.LoanParameters) []domain.PaymentRecord {
	months := params.Months()
	if months <= 0 || params.Amount <= 0 {
		return nil
	}
	rate := params.MonthlyRate()
	payment := FixedPayment(params.Amount, rate, months)
	recompute := params.Policy == domain.ReduceInstallment && params.AnnualExtraPayment > 0

	balance := params.Amount
	schedule := make([]domain.PaymentRecord, 0, months)

	for month := 1; month <= months; month++ {
		interest := balance * rate
		principal := payment - interest

		extra := 0.0
		if month%12 == 0 {
			extra = params.AnnualExtraPayment
			if remaining := balance - principal; extra > remaining {
				extra = remaining
			}
			if extra < 0 {
				extra = 0
			}
		}

		// Overshoot on the last payment, or any residual on the final scheduled month.
		if principal+extra > balance || month == months {
			principal = balance - extra
		}

		balance -= principal + extra
		if balance < balanceEpsilon {
			balance = 0
		}

		if recompute && month > 12 && balance > 0 {
			payment = FixedPayment(balance, rate, months-month+1)
		}

		schedule = append(schedule, domain.PaymentRecord{
			Month:        month,
			MonthName:    dateutil.MonthName(month),
			Interest:     interest,
			Principal:    principal,
			ExtraPayment: extra,
			Balance:      balance,
			TotalPayment: interest + principal + extra,
		})

		if balance == 0 {
			break
		}
	}

	return schedule
}

// SummarizeSchedule computes the totals shown alongside a schedule. Totals are summed in
// decimal so long schedules do not accumulate float drift.
func SummarizeSchedule(schedule []domain.PaymentRecord) domain.ScheduleSummary {
	var s domain.ScheduleSummary
	if len(schedule) == 0 {
		return s
	}
	n := len(schedule)
	totals, interest, principal, extra := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	for i, r := range schedule {
		totals[i], interest[i], principal[i], extra[i] = r.TotalPayment, r.Interest, r.Principal, r.ExtraPayment
	}
	s.TotalPayments = money.Sum(totals...).Float()
	s.TotalInterest = money.Sum(interest...).Float()
	s.TotalPrincipal = money.Sum(principal...).Float()
	s.TotalExtraPayments = money.Sum(extra...).Float()
	first, last := schedule[0], schedule[len(schedule)-1]
	s.Payments = len(schedule)
	s.InitialInstallment = first.Interest + first.Principal
	s.FinalInstallment = last.Interest + last.Principal
	s.PayoffMonth = last.Month
	s.PayoffYear = dateutil.LoanYear(last.Month)
	return s
}
