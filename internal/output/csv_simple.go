package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/mortgage-explorer/internal/domain"
)

// CSVSummarizer implements the summary CSV output in long form: one row per section, year and metric.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Year", "Metric", "Value"}); err != nil {
		return nil, err
	}
	var rows [][]string
	if loan := report.Loan; loan != nil {
		s := loan.Summary
		rows = append(rows,
			[]string{"loan_summary", "", "payments", intToString(s.Payments)},
			[]string{"loan_summary", "", "initial_installment", fixed(s.InitialInstallment)},
			[]string{"loan_summary", "", "final_installment", fixed(s.FinalInstallment)},
			[]string{"loan_summary", "", "total_interest", fixed(s.TotalInterest)},
			[]string{"loan_summary", "", "total_principal", fixed(s.TotalPrincipal)},
			[]string{"loan_summary", "", "total_extra_payments", fixed(s.TotalExtraPayments)},
			[]string{"loan_summary", "", "total_payments", fixed(s.TotalPayments)},
			[]string{"loan_summary", "", "interest_saved", fixed(loan.InterestSaved)},
			[]string{"loan_summary", "", "months_saved", intToString(loan.MonthsSaved)},
		)
		for _, y := range loan.Yearly {
			year := intToString(y.Year)
			rows = append(rows,
				[]string{"loan_yearly", year, "interest", fixed(y.Interest)},
				[]string{"loan_yearly", year, "principal", fixed(y.Principal)},
				[]string{"loan_yearly", year, "extra_payment", fixed(y.ExtraPayment)},
				[]string{"loan_yearly", year, "total_payment", fixed(y.TotalPayment)},
				[]string{"loan_yearly", year, "balance", fixed(y.Balance)},
			)
		}
	}
	if projection := report.Projection; projection != nil {
		for _, p := range projection.Points {
			year := intToString(p.Year)
			rows = append(rows,
				[]string{"projection", year, "buy_cash", fixed(p.Scenario1)},
				[]string{"projection", year, "mortgage", fixed(p.Scenario2)},
				[]string{"projection", year, "rent", fixed(p.Scenario3)},
				[]string{"projection", year, "house_value", fixed(p.HouseValue)},
			)
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
