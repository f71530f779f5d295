package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/mortgage-explorer/internal/domain"
	"github.com/rpgo/mortgage-explorer/pkg/dateutil"
)

// CSVDetailedExporter provides the raw monthly schedule, one row per payment.
// Reports without a loan export the projection checkpoints instead.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	var rows [][]string
	switch {
	case report.Loan != nil:
		rows = append(rows, []string{"Month", "Date", "MonthName", "LoanYear", "Interest", "Principal", "ExtraPayment", "TotalPayment", "Balance"})
		for _, p := range report.Loan.Schedule {
			rows = append(rows, []string{
				intToString(p.Month),
				paymentDate(report.Loan, p.Month),
				p.MonthName,
				intToString(dateutil.LoanYear(p.Month)),
				fixed(p.Interest),
				fixed(p.Principal),
				fixed(p.ExtraPayment),
				fixed(p.TotalPayment),
				fixed(p.Balance),
			})
		}
	case report.Projection != nil:
		rows = append(rows, []string{"Year", "BuyCash", "Mortgage", "Rent", "HouseValue", "MonthlyMortgagePayment", "MortgageBalance", "MonthlyRent"})
		for _, p := range report.Projection.Points {
			rows = append(rows, []string{
				intToString(p.Year),
				fixed(p.Scenario1),
				fixed(p.Scenario2),
				fixed(p.Scenario3),
				fixed(p.HouseValue),
				fixed(p.MonthlyMortgagePayment),
				fixed(p.MortgageBalance),
				fixed(p.MonthlyRent),
			})
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
