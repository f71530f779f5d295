package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/mortgage-explorer/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "MORTGAGE EXPLORER SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if loan := report.Loan; loan != nil {
		p, s := loan.Parameters, loan.Summary
		fmt.Fprintf(&buf, "Loan: %s at %s over %d years, extra %s/year (%s)\n",
			FormatCurrency(p.Amount), FormatPercentage(p.AnnualRate), p.TermYears,
			FormatCurrency(p.AnnualExtraPayment), PolicyLabel(p.Policy))
		fmt.Fprintf(&buf, "  Installment=%s Payments=%d Interest=%s Total=%s\n",
			FormatCurrency(s.InitialInstallment), s.Payments, FormatCurrency(s.TotalInterest), FormatCurrency(s.TotalPayments))
		if loan.MonthsSaved > 0 || loan.InterestSaved > 0.005 {
			fmt.Fprintf(&buf, "  InterestSaved=%s MonthsSaved=%d\n", FormatCurrency(loan.InterestSaved), loan.MonthsSaved)
		}
	}
	if projection := report.Projection; projection != nil {
		if report.Loan != nil {
			fmt.Fprintln(&buf)
		}
		for _, p := range projection.Points {
			fmt.Fprintf(&buf, "Year %d: Cash=%s Mortgage=%s Rent=%s\n", p.Year,
				FormatWhole(p.Scenario1), FormatWhole(p.Scenario2), FormatWhole(p.Scenario3))
		}
		rec := AnalyzeProjection(projection)
		if len(projection.Points) > 0 {
			fmt.Fprintln(&buf)
			fmt.Fprintf(&buf, "Best: %s (Δ %s / %s vs %s)\n", rec.Strategy, FormatWhole(rec.Margin), FormatPercentage(rec.PercentageMargin), rec.RunnerUp)
		}
	}
	return buf.Bytes(), nil
}
