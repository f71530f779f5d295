package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/mortgage-explorer/internal/domain"
)

// ConsoleVerboseFormatter renders the full report: inputs, totals, yearly and monthly tables and the projection.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "MORTGAGE EXPLORER REPORT")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if report.Loan != nil {
		writeLoanDetails(&buf, report.Loan)
	}
	if report.Projection != nil {
		writeProjectionDetails(&buf, report.Projection)
	}
	return buf.Bytes(), nil
}

func writeParameters(w io.Writer, title string, rows []ParameterRow) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
	for _, r := range rows {
		fmt.Fprintf(w, "%-30s %s\n", r.Label+":", r.Value)
	}
	fmt.Fprintln(w)
}

func writeLoanDetails(w io.Writer, loan *domain.LoanReport) {
	writeParameters(w, "LOAN PARAMETERS", LoanParameterRows(loan.Parameters))

	s := loan.Summary
	fmt.Fprintln(w, "LOAN SUMMARY")
	fmt.Fprintln(w, "------------")
	fmt.Fprintf(w, "%-30s %s\n", "Monthly installment:", FormatCurrency(s.InitialInstallment))
	fmt.Fprintf(w, "%-30s %s\n", "Final installment:", FormatCurrency(s.FinalInstallment))
	fmt.Fprintf(w, "%-30s %d (paid off in year %d)\n", "Payments:", s.Payments, s.PayoffYear)
	fmt.Fprintf(w, "%-30s %s\n", "Total interest:", FormatCurrency(s.TotalInterest))
	fmt.Fprintf(w, "%-30s %s\n", "Total extra payments:", FormatCurrency(s.TotalExtraPayments))
	fmt.Fprintf(w, "%-30s %s\n", "Total paid:", FormatCurrency(s.TotalPayments))
	if loan.Parameters.AnnualExtraPayment > 0 {
		fmt.Fprintf(w, "%-30s %s over %d payments\n", "Without extra payments:", FormatCurrency(loan.Baseline.TotalInterest), loan.Baseline.Payments)
		fmt.Fprintf(w, "%-30s %s\n", "Interest saved:", FormatCurrency(loan.InterestSaved))
		fmt.Fprintf(w, "%-30s %d\n", "Months saved:", loan.MonthsSaved)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "YEARLY BREAKDOWN")
	writeTableHeader(w, YearlyColumns)
	for _, y := range loan.Yearly {
		fmt.Fprintf(w, "%-14s %14s %14s %14s %14s %14s\n", y.Label,
			FormatNumber(y.Interest), FormatNumber(y.Principal), FormatNumber(y.ExtraPayment),
			FormatNumber(y.TotalPayment), FormatNumber(y.Balance))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "MONTHLY SCHEDULE")
	writeTableHeader(w, ScheduleColumns)
	for _, p := range loan.Schedule {
		label := fmt.Sprintf("%d %s", p.Month, p.MonthName)
		if d := paymentDate(loan, p.Month); d != "" {
			label = fmt.Sprintf("%d %s", p.Month, d)
		}
		fmt.Fprintf(w, "%-14s %14s %14s %14s %14s %14s\n", label,
			FormatNumber(p.Interest), FormatNumber(p.Principal), FormatNumber(p.ExtraPayment),
			FormatNumber(p.TotalPayment), FormatNumber(p.Balance))
	}
	fmt.Fprintln(w)
}

func writeTableHeader(w io.Writer, columns []string) {
	fmt.Fprintf(w, "%-14s", columns[0])
	for _, c := range columns[1:] {
		fmt.Fprintf(w, " %14s", c)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 14+15*(len(columns)-1)))
}

func writeProjectionDetails(w io.Writer, projection *domain.ProjectionReport) {
	writeParameters(w, "PROJECTION PARAMETERS", ProjectionParameterRows(projection.Parameters))

	fmt.Fprintf(w, "%-30s %s\n", "Down payment:", FormatCurrency(projection.DownPayment))
	fmt.Fprintf(w, "%-30s %s\n", "Mortgage principal:", FormatCurrency(projection.MortgagePrincipal))
	fmt.Fprintf(w, "%-30s %s\n", "Monthly mortgage payment:", FormatCurrency(projection.MonthlyMortgagePayment))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "NET WORTH PROJECTION")
	writeTableHeader(w, []string{"Year", "Buying Cash", "Mortgage", "Keep Renting", "House Value"})
	for _, p := range projection.Points {
		fmt.Fprintf(w, "%-14d %14s %14s %14s %14s\n", p.Year,
			FormatWhole(p.Scenario1), FormatWhole(p.Scenario2), FormatWhole(p.Scenario3), FormatWhole(p.HouseValue))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "MORTGAGE CHECKPOINTS")
	for _, p := range projection.Points {
		if p.Year == 0 || projection.MortgagePrincipal == 0 {
			continue
		}
		fmt.Fprintf(w, "Year %d: monthly mortgage %s, balance %s, monthly rent %s\n", p.Year,
			FormatCurrency(p.MonthlyMortgagePayment), FormatCurrency(p.MortgageBalance), FormatCurrency(p.MonthlyRent))
	}
	fmt.Fprintln(w)

	if len(projection.Crossovers) > 0 {
		fmt.Fprintln(w, "LEAD CHANGES")
		for _, c := range projection.Crossovers {
			fmt.Fprintln(w, describeCrossover(c))
		}
		fmt.Fprintln(w)
	}

	rec := AnalyzeProjection(projection)
	if len(projection.Points) > 0 {
		fmt.Fprintf(w, "Best after %d years: %s with %s (%s / %s ahead of %s)\n", rec.Year, rec.Strategy,
			FormatWhole(rec.NetWorth), FormatWhole(rec.Margin), FormatPercentage(rec.PercentageMargin), rec.RunnerUp)
	}
}

func describeCrossover(c domain.Crossover) string {
	if c.Year == 0 {
		return fmt.Sprintf("%s stays ahead of %s throughout", c.Leader, c.Trailer)
	}
	return fmt.Sprintf("%s overtakes %s by year %d", c.Leader, c.Trailer, c.Year)
}
