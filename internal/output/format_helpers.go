package output

import (
	"fmt"
	"strconv"

	"github.com/rpgo/mortgage-explorer/internal/domain"
	"github.com/rpgo/mortgage-explorer/pkg/dateutil"
	money "github.com/rpgo/mortgage-explorer/pkg/decimal"
)

// CurrencySymbol prefixes every amount in human-readable outputs.
const CurrencySymbol = "€"

// FormatCurrency formats an amount with thousands separators and 2 decimals.
func FormatCurrency(amount float64) string {
	return money.NewMoney(amount).FormatCurrency(CurrencySymbol)
}

// FormatWhole formats an amount with thousands separators and no decimals, as projection tables show it.
func FormatWhole(amount float64) string {
	m := money.NewMoney(amount)
	if m.IsNegative() && !m.Decimal.Round(0).IsZero() {
		return "-" + CurrencySymbol + money.NewMoney(-amount).Grouped(0)
	}
	return CurrencySymbol + m.Grouped(0)
}

// FormatNumber formats a plain amount with grouping and 2 decimals (schedule tables).
func FormatNumber(amount float64) string {
	return money.NewMoney(amount).Format()
}

// FormatCompact abbreviates an amount for chart axes.
func FormatCompact(amount float64) string {
	return money.NewMoney(amount).Compact() + " " + CurrencySymbol
}

// FormatPercentage formats a percentage value (3 means 3%) with 2 decimals.
func FormatPercentage(pct float64) string { return fmt.Sprintf("%.2f%%", pct) }

// fixed renders a value for machine-readable outputs: 2 decimals, no grouping.
func fixed(v float64) string { return money.NewMoney(v).String() }

func intToString(i int) string { return strconv.Itoa(i) }

// paymentDate returns the calendar month of a payment, or "" when the loan has no start date.
func paymentDate(loan *domain.LoanReport, month int) string {
	if loan == nil || loan.StartDate == nil {
		return ""
	}
	return dateutil.PaymentDate(*loan.StartDate, month).Format("2006-01")
}

func assumptionsFor(report *domain.Report) []string {
	if len(report.Assumptions) > 0 {
		return report.Assumptions
	}
	return DefaultAssumptions
}
