package decimal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision.
// The engines compute in float64; Money is the display and rounding edge.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// Sum adds float amounts exactly, avoiding the drift of a float accumulator.
func Sum(values ...float64) Money {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return Money{total}
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Float returns the amount as a float64 for charting and engine input.
func (m Money) Float() float64 {
	return m.Decimal.InexactFloat64()
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with two decimals and no grouping
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Grouped renders the amount with comma thousands separators and the given number of decimals.
func (m Money) Grouped(places int32) string {
	s := m.Decimal.StringFixed(places)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if sign == "-" && strings.Trim(intPart+frac, "0.,") == "" {
		sign = ""
	}
	return sign + b.String() + frac
}

// Format formats the money amount with grouping and cents.
func (m Money) Format() string {
	return m.Grouped(2)
}

// FormatCurrency prefixes Format with a currency symbol; an empty symbol yields the bare number.
func (m Money) FormatCurrency(symbol string) string {
	if symbol == "" {
		return m.Format()
	}
	if m.IsNegative() && !m.Round().IsZero() {
		return "-" + symbol + Money{m.Decimal.Neg()}.Format()
	}
	return symbol + m.Format()
}

// Compact abbreviates large amounts for chart axes: 1.5M, 250.0K, 999.
func (m Money) Compact() string {
	v := m.Decimal.InexactFloat64()
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
