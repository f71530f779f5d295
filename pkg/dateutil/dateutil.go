package dateutil

import (
	"fmt"
	"time"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the calendar name of a 1-based schedule month, cycling every 12 months.
// Month 1 is January, month 13 is January again.
func MonthName(month int) string {
	if month < 1 {
		return ""
	}
	return monthNames[(month-1)%12]
}

// LoanYear returns the 1-based loan year a schedule month falls in.
func LoanYear(month int) int {
	if month < 1 {
		return 0
	}
	return (month-1)/12 + 1
}

// YearIndex labels a 12-month window by its first month: floor(month/12)+1.
// For windows starting at 1, 13, 25... this equals LoanYear.
func YearIndex(firstMonth int) int {
	return firstMonth/12 + 1
}

// YearLabel returns the display label of a yearly window.
func YearLabel(firstMonth int) string {
	return fmt.Sprintf("Year %d", YearIndex(firstMonth))
}

// PaymentDate returns the calendar date of a schedule month given the first payment date.
func PaymentDate(start time.Time, month int) time.Time {
	return AddMonths(start, month-1)
}

// AddMonths adds months to a date, clamping to the last day of the target month
// so that a Jan 31 start yields Feb 28/29 rather than rolling into March.
func AddMonths(date time.Time, months int) time.Time {
	first := time.Date(date.Year(), date.Month(), 1, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
	target := first.AddDate(0, months, 0)
	day := date.Day()
	if last := DaysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
