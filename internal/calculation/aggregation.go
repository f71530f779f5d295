package calculation

import (
	"github.com/rpgo/mortgage-explorer/internal/domain"
	"github.com/rpgo/mortgage-explorer/pkg/dateutil"
)

// AggregateYearly folds a monthly schedule into consecutive 12-month windows.
// The last window may be shorter. Flows are summed; the balance is the window's closing balance.
func AggregateYearly(schedule []domain.PaymentRecord) []domain.YearlyAggregate {
	if len(schedule) == 0 {
		return nil
	}
	years := make([]domain.YearlyAggregate, 0, (len(schedule)+11)/12)
	for start := 0; start < len(schedule); start += 12 {
		end := start + 12
		if end > len(schedule) {
			end = len(schedule)
		}
		window := schedule[start:end]
		first := window[0].Month
		agg := domain.YearlyAggregate{
			Month:   first,
			Year:    dateutil.YearIndex(first),
			Label:   dateutil.YearLabel(first),
			Balance: window[len(window)-1].Balance,
		}
		for _, r := range window {
			agg.Interest += r.Interest
			agg.Principal += r.Principal
			agg.ExtraPayment += r.ExtraPayment
			agg.TotalPayment += r.TotalPayment
		}
		years = append(years, agg)
	}
	return years
}
