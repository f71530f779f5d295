package output

import (
	"sort"

	"github.com/rpgo/mortgage-explorer/internal/domain"
)

// Recommendation encapsulates the strategy that finishes the projection with the highest net worth.
type Recommendation struct {
	Strategy         domain.Strategy
	Year             int
	NetWorth         float64
	RunnerUp         domain.Strategy
	Margin           float64
	PercentageMargin float64
}

// AnalyzeProjection ranks the strategies at the final checkpoint.
// The zero Recommendation is returned when there is nothing to rank.
func AnalyzeProjection(projection *domain.ProjectionReport) Recommendation {
	if projection == nil || len(projection.Points) == 0 {
		return Recommendation{}
	}
	last := projection.Points[len(projection.Points)-1]
	ranks := append([]domain.Strategy(nil), domain.Strategies...)
	sort.SliceStable(ranks, func(i, j int) bool { return last.NetWorth(ranks[i]) > last.NetWorth(ranks[j]) })

	best, second := ranks[0], ranks[1]
	rec := Recommendation{
		Strategy: best,
		Year:     last.Year,
		NetWorth: last.NetWorth(best),
		RunnerUp: second,
		Margin:   last.NetWorth(best) - last.NetWorth(second),
	}
	if base := last.NetWorth(second); base != 0 {
		rec.PercentageMargin = rec.Margin / base * 100
	}
	return rec
}
