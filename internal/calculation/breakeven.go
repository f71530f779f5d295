package calculation

import (
	"github.com/rpgo/mortgage-explorer/internal/domain"
)

// crossoverTolerance ignores differences below half a cent, so year-0 ties do not count as a lead.
const crossoverTolerance = 0.005

// FindCrossover reports the first checkpoint from which leader stays strictly ahead of
// trailer through the final checkpoint. Found is false when leader does not finish ahead.
func FindCrossover(points []domain.ProjectionPoint, leader, trailer domain.Strategy) domain.Crossover {
	result := domain.Crossover{Leader: leader, Trailer: trailer}
	if len(points) == 0 || leader == trailer {
		return result
	}
	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		if p.NetWorth(leader)-p.NetWorth(trailer) <= crossoverTolerance {
			break
		}
		result.Year = p.Year
		result.Found = true
	}
	return result
}

// CalculateCrossovers returns, for every pair of strategies, the year the final leader of
// the pair took the lead for good. Pairs that finish tied are omitted.
func CalculateCrossovers(points []domain.ProjectionPoint) []domain.Crossover {
	var out []domain.Crossover
	for i, a := range domain.Strategies {
		for _, b := range domain.Strategies[i+1:] {
			if c := FindCrossover(points, a, b); c.Found {
				out = append(out, c)
				continue
			}
			if c := FindCrossover(points, b, a); c.Found {
				out = append(out, c)
			}
		}
	}
	return out
}
