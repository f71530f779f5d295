package calculation

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/rpgo/mortgage-explorer/internal/domain"
)

// seedFunc returns a pseudo-random seed (override for deterministic Monte Carlo tests).
var seedFunc = func() int64 { return time.Now().UnixNano() }

// maxConcurrentSimulations bounds the goroutines running projections at once.
const maxConcurrentSimulations = 10

// minSampledRate keeps sampled growth rates above -100%, where compounding stops making sense.
const minSampledRate = -99.0

// MonteCarloConfig holds configuration for a return-uncertainty run of the projection engine.
// Volatilities are standard deviations in percentage points around the configured rates.
type MonteCarloConfig struct {
	NumSimulations         int     `json:"num_simulations" yaml:"num_simulations"`
	Seed                   int64   `json:"seed,omitempty" yaml:"seed,omitempty"`
	ReturnVolatility       float64 `json:"return_volatility" yaml:"return_volatility"`
	AppreciationVolatility float64 `json:"appreciation_volatility" yaml:"appreciation_volatility"`
}

// DefaultMonteCarloConfig returns the configuration used when the caller sets nothing.
func DefaultMonteCarloConfig() MonteCarloConfig {
	return MonteCarloConfig{
		NumSimulations:         1000,
		ReturnVolatility:       2,
		AppreciationVolatility: 1,
	}
}

// Validate checks the simulation settings.
func (c MonteCarloConfig) Validate() error {
	if c.NumSimulations <= 0 {
		return fmt.Errorf("number of simulations must be positive, got %d", c.NumSimulations)
	}
	if c.ReturnVolatility < 0 || c.AppreciationVolatility < 0 {
		return fmt.Errorf("volatility cannot be negative")
	}
	return nil
}

// SimulationOutcome is the final checkpoint of one projection run with sampled rates.
type SimulationOutcome struct {
	InvestmentReturn  float64                `json:"investment_return"`
	HouseAppreciation float64                `json:"house_appreciation"`
	Final             domain.ProjectionPoint `json:"final"`
	Leader            domain.Strategy        `json:"leader"`
}

// PercentileRanges represents percentile ranges of final net worth
type PercentileRanges struct {
	P10 float64 `json:"p10"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
}

// StrategyDistribution summarizes one strategy across all simulations.
type StrategyDistribution struct {
	Strategy         domain.Strategy  `json:"strategy"`
	WinRate          float64          `json:"win_rate"`
	MedianNetWorth   float64          `json:"median_net_worth"`
	PercentileRanges PercentileRanges `json:"percentile_ranges"`
}

// MonteCarloResult represents the results of a Monte Carlo simulation
type MonteCarloResult struct {
	Config      MonteCarloConfig       `json:"config"`
	Horizon     int                    `json:"horizon"`
	Strategies  []StrategyDistribution `json:"strategies"`
	Simulations []SimulationOutcome    `json:"-"`
}

// Distribution returns the summary of strategy s.
func (r *MonteCarloResult) Distribution(s domain.Strategy) StrategyDistribution {
	for _, d := range r.Strategies {
		if d.Strategy == s {
			return d
		}
	}
	return StrategyDistribution{Strategy: s}
}

// MonteCarloSimulator reruns the projection engine with investment return and house
// appreciation drawn from normal distributions centred on the configured rates.
// Each run keeps its sampled rates constant, so every trial is a fixed-rate projection.
type MonteCarloSimulator struct {
	config MonteCarloConfig
	logger Logger
}

// NewMonteCarloSimulator creates a new Monte Carlo simulator. A zero seed is replaced by a random one.
func NewMonteCarloSimulator(config MonteCarloConfig) *MonteCarloSimulator {
	if config.Seed == 0 {
		config.Seed = seedFunc()
	}
	return &MonteCarloSimulator{config: config, logger: NopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (mcs *MonteCarloSimulator) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	mcs.logger = l
}

// Seed returns the seed the simulator draws from.
func (mcs *MonteCarloSimulator) Seed() int64 { return mcs.config.Seed }

// RunSimulation executes the Monte Carlo simulation. Results depend only on the seed,
// not on goroutine scheduling: simulation i always draws from seed+i.
func (mcs *MonteCarloSimulator) RunSimulation(params domain.ProjectionParameters) (*MonteCarloResult, error) {
	if err := mcs.config.Validate(); err != nil {
		return nil, err
	}

	results := make([]SimulationOutcome, mcs.config.NumSimulations)
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentSimulations)

	for i := 0; i < mcs.config.NumSimulations; i++ {
		wg.Add(1)
		go func(simIndex int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			rng := rand.New(rand.NewSource(mcs.config.Seed + int64(simIndex)))
			results[simIndex] = mcs.runSingleSimulation(params, rng)
		}(i)
	}
	wg.Wait()

	result := &MonteCarloResult{
		Config:      mcs.config,
		Simulations: results,
	}
	if len(results) > 0 {
		result.Horizon = results[0].Final.Year
	}
	for _, s := range domain.Strategies {
		result.Strategies = append(result.Strategies, summarizeStrategy(results, s))
	}

	for _, d := range result.Strategies {
		mcs.logger.Debugf("monte carlo %s: wins %.1f%%, median %.2f (p10 %.2f, p90 %.2f)",
			d.Strategy, d.WinRate*100, d.MedianNetWorth, d.PercentileRanges.P10, d.PercentileRanges.P90)
	}
	return result, nil
}

// runSingleSimulation runs one projection with sampled rates
func (mcs *MonteCarloSimulator) runSingleSimulation(params domain.ProjectionParameters, rng *rand.Rand) SimulationOutcome {
	p := params
	p.InvestmentReturn = sampleRate(rng, params.InvestmentReturn, mcs.config.ReturnVolatility)
	p.HouseAppreciation = sampleRate(rng, params.HouseAppreciation, mcs.config.AppreciationVolatility)

	points := ProjectNetWorth(p)
	final := points[len(points)-1]
	return SimulationOutcome{
		InvestmentReturn:  p.InvestmentReturn,
		HouseAppreciation: p.HouseAppreciation,
		Final:             final,
		Leader:            final.Leader(),
	}
}

func sampleRate(rng *rand.Rand, mean, stdDev float64) float64 {
	if stdDev == 0 {
		return mean
	}
	r := mean + rng.NormFloat64()*stdDev
	if r < minSampledRate {
		r = minSampledRate
	}
	return r
}

func summarizeStrategy(simulations []SimulationOutcome, s domain.Strategy) StrategyDistribution {
	d := StrategyDistribution{Strategy: s}
	n := len(simulations)
	if n == 0 {
		return d
	}

	values := make([]float64, n)
	wins := 0
	for i, sim := range simulations {
		values[i] = sim.Final.NetWorth(s)
		if sim.Leader == s {
			wins++
		}
	}
	sort.Float64s(values)

	d.WinRate = float64(wins) / float64(n)
	d.MedianNetWorth = values[n/2]
	d.PercentileRanges = PercentileRanges{
		P10: values[n/10],
		P25: values[n/4],
		P50: values[n/2],
		P75: values[3*n/4],
		P90: values[9*n/10],
	}
	return d
}
