package calculation

import (
	"errors"

	"github.com/rpgo/mortgage-explorer/internal/domain"
)

// ErrEmptyConfiguration is returned when a configuration has neither a loan nor a projection block.
var ErrEmptyConfiguration = errors.New("configuration has no loan or projection block")

// CalculationEngine runs the amortization and projection engines and assembles reports.
// The engine holds no state between runs and is safe for concurrent use once configured.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunLoan builds the schedule, its yearly view and totals, and compares the result with
// the same loan without extra payments.
func (ce *CalculationEngine) RunLoan(params domain.LoanParameters) *domain.LoanReport {
	schedule := GenerateSchedule(params)
	summary := SummarizeSchedule(schedule)

	baselineParams := params
	baselineParams.AnnualExtraPayment = 0
	baseline := SummarizeSchedule(GenerateSchedule(baselineParams))

	report := &domain.LoanReport{
		Parameters:    params,
		Schedule:      schedule,
		Yearly:        AggregateYearly(schedule),
		Summary:       summary,
		Baseline:      baseline,
		InterestSaved: baseline.TotalInterest - summary.TotalInterest,
		MonthsSaved:   baseline.Payments - summary.Payments,
	}

	ce.Logger.Debugf("loan %.2f at %.3f%% over %d years (%s): %d payments, installment %.2f, interest %.2f",
		params.Amount, params.AnnualRate, params.TermYears, params.Policy,
		summary.Payments, summary.InitialInstallment, summary.TotalInterest)
	if report.MonthsSaved > 0 {
		ce.Logger.Infof("extra payments retire the loan %d months early and save %.2f in interest",
			report.MonthsSaved, report.InterestSaved)
	}
	return report
}

// RunProjection projects the three strategies and adds the headline figures.
func (ce *CalculationEngine) RunProjection(params domain.ProjectionParameters) *domain.ProjectionReport {
	points := ProjectNetWorth(params)

	report := &domain.ProjectionReport{
		Parameters:        params,
		Points:            points,
		DownPayment:       params.DownPayment(),
		MortgagePrincipal: params.MortgagePrincipal(),
		Crossovers:        CalculateCrossovers(points),
	}
	if report.MortgagePrincipal > 0 {
		report.MonthlyMortgagePayment = MortgagePayment(report.MortgagePrincipal, params.MortgageRate, params.MortgageYears)
	}
	if len(points) > 0 {
		report.FinalLeader = points[len(points)-1].Leader()
	}

	for _, p := range points {
		ce.Logger.Debugf("year %d: cash %.2f mortgage %.2f rent %.2f (mortgage balance %.2f, installment %.2f)",
			p.Year, p.Scenario1, p.Scenario2, p.Scenario3, p.MortgageBalance, p.MonthlyMortgagePayment)
	}
	return report
}

// Run executes every block present in the configuration. The configuration is expected
// to have been validated by the caller (see config.InputParser).
func (ce *CalculationEngine) Run(config *domain.Configuration) (*domain.Report, error) {
	if config == nil || (config.Loan == nil && config.Projection == nil) {
		return nil, ErrEmptyConfiguration
	}
	report := &domain.Report{Assumptions: config.GenerateAssumptions()}
	if config.Loan != nil {
		report.Loan = ce.RunLoan(config.Loan.Parameters())
		report.Loan.StartDate = config.Loan.StartDate
	}
	if config.Projection != nil {
		report.Projection = ce.RunProjection(config.Projection.Parameters())
	}
	return report, nil
}
