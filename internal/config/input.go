package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/mortgage-explorer/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidParameters wraps every validation failure so callers can map it to a user error.
var ErrInvalidParameters = errors.New("invalid parameters")

// Upper bounds mirror the ranges the input controls allow.
const (
	MaxTermYears = 100
	MaxRate      = 100
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML (or JSON, which is valid YAML) and validates the result.
// Each block present in data is decoded over DefaultLoanInput or DefaultProjectionInput,
// so fields left out of a block keep their defaults. Absent blocks stay nil.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var raw struct {
		Loan       *yaml.Node `yaml:"loan"`
		Projection *yaml.Node `yaml:"projection"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var config domain.Configuration
	if raw.Loan != nil {
		loan := DefaultLoanInput()
		if err := raw.Loan.Decode(&loan); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: loan: %w", err)
		}
		config.Loan = &loan
	}
	if raw.Projection != nil {
		projection := DefaultProjectionInput()
		if err := raw.Projection.Decode(&projection); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: projection: %w", err)
		}
		config.Projection = &projection
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Loan == nil && config.Projection == nil {
		return fmt.Errorf("%w: at least one of loan or projection is required", ErrInvalidParameters)
	}
	if config.Loan != nil {
		if config.Loan.Policy == "" {
			config.Loan.Policy = domain.ReduceInstallment
		}
		if err := ValidateLoan(config.Loan.Parameters()); err != nil {
			return fmt.Errorf("loan: %w", err)
		}
	}
	if config.Projection != nil {
		if err := ValidateProjection(config.Projection.Parameters()); err != nil {
			return fmt.Errorf("projection: %w", err)
		}
	}
	return nil
}

// ValidateLoan rejects parameters the amortization engine does not define behavior for.
func ValidateLoan(p domain.LoanParameters) error {
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidParameters)
	}
	if p.AnnualRate < 0 || p.AnnualRate > MaxRate {
		return fmt.Errorf("%w: annual rate must be between 0 and %d%%", ErrInvalidParameters, MaxRate)
	}
	if p.TermYears <= 0 || p.TermYears > MaxTermYears {
		return fmt.Errorf("%w: term must be between 1 and %d years", ErrInvalidParameters, MaxTermYears)
	}
	if p.AnnualExtraPayment < 0 {
		return fmt.Errorf("%w: extra payment cannot be negative", ErrInvalidParameters)
	}
	if p.Policy != domain.ReduceTerm && p.Policy != domain.ReduceInstallment {
		return fmt.Errorf("%w: policy must be %q or %q", ErrInvalidParameters, domain.ReduceTerm, domain.ReduceInstallment)
	}
	return nil
}

// ValidateProjection rejects parameters the projection engine does not define behavior for.
// Investment return, appreciation and rent increase may be negative but not below -100%.
func ValidateProjection(p domain.ProjectionParameters) error {
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"initial investment", p.InitialInvestment},
		{"house value", p.HouseValue},
		{"monthly savings", p.MonthlySavings},
		{"mortgage rate", p.MortgageRate},
		{"monthly rent", p.MonthlyRent},
		{"property tax rate", p.PropertyTaxRate},
		{"home insurance", p.HomeInsurance},
		{"maintenance rate", p.MaintenanceRate},
		{"down payment percentage", p.DownPaymentPercentage},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidParameters, f.name)
		}
	}
	growth := []struct {
		name  string
		value float64
	}{
		{"investment return", p.InvestmentReturn},
		{"house appreciation", p.HouseAppreciation},
		{"rent increase", p.RentIncrease},
	}
	for _, f := range growth {
		if f.value <= -100 {
			return fmt.Errorf("%w: %s must be greater than -100%%", ErrInvalidParameters, f.name)
		}
	}
	if p.MortgageRate > MaxRate {
		return fmt.Errorf("%w: mortgage rate cannot exceed %d%%", ErrInvalidParameters, MaxRate)
	}
	if p.DownPaymentPercentage > 100 {
		return fmt.Errorf("%w: down payment percentage cannot exceed 100%%", ErrInvalidParameters)
	}
	if p.MortgageYears <= 0 || p.MortgageYears > MaxTermYears {
		return fmt.Errorf("%w: mortgage years must be between 1 and %d", ErrInvalidParameters, MaxTermYears)
	}
	return nil
}

// DefaultLoanInput returns the loan the explorer opens with.
func DefaultLoanInput() domain.LoanInput {
	return domain.LoanInput{
		Amount:             decimal.NewFromInt(200000),
		AnnualRate:         decimal.NewFromInt(3),
		TermYears:          30,
		AnnualExtraPayment: decimal.NewFromInt(1000),
		Policy:             domain.ReduceInstallment,
	}
}

// DefaultProjectionInput returns the projection the explorer opens with.
func DefaultProjectionInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		InitialInvestment:     decimal.NewFromInt(300000),
		HouseValue:            decimal.NewFromInt(200000),
		MonthlySavings:        decimal.NewFromInt(2500),
		InvestmentReturn:      decimal.NewFromInt(5),
		HouseAppreciation:     decimal.NewFromFloat(0.5),
		MortgageRate:          decimal.NewFromFloat(2.7),
		MortgageYears:         30,
		MonthlyRent:           decimal.NewFromInt(750),
		RentIncrease:          decimal.NewFromFloat(0.5),
		PropertyTaxRate:       decimal.Zero,
		HomeInsurance:         decimal.NewFromInt(1000),
		MaintenanceRate:       decimal.NewFromInt(1),
		DownPaymentPercentage: decimal.NewFromInt(20),
	}
}

// CreateExampleConfiguration creates an example configuration with both blocks set to defaults
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	loan := DefaultLoanInput()
	projection := DefaultProjectionInput()
	return &domain.Configuration{Loan: &loan, Projection: &projection}
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
