package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseReductionPolicy(t *testing.T) {
	testCases := []struct {
		input    string
		expected ReductionPolicy
		wantErr  bool
	}{
		{"reduce_term", ReduceTerm, false},
		{"reduce-term", ReduceTerm, false},
		{"term", ReduceTerm, false},
		{"reduce_installment", ReduceInstallment, false},
		{"installment", ReduceInstallment, false},
		{"", ReduceInstallment, false}, // empty selects the default
		{"shorten", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseReductionPolicy(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestReductionPolicy_Unmarshal(t *testing.T) {
	var fromYAML struct {
		Policy ReductionPolicy `yaml:"policy"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("policy: term\n"), &fromYAML))
	assert.Equal(t, ReduceTerm, fromYAML.Policy)

	var fromJSON struct {
		Policy ReductionPolicy `json:"policy"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"policy":"reduce-installment"}`), &fromJSON))
	assert.Equal(t, ReduceInstallment, fromJSON.Policy)

	assert.Error(t, json.Unmarshal([]byte(`{"policy":"sideways"}`), &fromJSON))
}

func TestLoanParameters_Helpers(t *testing.T) {
	lp := LoanParameters{Amount: 200000, AnnualRate: 3, TermYears: 30}
	assert.Equal(t, 360, lp.Months())
	assert.InDelta(t, 0.0025, lp.MonthlyRate(), 1e-12)

	assert.Zero(t, LoanParameters{TermYears: 10}.MonthlyRate())
}
