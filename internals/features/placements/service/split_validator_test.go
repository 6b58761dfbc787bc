package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSplitTotal_Accepts100(t *testing.T) {
	assert.NoError(t, ValidateSplitTotal([]float64{40, 35, 25}))
	assert.NoError(t, ValidateSplitTotal([]float64{100}))
	assert.NoError(t, ValidateSplitTotal([]float64{33.33, 33.33, 33.34}))
}

func TestValidateSplitTotal_WithinTolerance(t *testing.T) {
	// |sum - 100| <= 0.01 is accepted
	assert.NoError(t, ValidateSplitTotal([]float64{50, 49.995}))
	assert.NoError(t, ValidateSplitTotal([]float64{50, 50.005}))
}

func TestValidateSplitTotal_RejectsOffTotals(t *testing.T) {
	cases := []struct {
		name   string
		splits []float64
		total  float64
	}{
		{"under", []float64{40, 35, 24.9}, 99.9},
		{"over", []float64{40, 35, 26}, 101},
		{"way under", []float64{33, 33, 33}, 99},
		{"empty set", nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSplitTotal(tc.splits)
			require.Error(t, err)

			var splitErr *SplitTotalError
			require.True(t, errors.As(err, &splitErr))
			assert.InDelta(t, tc.total, splitErr.Total, 0.0001)
			// the message reports the actual total for creator feedback
			assert.Contains(t, err.Error(), "100")
		})
	}
}

func TestValidateSplitTotal_ReportsComputedTotal(t *testing.T) {
	err := ValidateSplitTotal([]float64{40, 35, 24.9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "99.90")
}

func TestSumSplits(t *testing.T) {
	assert.Equal(t, 0.0, SumSplits(nil))
	assert.InDelta(t, 100.0, SumSplits([]float64{40, 35, 25}), 0.0001)
}
