// file: internals/features/placements/service/split_validator.go
package service

import (
	"fmt"
	"math"
)

// SplitTolerance is how far off 100 a credit set may sum before an
// edit is rejected. Covers float noise from e.g. 33.33 * 3.
const SplitTolerance = 0.01

// SplitTotalError reports the actual computed total so creators can
// see how far off they are.
type SplitTotalError struct {
	Total float64
}

func (e *SplitTotalError) Error() string {
	return fmt.Sprintf("ownership splits must total 100%%, got %.2f", e.Total)
}

// SumSplits adds up the split percentages of a credit set.
func SumSplits(splits []float64) float64 {
	var total float64
	for _, s := range splits {
		total += s
	}
	return total
}

// ValidateSplitTotal accepts a credit set whose splits sum to 100
// within SplitTolerance. Applied whenever credits are replaced as a
// batch; never applied to partial sets.
func ValidateSplitTotal(splits []float64) error {
	total := SumSplits(splits)
	if math.Abs(total-100) > SplitTolerance {
		return &SplitTotalError{Total: total}
	}
	return nil
}
