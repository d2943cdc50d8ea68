package gridtools

import "math"

// IsValid reports whether a sample carries data. A sample is invalid when it
// equals the raster's missing-value marker or is NaN. Aggregators never see
// invalid samples; this predicate is applied once, before reduction.
func IsValid(sample, noData float64) bool {
	return sample != noData && !math.IsNaN(sample)
}
