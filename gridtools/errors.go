package gridtools

import "errors"

// ErrConfig covers invocation mistakes: unknown statistic names, band
// indices out of range, band list length not matching the raster count.
// These fail before any band data is read.
var ErrConfig = errors.New("invalid configuration")

// ErrIncomparable is returned when input rasters cannot be summarized
// together: mismatched dimensions, missing-value markers or georeferencing.
var ErrIncomparable = errors.New("rasters are not comparable")
