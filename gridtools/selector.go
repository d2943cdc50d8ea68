package gridtools

import (
	"fmt"
	"math"
)

// SelectBands resolves which band is read from which raster. Three modes,
// chosen by the shape of bands:
//
//	nil:                 all bands of a single raster (across-bands path)
//	one index:           that band of every raster
//	one index per raster: bands[i] is read from rasters[i]
//
// Any other shape is a configuration error. All resolution errors fire here,
// before a single sample is read.
func SelectBands(rasters []Raster, bands []int) ([]BandRef, error) {
	if len(rasters) == 0 {
		return nil, fmt.Errorf("%w: no input rasters", ErrConfig)
	}
	if err := checkComparable(rasters); err != nil {
		return nil, err
	}

	var refs []BandRef
	switch {
	case bands == nil:
		if len(rasters) != 1 {
			return nil, fmt.Errorf("%w: all-bands mode takes exactly one raster, got %d", ErrConfig, len(rasters))
		}
		for band := 0; band < rasters[0].BandCount(); band++ {
			refs = append(refs, BandRef{rasters[0], band})
		}
	case len(bands) == 1:
		for _, raster := range rasters {
			refs = append(refs, BandRef{raster, bands[0]})
		}
	case len(bands) == len(rasters):
		for i, raster := range rasters {
			refs = append(refs, BandRef{raster, bands[i]})
		}
	default:
		return nil, fmt.Errorf("%w: %d band indices for %d rasters, want one per raster or a single shared index",
			ErrConfig, len(bands), len(rasters))
	}

	for _, ref := range refs {
		if ref.Band < 0 || ref.Band >= ref.Raster.BandCount() {
			return nil, fmt.Errorf("%w: band %d out of range for raster %s with %d bands",
				ErrConfig, ref.Band, ref.Raster.Name(), ref.Raster.BandCount())
		}
	}
	return refs, nil
}

// checkComparable verifies that every raster in the set shares dimensions,
// missing-value marker and georeferencing with the first one.
func checkComparable(rasters []Raster) error {
	first := rasters[0]
	for _, raster := range rasters[1:] {
		if raster.Width() != first.Width() || raster.Height() != first.Height() {
			return fmt.Errorf("%w: %s is %dx%d, %s is %dx%d", ErrIncomparable,
				first.Name(), first.Width(), first.Height(),
				raster.Name(), raster.Width(), raster.Height())
		}
		if !sameMarker(raster.NoData(), first.NoData()) {
			return fmt.Errorf("%w: %s has missing-value marker %v, %s has %v", ErrIncomparable,
				first.Name(), first.NoData(), raster.Name(), raster.NoData())
		}
		if raster.GeoRef() != first.GeoRef() {
			return fmt.Errorf("%w: %s and %s have different georeferencing", ErrIncomparable,
				first.Name(), raster.Name())
		}
	}
	return nil
}

func sameMarker(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}
