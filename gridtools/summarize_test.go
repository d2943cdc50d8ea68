package gridtools

import (
	"math"
	"reflect"
	"testing"
)

const noData = -9999.0

func allStats(t *testing.T) []Statistic {
	t.Helper()
	stats, err := StatisticsByName([]string{"sum", "mean", "count", "richness"})
	if err != nil {
		t.Fatal(err)
	}
	return stats
}

// Two 3x3 single-band rasters. Cell (0,0) is 5 in the first and missing in
// the second; cell (1,1) is missing in both.
func setUpPair(t *testing.T) []BandRef {
	t.Helper()
	band1 := []float64{
		5, 1, 2,
		3, noData, 4,
		1, 1, 1,
	}
	band2 := []float64{
		noData, 2, -1,
		0, noData, 4,
		2, 2, 2,
	}
	a := newMemRaster("a", 3, 3, noData, band1)
	b := newMemRaster("b", 3, 3, noData, band2)
	refs, err := SelectBands([]Raster{a, b}, []int{0})
	if err != nil {
		t.Fatal(err)
	}
	return refs
}

func TestSummarizePartiallyMissingCell(t *testing.T) {
	grids, err := Summarize(setUpPair(t), allStats(t), ConfigOpts{NumWorkers: 1})
	if err != nil {
		t.Fatal(err)
	}

	wants := map[string]float64{"sum": 5, "mean": 5, "count": 1, "richness": 1}
	for name, want := range wants {
		if got := grids[name].At(0, 0); got != want {
			t.Errorf("%s at (0,0): got %v, want %v", name, got, want)
		}
	}
}

func TestSummarizeAllMissingCell(t *testing.T) {
	grids, err := Summarize(setUpPair(t), allStats(t), ConfigOpts{NumWorkers: 1})
	if err != nil {
		t.Fatal(err)
	}

	wants := map[string]float64{"sum": noData, "mean": noData, "count": 0, "richness": 0}
	for name, want := range wants {
		if got := grids[name].At(1, 1); got != want {
			t.Errorf("%s at (1,1): got %v, want %v", name, got, want)
		}
	}
}

func TestSummarizeAcrossBands(t *testing.T) {
	band1 := filled(9, 1)
	band2 := filled(9, 2)
	band1[2*3+2] = 0
	band2[2*3+2] = 3
	raster := newMemRaster("a", 3, 3, noData, band1, band2)

	refs, err := SelectBands([]Raster{raster}, nil)
	if err != nil {
		t.Fatal(err)
	}
	grids, err := Summarize(refs, allStats(t), ConfigOpts{NumWorkers: 2})
	if err != nil {
		t.Fatal(err)
	}

	wants := map[string]float64{"sum": 3, "mean": 1.5, "count": 2, "richness": 1}
	for name, want := range wants {
		if got := grids[name].At(2, 2); got != want {
			t.Errorf("%s at (2,2): got %v, want %v", name, got, want)
		}
	}
}

func TestSummarizeProperties(t *testing.T) {
	refs := setUpPair(t)
	grids, err := Summarize(refs, allStats(t), ConfigOpts{NumWorkers: 3})
	if err != nil {
		t.Fatal(err)
	}

	sum, mean := grids["sum"], grids["mean"]
	count, richness := grids["count"], grids["richness"]
	for i := range count.Data {
		n := count.Data[i]
		if n < 0 || n > float64(len(refs)) {
			t.Errorf("cell %d: count %v out of [0,%d]", i, n, len(refs))
		}
		if richness.Data[i] > n {
			t.Errorf("cell %d: richness %v exceeds count %v", i, richness.Data[i], n)
		}
		if n > 0 && math.Abs(mean.Data[i]-sum.Data[i]/n) > 1e-12 {
			t.Errorf("cell %d: mean %v != sum/count %v", i, mean.Data[i], sum.Data[i]/n)
		}
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	refs := setUpPair(t)
	stats := allStats(t)

	first, err := Summarize(refs, stats, ConfigOpts{NumWorkers: 2})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Summarize(refs, stats, ConfigOpts{NumWorkers: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over identical inputs disagree")
	}
}

func TestSummarizeWorkerCountInvariant(t *testing.T) {
	refs := setUpPair(t)
	stats := allStats(t)

	serial, err := Summarize(refs, stats, ConfigOpts{NumWorkers: 1})
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := Summarize(refs, stats, ConfigOpts{NumWorkers: 8})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(serial, parallel) {
		t.Error("worker count changed the output")
	}
}

func TestSummarizeOutputMetadata(t *testing.T) {
	refs := setUpPair(t)
	grids, err := Summarize(refs, allStats(t), ConfigOpts{NumWorkers: 1})
	if err != nil {
		t.Fatal(err)
	}
	first := refs[0].Raster
	for name, grid := range grids {
		if grid.Width != first.Width() || grid.Height != first.Height() {
			t.Errorf("%s: got %dx%d, want %dx%d", name, grid.Width, grid.Height, first.Width(), first.Height())
		}
		if grid.NoData != first.NoData() {
			t.Errorf("%s: marker %v, want %v", name, grid.NoData, first.NoData())
		}
		if grid.GeoRef != first.GeoRef() {
			t.Errorf("%s: georeferencing not carried over", name)
		}
	}
}
