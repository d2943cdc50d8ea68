package gridtools

import (
	"errors"
	"math"
	"testing"
)

func TestIsValid(t *testing.T) {
	if IsValid(-9999, -9999) {
		t.Error("marker value should not be valid")
	}
	if IsValid(math.NaN(), -9999) {
		t.Error("NaN should not be valid")
	}
	if !IsValid(0, -9999) {
		t.Error("zero is a legitimate data value")
	}
	if !IsValid(-9999, math.NaN()) {
		t.Error("-9999 is valid when the marker is NaN")
	}
}

func TestAggFuncs(t *testing.T) {
	values := []float64{5, 0, -2, 3}
	if got := Sum(values...); got != 6 {
		t.Errorf("Sum: got %v, want 6", got)
	}
	if got := Mean(values...); got != 1.5 {
		t.Errorf("Mean: got %v, want 1.5", got)
	}
	if got := Count(values...); got != 4 {
		t.Errorf("Count: got %v, want 4", got)
	}
	if got := Richness(values...); got != 2 {
		t.Errorf("Richness: got %v, want 2", got)
	}
}

func TestApplyEmptyValueSet(t *testing.T) {
	wants := map[string]float64{
		"sum":      noData,
		"mean":     noData,
		"count":    0,
		"richness": 0,
	}
	for name, want := range wants {
		stat, err := StatisticByName(name)
		if err != nil {
			t.Fatal(err)
		}
		if got := stat.Apply(nil, noData); got != want {
			t.Errorf("%s on empty value-set: got %v, want %v", name, got, want)
		}
	}
}

func TestStatisticsByName(t *testing.T) {
	stats, err := StatisticsByName([]string{"sum", "Mean", "richness"})
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 3 || stats[1].Kind != StatMean {
		t.Errorf("unexpected resolution: %v", stats)
	}

	if _, err := StatisticsByName([]string{"median"}); !errors.Is(err, ErrConfig) {
		t.Errorf("unknown statistic: got %v, want ErrConfig", err)
	}
	if _, err := StatisticsByName(nil); !errors.Is(err, ErrConfig) {
		t.Errorf("empty request: got %v, want ErrConfig", err)
	}
	if _, err := StatisticsByName([]string{"sum", "sum"}); !errors.Is(err, ErrConfig) {
		t.Errorf("duplicate request: got %v, want ErrConfig", err)
	}
}
