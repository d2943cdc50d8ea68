package gridtools

import (
	"fmt"
	"strings"
)

type AggFunc func(...float64) float64

func Sum(inData ...float64) float64 {
	var sum float64
	for _, val := range inData {
		sum += val
	}
	return sum
}

func Mean(inData ...float64) float64 {
	return Sum(inData...) / float64(len(inData))
}

func Count(inData ...float64) float64 {
	return float64(len(inData))
}

// Richness counts strictly positive samples, the "species present"
// convention for occurrence grids.
func Richness(inData ...float64) float64 {
	var n float64
	for _, val := range inData {
		if val > 0 {
			n++
		}
	}
	return n
}

type StatKind int

const (
	StatSum StatKind = iota
	StatMean
	StatCount
	StatRichness
)

// Statistic is one reduction over a cell's value-set. zeroOnEmpty encodes
// the count/richness convention: a cell where every source is missing still
// has a well-defined count of zero, while sum and mean emit the marker.
type Statistic struct {
	Kind   StatKind
	Name   string
	reduce AggFunc

	zeroOnEmpty bool
}

// Apply reduces an already-filtered value-set to one output sample.
func (s Statistic) Apply(values []float64, noData float64) float64 {
	if len(values) == 0 {
		if s.zeroOnEmpty {
			return 0
		}
		return noData
	}
	return s.reduce(values...)
}

var statistics = map[string]Statistic{
	"sum":      {Kind: StatSum, Name: "sum", reduce: Sum},
	"mean":     {Kind: StatMean, Name: "mean", reduce: Mean},
	"count":    {Kind: StatCount, Name: "count", reduce: Count, zeroOnEmpty: true},
	"richness": {Kind: StatRichness, Name: "richness", reduce: Richness, zeroOnEmpty: true},
}

// StatisticByName resolves a statistic name at configuration time, so the
// engine never dispatches on strings mid-pass.
func StatisticByName(name string) (Statistic, error) {
	stat, ok := statistics[strings.ToLower(name)]
	if !ok {
		return Statistic{}, fmt.Errorf("%w: unknown statistic %q, choose from sum, mean, count, richness", ErrConfig, name)
	}
	return stat, nil
}

// StatisticsByName resolves a full request, rejecting empty requests and
// duplicate names.
func StatisticsByName(names []string) ([]Statistic, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no statistics requested", ErrConfig)
	}
	stats := make([]Statistic, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		stat, err := StatisticByName(name)
		if err != nil {
			return nil, err
		}
		if seen[stat.Name] {
			return nil, fmt.Errorf("%w: statistic %q requested twice", ErrConfig, stat.Name)
		}
		seen[stat.Name] = true
		stats = append(stats, stat)
	}
	return stats, nil
}
