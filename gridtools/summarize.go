package gridtools

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

type ConfigOpts struct {
	NumWorkers int
}

// Summarize reduces a band selection to one output grid per requested
// statistic. For every cell it builds the value-set (the valid samples at
// that cell across all band references) once, then applies every statistic
// to it in the same pass. The marker and georeferencing of the outputs come
// from the first raster in the selection.
//
// Cells are independent, so rows are fanned out to NumWorkers goroutines;
// each worker writes a disjoint set of output rows and the band buffers are
// only read, so no locking is needed.
func Summarize(selection []BandRef, stats []Statistic, opts ConfigOpts) (map[string]*Grid, error) {
	if len(selection) == 0 {
		return nil, fmt.Errorf("%w: empty band selection", ErrConfig)
	}
	if len(stats) == 0 {
		return nil, fmt.Errorf("%w: no statistics requested", ErrConfig)
	}
	workers := opts.NumWorkers
	if workers < 1 {
		workers = 1
	}

	first := selection[0].Raster
	width, height := first.Width(), first.Height()
	noData := first.NoData()

	bufs, err := readSelection(selection)
	if err != nil {
		return nil, err
	}

	grids := make([]*Grid, len(stats))
	for i := range stats {
		grids[i] = NewGrid(width, height, noData, first.GeoRef())
	}

	logrus.Debugf("Summarizing %d band(s) over %dx%d cells with %d worker(s)",
		len(selection), width, height, workers)

	rows := make(chan int)
	go func() {
		defer close(rows)
		for row := 0; row < height; row++ {
			rows <- row
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			values := make([]float64, 0, len(bufs))
			for row := range rows {
				summarizeRow(row, width, noData, bufs, stats, grids, values)
			}
		}()
	}
	wg.Wait()

	out := make(map[string]*Grid, len(stats))
	for i, stat := range stats {
		out[stat.Name] = grids[i]
	}
	return out, nil
}

func summarizeRow(row, width int, noData float64, bufs [][]float64, stats []Statistic, grids []*Grid, values []float64) {
	for col := 0; col < width; col++ {
		idx := row*width + col
		values = values[:0]
		for _, buf := range bufs {
			if sample := buf[idx]; IsValid(sample, noData) {
				values = append(values, sample)
			}
		}
		for i, stat := range stats {
			grids[i].Data[idx] = stat.Apply(values, noData)
		}
	}
}

func readSelection(selection []BandRef) ([][]float64, error) {
	bufs := make([][]float64, len(selection))
	for i, ref := range selection {
		logrus.Debugf("Reading band %d of %s", ref.Band, ref.Raster.Name())
		buf, err := ref.Raster.ReadBand(ref.Band)
		if err != nil {
			return nil, fmt.Errorf("reading band %d of %s: %w", ref.Band, ref.Raster.Name(), err)
		}
		if len(buf) != ref.Raster.Width()*ref.Raster.Height() {
			return nil, fmt.Errorf("band %d of %s: got %d samples, want %d",
				ref.Band, ref.Raster.Name(), len(buf), ref.Raster.Width()*ref.Raster.Height())
		}
		bufs[i] = buf
	}
	return bufs, nil
}
