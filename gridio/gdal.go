// Package gridio implements the raster accessor and writer contracts of
// gridtools on top of GDAL datasets, plus tabular export sinks.
package gridio

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"

	"grid-stats/gridtools"
)

var registerDrivers sync.Once

// Source is a read-only godal-backed raster. It satisfies gridtools.Raster.
type Source struct {
	ds     *godal.Dataset
	path   string
	noData float64
	ref    gridtools.GeoRef
}

var _ gridtools.Raster = (*Source)(nil)

// Open opens a raster for reading. The missing-value marker and
// georeferencing are captured once at open time; a raster with no NoData
// marker gets NaN, so only NaN samples are treated as missing.
func Open(path string) (*Source, error) {
	registerDrivers.Do(godal.RegisterAll)

	ds, err := godal.Open(path)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	src := &Source{ds: ds, path: path}

	noData, ok := ds.Bands()[0].NoData()
	if !ok {
		logrus.Warnf("NoData not set on %s, treating NaN as missing", path)
		noData = math.NaN()
	}
	src.noData = noData

	gt, err := ds.GeoTransform()
	if err != nil {
		logrus.Warnf("No geotransform on %s, using identity", path)
		gt = [6]float64{0, 1, 0, 0, 0, 1}
	}
	src.ref = gridtools.GeoRef{Transform: gt, Projection: ds.Projection()}

	return src, nil
}

func (s *Source) Name() string             { return s.path }
func (s *Source) Width() int               { return s.ds.Structure().SizeX }
func (s *Source) Height() int              { return s.ds.Structure().SizeY }
func (s *Source) BandCount() int           { return s.ds.Structure().NBands }
func (s *Source) NoData() float64          { return s.noData }
func (s *Source) GeoRef() gridtools.GeoRef { return s.ref }

// ReadBand reads a whole band into memory as float64, whatever the on-disk
// sample type.
func (s *Source) ReadBand(band int) ([]float64, error) {
	if band < 0 || band >= s.BandCount() {
		return nil, fmt.Errorf("%w: band %d out of range for %s with %d bands",
			gridtools.ErrConfig, band, s.path, s.BandCount())
	}
	buf := make([]float64, s.Width()*s.Height())
	if err := s.ds.Bands()[band].Read(0, 0, buf, s.Width(), s.Height()); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *Source) Close() error {
	return s.ds.Close()
}

// WriteGTiff persists an output grid as a single-band float64 GeoTIFF,
// carrying over the grid's marker and georeferencing.
func WriteGTiff(grid *gridtools.Grid, dest string) (err error) {
	registerDrivers.Do(godal.RegisterAll)

	ds, err := godal.Create(godal.GTiff, dest, 1, godal.Float64, grid.Width, grid.Height)
	if err != nil {
		logrus.Error(err)
		return err
	}
	defer func() {
		err = errors.Join(err, ds.Close())
	}()

	if err := ds.SetGeoTransform(grid.GeoRef.Transform); err != nil {
		return err
	}
	if grid.GeoRef.Projection != "" {
		if err := ds.SetProjection(grid.GeoRef.Projection); err != nil {
			return err
		}
	}

	band := ds.Bands()[0]
	if !math.IsNaN(grid.NoData) {
		if err := band.SetNoData(grid.NoData); err != nil {
			return err
		}
	}
	return band.Write(0, 0, grid.Data, grid.Width, grid.Height)
}
