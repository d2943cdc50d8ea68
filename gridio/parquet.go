package gridio

import (
	"os"

	"github.com/golang/geo/s2"
	"github.com/parquet-go/parquet-go"
	"github.com/sirupsen/logrus"

	"grid-stats/gridtools"
)

const rowBufferSize = 1 << 16

type CellRow struct {
	S2id  int64   `parquet:"s2_id, type=INT64"`
	Row   int32   `parquet:"row, type=INT32"`
	Col   int32   `parquet:"col, type=INT32"`
	Value float64 `parquet:"value, type=DOUBLE"`
}

// WriteParquet dumps the valid cells of a grid as parquet rows keyed by the
// S2 cell id of each cell center at the given level. The cell center is
// taken straight from the geotransform, so this is only meaningful for
// grids in geographic coordinates.
func WriteParquet(grid *gridtools.Grid, s2Lvl int, path string) error {
	output, err := os.Create(path)
	if err != nil {
		return err
	}

	schema := parquet.SchemaOf(new(CellRow))
	writer := parquet.NewGenericWriter[CellRow](output, schema, parquet.Compression(&parquet.Snappy))
	defer func() {
		if err := writer.Close(); err != nil {
			logrus.Error(err)
		}
		if err := output.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	rowBuf := make([]CellRow, 0, rowBufferSize)
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			value := grid.At(row, col)
			if !gridtools.IsValid(value, grid.NoData) {
				continue
			}
			rowBuf = append(rowBuf, CellRow{
				S2id:  cellID(grid.GeoRef.Transform, row, col, s2Lvl),
				Row:   int32(row),
				Col:   int32(col),
				Value: value,
			})
			if len(rowBuf) == rowBufferSize {
				if err := flushRows(writer, rowBuf); err != nil {
					return err
				}
				rowBuf = rowBuf[:0]
			}
		}
	}
	if len(rowBuf) > 0 {
		if _, err := writer.Write(rowBuf); err != nil {
			return err
		}
	}
	return nil
}

func flushRows(writer *parquet.GenericWriter[CellRow], rows []CellRow) error {
	logrus.Infof("Flushing %d cell rows", len(rows))
	if _, err := writer.Write(rows); err != nil {
		return err
	}
	return writer.Flush()
}

func cellID(gt [6]float64, row, col, s2Lvl int) int64 {
	px, py := float64(col)+0.5, float64(row)+0.5
	lng := gt[0] + px*gt[1] + py*gt[2]
	lat := gt[3] + px*gt[4] + py*gt[5]
	return int64(s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lng)).Parent(s2Lvl))
}
