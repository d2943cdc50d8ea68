package gridio

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"grid-stats/gridtools"
)

// WriteCSV dumps the valid cells of a grid as row,col,value lines.
func WriteCSV(grid *gridtools.Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	if _, err := f.WriteString("row,col,value\n"); err != nil {
		return err
	}

	var written int
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			value := grid.At(row, col)
			if !gridtools.IsValid(value, grid.NoData) {
				continue
			}
			if written%10000 == 0 {
				logrus.Infof("Writing cell %d", written)
			}
			if _, err := f.WriteString(fmt.Sprintf("%d,%d,%v\n", row, col, value)); err != nil {
				return err
			}
			written++
		}
	}
	if err = f.Sync(); err != nil {
		return err
	}
	return nil
}
