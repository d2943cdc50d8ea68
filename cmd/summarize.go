// Package cmd /*
package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"grid-stats/gridio"
	"grid-stats/gridtools"
)

var numWorkers int
var fixedBand int
var bandList []int
var outPaths []string

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize [tif_files...]",
	Short: "Compute per-cell statistics across raster bands",
	Long: `Compute per-cell summary statistics over a set of band references
	and write one output raster per statistic. Cells where every source is
	missing get the NoData marker for sum and mean, and 0 for count and
	richness.

	Band selection:
		(no band flag):	all bands of a single input raster
		--band:					one fixed band index, read from every input raster
		--bands:				one band index per input raster, in order

	Options:
		--stats:			Statistics to compute, from: sum, mean, count, richness.
		--out:				Output path per requested statistic, in the same order.
		--numWorkers:	Number of workers for parallel processing. Not recommended
									to exceed number of CPU cores.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevels()

		stats, err := gridtools.StatisticsByName(viper.GetStringSlice("stats"))
		if err != nil {
			logrus.Fatal(err)
		}
		if len(outPaths) != len(stats) {
			logrus.Fatalf("%d output paths for %d statistics, want one per statistic", len(outPaths), len(stats))
		}

		rasters := make([]gridtools.Raster, 0, len(args))
		for _, path := range args {
			src, err := gridio.Open(path)
			if err != nil {
				logrus.Fatal(err)
			}
			defer func() {
				if err := src.Close(); err != nil {
					logrus.Error(err)
				}
			}()
			rasters = append(rasters, src)
		}

		selection, err := gridtools.SelectBands(rasters, bandSpec())
		if err != nil {
			logrus.Fatal(err)
		}

		start := time.Now()
		grids, err := gridtools.Summarize(selection, stats, gridtools.ConfigOpts{NumWorkers: numWorkers})
		if err != nil {
			logrus.Fatal(err)
		}
		logrus.Infof("Summarized %d band(s) in %v", len(selection), time.Since(start))

		for i, stat := range stats {
			if err := gridio.WriteGTiff(grids[stat.Name], outPaths[i]); err != nil {
				logrus.Fatal(err)
			}
			logrus.Infof("Wrote %s to %s", stat.Name, outPaths[i])
		}
	},
}

// bandSpec maps the two band flags onto the selector's band-list shape.
// Absent flags mean all-bands mode.
func bandSpec() []int {
	if len(bandList) > 0 {
		return bandList
	}
	if fixedBand >= 0 {
		return []int{fixedBand}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringSliceP("stats", "s", []string{"mean"}, "Statistics to compute, from: sum, mean, count, richness")
	err := viper.BindPFlag("stats", summarizeCmd.Flags().Lookup("stats"))
	if err != nil {
		logrus.Exit(1)
	}

	summarizeCmd.Flags().IntVarP(&fixedBand, "band", "b", -1, "Fixed band index (0-based) to read from every input raster")
	err = viper.BindPFlag("band", summarizeCmd.Flags().Lookup("band"))
	if err != nil {
		logrus.Exit(1)
	}

	summarizeCmd.Flags().IntSliceVar(&bandList, "bands", nil, "One band index (0-based) per input raster, in order")
	err = viper.BindPFlag("bands", summarizeCmd.Flags().Lookup("bands"))
	if err != nil {
		logrus.Exit(1)
	}

	summarizeCmd.Flags().StringSliceVarP(&outPaths, "out", "o", nil, "Output raster path per requested statistic, in order")
	err = viper.BindPFlag("out", summarizeCmd.Flags().Lookup("out"))
	if err != nil {
		logrus.Exit(1)
	}

	summarizeCmd.Flags().IntVarP(&numWorkers, "numWorkers", "n", 8, "Number of workers to spawn for parallel processing")
	err = viper.BindPFlag("numWorkers", summarizeCmd.Flags().Lookup("numWorkers"))
	if err != nil {
		logrus.Exit(1)
	}
}
