package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"grid-stats/gridio"
	"grid-stats/gridtools"
)

var exportBand int
var s2Lvl int

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [tif_file] [output_path]",
	Short: "Dump a raster band as a table of valid cells",
	Long: `Dump one band of a raster (typically a freshly written summary
	grid) as a parquet or CSV table. Parquet rows carry the S2 cell id of
	each cell center, so summary grids can be joined against S2-indexed
	data downstream. Cells holding the NoData marker are skipped.

	Options:
		--band:		Band index (0-based) to export.
		--s2Lvl:	S2 cell level for cell-center ids. Essentially output resolution.
		--format:	Output format, parquet or csv.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevels()

		src, err := gridio.Open(args[0])
		if err != nil {
			logrus.Fatal(err)
		}
		defer func() {
			if err := src.Close(); err != nil {
				logrus.Error(err)
			}
		}()

		buf, err := src.ReadBand(exportBand)
		if err != nil {
			logrus.Fatal(err)
		}
		grid := &gridtools.Grid{
			Width:  src.Width(),
			Height: src.Height(),
			NoData: src.NoData(),
			GeoRef: src.GeoRef(),
			Data:   buf,
		}

		switch format := viper.GetString("format"); format {
		case "parquet":
			err = gridio.WriteParquet(grid, s2Lvl, args[1])
		case "csv":
			err = gridio.WriteCSV(grid, args[1])
		default:
			logrus.Fatalf("Output format %s not recognized, choose from: parquet, csv", format)
		}
		if err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntVar(&exportBand, "band", 0, "Band index (0-based) to export")
	err := viper.BindPFlag("exportBand", exportCmd.Flags().Lookup("band"))
	if err != nil {
		logrus.Exit(1)
	}

	exportCmd.Flags().IntVarP(&s2Lvl, "s2Lvl", "l", 11, "S2 cell level for cell-center ids. Essentially output resolution")
	err = viper.BindPFlag("s2Lvl", exportCmd.Flags().Lookup("s2Lvl"))
	if err != nil {
		logrus.Exit(1)
	}

	exportCmd.Flags().StringP("format", "f", "parquet", "Output format, parquet or csv")
	err = viper.BindPFlag("format", exportCmd.Flags().Lookup("format"))
	if err != nil {
		logrus.Exit(1)
	}
}
