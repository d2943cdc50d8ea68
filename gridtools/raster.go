package gridtools

// GeoRef carries the spatial metadata that must survive from input to
// output: the six-parameter affine geotransform and the projection WKT.
// The engine never interprets it, it only copies it forward.
type GeoRef struct {
	Transform  [6]float64
	Projection string
}

// Raster is the accessor contract the engine reads through. Implementations
// own the underlying dataset for the duration of one invocation; band
// buffers returned by ReadBand are not modified by the engine.
type Raster interface {
	Name() string
	Width() int
	Height() int
	BandCount() int
	// NoData returns the missing-value marker. Implementations with no
	// marker set should return NaN so that only NaN samples are filtered.
	NoData() float64
	GeoRef() GeoRef
	// ReadBand returns the full band as a row-major buffer of length
	// Width*Height. Band indices are 0-based.
	ReadBand(band int) ([]float64, error)
}

// BandRef identifies one 2D array of samples: a band of a raster.
type BandRef struct {
	Raster Raster
	Band   int
}

// Grid is one output statistic: a dense row-major float64 buffer plus the
// missing-value marker and georeferencing inherited from the inputs.
type Grid struct {
	Width, Height int
	NoData        float64
	GeoRef        GeoRef
	Data          []float64
}

func NewGrid(width, height int, noData float64, ref GeoRef) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		NoData: noData,
		GeoRef: ref,
		Data:   make([]float64, width*height),
	}
}

func (g *Grid) At(row, col int) float64 {
	return g.Data[row*g.Width+col]
}

func (g *Grid) Set(row, col int, value float64) {
	g.Data[row*g.Width+col] = value
}
