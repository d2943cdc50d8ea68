package gridtools

// memRaster is an in-memory Raster for exercising the engine without any
// dataset behind it.
type memRaster struct {
	name   string
	w, h   int
	noData float64
	ref    GeoRef
	bands  [][]float64
}

var _ Raster = (*memRaster)(nil)

func (m *memRaster) Name() string    { return m.name }
func (m *memRaster) Width() int      { return m.w }
func (m *memRaster) Height() int     { return m.h }
func (m *memRaster) BandCount() int  { return len(m.bands) }
func (m *memRaster) NoData() float64 { return m.noData }
func (m *memRaster) GeoRef() GeoRef  { return m.ref }

func (m *memRaster) ReadBand(band int) ([]float64, error) {
	return m.bands[band], nil
}

func newMemRaster(name string, w, h int, noData float64, bands ...[]float64) *memRaster {
	return &memRaster{
		name:   name,
		w:      w,
		h:      h,
		noData: noData,
		ref:    GeoRef{Transform: [6]float64{0, 1, 0, 0, 0, -1}},
		bands:  bands,
	}
}

func filled(n int, value float64) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = value
	}
	return buf
}
