// Package heightmap loads single-band elevation rasters and exposes them as
// immutable sample grids with per-axis scale coefficients.
package heightmap

import (
	"math"

	"github.com/pkg/errors"
)

// Grid is a single band of elevation samples in row-major order.
//
// XScale, YScale, and ZScale map grid indices and sample values to output
// coordinates. They describe an axis-aligned transform only: rotated or
// skewed source transforms cannot be represented and will silently produce
// geometrically incorrect meshes. North-up rasters carry a negative YScale
// so that increasing row index moves in the -Y direction.
type Grid struct {
	Width  int
	Height int

	// NoData marks invalid samples. It may be NaN for sources that have
	// no sentinel, in which case IsNoData matches NaN samples.
	NoData float64

	XScale float64
	YScale float64
	ZScale float64

	// Projected reports whether the sample spacing is in projected linear
	// units (meters, feet). Unprojected or unitless sources usually need a
	// large z-scale correction to look right; the converter refuses them
	// unless forced.
	Projected bool

	samples []float64
}

// NewGrid creates a Grid from row-major samples with unit scales and a NaN
// no-data sentinel. The sample slice is retained, not copied.
func NewGrid(width, height int, samples []float64) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, errors.Errorf("new grid: invalid dimensions %dx%d", width, height)
	}
	if len(samples) != width*height {
		return nil, errors.Errorf("new grid: %d samples for %dx%d grid", len(samples), width, height)
	}
	return &Grid{
		Width:   width,
		Height:  height,
		NoData:  math.NaN(),
		XScale:  1,
		YScale:  -1,
		ZScale:  1,
		samples: samples,
	}, nil
}

// Sample gets the elevation at integer coordinates.
// The caller is responsible for bounds.
func (g *Grid) Sample(row, col int) float64 {
	return g.samples[col+row*g.Width]
}

// Get is like Sample but clamps out-of-range coordinates to the nearest
// edge sample.
func (g *Grid) Get(row, col int) float64 {
	if row < 0 {
		row = 0
	} else if row >= g.Height {
		row = g.Height - 1
	}
	if col < 0 {
		col = 0
	} else if col >= g.Width {
		col = g.Width - 1
	}
	return g.samples[col+row*g.Width]
}

// IsNoData reports whether v matches the grid's no-data sentinel.
func (g *Grid) IsNoData(v float64) bool {
	if math.IsNaN(g.NoData) {
		return math.IsNaN(v)
	}
	return v == g.NoData
}

// Stats summarizes the valid samples of a grid.
type Stats struct {
	Min   float64
	Max   float64
	Mean  float64
	Valid int
}

// Stats computes min/max/mean over all samples that are not no-data. If the
// grid holds no valid samples, Min and Max are NaN and Valid is 0.
func (g *Grid) Stats() Stats {
	s := Stats{Min: math.NaN(), Max: math.NaN()}
	var sum float64
	for _, v := range g.samples {
		if g.IsNoData(v) {
			continue
		}
		if s.Valid == 0 || v < s.Min {
			s.Min = v
		}
		if s.Valid == 0 || v > s.Max {
			s.Max = v
		}
		sum += v
		s.Valid++
	}
	if s.Valid > 0 {
		s.Mean = sum / float64(s.Valid)
	}
	return s
}

// clone copies g's metadata onto a new sample buffer.
func (g *Grid) clone(width, height int, samples []float64) *Grid {
	out := *g
	out.Width = width
	out.Height = height
	out.samples = samples
	return &out
}
