package heightmap

import "github.com/pkg/errors"

// Crop returns the w x h pixel window of g whose upper-left corner is at
// column x, row y. Scales and the no-data sentinel carry over.
func (g *Grid) Crop(x, y, w, h int) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, errors.Errorf("crop: invalid window %dx%d", w, h)
	}
	if x < 0 || y < 0 || x+w > g.Width || y+h > g.Height {
		return nil, errors.Errorf("crop: window %dx%d+%d+%d outside %dx%d raster",
			w, h, x, y, g.Width, g.Height)
	}

	samples := make([]float64, 0, w*h)
	for row := y; row < y+h; row++ {
		start := x + row*g.Width
		samples = append(samples, g.samples[start:start+w]...)
	}
	return g.clone(w, h, samples), nil
}
