package heightmap

import (
	"math"

	"github.com/pkg/errors"
)

// Resample returns a bilinear resampling of g: factor 0.5 halves each
// dimension, 2.0 doubles. Axis scales are multiplied by the inverse ratio so
// the mesh covers the same real-world extent.
//
// A resampled value touching any no-data source sample is itself no-data;
// voids are never interpolated across.
func (g *Grid) Resample(factor float64) (*Grid, error) {
	if factor <= 0 {
		return nil, errors.Errorf("resample: invalid factor %v", factor)
	}
	width := int(float64(g.Width) * factor)
	height := int(float64(g.Height) * factor)
	if width < 2 || height < 2 {
		return nil, errors.Errorf("resample: factor %v leaves a %dx%d grid, need at least 2x2",
			factor, width, height)
	}

	xRatio := float64(g.Width) / float64(width)
	yRatio := float64(g.Height) / float64(height)

	samples := make([]float64, 0, width*height)
	for row := 0; row < height; row++ {
		// Sample at pixel centers of the output grid.
		y := (float64(row)+0.5)*yRatio - 0.5
		ys, yFracs := roundedCoords(y)
		for col := 0; col < width; col++ {
			x := (float64(col)+0.5)*xRatio - 0.5
			xs, xFracs := roundedCoords(x)

			var value float64
			valid := true
			for i, r := range ys {
				for j, c := range xs {
					weight := yFracs[i] * xFracs[j]
					if weight == 0 {
						continue
					}
					v := g.Get(r, c)
					if g.IsNoData(v) {
						valid = false
					}
					value += weight * v
				}
			}
			if !valid {
				value = g.NoData
			}
			samples = append(samples, value)
		}
	}

	out := g.clone(width, height, samples)
	out.XScale = g.XScale * xRatio
	out.YScale = g.YScale * yRatio
	return out, nil
}

func roundedCoords(c float64) (vals [2]int, fracs [2]float64) {
	min := int(math.Floor(c))
	max := min + 1
	minFrac := float64(max) - c
	maxFrac := 1 - minFrac
	return [2]int{min, max}, [2]float64{minFrac, maxFrac}
}
