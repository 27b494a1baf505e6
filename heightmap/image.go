package heightmap

import (
	"image"
	"image/color"
	_ "image/png"
	"io"

	"github.com/pkg/errors"
	_ "golang.org/x/image/tiff"
)

// ReadImage reads a grayscale image heightmap (PNG or TIFF). Pixel luminance
// becomes elevation: 0-65535 for 16-bit sources, 0-255 upscaled for 8-bit.
//
// Images carry no unit metadata, so the grid is unprojected with unit scales
// and a NaN no-data sentinel (every pixel is a valid sample).
func ReadImage(r io.Reader) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "read image heightmap")
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	samples := make([]float64, 0, width*height)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
			samples = append(samples, float64(gray.Y))
		}
	}

	g, err := NewGrid(width, height, samples)
	if err != nil {
		return nil, errors.Wrap(err, "read image heightmap")
	}
	return g, nil
}
