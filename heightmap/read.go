package heightmap

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Read loads an elevation raster, picking the decoder from the file
// extension: .asc (ESRI ASCII grid), .hgt (SRTM tile), .png/.tif/.tiff
// (grayscale heightmap).
func Read(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "read heightmap")
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".asc":
		return ReadASC(f)
	case ".hgt":
		return ReadHGT(f)
	case ".png", ".tif", ".tiff":
		return ReadImage(f)
	default:
		return nil, errors.Errorf("read heightmap: unsupported format %q", filepath.Ext(path))
	}
}
