package heightmap

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// SRTM void value.
const hgtNoData = -32768

// ReadHGT reads an SRTM .hgt tile: big-endian int16 samples forming a square
// grid, 3601x3601 for one-arc-second tiles or 1201x1201 for three-arc-second
// tiles. Any square grid is accepted.
//
// Sample spacing is in arc-seconds, not linear units, so the resulting grid
// is unprojected; converting it directly makes a badly stretched mesh unless
// forced and z-scaled.
func ReadHGT(r io.Reader) (*Grid, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read hgt")
	}
	if len(raw) == 0 || len(raw)%2 != 0 {
		return nil, errors.Errorf("read hgt: truncated tile (%d bytes)", len(raw))
	}
	n := len(raw) / 2
	size := int(math.Sqrt(float64(n)))
	if size < 2 || size*size != n {
		return nil, errors.Errorf("read hgt: %d samples is not a square grid", n)
	}

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(int16(binary.BigEndian.Uint16(raw[2*i:])))
	}

	g, err := NewGrid(size, size, samples)
	if err != nil {
		return nil, errors.Wrap(err, "read hgt")
	}
	g.NoData = hgtNoData
	return g, nil
}
