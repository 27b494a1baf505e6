package heightmap

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ESRI's documented default when a grid omits NODATA_value.
const ascDefaultNoData = -9999

// ReadASC reads an ESRI ASCII grid: a short key/value header (ncols, nrows,
// cellsize, optionally xllcorner/yllcorner/NODATA_value) followed by
// whitespace-separated samples in row-major order, north row first.
//
// cellsize becomes XScale and -YScale; the corner coordinates are ignored
// because meshes are emitted with their origin at (0,0,0).
func ReadASC(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	header := map[string]float64{}
	var first string
	for sc.Scan() {
		word := sc.Text()
		if _, err := strconv.ParseFloat(word, 64); err == nil {
			// First bare number is the first sample.
			first = word
			break
		}
		key := strings.ToLower(word)
		if !sc.Scan() {
			return nil, errors.Errorf("read asc: missing value for %q", word)
		}
		val, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "read asc: header %q", word)
		}
		header[key] = val
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read asc")
	}

	ncols := int(header["ncols"])
	nrows := int(header["nrows"])
	if ncols < 1 || nrows < 1 {
		return nil, errors.Errorf("read asc: invalid dimensions %dx%d", ncols, nrows)
	}
	cellsize, ok := header["cellsize"]
	if !ok || cellsize <= 0 {
		return nil, errors.New("read asc: missing or invalid cellsize")
	}
	nodata := float64(ascDefaultNoData)
	if v, ok := header["nodata_value"]; ok {
		nodata = v
	}

	samples := make([]float64, 0, ncols*nrows)
	if first != "" {
		v, _ := strconv.ParseFloat(first, 64)
		samples = append(samples, v)
	}
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "read asc: sample %d", len(samples))
		}
		samples = append(samples, v)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read asc")
	}
	if len(samples) != ncols*nrows {
		return nil, errors.Errorf("read asc: %d samples for %dx%d grid", len(samples), ncols, nrows)
	}

	g, err := NewGrid(ncols, nrows, samples)
	if err != nil {
		return nil, errors.Wrap(err, "read asc")
	}
	g.NoData = nodata
	g.XScale = cellsize
	g.YScale = -cellsize
	g.Projected = true
	return g, nil
}
