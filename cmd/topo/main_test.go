package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliver-rew/topo-tool/stl"
)

// 3x2 grid with one void corner: the left cell keeps both facets, the right
// cell loses its d facet, so a full run writes 3 facets.
const ascFixture = `ncols 3
nrows 2
cellsize 10.0
NODATA_value -9999
1 2 3
4 5 -9999
`

func writeFixture(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "dem.asc")
	require.NoError(t, os.WriteFile(path, []byte(ascFixture), 0644))
	return path
}

func readSTL(t *testing.T, path string) *stl.File {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	file, err := stl.Read(f)
	require.NoError(t, err)
	return file
}

func TestRunStreaming(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.stl")

	err := run(writeFixture(t, dir), out, "", 0, 1, false, false, false)
	require.NoError(t, err)

	file := readSTL(t, out)
	assert.Equal(t, uint32(3), file.HeaderCount)
	assert.Len(t, file.Facets, 3)
}

func TestRunGrouped(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.stl")

	err := run(writeFixture(t, dir), out, "", 0, 1, true, false, false)
	require.NoError(t, err)

	file := readSTL(t, out)
	assert.Len(t, file.Facets, 3)
	assert.Equal(t, uint32(len(file.Facets)), file.HeaderCount)
}

func TestRunCrop(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.stl")

	// Keep only the left 2x2 window: one fully valid cell, two facets.
	err := run(writeFixture(t, dir), out, "0,0,2,2", 0, 1, false, false, false)
	require.NoError(t, err)
	assert.Len(t, readSTL(t, out).Facets, 2)

	err = run(writeFixture(t, dir), out, "9,9,2,2", 0, 1, false, false, false)
	assert.Error(t, err, "crop window outside the raster must fail")

	err = run(writeFixture(t, dir), out, "1,2", 0, 1, false, false, false)
	assert.Error(t, err, "malformed crop spec must fail")
}

func TestRunGateRejectsUnprojected(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "dem.png")
	out := filepath.Join(dir, "out.stl")

	img := image.NewGray16(image.Rect(0, 0, 2, 2))
	img.SetGray16(0, 0, color.Gray16{Y: 100})
	img.SetGray16(1, 1, color.Gray16{Y: 200})
	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	err = run(in, out, "", 0, 1, false, false, false)
	assert.Error(t, err, "unprojected source without -force must abort")

	err = run(in, out, "", 0, 1, false, false, true)
	require.NoError(t, err, "-force must override the gate")
	assert.Len(t, readSTL(t, out).Facets, 2)
}

func TestParseCrop(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{"valid", "1,2,3,4", false},
		{"valid with spaces", "1, 2, 3, 4", false},
		{"too few fields", "1,2,3", true},
		{"too many fields", "1,2,3,4,5", true},
		{"non-numeric", "a,b,c,d", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h, err := parseCrop(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, [4]int{1, 2, 3, 4}, [4]int{x, y, w, h})
		})
	}
}
