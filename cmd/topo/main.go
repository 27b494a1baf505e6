// Command topo converts a single-band elevation raster into a triangulated
// surface mesh in binary STL format.
//
// Supported inputs are ESRI ASCII grids (.asc), SRTM tiles (.hgt), and
// grayscale image heightmaps (.png, .tif). The raster may be cropped to a
// pixel window and resampled before triangulation; crop runs first because
// it is the cheaper of the two.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"

	"github.com/oliver-rew/topo-tool/heightmap"
	"github.com/oliver-rew/topo-tool/mesh"
	"github.com/oliver-rew/topo-tool/stl"
)

func main() {
	var cropSpec string
	var resample float64
	var zscale float64
	var grouped bool
	var stats bool
	var force bool
	var quiet bool

	flag.StringVar(&cropSpec, "crop", "", "pixel window to keep, as x,y,w,h")
	flag.Float64Var(&resample, "resample", 0, "resample factor: 0.5 halves each dimension, 2.0 doubles")
	flag.Float64Var(&zscale, "zscale", 1.0, "additional multiplier on the vertical scale")
	flag.BoolVar(&grouped, "grouped", false, "build the mesh in memory and write vertex-shared STL")
	flag.BoolVar(&stats, "stats", false, "log elevation and mesh statistics")
	flag.BoolVar(&force, "force", false, "convert unprojected/unitless sources anyway")
	flag.BoolVar(&quiet, "q", false, "suppress log output")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <input raster> <output.stl>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
	}

	if quiet {
		log.SetOutput(io.Discard)
	}

	essentials.Must(run(flag.Arg(0), flag.Arg(1), cropSpec, resample, zscale, grouped, stats, force))
}

func run(inPath, outPath, cropSpec string, resample, zscale float64, grouped, stats, force bool) error {
	grid, err := heightmap.Read(inPath)
	if err != nil {
		return err
	}
	log.Printf("loaded %dx%d raster, nodata %v", grid.Width, grid.Height, grid.NoData)

	if cropSpec != "" {
		x, y, w, h, err := parseCrop(cropSpec)
		if err != nil {
			return err
		}
		log.Printf("cropping to %dx%d window at (%d,%d)", w, h, x, y)
		if grid, err = grid.Crop(x, y, w, h); err != nil {
			return err
		}
	}

	if resample != 0 {
		log.Printf("resampling at %v from (%d, %d)", resample, grid.Width, grid.Height)
		if grid, err = grid.Resample(resample); err != nil {
			return err
		}
		log.Printf("new (width, height): (%d, %d)", grid.Width, grid.Height)
	}

	// Unprojected sources (degree or pixel spacing with elevations in
	// meters) produce badly stretched meshes unless the caller compensates
	// with -zscale, so refuse them by default.
	if !grid.Projected {
		warning := "source has no projected linear units; output will likely be " +
			"badly scaled. Re-export the raster in a projected CRS, or pass " +
			"-force (probably with -zscale) to convert anyway"
		if !force {
			return errors.New(warning)
		}
		log.Print("WARNING: ", warning)
	}

	grid.ZScale *= zscale
	log.Printf("xscale: %v yscale: %v zscale: %v", grid.XScale, grid.YScale, grid.ZScale)

	if stats {
		s := grid.Stats()
		log.Printf("elevation min %v max %v mean %.2f (%d valid samples)", s.Min, s.Max, s.Mean, s.Valid)
	}

	scanner := mesh.NewScanner(grid)
	step := essentials.MaxInt(1, (grid.Height-1)/10)
	scanner.OnRow = func(row, total int) {
		if row%step == 0 {
			log.Printf("writing STL: %d%%", 100*row/total)
		}
	}

	if grouped {
		err = writeGrouped(outPath, scanner, stats)
	} else {
		err = writeStreaming(outPath, scanner, stats)
	}
	if err != nil {
		return err
	}
	log.Println("wrote", outPath)
	return nil
}

// writeStreaming sends each triangle straight to the STL writer, keeping
// memory use independent of mesh size.
func writeStreaming(path string, scanner *mesh.Scanner, stats bool) error {
	w, err := stl.Create(path, scanner.FacetEstimate())
	if err != nil {
		return err
	}
	defer w.Finalize()

	for {
		t, ok := scanner.Next()
		if !ok {
			break
		}
		if err := w.Add(t); err != nil {
			return err
		}
	}
	if err := w.Finalize(); err != nil {
		return err
	}
	if stats {
		log.Printf("mesh: %d facets", w.Count())
	}
	return nil
}

// writeGrouped materializes the whole mesh in memory and lets model3d emit
// vertex-shared STL. Uses more memory than streaming but produces smaller
// files for meshes with many shared vertices.
func writeGrouped(path string, scanner *mesh.Scanner, stats bool) error {
	m := mesh.Collect(scanner)
	if stats {
		log.Printf("mesh: %d facets, min %v, max %v", len(m.TriangleSlice()), m.Min(), m.Max())
	}
	return errors.Wrap(m.SaveGroupedSTL(path), "write grouped stl")
}

func parseCrop(spec string) (x, y, w, h int, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0, errors.Errorf("crop: want x,y,w,h, got %q", spec)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		if vals[i], err = strconv.Atoi(strings.TrimSpace(p)); err != nil {
			return 0, 0, 0, 0, errors.Wrapf(err, "crop %q", spec)
		}
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}
