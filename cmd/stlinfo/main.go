// Command stlinfo summarizes a binary STL file: facet counts, bounding box,
// and total surface area. It reads every record on disk, so a header count
// left stale by an interrupted writer is reported instead of trusted.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"

	"github.com/oliver-rew/topo-tool/mesh"
	"github.com/oliver-rew/topo-tool/stl"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "<mesh.stl>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}

	f, err := os.Open(flag.Arg(0))
	essentials.Must(err)
	defer f.Close()

	file, err := stl.Read(f)
	essentials.Must(err)

	fmt.Println("facets (header):", file.HeaderCount)
	fmt.Println("facets (actual):", len(file.Facets))
	if uint32(len(file.Facets)) != file.HeaderCount {
		fmt.Println("WARNING: header facet count does not match records on disk")
	}
	if len(file.Facets) == 0 {
		return
	}

	min := mesh.Coord3D(file.Facets[0].Tri[0])
	max := min
	var area float64
	for _, facet := range file.Facets {
		t := &model3d.Triangle{
			mesh.Coord3D(facet.Tri[0]),
			mesh.Coord3D(facet.Tri[1]),
			mesh.Coord3D(facet.Tri[2]),
		}
		area += t.Area()
		for _, c := range t {
			min = min.Min(c)
			max = max.Max(c)
		}
	}
	if math.IsNaN(area) {
		fmt.Println("WARNING: degenerate facets present, surface area is NaN")
	}
	fmt.Printf("bounds: %v to %v\n", min, max)
	fmt.Printf("surface area: %f\n", area)
}
