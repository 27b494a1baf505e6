package stl

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/oliver-rew/topo-tool/mesh"
)

// Facet is one decoded 50-byte STL record.
type Facet struct {
	Normal mesh.Vertex
	Tri    mesh.Triangle
}

// File is a fully decoded binary STL.
type File struct {
	// HeaderCount is the facet count claimed by the header. A writer that
	// died before finalizing leaves a prediction here, so it can disagree
	// with len(Facets).
	HeaderCount uint32

	Facets []Facet
}

// Read decodes a binary STL stream in full. Unlike the header-trusting
// readers in most tools, it reads records until EOF so that a stale header
// count is reported rather than hiding or inventing facets. A partial
// trailing record is an error.
func Read(r io.Reader) (*File, error) {
	var header [headerSize + 4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, errors.Wrap(err, "read stl header")
	}
	f := &File{HeaderCount: binary.LittleEndian.Uint32(header[headerSize:])}

	var rec [recordSize]byte
	for {
		_, err := io.ReadFull(r, rec[:])
		if err == io.EOF {
			return f, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read facet %d", len(f.Facets))
		}

		var facet Facet
		facet.Normal = getVertex(rec[0:])
		facet.Tri[0] = getVertex(rec[12:])
		facet.Tri[1] = getVertex(rec[24:])
		facet.Tri[2] = getVertex(rec[36:])
		f.Facets = append(f.Facets, facet)
	}
}

func getVertex(b []byte) mesh.Vertex {
	var v mesh.Vertex
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return v
}
