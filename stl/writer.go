// Package stl provides a streaming binary STL file writer.
//
// Binary STL is an 80-byte header, a little-endian uint32 facet count, and
// one 50-byte record per facet (normal, three vertices, two attribute
// bytes). The count has to be known up front, which fights with streaming;
// the writer resolves this by writing a provisional count at creation and
// patching the real one into the header at Finalize.
package stl

import (
	"bufio"
	"encoding/binary"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/oliver-rew/topo-tool/mesh"
)

const (
	headerSize = 80
	recordSize = 50
)

// Writer streams facets into a binary STL file. It must be finalized exactly
// once on every path out of its scope; until then the on-disk facet count is
// only the prediction given at creation.
type Writer struct {
	f   *os.File
	buf *bufio.Writer

	written   uint32
	finalized bool
	finalErr  error
}

// Create opens path and writes the 80-byte zero header followed by the
// predicted facet count. The prediction may be anything, including 0; the
// true count replaces it at Finalize.
func Create(path string, predicted uint32) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create stl")
	}

	w := &Writer{f: f, buf: bufio.NewWriterSize(f, 1<<16)}

	var header [headerSize + 4]byte
	binary.LittleEndian.PutUint32(header[headerSize:], predicted)
	if _, err := w.buf.Write(header[:]); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "write stl header")
	}
	return w, nil
}

// Add computes t's normal and appends its 50-byte facet record. Degenerate
// triangles are written as-is, NaN normal and all.
func (w *Writer) Add(t mesh.Triangle) error {
	if w.finalized {
		return errors.New("add facet: writer already finalized")
	}

	var rec [recordSize]byte
	putVertex(rec[0:], mesh.Normal(t))
	putVertex(rec[12:], t[0])
	putVertex(rec[24:], t[1])
	putVertex(rec[36:], t[2])
	// rec[48:50] are the unused attribute bytes, left zero.

	if _, err := w.buf.Write(rec[:]); err != nil {
		return errors.Wrap(err, "write facet")
	}
	w.written++
	return nil
}

// Count returns the number of facets written so far.
func (w *Writer) Count() uint32 {
	return w.written
}

// Finalize flushes buffered records, overwrites the header's facet count
// with the true record count, and closes the file. It is safe to call more
// than once; subsequent calls return the first outcome without touching the
// file again, so it can back both a defer and an explicit error check.
func (w *Writer) Finalize() error {
	if w.finalized {
		return w.finalErr
	}
	w.finalized = true
	w.finalErr = w.finalize()
	return w.finalErr
}

func (w *Writer) finalize() error {
	if err := w.buf.Flush(); err != nil {
		w.f.Close()
		return errors.Wrap(err, "flush stl")
	}

	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], w.written)
	if _, err := w.f.WriteAt(count[:], headerSize); err != nil {
		w.f.Close()
		return errors.Wrap(err, "patch facet count")
	}

	return errors.Wrap(w.f.Close(), "close stl")
}

func putVertex(b []byte, v mesh.Vertex) {
	for i, c := range v {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(c))
	}
}
