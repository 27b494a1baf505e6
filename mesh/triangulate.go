package mesh

import "github.com/oliver-rew/topo-tool/heightmap"

// Scanner lazily triangulates an elevation grid, one cell at a time in
// row-major order. A WxH grid has (W-1)x(H-1) cells and each cell yields
// zero, one, or two triangles depending on which corners are no-data.
//
// A Scanner is single-use: once Next returns false it stays exhausted.
type Scanner struct {
	// OnRow, if set, is called once at the start of each cell row with the
	// row index and total row count. It exists for progress reporting and
	// has no effect on output.
	OnRow func(row, total int)

	grid   *heightmap.Grid
	mw, mh int
	x, y   int

	queue [2]Triangle
	n     int
}

// NewScanner creates a Scanner over g. Grids narrower than 2 samples in
// either dimension have no cells and yield an empty mesh.
func NewScanner(g *heightmap.Grid) *Scanner {
	return &Scanner{
		grid: g,
		mw:   g.Width - 1,
		mh:   g.Height - 1,
	}
}

// FacetEstimate predicts the facet count of a fully valid grid, two
// triangles per cell. No-data samples make the true count lower; the STL
// writer corrects the header either way.
func (s *Scanner) FacetEstimate() uint32 {
	if s.mw < 1 || s.mh < 1 {
		return 0
	}
	return uint32(s.mw) * uint32(s.mh) * 2
}

// Next returns the next triangle in scan order, or false when the grid is
// exhausted.
func (s *Scanner) Next() (Triangle, bool) {
	for s.n == 0 {
		if s.y >= s.mh || s.mw < 1 {
			return Triangle{}, false
		}
		if s.x == 0 && s.OnRow != nil {
			s.OnRow(s.y, s.mh)
		}
		s.scanCell(s.x, s.y)
		if s.x++; s.x >= s.mw {
			s.x = 0
			s.y++
		}
	}
	t := s.queue[0]
	s.queue[0] = s.queue[1]
	s.n--
	return t, true
}

// scanCell emits the triangles for one cell into the queue.
//
// Corner samples a (x, y), b (x, y+1), c (x+1, y), and d (x+1, y+1) split
// the cell into two facets:
//
//	a-c   a-c     c
//	|/| = |/  +  /|
//	b-d   b     b-d
//
// Points b and c are shared by both facets, so if either is no-data the
// whole cell is skipped.
func (s *Scanner) scanCell(x, y int) {
	g := s.grid

	av := g.Sample(y, x)
	bv := g.Sample(y+1, x)
	cv := g.Sample(y, x+1)
	dv := g.Sample(y+1, x+1)

	if g.IsNoData(bv) || g.IsNoData(cv) {
		return
	}

	b := s.vertex(x, y+1, bv)
	c := s.vertex(x+1, y, cv)

	if !g.IsNoData(av) {
		a := s.vertex(x, y, av)
		s.queue[s.n] = Triangle{a, b, c}
		s.n++
	}
	if !g.IsNoData(dv) {
		d := s.vertex(x+1, y+1, dv)
		s.queue[s.n] = Triangle{d, c, b}
		s.n++
	}
}

// vertex maps a grid position and elevation to output coordinates. The math
// runs in float64 and narrows at the end, clamping float32 overflow to 0.
func (s *Scanner) vertex(col, row int, elev float64) Vertex {
	g := s.grid
	return Vertex{
		Clamp32(g.XScale * float64(col)),
		Clamp32(g.YScale * float64(row)),
		Clamp32(g.ZScale * elev),
	}
}
