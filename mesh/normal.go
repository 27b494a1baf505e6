package mesh

import "math"

// Normal computes the unit vector perpendicular to t, pointing away from the
// outer face per the right-hand rule over t's vertex order.
//
// Every operation is float32: edges, cross product, and normalization.
// Degenerate (zero-area) triangles have a zero cross product and yield NaN
// components; callers that care must check the input geometry.
func Normal(t Triangle) Vertex {
	// first edge
	e1x := t[0][0] - t[1][0]
	e1y := t[0][1] - t[1][1]
	e1z := t[0][2] - t[1][2]

	// second edge
	e2x := t[1][0] - t[2][0]
	e2y := t[1][1] - t[2][1]
	e2z := t[1][2] - t[2][2]

	// cross product
	cpx := e1y*e2z - e1z*e2y
	cpy := e1z*e2x - e1x*e2z
	cpz := e1x*e2y - e1y*e2x

	mag := float32(math.Sqrt(float64(cpx*cpx + cpy*cpy + cpz*cpz)))
	return Vertex{cpx / mag, cpy / mag, cpz / mag}
}
