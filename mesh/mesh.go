// Package mesh triangulates elevation grids into 3-D surface meshes.
//
// All emitted geometry is 32-bit float. Normal computation deliberately
// stays in float32 arithmetic end to end so that output matches comparable
// mesh tools byte for byte.
package mesh

// Vertex is a point in output space.
type Vertex [3]float32

// Triangle is an ordered vertex triple. The order determines the facet
// normal direction via the right-hand rule and must not be permuted.
type Triangle [3]Vertex
