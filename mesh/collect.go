package mesh

import "github.com/unixpickle/model3d/model3d"

// Collect drains a Scanner into an in-memory model3d mesh. This trades the
// streaming writer's bounded memory for access to model3d's tooling, e.g.
// vertex-shared ("grouped") STL output and surface statistics.
func Collect(s *Scanner) *model3d.Mesh {
	m := model3d.NewMesh()
	for {
		t, ok := s.Next()
		if !ok {
			return m
		}
		m.Add(&model3d.Triangle{
			Coord3D(t[0]),
			Coord3D(t[1]),
			Coord3D(t[2]),
		})
	}
}

// Coord3D converts a float32 vertex to a model3d coordinate.
func Coord3D(v Vertex) model3d.Coord3D {
	return model3d.Coord3D{
		X: float64(v[0]),
		Y: float64(v[1]),
		Z: float64(v[2]),
	}
}
