package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalKnownValues(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want Vertex
	}{
		{
			name: "flat triangle in xy plane",
			tri:  Triangle{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}},
			want: Vertex{0, 0, -1},
		},
		{
			name: "flat triangle opposite winding",
			tri:  Triangle{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			want: Vertex{0, 0, 1},
		},
		{
			name: "first facet of the 2x2 grid",
			tri:  Triangle{{0, 0, 10}, {0, -1, 30}, {1, 0, 20}},
			// cross product (-10, 20, 1), magnitude sqrt(501)
			want: Vertex{-0.4467670, 0.8935341, 0.0446767},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normal(tt.tri)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-6)
			}
		})
	}
}

func TestNormalUnitLength(t *testing.T) {
	tris := []Triangle{
		{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}},
		{{0, 0, 10}, {0, -1, 30}, {1, 0, 20}},
		{{1, -1, 40}, {1, 0, 20}, {0, -1, 30}},
		{{-5, 2, 0.25}, {3, 3, 3}, {0.5, -91, 17}},
		{{1e6, 1e6, 1}, {1e6, 1e6 + 1, 2}, {1e6 + 1, 1e6, 3}},
	}

	for _, tri := range tris {
		n := Normal(tri)
		mag := math.Sqrt(float64(n[0])*float64(n[0]) +
			float64(n[1])*float64(n[1]) +
			float64(n[2])*float64(n[2]))
		assert.InDelta(t, 1.0, mag, 1e-6, "triangle %v", tri)
	}
}

func TestNormalDegenerate(t *testing.T) {
	// Zero-area triangles have a zero cross product; the unguarded divide
	// yields NaN. This pins the documented behavior so a future guard is a
	// deliberate change, not an accident.
	tri := Triangle{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}}
	n := Normal(tri)
	for i := range n {
		assert.True(t, math.IsNaN(float64(n[i])), "component %d", i)
	}
}

func TestClamp32(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float32
	}{
		{"small value passes through", 1.5, 1.5},
		{"negative passes through", -123.25, -123.25},
		{"zero", 0, 0},
		{"overflow clamps to zero", 1e39, 0},
		{"negative overflow clamps to zero", -1e39, 0},
		{"infinity clamps to zero", math.Inf(1), 0},
		{"large but representable survives", 1e38, 1e38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp32(tt.in))
		})
	}
}
