package mesh

import "math"

// Clamp32 narrows v to float32, substituting 0 when the narrowed value
// overflows to an infinity. Very large scale/index products can exceed the
// float32 range even though the float64 arithmetic was fine; an infinite
// coordinate would poison the whole mesh, so it is dropped to the origin
// instead.
func Clamp32(v float64) float32 {
	f := float32(v)
	if math.IsInf(float64(f), 0) {
		return 0
	}
	return f
}
