package nn

// Linear-congruential parameters shared with the device-side generator.
// Changing either value breaks stream compatibility with compiled kernels.
const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

// Unit-interval scale factors, one per target precision. The literals are the
// contract: kernel code bakes in the same rounding of 1/(2^32-1), so they must
// never be recomputed at runtime.
const (
	unitScale32 float32 = 2.3283064e-10
	unitScale64 float64 = 2.328306437080797e-10
)

// laneStateWords is the number of state words each compute lane carries.
const laneStateWords = 8

// LaneState is the seed-derived generator state for one compute lane.
type LaneState [laneStateWords]uint32

// DeriveLaneState expands a seed into the per-lane LCG state. Distinct seeds
// yield independent streams, so any number of lanes can derive their state
// concurrently with no coordination. The same seed always reproduces the
// same state; regenerate rather than mutate.
func DeriveLaneState(seed uint32) LaneState {
	var s LaneState
	s[0] = seed
	for i := 1; i < laneStateWords; i++ {
		s[i] = lcgMultiplier*s[i-1] + lcgIncrement
	}
	return s
}

// ToUnitFloat32 scales a raw generator word into the unit interval.
func ToUnitFloat32(x uint32) float32 {
	return float32(x) * unitScale32
}

// ToUnitFloat64 scales a raw generator word into the unit interval at double
// precision.
func ToUnitFloat64(x uint32) float64 {
	return float64(x) * unitScale64
}
