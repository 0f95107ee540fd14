package analysis

import "math"

// KeplerPeriod returns the period, in frames, of a bound two-body orbit with
// specific energy e around a body with gravitational parameter mu (G*M).
// Unbound orbits (e >= 0) return 0.
func KeplerPeriod(e, mu float64) float64 {
	if e >= 0 || mu <= 0 {
		return 0
	}
	a := -mu / (2 * e)
	return 2 * math.Pi * math.Sqrt(a*a*a/mu)
}
