// Package orbit provides the two-body model behind orbitsim.
//
// A fixed [Planet] attracts any number of independent [Satellite] values.
// Each frame a [World] advances every satellite by one semi-implicit Euler
// step and drops the ones that left the visible bounds or hit the planet:
//
//   - [Step]: one fixed-size integration step (velocity first, then position)
//   - [Launcher]: the two-press launch gesture (idle / armed)
//   - [World]: owns the planet, the live satellites and the launcher
//
// # Example
//
//	w := orbit.NewWorld(orbit.DefaultParams())
//	w.Press(orbit.Point{X: 700, Y: 400})
//	w.Press(orbit.Point{X: 700, Y: 300})
//	w.Tick()
//
// # Degenerate input
//
// A satellite exactly at the planet centre has distance zero. [Step] does not
// guard against this and produces Inf/NaN components. In practice the
// collision cull removes a satellite long before it reaches the centre.
//
// # Thread Safety
//
// World is NOT thread-safe. It is owned by a single frame loop.
package orbit
