// Package analysis extracts orbital characteristics from recorded runs.
//
// [DominantPeriod] estimates the orbital period of a satellite from its
// radius series: a bound orbit makes the distance to the planet oscillate
// once per revolution, so the strongest non-zero frequency bin of the
// series gives the period in frames.
//
// [KeplerPeriod] gives the analytic period for comparison.
package analysis
