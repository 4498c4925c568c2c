// Package wfc implements the solver: propagation, entropy-driven
// observation, run control, retry policies, and pre-observation forbid
// hooks. It consumes a pattern.GlobalStats and a wave.Wave — built by the
// overlap package, or supplied directly — and drives the Wave from "every
// pattern possible everywhere" to a completed or contradicted state.
package wfc
