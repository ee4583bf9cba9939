// Package buffer manages reusable sample storage for block-based audio
// processing. A Buffer wraps a []float64 with length and capacity
// management; a Pool recycles Buffers so per-block allocation drops to
// zero in steady state. Processing APIs take plain slices, obtained via
// Samples.
package buffer
