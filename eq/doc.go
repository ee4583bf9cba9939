// Package eq implements a five-band peaking equalizer for real-time audio.
//
// An [Engine] owns the preset selection, the enabled flag and the per
// (channel, band) filter state. Control code mutates presets, enabled
// state and stream format from any goroutine; the audio callback calls
// [Engine.ProcessPlanar] or [Engine.ProcessInterleaved], which never
// allocate, lock or block. Coefficient changes are published as immutable
// snapshots through an atomic pointer, so the audio side observes preset
// switches at buffer boundaries without ever stalling on the control side.
//
// Every band is an RBJ peaking biquad designed by dsp/filter/design; any
// degenerate parameter combination collapses to a passthrough band rather
// than an error, so no control-side input can break the audio path.
package eq
