// Package design derives biquad coefficients for the peaking equalizer.
//
// The designer follows the RBJ cookbook peaking-EQ formula and hardens it
// for arbitrary user input: gain, frequency and Q are clamped to safe
// ranges, and any request that would yield a degenerate or unstable filter
// collapses to the identity passthrough instead of an error. An inaudible
// band is always preferable to an audible runaway, so nothing here ever
// fails — the worst case is a biquad that does nothing.
package design
