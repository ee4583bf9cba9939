// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain]. Delay registers are flushed to exact zero below the
// denormal threshold so recursive tails never hit slow hardware paths.
//
// This package provides the processing runtime only. Coefficient design
// (the guarded peaking-EQ designer) lives in dsp/filter/design.
package biquad
