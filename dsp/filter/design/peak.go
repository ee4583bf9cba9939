package design

import (
	"math"

	"github.com/r-kishimoto-eisys/audioeq/dsp/core"
	"github.com/r-kishimoto-eisys/audioeq/dsp/filter/biquad"
)

// Parameter bounds applied to every design request. Inputs outside these
// ranges are clamped, not rejected.
const (
	MinGainDB = -15.0
	MaxGainDB = 15.0
	MinQ      = 0.2
	MaxQ      = 5.0
)

const (
	// Gains closer to flat than this produce the exact identity, which is
	// both cheaper and guarantees bit transparency at zero gain.
	flatGainEpsilonDB = 0.01

	// Center frequencies are capped below Nyquist; at the boundary the
	// formula degenerates and the poles approach the unit circle.
	maxFreqNyquistRatio = 0.9

	// Denominator magnitudes below this would amplify rounding error into
	// garbage coefficients.
	minA0 = 1e-10

	// Normalized coefficients of a clamped peaking filter stay within a few
	// units of 1; anything near this bound means the inputs were degenerate.
	maxCoefficientMagnitude = 100.0
)

// Peak designs an RBJ peaking-EQ biquad at freqHz with gain in dB and
// quality factor q against the given sample rate.
//
// Every failure mode — non-finite input, frequency outside (0, Nyquist),
// a near-zero denominator, poles on or outside the unit circle — returns
// [biquad.Passthrough] rather than an error. Callers can hand this function
// any preset or user input without validation.
func Peak(freqHz, gainDB, q, sampleRate float64) biquad.Coefficients {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return biquad.Passthrough()
	}

	if !core.IsFinite(freqHz) || !core.IsFinite(gainDB) || !core.IsFinite(q) {
		return biquad.Passthrough()
	}

	if math.Abs(gainDB) < flatGainEpsilonDB {
		return biquad.Passthrough()
	}

	gainDB = core.Clamp(gainDB, MinGainDB, MaxGainDB)
	q = core.Clamp(q, MinQ, MaxQ)

	nyquist := sampleRate / 2
	if freqHz > maxFreqNyquistRatio*nyquist {
		freqHz = maxFreqNyquistRatio * nyquist
	}

	w0 := 2 * math.Pi * freqHz / sampleRate
	if w0 <= 0 || w0 >= math.Pi {
		return biquad.Passthrough()
	}

	a := math.Pow(10, gainDB/40)
	sw := math.Sin(w0)
	cw := math.Cos(w0)
	alpha := sw / (2 * q)

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	if math.Abs(a0) < minA0 {
		return biquad.Passthrough()
	}

	c := biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}

	if !c.IsStable() {
		return biquad.Passthrough()
	}

	for _, v := range [5]float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.Abs(v) > maxCoefficientMagnitude {
			return biquad.Passthrough()
		}
	}

	return c
}
