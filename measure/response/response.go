// Package response measures the realized magnitude response of a biquad
// cascade by running an impulse through the actual recursion and taking its
// FFT. Unlike the analytic per-section response, this captures what the
// processing path really does, normalization and all, so it doubles as a
// verification tool for the equalizer.
package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/r-kishimoto-eisys/audioeq/dsp/core"
	"github.com/r-kishimoto-eisys/audioeq/dsp/filter/biquad"
)

// Errors returned by Measure.
var (
	ErrEmptyCascade      = errors.New("response: cascade has no sections")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidSize       = errors.New("response: FFT size must be at least 16")
)

const minFFTSize = 16

// Result holds one measured magnitude response. Bins cover DC through
// Nyquist inclusive.
type Result struct {
	SampleRate  float64
	Frequencies []float64 // bin center frequencies in Hz
	Magnitude   []float64 // linear magnitude per bin
}

// Measure runs a unit impulse through the cascade and returns the magnitude
// of its FFT. fftSize is rounded up to the next power of two; larger sizes
// give finer frequency resolution. The cascade's delay state is not touched:
// measurement runs on a private copy.
func Measure(coeffs []biquad.Coefficients, sampleRate float64, fftSize int) (*Result, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyCascade
	}
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, ErrInvalidSampleRate
	}
	if fftSize < minFFTSize {
		return nil, ErrInvalidSize
	}
	fftSize = nextPowerOf2(fftSize)

	chain := biquad.NewChain(coeffs)
	impulse := make([]float64, fftSize)
	impulse[0] = 1
	chain.ProcessBlock(impulse)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	timeDomain := make([]complex128, fftSize)
	for i, v := range impulse {
		timeDomain[i] = complex(v, 0)
	}
	freqDomain := make([]complex128, fftSize)
	if err := plan.Forward(freqDomain, timeDomain); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	// Real input: keep DC through Nyquist, drop the mirrored half.
	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(freqDomain[i])
		im[i] = imag(freqDomain[i])
	}

	r := &Result{
		SampleRate:  sampleRate,
		Frequencies: make([]float64, bins),
		Magnitude:   make([]float64, bins),
	}
	vecmath.Magnitude(r.Magnitude, re, im)
	for i := range r.Frequencies {
		r.Frequencies[i] = float64(i) * sampleRate / float64(fftSize)
	}

	return r, nil
}

// MagnitudeDBAt returns the measured response in dB at freqHz, linearly
// interpolated between the two surrounding bins. Frequencies outside
// [0, Nyquist] are clamped to the edge bins.
func (r *Result) MagnitudeDBAt(freqHz float64) float64 {
	n := len(r.Magnitude)
	if n == 0 {
		return math.Inf(-1)
	}
	if n == 1 {
		return core.LinearToDB(r.Magnitude[0])
	}

	binWidth := r.Frequencies[1] - r.Frequencies[0]
	pos := freqHz / binWidth
	if pos <= 0 {
		return core.LinearToDB(r.Magnitude[0])
	}
	if pos >= float64(n-1) {
		return core.LinearToDB(r.Magnitude[n-1])
	}

	lo := int(pos)
	frac := pos - float64(lo)
	mag := r.Magnitude[lo]*(1-frac) + r.Magnitude[lo+1]*frac
	return core.LinearToDB(mag)
}

// PeakDB returns the largest bin magnitude in dB.
func (r *Result) PeakDB() float64 {
	peak := 0.0
	for _, m := range r.Magnitude {
		if m > peak {
			peak = m
		}
	}
	return core.LinearToDB(peak)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
