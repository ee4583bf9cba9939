package biquad

import (
	"github.com/r-kishimoto-eisys/audioeq/dsp/core"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Passthrough returns the identity coefficient set {1,0,0,0,0}.
func Passthrough() Coefficients {
	return Coefficients{B0: 1}
}

// IsPassthrough reports whether c is exactly the identity set.
func (c *Coefficients) IsPassthrough() bool {
	return c.B0 == 1 && c.B1 == 0 && c.B2 == 0 && c.A1 == 0 && c.A2 == 0
}

// Tick advances the Direct Form II Transposed recursion one sample against
// caller-owned delay registers. The registers are flushed to exact zero when
// they decay below the denormal threshold, so long silent stretches do not
// fall onto slow hardware paths.
func (c *Coefficients) Tick(x float64, d *[2]float64) float64 {
	y := c.B0*x + d[0]
	d[0] = core.FlushDenormals(c.B1*x - c.A1*y + d[1])
	d[1] = core.FlushDenormals(c.B2*x - c.A2*y)

	return y
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form II Transposed processing.
type Section struct {
	Coefficients

	d [2]float64
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	return s.Coefficients.Tick(x, &s.d)
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	c := s.Coefficients
	d := s.d

	for i, x := range buf {
		buf[i] = c.Tick(x, &d)
	}

	s.d = d
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
// Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	c := s.Coefficients
	d := s.d

	for i, x := range src {
		dst[i] = c.Tick(x, &d)
	}

	s.d = d
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.d = [2]float64{}
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return s.d
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d = state
}
