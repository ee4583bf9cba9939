package eq

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/r-kishimoto-eisys/audioeq/dsp/core"
	"github.com/r-kishimoto-eisys/audioeq/dsp/filter/biquad"
	"github.com/r-kishimoto-eisys/audioeq/dsp/filter/design"
)

const (
	// bandQ is the quality factor shared by all preset bands. Presets
	// specify frequency/gain pairs only.
	bandQ = 1.0

	// maxStageOutput bounds one biquad stage's output. A value beyond this
	// means the recursion has been poisoned (by a non-finite upstream
	// sample that slipped through, or a mid-swap glitch); the stage's
	// registers are reset and the stage input is passed along instead.
	maxStageOutput = 50.0

	// sampleRateEpsilonHz: rate "changes" smaller than this are
	// renegotiation noise and do not trigger a recompute.
	sampleRateEpsilonHz = 0.5

	defaultSampleRate = 44100.0
	defaultChannels   = 2
)

// stateGrid holds the delay registers for every (channel, band) pair.
// Registers are mutated exclusively by the audio context; the control
// context replaces the whole grid (never individual registers) when a
// reset is required, so the reset lands at a buffer boundary.
type stateGrid struct {
	channels int
	d        [][2]float64 // indexed ch*NumBands + band
}

func newStateGrid(channels int) *stateGrid {
	return &stateGrid{
		channels: channels,
		d:        make([][2]float64, channels*NumBands),
	}
}

// program is one immutable published configuration: the coefficient set
// the audio context should run, and the state grid it should run against.
// The audio context loads it once per buffer; the control context builds a
// fresh program for every change and swaps it in atomically.
type program struct {
	coeffs     [NumBands]biquad.Coefficients
	grid       *stateGrid
	sampleRate float64
}

// Event reports a control-side change to an observer, for UI sync.
type Event struct {
	Preset  Preset
	Enabled bool
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithChannels sets the initial channel count. Default is 2.
func WithChannels(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.channels = n
		}
	}
}

// WithPreset sets the initial preset. Default is PresetOff.
func WithPreset(p Preset) Option {
	return func(e *Engine) {
		if p.Valid() {
			e.preset = p
		}
	}
}

// WithNotify registers a callback invoked on the control goroutine after
// every preset or enabled-state change.
func WithNotify(fn func(Event)) Option {
	return func(e *Engine) { e.notify = fn }
}

// Engine is the equalizer controller. Control methods may be called from
// any goroutine; ProcessPlanar/ProcessInterleaved are reserved for the
// audio context and never allocate, lock or block.
type Engine struct {
	mu   sync.Mutex // serializes control-side mutation
	prog atomic.Pointer[program]

	sampleRate float64
	channels   int
	preset     Preset
	enabled    bool
	notify     func(Event)
}

// New creates an engine for the given sample rate. Invalid rates fall back
// to 44.1 kHz; the engine starts enabled with the flat preset unless
// options say otherwise.
func New(sampleRate float64, opts ...Option) *Engine {
	e := &Engine{
		sampleRate: sampleRate,
		channels:   defaultChannels,
		preset:     PresetOff,
		enabled:    true,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.sampleRate <= 0 || !core.IsFinite(e.sampleRate) {
		e.sampleRate = defaultSampleRate
	}

	e.publish(newStateGrid(e.channels))
	return e
}

// publish derives coefficients from the current preset/enabled/rate and
// swaps in a new program using the given grid. Callers hold e.mu (or own
// the engine exclusively, as New does).
func (e *Engine) publish(grid *stateGrid) {
	p := &program{grid: grid, sampleRate: e.sampleRate}

	if e.enabled {
		gains := presetGains[e.preset]
		for i := range p.coeffs {
			p.coeffs[i] = design.Peak(BandFrequencies[i], gains[i], bandQ, e.sampleRate)
		}
	} else {
		// Disabled swaps every band to the identity instead of bypassing
		// the cascade, so delay state keeps evolving and re-enabling does
		// not click.
		for i := range p.coeffs {
			p.coeffs[i] = biquad.Passthrough()
		}
	}

	e.prog.Store(p)
}

// SetEnabled toggles processing. Disabling publishes passthrough
// coefficients for every band; state continuity is preserved.
func (e *Engine) SetEnabled(on bool) {
	e.mu.Lock()
	if e.enabled == on {
		e.mu.Unlock()
		return
	}
	e.enabled = on
	e.publish(e.prog.Load().grid)
	ev, fn := Event{Preset: e.preset, Enabled: e.enabled}, e.notify
	e.mu.Unlock()

	if fn != nil {
		fn(ev)
	}
}

// SetPreset selects a preset and recomputes all band coefficients against
// the current sample rate. Invalid presets are ignored and the previous
// preset is retained; the return value reports whether p was accepted.
func (e *Engine) SetPreset(p Preset) bool {
	if !p.Valid() {
		return false
	}

	e.mu.Lock()
	if e.preset == p {
		e.mu.Unlock()
		return true
	}
	e.preset = p
	e.publish(e.prog.Load().grid)
	ev, fn := Event{Preset: e.preset, Enabled: e.enabled}, e.notify
	e.mu.Unlock()

	if fn != nil {
		fn(ev)
	}
	return true
}

// SetPresetName selects a preset by its external string identifier.
// Unknown names are ignored, matching SetPreset.
func (e *Engine) SetPresetName(name string) bool {
	p, ok := ParsePreset(name)
	if !ok {
		return false
	}
	return e.SetPreset(p)
}

// SetSampleRate reconfigures the stream sample rate, keeping the channel
// count. See SetFormat.
func (e *Engine) SetSampleRate(hz float64) {
	e.SetFormat(hz, 0)
}

// SetFormat renegotiates the stream format. It may be called before the
// first buffer and repeatedly on every renegotiation; a no-op change
// publishes nothing. A real change recomputes coefficients against the new
// rate and publishes a zeroed state grid, which the audio context picks up
// at its next buffer boundary. channels <= 0 keeps the current count;
// invalid rates keep the current rate.
func (e *Engine) SetFormat(sampleRate float64, channels int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		sampleRate = e.sampleRate
	}
	if channels <= 0 {
		channels = e.channels
	}

	rateChanged := math.Abs(sampleRate-e.sampleRate) > sampleRateEpsilonHz
	if !rateChanged && channels == e.channels {
		return
	}

	e.sampleRate = sampleRate
	e.channels = channels
	e.publish(newStateGrid(channels))
}

// Reset clears all filter state at the next buffer boundary. Intended for
// stream discontinuities such as seeks.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.publish(newStateGrid(e.channels))
}

// Preset returns the current preset.
func (e *Engine) Preset() Preset {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.preset
}

// Enabled reports whether processing is active.
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// SampleRate returns the configured sample rate in Hz.
func (e *Engine) SampleRate() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sampleRate
}

// Channels returns the configured channel count.
func (e *Engine) Channels() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.channels
}

// Coefficients returns a copy of the currently published per-band
// coefficient set, ordered low to high band.
func (e *Engine) Coefficients() []biquad.Coefficients {
	p := e.prog.Load()
	out := make([]biquad.Coefficients, NumBands)
	copy(out, p.coeffs[:])
	return out
}

// ResponseDB returns the published cascade's magnitude response in dB at
// the given frequency. Useful for UI display and verification; not meant
// for the audio context.
func (e *Engine) ResponseDB(freqHz float64) float64 {
	p := e.prog.Load()
	db := 0.0
	for i := range p.coeffs {
		db += p.coeffs[i].MagnitudeDB(freqHz, p.sampleRate)
	}
	return db
}

// ProcessPlanar filters per-channel sample slices in place. Channels
// beyond the configured count are left untouched. Safe for any frame
// count, including zero. Audio-context only: no allocation, no locks.
func (e *Engine) ProcessPlanar(chans [][]float64) {
	e.process(PlanarBlock(chans))
}

// ProcessInterleaved filters an interleaved buffer in place. Audio-context
// only: no allocation, no locks.
func (e *Engine) ProcessInterleaved(buf []float64, channels int) {
	e.process(InterleavedBlock(buf, channels))
}

func (e *Engine) process(b Block) {
	p := e.prog.Load()
	if p == nil {
		return
	}

	channels := b.Channels()
	if channels > p.grid.channels {
		channels = p.grid.channels
	}
	frames := b.Frames()

	for ch := 0; ch < channels; ch++ {
		states := p.grid.d[ch*NumBands : (ch+1)*NumBands]

		for i := 0; i < frames; i++ {
			x := b.At(ch, i)

			// Upstream decoder glitches must not poison the recursion.
			if !core.IsFinite(x) {
				x = 0
			} else if x > 1 {
				x = 1
			} else if x < -1 {
				x = -1
			}

			for band := 0; band < NumBands; band++ {
				y := p.coeffs[band].Tick(x, &states[band])
				if !core.IsFinite(y) || y > maxStageOutput || y < -maxStageOutput {
					// One bad stage output would corrupt every following
					// sample through the delay registers; drop the state
					// and pass the stage input through instead.
					states[band] = [2]float64{}
					y = x
				}
				x = y
			}

			if x > 1 {
				x = 1
			} else if x < -1 {
				x = -1
			}
			b.Set(ch, i, x)
		}
	}
}
