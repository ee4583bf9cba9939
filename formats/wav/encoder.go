package wav

import (
	"errors"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/r-kishimoto-eisys/audioeq/dsp/core"
)

const encodeBitDepth = 16

// ErrInvalidFormat is returned by NewEncoder for nonsensical stream formats.
var ErrInvalidFormat = errors.New("wav: sample rate and channels must be positive")

// Encoder writes interleaved float64 samples as a 16-bit PCM WAV stream.
// Samples outside [-1, 1] are clamped during quantization.
type Encoder struct {
	enc    *gowav.Encoder
	intBuf *goaudio.IntBuffer
	format *goaudio.Format
}

// NewEncoder prepares a WAV encoder on w. Close must be called to finalize
// the RIFF headers.
func NewEncoder(w io.WriteSeeker, sampleRate, channels int) (*Encoder, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, ErrInvalidFormat
	}
	return &Encoder{
		enc:    gowav.NewEncoder(w, sampleRate, encodeBitDepth, channels, 1),
		format: &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
	}, nil
}

// WriteSamples quantizes and appends interleaved samples.
func (e *Encoder) WriteSamples(samples []float64) error {
	if len(samples) == 0 {
		return nil
	}

	if e.intBuf == nil || cap(e.intBuf.Data) < len(samples) {
		e.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(samples)),
			Format:         e.format,
			SourceBitDepth: encodeBitDepth,
		}
	}
	e.intBuf.Data = e.intBuf.Data[:len(samples)]

	for i, v := range samples {
		e.intBuf.Data[i] = int(math.Round(core.Clamp(v, -1, 1) * 32767))
	}

	if err := e.enc.Write(e.intBuf); err != nil {
		return fmt.Errorf("wav: write failed: %w", err)
	}
	return nil
}

// Close finalizes the RIFF chunk sizes. The Encoder must not be used after
// Close.
func (e *Encoder) Close() error {
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("wav: close failed: %w", err)
	}
	return nil
}
