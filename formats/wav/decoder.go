// Package wav decodes and encodes RIFF/WAVE PCM streams using
// github.com/go-audio/wav.
package wav

import (
	"errors"
	"fmt"
	"io"

	vecmath "github.com/cwbudde/algo-vecmath"
	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/r-kishimoto-eisys/audioeq/dsp/core"
	"github.com/r-kishimoto-eisys/audioeq/formats"
)

// Errors returned by Decode.
var (
	ErrNotWAV           = errors.New("wav: not a RIFF/WAVE stream")
	ErrUnsupportedDepth = errors.New("wav: unsupported bit depth")
)

type source struct {
	dec    *gowav.Decoder
	intBuf *goaudio.IntBuffer
	fBuf   []float64
	scale  float64
}

// Decode wraps a WAV stream as a formats.Source. PCM depths of 16, 24 and
// 32 bits are supported; samples are normalized to [-1, 1].
func Decode(r io.ReadSeeker) (formats.Source, error) {
	dec := gowav.NewDecoder(r)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, ErrNotWAV
	}

	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedDepth, dec.BitDepth)
	}

	return &source{
		dec:   dec,
		scale: 1 / float64(int64(1)<<(dec.BitDepth-1)),
	}, nil
}

func (s *source) SampleRate() int { return int(s.dec.SampleRate) }
func (s *source) Channels() int   { return int(s.dec.NumChans) }

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("wav: read failed: %w", err)
		}
		return 0, io.EOF
	}

	s.fBuf = core.EnsureLen(s.fBuf, n)
	for i := 0; i < n; i++ {
		s.fBuf[i] = float64(s.intBuf.Data[i])
	}
	vecmath.ScaleBlock(dst[:n], s.fBuf, s.scale)

	if err != nil {
		return n, fmt.Errorf("wav: read failed: %w", err)
	}
	return n, nil
}
