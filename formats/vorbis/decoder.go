// Package vorbis decodes Ogg Vorbis streams using
// github.com/jfreymuth/oggvorbis. Decoding only.
package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/r-kishimoto-eisys/audioeq/formats"
)

// vorbisReader is the slice of oggvorbis.Reader we rely on, split out so
// tests can substitute a fake stream.
type vorbisReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        vorbisReader
	sampleRate int
	channels   int
	f32Buf     []float32
}

// Decode wraps an Ogg Vorbis stream as a formats.Source.
func Decode(r io.Reader) (formats.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: invalid stream: %w", err)
	}
	return newSource(dec), nil
}

func newSource(dec vorbisReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 || s.channels <= 0 {
		return 0, nil
	}

	// oggvorbis only returns whole frames; trim the request accordingly.
	want := (len(dst) / s.channels) * s.channels
	if want == 0 {
		return 0, nil
	}
	if cap(s.f32Buf) < want {
		s.f32Buf = make([]float32, want)
	}
	s.f32Buf = s.f32Buf[:want]

	n, err := s.dec.Read(s.f32Buf)
	if n == 0 {
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, fmt.Errorf("vorbis: read failed: %w", err)
		}
		return 0, nil
	}

	for i := 0; i < n; i++ {
		dst[i] = float64(s.f32Buf[i])
	}

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("vorbis: read failed: %w", err)
	}
	return n, err
}
