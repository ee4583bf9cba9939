// Package mp3 decodes MPEG-1 Layer 3 streams using
// github.com/hajimehoshi/go-mp3. Decoding only; output is always stereo.
package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/r-kishimoto-eisys/audioeq/formats"
)

// go-mp3 always emits 16-bit little-endian stereo PCM.
const (
	decodedChannels      = 2
	bytesPerSample       = 2
	defaultPCMBufferSize = 8192
)

// pcmReader is the slice of gomp3.Decoder we rely on, split out so tests can
// substitute a fake stream.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
}

// Decode wraps an MP3 stream as a formats.Source.
func Decode(r io.Reader) (formats.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: invalid stream: %w", err)
	}
	return newSource(dec), nil
}

func newSource(dec pcmReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, defaultPCMBufferSize),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return decodedChannels }

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, fmt.Errorf("mp3: read failed: %w", err)
		}
		return 0, nil
	}

	samples := n / bytesPerSample
	for i := 0; i < samples; i++ {
		v := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = float64(v) / 32768
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("mp3: read failed: %w", err)
	}
	return samples, err
}
