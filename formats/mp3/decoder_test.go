package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// fakePCMReader plays back a fixed int16 sample sequence the way
// gomp3.Decoder does: 16-bit little-endian bytes.
type fakePCMReader struct {
	sampleRate int
	samples    []int16
	offset     int
	failRead   bool
}

func (f *fakePCMReader) SampleRate() int { return f.sampleRate }

func (f *fakePCMReader) Read(buf []byte) (int, error) {
	if f.failRead {
		return 0, io.ErrUnexpectedEOF
	}
	if f.offset >= len(f.samples) {
		return 0, io.EOF
	}

	n := len(buf) / 2
	if remaining := len(f.samples) - f.offset; n > remaining {
		n = remaining
	}
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(f.samples[f.offset+i]))
	}
	f.offset += n
	if f.offset >= len(f.samples) {
		return n * 2, io.EOF
	}
	return n * 2, nil
}

func TestDecodeInvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := Decode(bytes.NewReader([]byte("this is not an mp3"))); err == nil {
		t.Error("Decode() of garbage succeeded")
	}
	if _, err := Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() of empty input succeeded")
	}
}

func TestSourceMetadata(t *testing.T) {
	t.Parallel()

	src := newSource(&fakePCMReader{sampleRate: 48000})
	if got := src.SampleRate(); got != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", got)
	}
	if got := src.Channels(); got != 2 {
		t.Errorf("Channels() = %d, want 2", got)
	}
}

func TestReadSamplesConversion(t *testing.T) {
	t.Parallel()

	src := newSource(&fakePCMReader{
		sampleRate: 44100,
		samples:    []int16{0, 16384, -16384, 32767, -32768},
	})

	dst := make([]float64, 5)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatal(err)
	}
	if n != 5 {
		t.Fatalf("read %d samples, want 5", n)
	}

	want := []float64{0, 0.5, -0.5, 32767.0 / 32768, -1}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestReadSamplesEOF(t *testing.T) {
	t.Parallel()

	src := newSource(&fakePCMReader{sampleRate: 44100, samples: []int16{100}})

	dst := make([]float64, 4)
	if n, _ := src.ReadSamples(dst); n != 1 {
		t.Fatalf("first read: %d samples, want 1", n)
	}
	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("second read = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestReadSamplesError(t *testing.T) {
	t.Parallel()

	src := newSource(&fakePCMReader{sampleRate: 44100, failRead: true})
	if _, err := src.ReadSamples(make([]float64, 4)); err == nil {
		t.Error("ReadSamples() with failing stream succeeded")
	}
}
