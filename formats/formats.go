// Package formats defines the decoder-side contract shared by the audio
// container packages (wav, mp3, vorbis). A Source streams interleaved
// float64 samples in [-1, 1], which is what the processing packages expect.
package formats

import (
	"errors"
	"io"
)

// Source streams decoded audio as interleaved float64 samples normalized to
// [-1, 1]. ReadSamples follows the io.Reader contract: it returns the number
// of samples written to dst and io.EOF once the stream is exhausted.
type Source interface {
	SampleRate() int
	Channels() int
	ReadSamples(dst []float64) (int, error)
}

// ErrNoAudio is returned by ReadAll for sources that yield no samples.
var ErrNoAudio = errors.New("formats: source contains no audio")

// ReadAll drains src and returns every sample. Intended for offline tools;
// streaming callers should loop over ReadSamples themselves.
func ReadAll(src Source) ([]float64, error) {
	var out []float64
	buf := make([]float64, 8192)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
	}
	if len(out) == 0 {
		return nil, ErrNoAudio
	}
	return out, nil
}
