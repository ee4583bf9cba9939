package eq

// Block is a bounds-checked view over one processing call's worth of
// samples. It abstracts the two buffer layouts audio hosts deliver —
// planar (one slice per channel) and interleaved (frames of adjacent
// channel samples in a single slice) — behind indexed access, so the
// processing loop never does pointer arithmetic of its own.
//
// A Block is constructed per call, carries no allocation, and must not be
// retained past the call that created it.
type Block struct {
	planar      [][]float64
	interleaved []float64
	channels    int
	frames      int
}

// PlanarBlock views per-channel sample slices. The frame count is the
// shortest channel length, so ragged input never reads out of bounds.
func PlanarBlock(chans [][]float64) Block {
	b := Block{planar: chans, channels: len(chans)}
	for i, ch := range chans {
		if i == 0 || len(ch) < b.frames {
			b.frames = len(ch)
		}
	}
	return b
}

// InterleavedBlock views a single slice holding frames of `channels`
// adjacent samples. Trailing samples of a partial frame are ignored.
func InterleavedBlock(buf []float64, channels int) Block {
	if channels <= 0 {
		return Block{}
	}
	return Block{
		interleaved: buf,
		channels:    channels,
		frames:      len(buf) / channels,
	}
}

// Channels returns the number of channels in the view.
func (b Block) Channels() int { return b.channels }

// Frames returns the number of frames addressable per channel.
func (b Block) Frames() int { return b.frames }

// At returns the sample for (channel, frame).
func (b Block) At(ch, frame int) float64 {
	if b.planar != nil {
		return b.planar[ch][frame]
	}
	return b.interleaved[frame*b.channels+ch]
}

// Set stores the sample for (channel, frame).
func (b Block) Set(ch, frame int, v float64) {
	if b.planar != nil {
		b.planar[ch][frame] = v
		return
	}
	b.interleaved[frame*b.channels+ch] = v
}
