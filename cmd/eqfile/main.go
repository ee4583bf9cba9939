// Command eqfile applies one of the built-in equalizer presets to an audio
// file and writes the result as a 16-bit WAV.
//
// Usage:
//
//	eqfile [flags] input-file
//
// Input may be WAV, MP3 or Ogg Vorbis, selected by file extension.
//
// Examples:
//
//	eqfile -list
//	eqfile -preset soft -o out.wav music.mp3
//	eqfile -preset clear -response
//	eqfile -preset whisper -response -rate 48000
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/r-kishimoto-eisys/audioeq/dsp/buffer"
	"github.com/r-kishimoto-eisys/audioeq/eq"
	"github.com/r-kishimoto-eisys/audioeq/formats"
	"github.com/r-kishimoto-eisys/audioeq/formats/mp3"
	"github.com/r-kishimoto-eisys/audioeq/formats/vorbis"
	"github.com/r-kishimoto-eisys/audioeq/formats/wav"
	"github.com/r-kishimoto-eisys/audioeq/measure/response"
)

const blockFrames = 4096

func main() {
	presetName := flag.String("preset", "off", "preset name (see -list)")
	output := flag.String("o", "out.wav", "output WAV path")
	list := flag.Bool("list", false, "list available presets and exit")
	showResponse := flag.Bool("response", false, "print the preset's measured response and exit")
	rate := flag.Float64("rate", 44100, "sample rate for -response")
	fftSize := flag.Int("fft", 8192, "FFT size for -response")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqfile [flags] input-file\n\n")
		fmt.Fprintf(os.Stderr, "Applies an equalizer preset to a WAV, MP3 or Ogg Vorbis file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eqfile -list\n")
		fmt.Fprintf(os.Stderr, "  eqfile -preset soft -o out.wav music.mp3\n")
		fmt.Fprintf(os.Stderr, "  eqfile -preset clear -response\n")
	}
	flag.Parse()

	if *list {
		printPresets()
		return
	}

	preset, ok := eq.ParsePreset(*presetName)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown preset %q (use -list to see available)\n", *presetName)
		os.Exit(1)
	}

	if *showResponse {
		if err := printResponse(preset, *rate, *fftSize); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := processFile(flag.Arg(0), *output, preset); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printPresets() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Preset")
	for _, f := range eq.BandFrequencies {
		fmt.Fprintf(tw, "\t%.0f Hz", f)
	}
	fmt.Fprintln(tw)

	for _, name := range eq.Names() {
		p, _ := eq.ParsePreset(name)
		fmt.Fprintf(tw, "%s", name)
		for _, band := range p.Bands() {
			fmt.Fprintf(tw, "\t%+.1f dB", band.GainDB)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func printResponse(preset eq.Preset, rate float64, fftSize int) error {
	engine := eq.New(rate, eq.WithPreset(preset))

	r, err := response.Measure(engine.Coefficients(), engine.SampleRate(), fftSize)
	if err != nil {
		return err
	}

	probes := []float64{31.5, 63, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency\tMeasured\tAnalytic\n")
	for _, f := range probes {
		if f >= rate/2 {
			break
		}
		fmt.Fprintf(tw, "%.1f Hz\t%+.2f dB\t%+.2f dB\n",
			f, r.MagnitudeDBAt(f), engine.ResponseDB(f))
	}
	return tw.Flush()
}

func openSource(path string) (formats.Source, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { f.Close() }

	var src formats.Source
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		src, err = wav.Decode(f)
	case ".mp3":
		src, err = mp3.Decode(f)
	case ".ogg", ".oga":
		src, err = vorbis.Decode(f)
	default:
		err = fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return src, closeFn, nil
}

func processFile(inPath, outPath string, preset eq.Preset) error {
	src, closeSrc, err := openSource(inPath)
	if err != nil {
		return err
	}
	defer closeSrc()

	channels := src.Channels()
	rate := src.SampleRate()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	enc, err := wav.NewEncoder(out, rate, channels)
	if err != nil {
		return err
	}

	engine := eq.New(float64(rate), eq.WithChannels(channels), eq.WithPreset(preset))

	pool := buffer.NewPool()
	block := pool.Get(blockFrames * channels)
	defer pool.Put(block)

	for {
		n, err := src.ReadSamples(block.Samples())
		if n > 0 {
			engine.ProcessInterleaved(block.Samples()[:n], channels)
			if werr := enc.WriteSamples(block.Samples()[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return err
	}
	return out.Close()
}
