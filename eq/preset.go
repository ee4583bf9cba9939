package eq

// NumBands is the number of equalizer bands. All presets share the same
// band frequencies, so a band index is a stable key across presets.
const NumBands = 5

// BandFrequencies lists the fixed center frequencies (Hz) of the five
// bands, ordered low to high.
var BandFrequencies = [NumBands]float64{60, 250, 1000, 4000, 8000}

// Band pairs a center frequency with a gain in dB.
type Band struct {
	FrequencyHz float64
	GainDB      float64
}

// Preset identifies one entry of the built-in preset table.
type Preset int

// The built-in presets. PresetOff is the flat response.
const (
	PresetOff Preset = iota
	PresetSoft
	PresetRelax
	PresetBalance
	PresetWhisper
	PresetFocus
	PresetClear

	numPresets
)

var presetNames = [numPresets]string{
	PresetOff:     "off",
	PresetSoft:    "soft",
	PresetRelax:   "relax",
	PresetBalance: "balance",
	PresetWhisper: "whisper",
	PresetFocus:   "focus",
	PresetClear:   "clear",
}

// presetGains holds per-band gains in dB, indexed [preset][band] against
// BandFrequencies.
var presetGains = [numPresets][NumBands]float64{
	PresetOff:     {0, 0, 0, 0, 0},
	PresetSoft:    {2, 1, -4, -2.5, -4},
	PresetRelax:   {3, 1.5, -1, -2, -3},
	PresetBalance: {1.5, 0, -0.5, 0, 1.5},
	PresetWhisper: {-4, -1, 2.5, 4, 1},
	PresetFocus:   {-2, 0, 2, 3.5, 1.5},
	PresetClear:   {-1, 0, 1, 3, 4.5},
}

// Valid reports whether p names a preset in the table.
func (p Preset) Valid() bool {
	return p >= 0 && p < numPresets
}

// String returns the preset's external identifier, or "unknown" for values
// outside the table.
func (p Preset) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return presetNames[p]
}

// Bands returns the preset's five bands, ordered low to high frequency.
// Values outside the table return the flat response.
func (p Preset) Bands() [NumBands]Band {
	if !p.Valid() {
		p = PresetOff
	}

	var bands [NumBands]Band
	for i := range bands {
		bands[i] = Band{FrequencyHz: BandFrequencies[i], GainDB: presetGains[p][i]}
	}
	return bands
}

// ParsePreset resolves an external string identifier to a Preset.
// Unknown strings return ok=false; strings stay at the interface boundary
// and never reach the processing path.
func ParsePreset(name string) (Preset, bool) {
	for p, n := range presetNames {
		if n == name {
			return Preset(p), true
		}
	}
	return PresetOff, false
}

// Names returns the external identifiers of all presets in table order.
func Names() []string {
	names := make([]string, numPresets)
	copy(names, presetNames[:])
	return names
}
