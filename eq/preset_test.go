package eq

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name string
		want Preset
		ok   bool
	}{
		{"off", PresetOff, true},
		{"soft", PresetSoft, true},
		{"relax", PresetRelax, true},
		{"balance", PresetBalance, true},
		{"whisper", PresetWhisper, true},
		{"focus", PresetFocus, true},
		{"clear", PresetClear, true},
		{"", PresetOff, false},
		{"bogus", PresetOff, false},
		{"Soft", PresetOff, false}, // identifiers are case-sensitive
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPresetString(t *testing.T) {
	if got := PresetWhisper.String(); got != "whisper" {
		t.Errorf("String() = %q, want %q", got, "whisper")
	}
	if got := Preset(-1).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
	if got := Preset(100).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
}

func TestPresetRoundTrip(t *testing.T) {
	for _, name := range Names() {
		p, ok := ParsePreset(name)
		if !ok {
			t.Fatalf("ParsePreset(%q) not ok", name)
		}
		if p.String() != name {
			t.Errorf("round trip %q -> %v -> %q", name, p, p.String())
		}
	}
}

func TestPresetBands(t *testing.T) {
	bands := PresetSoft.Bands()
	wantGains := [NumBands]float64{2, 1, -4, -2.5, -4}
	for i, b := range bands {
		if b.FrequencyHz != BandFrequencies[i] {
			t.Errorf("band %d: frequency %v, want %v", i, b.FrequencyHz, BandFrequencies[i])
		}
		if b.GainDB != wantGains[i] {
			t.Errorf("band %d: gain %v, want %v", i, b.GainDB, wantGains[i])
		}
	}

	// Out-of-range values fall back to the flat response.
	for _, b := range Preset(99).Bands() {
		if b.GainDB != 0 {
			t.Errorf("invalid preset band gain = %v, want 0", b.GainDB)
		}
	}
}

func TestPresetGainRange(t *testing.T) {
	// All table gains must sit inside the designer's accepted range so no
	// preset ever hits the clamp.
	for p := PresetOff; p < numPresets; p++ {
		for i, g := range presetGains[p] {
			if g < -15 || g > 15 {
				t.Errorf("%v band %d: gain %v out of range", p, i, g)
			}
		}
	}
}
