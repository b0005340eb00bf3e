package anime4k

import "testing"

func TestFindPredefined(t *testing.T) {
	aux, ok := FindPredefined("CLAMP_HIGHLIGHTS")
	if !ok || aux.Hook {
		t.Errorf("CLAMP_HIGHLIGHTS = %+v, %v", aux, ok)
	}
	cnn, ok := FindPredefined("UPSCALE_CNN_X2_M")
	if !ok || !cnn.Hook {
		t.Errorf("UPSCALE_CNN_X2_M = %+v, %v", cnn, ok)
	}
	if _, ok := FindPredefined("NO_SUCH_PIPELINE"); ok {
		t.Error("unknown name resolved")
	}
}

func TestPresetStrings(t *testing.T) {
	presets := map[Preset]string{
		PresetOff:    "OFF",
		PresetModeA:  "Mode A",
		PresetModeAA: "Mode AA",
		PresetModeB:  "Mode B",
		PresetModeBB: "Mode BB",
		PresetModeC:  "Mode C",
		PresetModeCA: "Mode CA",
	}
	for p, want := range presets {
		if p.String() != want {
			t.Errorf("Preset(%d).String() = %q, want %q", p, p.String(), want)
		}
	}
	perfs := map[PerformancePreset]string{
		PerformanceLight:   "Light",
		PerformanceMedium:  "Medium",
		PerformanceHigh:    "High",
		PerformanceUltra:   "Ultra",
		PerformanceExtreme: "Extreme",
	}
	for p, want := range perfs {
		if p.String() != want {
			t.Errorf("PerformancePreset(%d).String() = %q, want %q", p, p.String(), want)
		}
	}
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name        string
		preset      Preset
		perf        PerformancePreset
		targetScale float64
		want        []string
	}{
		{
			name:   "off",
			preset: PresetOff, perf: PerformanceMedium, targetScale: 4,
			want: nil,
		},
		{
			name:   "mode A medium 2x",
			preset: PresetModeA, perf: PerformanceMedium, targetScale: 2,
			want: []string{"CLAMP_HIGHLIGHTS", "RESTORE_CNN_M", "UPSCALE_CNN_X2_M"},
		},
		{
			name:   "mode A medium 4x appends a subsequent upscale",
			preset: PresetModeA, perf: PerformanceMedium, targetScale: 4,
			want: []string{"CLAMP_HIGHLIGHTS", "RESTORE_CNN_M", "UPSCALE_CNN_X2_M", "UPSCALE_CNN_X2_S"},
		},
		{
			name:   "mode A medium 8x appends two",
			preset: PresetModeA, perf: PerformanceMedium, targetScale: 8,
			want: []string{"CLAMP_HIGHLIGHTS", "RESTORE_CNN_M", "UPSCALE_CNN_X2_M", "UPSCALE_CNN_X2_S", "UPSCALE_CNN_X2_S"},
		},
		{
			name:   "mode AA high",
			preset: PresetModeAA, perf: PerformanceHigh, targetScale: 2,
			want: []string{"CLAMP_HIGHLIGHTS", "RESTORE_CNN_L", "UPSCALE_CNN_X2_L", "RESTORE_CNN_M"},
		},
		{
			name:   "mode B light",
			preset: PresetModeB, perf: PerformanceLight, targetScale: 2,
			want: []string{"CLAMP_HIGHLIGHTS", "RESTORE_SOFT_CNN_S", "UPSCALE_CNN_X2_S"},
		},
		{
			name:   "mode BB ultra",
			preset: PresetModeBB, perf: PerformanceUltra, targetScale: 2,
			want: []string{"CLAMP_HIGHLIGHTS", "RESTORE_SOFT_CNN_VL", "UPSCALE_CNN_X2_VL", "RESTORE_SOFT_CNN_L"},
		},
		{
			name:   "mode C extreme",
			preset: PresetModeC, perf: PerformanceExtreme, targetScale: 2,
			want: []string{"CLAMP_HIGHLIGHTS", "UPSCALE_DENOISE_CNN_X2_UL"},
		},
		{
			name:   "mode CA medium",
			preset: PresetModeCA, perf: PerformanceMedium, targetScale: 2,
			want: []string{"CLAMP_HIGHLIGHTS", "UPSCALE_DENOISE_CNN_X2_M", "RESTORE_CNN_S"},
		},
		{
			name:   "fractional target below 2x adds nothing",
			preset: PresetModeA, perf: PerformanceMedium, targetScale: 1.5,
			want: []string{"CLAMP_HIGHLIGHTS", "RESTORE_CNN_M", "UPSCALE_CNN_X2_M"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.preset.Sequence(tt.perf, tt.targetScale)
			if len(got) != len(tt.want) {
				t.Fatalf("Sequence = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Sequence = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

// Every name a preset sequence can produce must resolve in the catalog.
func TestSequenceNamesResolve(t *testing.T) {
	presets := []Preset{PresetModeA, PresetModeAA, PresetModeB, PresetModeBB, PresetModeC, PresetModeCA}
	perfs := []PerformancePreset{PerformanceLight, PerformanceMedium, PerformanceHigh, PerformanceUltra, PerformanceExtreme}
	for _, preset := range presets {
		for _, perf := range perfs {
			for _, name := range preset.Sequence(perf, 8) {
				if _, ok := FindPredefined(name); !ok {
					t.Errorf("%s/%s references unknown pipeline %q", preset, perf, name)
				}
			}
		}
	}
}
