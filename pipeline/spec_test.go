package pipeline

import "testing"

func TestParseSpec(t *testing.T) {
	manifest := `
id: "denoise"
name: "Denoise"
description: "Single-pass denoise"
passes:
  - id: "main"
    file: "denoise.wgsl"
    inputs:
      - id: "SOURCE"
        binding: 0
    outputs:
      - id: "RESULT"
        binding: 1
        components: 4
        scale_factor: ["1", "1"]
    samplers:
      - binding: 2
        filter_mode: nearest
`
	spec, err := ParseSpec([]byte(manifest))
	if err != nil {
		t.Fatalf("ParseSpec: %v", err)
	}
	if spec.ID != "denoise" || spec.Name != "Denoise" || spec.Description != "Single-pass denoise" {
		t.Errorf("header = %q %q %q", spec.ID, spec.Name, spec.Description)
	}
	if len(spec.Passes) != 1 {
		t.Fatalf("got %d passes, want 1", len(spec.Passes))
	}
	pass := spec.Passes[0]
	if pass.ID != "main" || pass.File != "denoise.wgsl" {
		t.Errorf("pass = %q %q", pass.ID, pass.File)
	}
	if len(pass.Inputs) != 1 || pass.Inputs[0] != (TextureBinding{ID: "SOURCE", Binding: 0}) {
		t.Errorf("inputs = %+v", pass.Inputs)
	}
	if len(pass.Outputs) != 1 {
		t.Fatalf("outputs = %+v", pass.Outputs)
	}
	out := pass.Outputs[0]
	if out.ID != "RESULT" || out.Binding != 1 || out.Components != 4 {
		t.Errorf("output = %+v", out)
	}
	if out.ScaleFactor != [2]ScaleFactor{UnityScale(), UnityScale()} {
		t.Errorf("output scale = %v", out.ScaleFactor)
	}
	if len(pass.Samplers) != 1 || pass.Samplers[0].FilterMode != FilterNearest {
		t.Errorf("samplers = %+v", pass.Samplers)
	}
}

func TestParseSpecFractionalScale(t *testing.T) {
	manifest := `
id: "downscale"
name: "Downscale"
passes:
  - id: "main"
    file: "down.wgsl"
    inputs:
      - id: "SOURCE"
        binding: 0
    outputs:
      - id: "RESULT"
        binding: 1
        components: 4
        scale_factor: ["1/2", "1/2"]
`
	spec, err := ParseSpec([]byte(manifest))
	if err != nil {
		t.Fatalf("ParseSpec: %v", err)
	}
	half := NewScaleFactor(1, 2)
	if got := spec.Passes[0].Outputs[0].ScaleFactor; got != [2]ScaleFactor{half, half} {
		t.Errorf("scale = %v, want [1/2 1/2]", got)
	}
}

func TestParseSpecInvalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"malformed yaml", "passes: [\nid: oops"},
		{"bad filter mode", `
id: "x"
name: "x"
passes:
  - id: "p"
    file: "p.wgsl"
    samplers:
      - binding: 0
        filter_mode: cubic
`},
		{"bad scale factor", `
id: "x"
name: "x"
passes:
  - id: "p"
    file: "p.wgsl"
    outputs:
      - id: "RESULT"
        binding: 0
        components: 4
        scale_factor: ["2/0", "1"]
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSpec([]byte(tt.manifest)); err == nil {
				t.Error("ParseSpec succeeded on invalid manifest")
			}
		})
	}
}
