// Package pipeline compiles declarative shader pipeline specifications into
// executable form: it validates pass structure, analyzes logical texture
// lifetimes, packs logical textures into a minimal set of physical GPU
// textures, and resolves every pass binding to its physical texture id.
//
// The package is a pure computation over immutable inputs. It performs no
// I/O of its own; shader text is pulled through a caller-supplied
// [ShaderLoader].
package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SamplerFilterMode selects how a sampler interpolates between texels.
type SamplerFilterMode uint8

const (
	// FilterLinear is smooth linear interpolation. It is the manifest
	// default.
	FilterLinear SamplerFilterMode = iota
	// FilterNearest is sharp nearest-neighbor filtering.
	FilterNearest
)

// String returns the manifest spelling of the filter mode.
func (m SamplerFilterMode) String() string {
	if m == FilterNearest {
		return "nearest"
	}
	return "linear"
}

// MarshalJSON encodes the filter mode as its manifest spelling.
func (m SamplerFilterMode) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalYAML decodes "nearest" or "linear".
func (m *SamplerFilterMode) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	switch text {
	case "nearest":
		*m = FilterNearest
	case "linear":
		*m = FilterLinear
	default:
		return fmt.Errorf("unknown sampler filter mode %q", text)
	}
	return nil
}

// TextureBinding binds a logical texture to a shader binding point.
type TextureBinding struct {
	// ID is the logical texture identifier.
	ID string `yaml:"id"`
	// Binding is the shader binding point index.
	Binding uint32 `yaml:"binding"`
}

// TextureOutput describes a logical texture produced by a pass.
type TextureOutput struct {
	// ID is the logical texture identifier.
	ID string `yaml:"id"`
	// Binding is the shader binding point index.
	Binding uint32 `yaml:"binding"`
	// Components is the number of color components (1, 2, or 4).
	Components uint32 `yaml:"components"`
	// ScaleFactor holds the [width, height] scale relative to the input.
	ScaleFactor [2]ScaleFactor `yaml:"scale_factor"`
}

// SamplerBinding binds a texture sampler to a shader binding point.
type SamplerBinding struct {
	// Binding is the shader binding point index.
	Binding uint32 `json:"binding" yaml:"binding"`
	// FilterMode selects the interpolation mode (defaults to linear).
	FilterMode SamplerFilterMode `json:"filter_mode" yaml:"filter_mode"`
}

// Pass is a single shader pass in a pipeline specification.
type Pass struct {
	// ID uniquely identifies the pass within the pipeline.
	ID string `yaml:"id"`
	// File is the shader file path, resolved by the caller's loader.
	File string `yaml:"file"`
	// Inputs are the input texture bindings.
	Inputs []TextureBinding `yaml:"inputs"`
	// Outputs are the produced texture specifications.
	Outputs []TextureOutput `yaml:"outputs"`
	// Samplers are optional sampler bindings.
	Samplers []SamplerBinding `yaml:"samplers"`
}

// Spec is a raw pipeline specification before validation and compilation.
type Spec struct {
	// ID uniquely identifies the pipeline.
	ID string `yaml:"id"`
	// Name is the human-readable pipeline name.
	Name string `yaml:"name"`
	// Description is optional.
	Description string `yaml:"description"`
	// Passes is the ordered list of shader passes.
	Passes []Pass `yaml:"passes"`
}

// ParseSpec parses a pipeline specification from YAML manifest content.
func ParseSpec(manifest []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(manifest, &spec); err != nil {
		return nil, fmt.Errorf("parse pipeline manifest: %w", err)
	}
	return &spec, nil
}

// LoadSpec reads and parses a pipeline manifest file.
func LoadSpec(path string) (*Spec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSpec(content)
}
