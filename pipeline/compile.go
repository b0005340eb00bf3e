package pipeline

import (
	"fmt"
)

// ShaderLoader resolves a shader file reference to its full source text.
// The compiler calls it exactly once per pass, in pass order. Loaders are
// supplied by the caller so the compiler itself has no file-system
// dependency; a loader may read from disk, an embedded file map, or
// anywhere else.
type ShaderLoader func(filename string) (string, error)

// Executable is a fully compiled pipeline: physical textures allocated,
// bindings resolved, shader text embedded. It is immutable once built and
// safe to share between goroutines.
type Executable struct {
	// ID uniquely identifies the pipeline.
	ID string `json:"id"`
	// Name is the human-readable pipeline name.
	Name string `json:"name"`
	// Description is optional.
	Description string `json:"description,omitempty"`
	// PhysicalTextures is the allocated physical texture list.
	PhysicalTextures []PhysicalTexture `json:"physical_textures"`
	// Passes is the ordered list of executable passes.
	Passes []ExecutablePass `json:"passes"`
	// RequiredSamplers is the deduplicated, insertion-ordered set of
	// sampler filter modes used anywhere in the pipeline.
	RequiredSamplers []SamplerFilterMode `json:"required_samplers"`
}

// ExecutablePass is one compiled shader pass with resolved bindings and
// embedded shader source.
type ExecutablePass struct {
	// ID uniquely identifies the pass.
	ID string `json:"id"`
	// Shader is the full shader source text.
	Shader string `json:"shader"`
	// ComputeScaleFactors is the dispatch grid scale (width, height),
	// taken from the pass's first output.
	ComputeScaleFactors [2]float64 `json:"compute_scale_factors"`
	// InputTextures are the resolved input bindings.
	InputTextures []PhysicalTextureBinding `json:"input_textures"`
	// OutputTextures are the resolved output bindings.
	OutputTextures []PhysicalTextureBinding `json:"output_textures"`
	// Samplers are the pass's sampler bindings.
	Samplers []SamplerBinding `json:"samplers"`
}

// PhysicalTextureBinding is a pass binding resolved to a physical texture.
// The logical id is retained for diagnostics.
type PhysicalTextureBinding struct {
	// LogicalID is the original logical texture identifier.
	LogicalID string `json:"logical_id"`
	// PhysicalID is the assigned physical texture id.
	PhysicalID uint32 `json:"physical_id"`
	// Binding is the shader binding point.
	Binding uint32 `json:"binding"`
	// Components is the number of color components.
	Components uint32 `json:"components"`
	// ScaleFactor holds the [width, height] scale relative to the input.
	ScaleFactor [2]ScaleFactor `json:"scale_factor"`
}

// SourceTexture returns the physical texture marked as the pipeline input,
// or false when absent.
func (e *Executable) SourceTexture() (PhysicalTexture, bool) {
	for _, tex := range e.PhysicalTextures {
		if tex.IsSource {
			return tex, true
		}
	}
	return PhysicalTexture{}, false
}

// ResultTextureID returns the physical id of the final RESULT output in the
// last pass, or false when the pipeline has no RESULT output.
func (e *Executable) ResultTextureID() (uint32, bool) {
	if len(e.Passes) == 0 {
		return 0, false
	}
	last := e.Passes[len(e.Passes)-1]
	for _, output := range last.OutputTextures {
		if output.LogicalID == ResultTextureName {
			return output.PhysicalID, true
		}
	}
	return 0, false
}

// FinalScaleFactor returns the [width, height] scale of the RESULT output
// relative to the pipeline input, or false when the pipeline has no RESULT
// output.
func (e *Executable) FinalScaleFactor() ([2]ScaleFactor, bool) {
	if len(e.Passes) == 0 {
		return [2]ScaleFactor{}, false
	}
	last := e.Passes[len(e.Passes)-1]
	for _, output := range last.OutputTextures {
		if output.LogicalID == ResultTextureName {
			return output.ScaleFactor, true
		}
	}
	return [2]ScaleFactor{}, false
}

// Compile validates the specification and compiles it into an executable
// pipeline: lifetime analysis, physical texture allocation, binding
// resolution, and shader loading through the supplied loader.
//
// Compilation either completes or fails as a whole; no partial pipeline is
// ever returned. A loader failure aborts the compile with an error naming
// the pass and file.
func (s *Spec) Compile(loader ShaderLoader) (*Executable, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	lifetimes := s.collectTextureLifetimes()
	physical, assignments := AssignPhysicalTextures(lifetimes)

	passes, err := s.compilePasses(assignments, loader)
	if err != nil {
		return nil, err
	}

	var required []SamplerFilterMode
	for _, pass := range s.Passes {
		for _, sampler := range pass.Samplers {
			if !containsMode(required, sampler.FilterMode) {
				required = append(required, sampler.FilterMode)
			}
		}
	}

	return &Executable{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		PhysicalTextures: physical,
		Passes:           passes,
		RequiredSamplers: required,
	}, nil
}

func containsMode(modes []SamplerFilterMode, mode SamplerFilterMode) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// compilePasses resolves every pass binding to its physical texture and
// loads the pass shader text.
func (s *Spec) compilePasses(assignments map[string]uint32, loader ShaderLoader) ([]ExecutablePass, error) {
	passes := make([]ExecutablePass, 0, len(s.Passes))
	for _, pass := range s.Passes {
		inputs := make([]PhysicalTextureBinding, 0, len(pass.Inputs))
		for _, input := range pass.Inputs {
			components, scale := s.textureInfo(input.ID)
			inputs = append(inputs, PhysicalTextureBinding{
				LogicalID:   input.ID,
				PhysicalID:  assignments[input.ID],
				Binding:     input.Binding,
				Components:  components,
				ScaleFactor: scale,
			})
		}

		outputs := make([]PhysicalTextureBinding, 0, len(pass.Outputs))
		for _, output := range pass.Outputs {
			outputs = append(outputs, PhysicalTextureBinding{
				LogicalID:   output.ID,
				PhysicalID:  assignments[output.ID],
				Binding:     output.Binding,
				Components:  output.Components,
				ScaleFactor: output.ScaleFactor,
			})
		}

		shader, err := loader(pass.File)
		if err != nil {
			return nil, fmt.Errorf("pass %q: load shader %q: %w", pass.ID, pass.File, err)
		}

		firstOutput := pass.Outputs[0]
		passes = append(passes, ExecutablePass{
			ID:     pass.ID,
			Shader: shader,
			ComputeScaleFactors: [2]float64{
				firstOutput.ScaleFactor[0].Float64(),
				firstOutput.ScaleFactor[1].Float64(),
			},
			InputTextures:  inputs,
			OutputTextures: outputs,
			Samplers:       pass.Samplers,
		})
	}
	return passes, nil
}

// textureInfo looks up the component count and scale factor of a logical
// texture by scanning the pass outputs that produce it. SOURCE is always
// 4 components at unity scale.
func (s *Spec) textureInfo(logicalID string) (uint32, [2]ScaleFactor) {
	if logicalID == SourceTextureName {
		return 4, [2]ScaleFactor{UnityScale(), UnityScale()}
	}
	for _, pass := range s.Passes {
		for _, output := range pass.Outputs {
			if output.ID == logicalID {
				return output.Components, output.ScaleFactor
			}
		}
	}
	return 4, [2]ScaleFactor{UnityScale(), UnityScale()}
}
