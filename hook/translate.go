package hook

import (
	"fmt"
	"regexp"
	"strings"
)

// Workgroup size for the generated 2D convolution compute shaders.
const (
	computeWorkgroupSizeX = 8
	computeWorkgroupSizeY = 8
)

// TranslateError is a shader body line the translator does not recognize.
// Translation never silently drops source: any line that is not a known
// macro definition, accumulation, bias, return statement, comment, or
// blank is fatal.
type TranslateError struct {
	// Hook is the name of the hook being translated.
	Hook string
	// Line is the offending source line, trimmed.
	Line string
}

func (e *TranslateError) Error() string {
	return fmt.Sprintf("unexpected line in %s shader code: %s", e.Hook, e.Line)
}

// Binding pairs a shader binding point with a texture name.
type Binding struct {
	// Binding is the shader binding point index.
	Binding uint32
	// Texture is the logical texture name.
	Texture string
}

// StageShader is a WGSL compute pass translated from one hook.
//
// Conv stages carry the generated WGSL in Code. Depth-to-space stages carry
// no generated code: their algorithm is fixed, and HelperFile names the
// pre-authored shader they defer to.
type StageShader struct {
	// Source is the hook this stage was translated from.
	Source *Hook
	// Name is the stage name: the hook's output, with "dest" normalized
	// to "result".
	Name string
	// Kind is the stage kind, copied from the source hook.
	Kind StageKind
	// Code is the generated WGSL for Conv stages.
	Code string
	// ChannelCount is the input channel count for DepthToSpace stages.
	ChannelCount uint32
	// Inputs are the input texture bindings, slots assigned from 0.
	Inputs []Binding
	// Output is the output texture binding, on the slot after the inputs.
	Output Binding
	// Sampler is the sampler binding slot when HasSampler is set.
	Sampler uint32
	// HasSampler is set when the stage scales, requiring a sampler slot.
	HasSampler bool
	// ScaleFactor is the stage's integer scale relative to the source.
	ScaleFactor uint32
}

// HelperFile returns the pre-authored shader filename a DepthToSpace stage
// defers to, keyed by channel count and scale factor.
func (s *StageShader) HelperFile() string {
	return fmt.Sprintf("depth_to_space_in%dx%d.wgsl", len(s.Inputs)-1, s.ScaleFactor)
}

// Translate converts a parsed hook into a WGSL compute pass. Conv stage
// bodies go through line-by-line pattern translation; depth-to-space stages
// only record their channel count and scale factor.
//
// Binding slots are assigned sequentially: inputs from 0, then the output,
// then a sampler for scaling stages. Texture names are normalized to the
// pipeline-level identifiers ("source" to SOURCE, "dest" to RESULT).
func Translate(h *Hook, scales ScaleMap) (*StageShader, error) {
	s := &StageShader{
		Source:      h,
		Kind:        h.Stage,
		ScaleFactor: h.ScaleFactor,
	}

	s.Name = h.Output
	if h.Output == "dest" {
		s.Name = "result"
	}

	switch h.Stage {
	case StageConv:
		code, err := convertConvCode(h, scales)
		if err != nil {
			return nil, err
		}
		s.Code = code
	case StageDepthToSpace:
		s.ChannelCount = uint32(len(h.Inputs))
	}

	for i, input := range h.Inputs {
		name := input
		if input == "source" {
			name = "SOURCE"
		}
		s.Inputs = append(s.Inputs, Binding{Binding: uint32(i), Texture: name})
	}

	outputName := s.Name
	if h.Output == "dest" {
		outputName = "RESULT"
	}
	s.Output = Binding{Binding: uint32(len(s.Inputs)), Texture: outputName}

	if h.ScaleFactor > 1 {
		s.Sampler = uint32(len(s.Inputs)) + 1
		s.HasSampler = true
	}

	return s, nil
}

// Patterns of the embedded macro language recognized in Conv stage bodies.
var (
	// Offset-accessor macro, optionally negated and rectified, optionally
	// fractional for cross-scale access:
	//   #define GO(x_off, y_off) (conv1_texOff(vec2(x_off, y_off) * 0.5))
	//   #define GO(x_off, y_off) (max(-(conv1_texOff(vec2(x_off, y_off))), 0.0))
	offsetMacroRe = regexp.MustCompile(`^#define (?P<name>\w+)\(x_off, y_off\) \((?:max\((?P<sign>-?)\()?(?P<texture>\w+)_texOff\(vec2\(x_off, y_off\)(?: \* (?P<fraction>0\.\d+))?\)(?:\), 0.0\))?\)$`)

	// Same-scale accessor macro with mandatory rectification:
	//   #define G (max(-(conv1_tex(pos)), 0.0))
	reluMacroRe = regexp.MustCompile(`^#define (?P<name>\w+) \(max\((?P<sign>-?)\((?P<texture>\w+)_tex\(\w+\)\), 0.0\)\)$`)

	entrypointBeginRe = regexp.MustCompile(`^vec4 hook\(\) \{$`)
	entrypointEndRe   = regexp.MustCompile(`^\}$`)

	// Accumulation: result += mat4(...) * GO(1.0, 0.0);
	accumulateRe = regexp.MustCompile(`^(?P<decl>vec4 )?result \+?= mat4\((?P<weights>[^)]+)\) \* (?P<func>\w+)(?:\((?P<xoff>1|0|-1)\.0, (?P<yoff>1|0|-1)\.0\))?;$`)

	// Bias addition: result += vec4(...);
	biasRe = regexp.MustCompile(`^result \+= vec4\((?P<weights>[^)]+)\);$`)

	returnRe = regexp.MustCompile(`^return result;$`)

	// Residual output: return result [* 0.x] + MAIN_tex(MAIN_pos);
	returnOverlayRe = regexp.MustCompile(`^return result(?P<factor>(?: \* 0\.\d+)?) \+ MAIN_tex\(MAIN_pos\);$`)
)

// convertConvCode translates a Conv hook body into a WGSL compute shader,
// pattern-matching each line against the embedded macro language.
func convertConvCode(h *Hook, scales ScaleMap) (string, error) {
	var code strings.Builder

	fmt.Fprintf(&code, "// Layer: %s\n", h.Name)
	fmt.Fprintf(&code, "// Inputs: %s\n", strings.Join(h.Inputs, ", "))
	fmt.Fprintf(&code, "// Output: %s\n", h.Output)
	fmt.Fprintf(&code, "// Scale Factor: x%d from source\n", h.ScaleFactor)
	code.WriteString("\n")

	for i, input := range h.Inputs {
		fmt.Fprintf(&code, "@group(0) @binding(%d) var %s_tex: texture_2d<f32>;\n", i, input)
	}
	fmt.Fprintf(&code, "@group(0) @binding(%d) var %s_tex: texture_storage_2d<rgba32float, write>;\n", len(h.Inputs), h.Output)
	if h.NeedsSampler {
		fmt.Fprintf(&code, "@group(0) @binding(%d) var input_sampler: sampler;\n", len(h.Inputs)+1)
	}
	code.WriteString("\n")

	// Scale factor of the texture behind each generated accessor
	// function, used to pick indexed vs. sampled access per accumulation.
	funcScales := make(map[string]uint32)

	for rawLine := range strings.Lines(h.Code) {
		line := strings.TrimSpace(rawLine)

		switch {
		case offsetMacroRe.MatchString(line):
			m := submatches(offsetMacroRe, line)
			texture := m["texture"]
			if texture == "MAIN" {
				texture = "source"
			}
			targetScale, ok := scales[texture]
			if !ok {
				return "", fmt.Errorf("hook %q: unknown texture %q", h.Name, texture)
			}

			if fraction := m["fraction"]; fraction != "" {
				if targetScale == h.ScaleFactor {
					return "", fmt.Errorf("hook %q: fraction should only be used for textures with different scale factors", h.Name)
				}
				fmt.Fprintf(&code, "fn %s(uv_pos: vec2f, offset: vec2i) -> vec4f {\n", m["name"])
				fmt.Fprintf(&code, "    let coords = uv_pos + vec2f(offset) * %s / vec2f(textureDimensions(%s_tex));\n", fraction, texture)
				fmt.Fprintf(&code, "    let value = textureSampleLevel(%s_tex, input_sampler, coords, 0.0);\n", texture)
			} else {
				if targetScale != h.ScaleFactor {
					return "", fmt.Errorf("hook %q: fraction should be used for textures with different scale factors", h.Name)
				}
				fmt.Fprintf(&code, "fn %s(pos: vec2i) -> vec4f {\n", m["name"])
				fmt.Fprintf(&code, "    let value = textureLoad(%s_tex, pos, 0);\n", texture)
			}
			if sign, negated := m["sign"], offsetMacroHasRectifier(line); negated {
				fmt.Fprintf(&code, "    return max(%svalue, vec4f());\n", sign)
			} else {
				code.WriteString("    return value;\n")
			}
			code.WriteString("}\n\n")

			funcScales[m["name"]] = targetScale

		case reluMacroRe.MatchString(line):
			m := submatches(reluMacroRe, line)
			texture := m["texture"]
			if texture == "MAIN" {
				texture = "source"
			}
			targetScale, ok := scales[texture]
			if !ok {
				return "", fmt.Errorf("hook %q: unknown texture %q", h.Name, texture)
			}
			if targetScale != h.ScaleFactor {
				return "", fmt.Errorf("hook %q: non-offset macros should only be used for textures with the same scale factor", h.Name)
			}

			fmt.Fprintf(&code, "fn %s(pos: vec2i) -> vec4f {\n", m["name"])
			fmt.Fprintf(&code, "    let value = textureLoad(%s_tex, pos, 0);\n", texture)
			fmt.Fprintf(&code, "    return max(%svalue, vec4f());\n", m["sign"])
			code.WriteString("}\n\n")

			funcScales[m["name"]] = targetScale

		case entrypointBeginRe.MatchString(line):
			// The hook's single entry point becomes two: a bounds-checked
			// main for uneven dispatch grids and an unchecked variant,
			// both delegating to one per-pixel process function.
			fmt.Fprintf(&code, "@compute @workgroup_size(%d, %d)\n", computeWorkgroupSizeX, computeWorkgroupSizeY)
			code.WriteString("fn main(@builtin(global_invocation_id) pixel: vec3u) {\n")
			fmt.Fprintf(&code, "    let out_dim: vec2u = textureDimensions(%s_tex);\n", h.Output)
			code.WriteString("    if (pixel.x < out_dim.x && pixel.y < out_dim.y) {\n")
			code.WriteString("        process(vec2i(pixel.xy));\n")
			code.WriteString("    }\n")
			code.WriteString("}\n\n")

			fmt.Fprintf(&code, "@compute @workgroup_size(%d, %d)\n", computeWorkgroupSizeX, computeWorkgroupSizeY)
			code.WriteString("fn main_unchecked(@builtin(global_invocation_id) pixel: vec3u) {\n")
			code.WriteString("    process(vec2i(pixel.xy));\n")
			code.WriteString("}\n\n")

			code.WriteString("fn process(pos: vec2i) {\n")

		case entrypointEndRe.MatchString(line):
			code.WriteString("}\n")

		case accumulateRe.MatchString(line):
			m := submatches(accumulateRe, line)
			funcScale, ok := funcScales[m["func"]]
			if !ok {
				return "", fmt.Errorf("hook %q: unknown function %q", h.Name, m["func"])
			}

			if m["decl"] != "" {
				// First accumulation: emit the coordinate precomputation
				// for the whole pass before declaring the accumulator.
				if h.NeedsBound {
					fmt.Fprintf(&code, "    let bound = vec2i(textureDimensions(%s_tex)) - 1;\n", h.Output)
				}
				if h.NeedsSampler {
					fmt.Fprintf(&code, "    let uv_pos = (vec2f(pos) + 0.5) / vec2f(textureDimensions(%s_tex));\n", h.Output)
				}
				code.WriteString("    var result = vec4f();\n")
			}

			xoff, yoff := m["xoff"], m["yoff"]
			switch {
			case xoff != "" || yoff != "":
				if funcScale != h.ScaleFactor {
					fmt.Fprintf(&code, "    result += mat4x4f(%s) * %s(uv_pos, vec2i(%s, %s));\n", m["weights"], m["func"], xoff, yoff)
				} else {
					fmt.Fprintf(&code, "    result += mat4x4f(%s) * %s(%s);\n", m["weights"], m["func"], boundedPos(xoff, yoff))
				}
			default:
				if funcScale != h.ScaleFactor {
					return "", fmt.Errorf("hook %q: non-offset macros should only be used for textures with the same scale factor", h.Name)
				}
				fmt.Fprintf(&code, "    result += mat4x4f(%s) * %s(pos);\n", m["weights"], m["func"])
			}

		case biasRe.MatchString(line):
			m := submatches(biasRe, line)
			fmt.Fprintf(&code, "    result += vec4f(%s);\n", m["weights"])

		case returnRe.MatchString(line):
			fmt.Fprintf(&code, "    textureStore(%s_tex, pos, result);\n", h.Output)

		case returnOverlayRe.MatchString(line):
			m := submatches(returnOverlayRe, line)
			if h.ScaleFactor == 1 {
				fmt.Fprintf(&code, "    textureStore(%s_tex, pos, result%s + textureLoad(source_tex, pos, 0));\n", h.Output, m["factor"])
			} else {
				fmt.Fprintf(&code, "    textureStore(%s_tex, pos, result%s + textureSampleLevel(source_tex, input_sampler, uv_pos, 0.0));\n", h.Output, m["factor"])
			}

		case strings.HasPrefix(line, "//"), line == "":
			// Comments and blank lines carry nothing.

		default:
			return "", &TranslateError{Hook: h.Name, Line: line}
		}
	}

	return code.String(), nil
}

// boundedPos builds the coordinate expression for a same-scale offset
// access, clamping only on the sides the offset can push out of range:
// negative offsets clamp against zero, positive ones against the upper
// bound. This mirrors edge-replication sampling without a sampler.
func boundedPos(xoff, yoff string) string {
	negative := strings.HasPrefix(xoff, "-") || strings.HasPrefix(yoff, "-")
	positive := (!strings.HasPrefix(xoff, "-") && xoff != "0") ||
		(!strings.HasPrefix(yoff, "-") && yoff != "0")
	switch {
	case negative && positive:
		return fmt.Sprintf("clamp(pos + vec2i(%s, %s), vec2i(0), bound)", xoff, yoff)
	case negative:
		return fmt.Sprintf("max(pos + vec2i(%s, %s), vec2i(0))", xoff, yoff)
	case positive:
		return fmt.Sprintf("min(pos + vec2i(%s, %s), bound)", xoff, yoff)
	default:
		return "pos"
	}
}

// offsetMacroHasRectifier reports whether an offset macro wraps its access
// in the max(..., 0.0) rectifier form.
func offsetMacroHasRectifier(line string) bool {
	return strings.Contains(line, "max(")
}

// submatches returns the named capture groups of re applied to line.
func submatches(re *regexp.Regexp, line string) map[string]string {
	m := re.FindStringSubmatch(line)
	result := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(m) {
			result[name] = m[i]
		}
	}
	return result
}
