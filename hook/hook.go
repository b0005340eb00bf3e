// Package hook parses the legacy mpv hook shader notation used by Anime4K
// CNN shaders and translates it into WGSL compute passes.
//
// Hook-format source is line oriented: directive lines start with "//!"
// (DESC, HOOK, BIND, SAVE, WIDTH, HEIGHT, COMPONENTS, WHEN) and everything
// else is shader body text. One source blob concatenates several hooks,
// each starting at a DESC line.
package hook

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// StageKind is the kind of processing stage a hook describes.
type StageKind uint8

const (
	// StageConv is a convolutional layer: learned filters, ReLU
	// activation, bias addition, and optional residual connections. Its
	// body is translated line by line into WGSL.
	StageConv StageKind = iota

	// StageDepthToSpace rearranges channels into spatial resolution for
	// the final upscale. Its algorithm is fixed; the stage defers to a
	// pre-authored helper shader.
	StageDepthToSpace
)

// String returns a human-readable stage kind name.
func (k StageKind) String() string {
	if k == StageDepthToSpace {
		return "DepthToSpace"
	}
	return "Conv"
}

// ScaleMap tracks the scale factor of every texture name seen so far.
// Parsing is order dependent: a pass registers its output scale only after
// it is fully parsed, so a pass can never reference a texture defined
// later.
type ScaleMap map[string]uint32

// NewScaleMap seeds the map with the base textures every pipeline starts
// from, all at scale 1: MAIN and HOOKED (mpv terminology) and source.
func NewScaleMap() ScaleMap {
	return ScaleMap{"MAIN": 1, "HOOKED": 1, "source": 1}
}

// Hook is one parsed mpv hook: directive metadata plus the raw shader body
// left after stripping directive lines.
type Hook struct {
	// Name is the description from the DESC directive.
	Name string
	// ScaleFactor is the integer upscaling factor relative to the source.
	ScaleFactor uint32
	// NeedsSampler is set when any input has a scale different from the
	// hook's own, requiring interpolated access.
	NeedsSampler bool
	// NeedsBound is set when any input shares the hook's scale, requiring
	// bounds-checked indexed access.
	NeedsBound bool
	// Inputs are the texture names from BIND directives, in order.
	Inputs []string
	// Output is the texture name from the SAVE directive.
	Output string
	// Stage is the processing stage kind, classified from the name.
	Stage StageKind
	// Code is the shader body with directive lines removed.
	Code string
}

// Split separates concatenated hook-format source into individual hook
// sections, each beginning at a "//!DESC" line. Text before the first DESC
// line is discarded. The split is lossless on whitespace within sections.
func Split(source string) []string {
	var hooks []string
	var current strings.Builder

	for line := range strings.Lines(source) {
		line = strings.TrimRight(line, "\n")
		if strings.HasPrefix(line, "//!DESC ") {
			if current.Len() > 0 {
				hooks = append(hooks, current.String())
			}
			current.Reset()
			current.WriteString(line + "\n")
			continue
		}
		if current.Len() > 0 {
			current.WriteString(line + "\n")
		}
	}

	if current.Len() > 0 {
		hooks = append(hooks, current.String())
	}
	return hooks
}

// Matches "//!WIDTH MAIN.w 2 *" and "//!HEIGHT conv2x.h": a base texture
// dimension with an optional integer multiplier.
var scaleFactorRe = regexp.MustCompile(`^//!(?:WIDTH|HEIGHT) (\w+)\.[wh](?: (\d+) \*)?$`)

// Parse extracts the structured metadata from one hook section and records
// the hook's output scale in scales, making it visible to later hooks. The
// sentinel name MAIN normalizes to "source" for inputs and "dest" for the
// output.
func Parse(source string, scales ScaleMap) (*Hook, error) {
	h := &Hook{}
	var code strings.Builder

	for line := range strings.Lines(source) {
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "//!DESC "):
			h.Name = strings.TrimSpace(strings.TrimPrefix(line, "//!DESC "))

		case strings.HasPrefix(line, "//!WIDTH ") || strings.HasPrefix(line, "//!HEIGHT "):
			m := scaleFactorRe.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("hook %q: invalid scale factor line %q", h.Name, line)
			}
			ratio := uint64(1)
			if m[2] != "" {
				// The multiplier was matched as \d+ so it always parses.
				ratio, _ = strconv.ParseUint(m[2], 10, 32)
			}
			baseScale, ok := scales[m[1]]
			if !ok {
				return nil, fmt.Errorf("hook %q: unknown base texture name %q", h.Name, m[1])
			}
			scale := baseScale * uint32(ratio)
			if h.ScaleFactor == 0 {
				h.ScaleFactor = scale
			} else if h.ScaleFactor != scale {
				return nil, fmt.Errorf("hook %q: inconsistent WIDTH and HEIGHT scale factors", h.Name)
			}

		case strings.HasPrefix(line, "//!BIND "):
			name := strings.TrimSpace(strings.TrimPrefix(line, "//!BIND "))
			if name == "MAIN" {
				name = "source"
			}
			h.Inputs = append(h.Inputs, name)

		case strings.HasPrefix(line, "//!SAVE "):
			name := strings.TrimSpace(strings.TrimPrefix(line, "//!SAVE "))
			if name == "MAIN" {
				name = "dest"
			}
			h.Output = name

		case strings.HasPrefix(line, "//!HOOK "):
			target := strings.TrimSpace(strings.TrimPrefix(line, "//!HOOK "))
			if target != "MAIN" {
				return nil, fmt.Errorf("hook %q: unsupported hook target %q", h.Name, target)
			}

		case strings.HasPrefix(line, "//!COMPONENTS "):
			components := strings.TrimSpace(strings.TrimPrefix(line, "//!COMPONENTS "))
			if components != "4" {
				return nil, fmt.Errorf("hook %q: unsupported component count %q", h.Name, components)
			}

		case strings.HasPrefix(line, "//!WHEN "):
			// Conditional hooks are not supported; the directive is
			// accepted and ignored.

		default:
			code.WriteString(line + "\n")
		}
	}
	h.Code = code.String()

	switch {
	case strings.Contains(h.Name, "-Conv-"):
		h.Stage = StageConv
	case strings.Contains(h.Name, "-Depth-to-Space"):
		h.Stage = StageDepthToSpace
	default:
		return nil, fmt.Errorf("hook %q: unknown stage type", h.Name)
	}

	if h.Name == "" {
		return nil, fmt.Errorf("hook: no name specified")
	}
	if len(h.Inputs) == 0 {
		return nil, fmt.Errorf("hook %q: no inputs specified", h.Name)
	}
	if h.Output == "" {
		return nil, fmt.Errorf("hook %q: no output specified", h.Name)
	}
	if h.ScaleFactor == 0 {
		return nil, fmt.Errorf("hook %q: no scale factor specified", h.Name)
	}

	for _, input := range h.Inputs {
		inputScale, ok := scales[input]
		if !ok {
			return nil, fmt.Errorf("hook %q: unknown input texture %q", h.Name, input)
		}
		if inputScale == h.ScaleFactor {
			h.NeedsBound = true
		} else {
			h.NeedsSampler = true
		}
	}

	scales[h.Output] = h.ScaleFactor
	return h, nil
}
