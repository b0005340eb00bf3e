package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ScaleFactor is an exact rational scale relative to the pipeline input
// dimensions. Textures twice as wide as the input carry 2/1, half-size
// textures carry 1/2.
//
// Equality is strict: 2/1 and 4/2 are distinct values even though they
// denote the same ratio. The physical texture allocator depends on this
// strictness for slot compatibility, so ScaleFactor never reduces.
type ScaleFactor struct {
	Numerator   uint32 `json:"numerator" yaml:"numerator"`
	Denominator uint32 `json:"denominator" yaml:"denominator"`
}

// NewScaleFactor creates a scale factor from numerator and denominator.
func NewScaleFactor(numerator, denominator uint32) ScaleFactor {
	return ScaleFactor{Numerator: numerator, Denominator: denominator}
}

// UnityScale is the 1/1 scale factor of the SOURCE texture.
func UnityScale() ScaleFactor { return ScaleFactor{Numerator: 1, Denominator: 1} }

// Float64 converts the scale factor to a floating-point ratio.
func (s ScaleFactor) Float64() float64 {
	return float64(s.Numerator) / float64(s.Denominator)
}

// IsUnity reports whether the scale factor equals 1.0 (no scaling).
func (s ScaleFactor) IsUnity() bool { return s.Numerator == s.Denominator }

// IsUpscale reports whether the scale factor is greater than 1.0.
func (s ScaleFactor) IsUpscale() bool { return s.Numerator > s.Denominator }

// IsDownscale reports whether the scale factor is less than 1.0.
func (s ScaleFactor) IsDownscale() bool { return s.Numerator < s.Denominator }

// String formats the scale factor in the manifest notation: "2" for whole
// ratios, "1/2" otherwise.
func (s ScaleFactor) String() string {
	if s.Denominator == 1 {
		return strconv.FormatUint(uint64(s.Numerator), 10)
	}
	return fmt.Sprintf("%d/%d", s.Numerator, s.Denominator)
}

// ParseScaleFactor parses the textual notation used in manifests: either a
// bare integer ("2" means 2/1) or a slash fraction ("1/2"). A zero
// denominator is an error.
func ParseScaleFactor(s string) (ScaleFactor, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseUint(num, 10, 32)
		if err != nil {
			return ScaleFactor{}, fmt.Errorf("scale factor %q: invalid numerator", s)
		}
		d, err := strconv.ParseUint(den, 10, 32)
		if err != nil {
			return ScaleFactor{}, fmt.Errorf("scale factor %q: invalid denominator", s)
		}
		if d == 0 {
			return ScaleFactor{}, fmt.Errorf("scale factor %q: denominator cannot be zero", s)
		}
		return NewScaleFactor(uint32(n), uint32(d)), nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return ScaleFactor{}, fmt.Errorf("scale factor %q: invalid numerator", s)
	}
	return NewScaleFactor(uint32(n), 1), nil
}

// UnmarshalYAML decodes a scale factor from its textual manifest form.
func (s *ScaleFactor) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	parsed, err := ParseScaleFactor(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes the scale factor in its textual manifest form.
func (s ScaleFactor) MarshalYAML() (any, error) {
	return s.String(), nil
}
