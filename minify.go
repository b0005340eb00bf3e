package anime4k

import (
	"fmt"
	"strings"

	"github.com/gogpu/naga"
)

// MinifyWGSL reduces the size of WGSL shader source without changing its
// meaning. The shader is parsed, lowered, and validated through naga, then
// compacted textually: comments, blank lines, and indentation are removed.
//
// Minification is the only shader transformation the compiler performs; no
// optimization happens here. Invalid WGSL is an error, never passed
// through.
func MinifyWGSL(shader string) (string, error) {
	ast, err := naga.Parse(shader)
	if err != nil {
		return "", fmt.Errorf("minify: %w", err)
	}
	module, err := naga.LowerWithSource(ast, shader)
	if err != nil {
		return "", fmt.Errorf("minify: %w", err)
	}
	validationErrors, err := naga.Validate(module)
	if err != nil {
		return "", fmt.Errorf("minify: %w", err)
	}
	if len(validationErrors) > 0 {
		return "", fmt.Errorf("minify: validation failed: %w", &validationErrors[0])
	}

	return compactWGSL(shader), nil
}

// compactWGSL strips line comments, blank lines, and indentation. Block
// comments are removed before the line pass so multi-line forms collapse
// cleanly.
func compactWGSL(shader string) string {
	shader = stripBlockComments(shader)

	var out strings.Builder
	for line := range strings.Lines(shader) {
		line = strings.TrimRight(line, "\n")
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

func stripBlockComments(shader string) string {
	var out strings.Builder
	for {
		start := strings.Index(shader, "/*")
		if start < 0 {
			out.WriteString(shader)
			return out.String()
		}
		out.WriteString(shader[:start])
		end := strings.Index(shader[start+2:], "*/")
		if end < 0 {
			return out.String()
		}
		shader = shader[start+2+end+2:]
	}
}
