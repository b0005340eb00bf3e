package anime4k

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gogpu/anime4k/hook"
	"github.com/gogpu/anime4k/pipeline"
)

// CompileOptions configures pipeline compilation.
type CompileOptions struct {
	// Minify validates and compacts every shader before embedding it.
	Minify bool
}

// CompileHookSource compiles mpv-format hook source (one or more
// concatenated hooks) into an executable pipeline. Convolution stages are
// translated to WGSL; depth-to-space stages pull their pre-authored shader
// body through helpers, keyed by the stage's channel count and scale
// factor.
func CompileHookSource(source string, helpers pipeline.ShaderLoader, opts CompileOptions) (*pipeline.Executable, error) {
	sections := hook.Split(source)

	files := make(map[string]string, len(sections))
	passes := make([]pipeline.Pass, 0, len(sections))
	scales := hook.NewScaleMap()

	for i, section := range sections {
		h, err := hook.Parse(section, scales)
		if err != nil {
			return nil, err
		}
		stage, err := hook.Translate(h, scales)
		if err != nil {
			return nil, err
		}

		var filename, code string
		if stage.Kind == hook.StageConv {
			filename = fmt.Sprintf("pass_%d.wgsl", i)
			code = stage.Code
		} else {
			filename = stage.HelperFile()
			code, err = helpers(filename)
			if err != nil {
				return nil, fmt.Errorf("hook %q: load helper shader %q: %w", h.Name, filename, err)
			}
		}

		if opts.Minify {
			code, err = MinifyWGSL(code)
			if err != nil {
				return nil, fmt.Errorf("hook %q: %w", h.Name, err)
			}
		}
		files[filename] = code

		passes = append(passes, hookPass(stage, i, filename))
	}

	spec := &pipeline.Spec{
		ID:     "anime4k_cnn",
		Name:   "Anime4K CNN",
		Passes: passes,
	}

	exe, err := spec.Compile(func(filename string) (string, error) {
		code, ok := files[filename]
		if !ok {
			return "", fmt.Errorf("file not found: %s: %w", filename, fs.ErrNotExist)
		}
		return code, nil
	})
	if err != nil {
		return nil, err
	}

	Logger().Debug("compiled hook pipeline",
		"passes", len(exe.Passes),
		"physical_textures", len(exe.PhysicalTextures))
	return exe, nil
}

// hookPass builds the manifest-level pass for one translated stage. CNN
// intermediate textures are always 4 components at the stage's integer
// scale; scaling stages sample linearly.
func hookPass(stage *hook.StageShader, index int, filename string) pipeline.Pass {
	inputs := make([]pipeline.TextureBinding, 0, len(stage.Inputs))
	for _, input := range stage.Inputs {
		inputs = append(inputs, pipeline.TextureBinding{ID: input.Texture, Binding: input.Binding})
	}

	scale := pipeline.NewScaleFactor(stage.ScaleFactor, 1)
	pass := pipeline.Pass{
		ID:     fmt.Sprintf("Pass %d", index+1),
		File:   filename,
		Inputs: inputs,
		Outputs: []pipeline.TextureOutput{{
			ID:          stage.Output.Texture,
			Binding:     stage.Output.Binding,
			Components:  4,
			ScaleFactor: [2]pipeline.ScaleFactor{scale, scale},
		}},
	}
	if stage.HasSampler {
		pass.Samplers = []pipeline.SamplerBinding{{
			Binding:    stage.Sampler,
			FilterMode: pipeline.FilterLinear,
		}}
	}
	return pass
}

// CompileManifest compiles a YAML pipeline manifest. Shader file references
// resolve through loader; where the files live is the caller's concern.
func CompileManifest(manifest []byte, loader pipeline.ShaderLoader, opts CompileOptions) (*pipeline.Executable, error) {
	spec, err := pipeline.ParseSpec(manifest)
	if err != nil {
		return nil, err
	}
	return compileSpec(spec, loader, opts)
}

// CompileManifestFile compiles a YAML pipeline manifest from disk. Shader
// files resolve relative to the manifest's directory.
func CompileManifestFile(path string, opts CompileOptions) (*pipeline.Executable, error) {
	spec, err := pipeline.LoadSpec(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	return compileSpec(spec, func(filename string) (string, error) {
		content, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			return "", err
		}
		return string(content), nil
	}, opts)
}

func compileSpec(spec *pipeline.Spec, loader pipeline.ShaderLoader, opts CompileOptions) (*pipeline.Executable, error) {
	if opts.Minify {
		inner := loader
		loader = func(filename string) (string, error) {
			code, err := inner(filename)
			if err != nil {
				return "", err
			}
			return MinifyWGSL(code)
		}
	}

	exe, err := spec.Compile(loader)
	if err != nil {
		return nil, err
	}

	Logger().Debug("compiled manifest pipeline",
		"pipeline", exe.ID,
		"passes", len(exe.Passes),
		"physical_textures", len(exe.PhysicalTextures))
	return exe, nil
}
