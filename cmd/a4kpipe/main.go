// Command a4kpipe compiles an Anime4K pipeline and dumps the result.
//
// It accepts either a YAML pass manifest or an mpv hook-format GLSL file,
// compiles it into an executable pipeline, and prints the compiled
// structure as JSON: physical textures, resolved bindings, required
// samplers, and embedded shader text.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gogpu/anime4k"
	"github.com/gogpu/anime4k/pipeline"
)

func main() {
	var (
		manifest = flag.String("manifest", "", "YAML pipeline manifest to compile")
		hookFile = flag.String("hook", "", "mpv hook-format GLSL file to compile")
		helpers  = flag.String("helpers", "", "directory with depth-to-space helper shaders (hook mode)")
		minify   = flag.Bool("minify", false, "validate and minify shaders before embedding")
		compact  = flag.Bool("compact", false, "print compact JSON instead of indented")
	)
	flag.Parse()

	if (*manifest == "") == (*hookFile == "") {
		fmt.Fprintln(os.Stderr, "usage: a4kpipe -manifest <file.yaml> | -hook <file.glsl> [-helpers <dir>] [-minify]")
		os.Exit(2)
	}

	opts := anime4k.CompileOptions{Minify: *minify}

	var (
		exe *pipeline.Executable
		err error
	)
	if *manifest != "" {
		exe, err = anime4k.CompileManifestFile(*manifest, opts)
	} else {
		exe, err = compileHookFile(*hookFile, *helpers, opts)
	}
	if err != nil {
		log.Fatalf("compile failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	if !*compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(exe); err != nil {
		log.Fatalf("encode failed: %v", err)
	}
}

func compileHookFile(path, helpersDir string, opts anime4k.CompileOptions) (*pipeline.Executable, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	loader := func(filename string) (string, error) {
		content, err := os.ReadFile(filepath.Join(helpersDir, filename))
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
	return anime4k.CompileHookSource(string(source), loader, opts)
}
