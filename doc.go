// Package anime4k compiles Anime4K shader pipelines into an optimized,
// directly executable form.
//
// # Overview
//
// Anime4K pipelines exist in two source notations: the legacy mpv hook
// format used by the original GLSL shaders (parsed and translated by the
// hook subpackage) and declarative YAML pass manifests (parsed by the
// pipeline subpackage). Both compile into the same [pipeline.Executable]
// value: passes with resolved resource bindings, embedded WGSL shader text,
// and a minimal physical texture set computed by lifetime analysis.
//
// # Quick Start
//
//	// Compile a YAML pass manifest; shader files resolve next to it.
//	exe, err := anime4k.CompileManifestFile("deblur_manifest.yaml", anime4k.CompileOptions{})
//
//	// Compile an mpv-format CNN shader.
//	exe, err := anime4k.CompileHookSource(glslSource, helpers, anime4k.CompileOptions{Minify: true})
//
// The compiled pipeline is plain data. Executing it is the concern of a GPU
// runtime: create one texture per physical id, one compute dispatch per
// pass, and read the final image from the RESULT output of the last pass.
//
// # Architecture
//
// The library is organized into:
//   - Public API: CompileHookSource, CompileManifest, Compiler, presets
//   - pipeline: manifest parsing, validation, lifetime analysis, physical
//     texture allocation, pipeline compilation
//   - hook: mpv hook parsing and GLSL to WGSL translation
//   - cache: sharded LRU memoization backing [Compiler]
//
// # Concurrency
//
// Compilation is a pure function of its inputs. Every entry point is safe
// for concurrent use as long as each call receives its own loader.
package anime4k

// Version is the current version of the library.
const Version = "0.2.0"
