package anime4k

import (
	"github.com/gogpu/anime4k/cache"
	"github.com/gogpu/anime4k/pipeline"
)

// Compiler compiles pipelines with memoization. Results are cached by
// content hash of the source text, so recompiling the same embedded shader
// (a player switching presets back and forth, for example) returns the
// previously compiled pipeline.
//
// Cached pipelines are shared, not copied; they are immutable by contract.
// The cache keys on source content only, so a Compiler must not outlive
// changes to the shader files a manifest references.
//
// Compiler is safe for concurrent use.
type Compiler struct {
	opts  CompileOptions
	cache *cache.Sharded[*pipeline.Executable]
}

// NewCompiler creates a caching compiler with the given options.
func NewCompiler(opts CompileOptions) *Compiler {
	return &Compiler{
		opts:  opts,
		cache: cache.NewSharded[*pipeline.Executable](0),
	}
}

// HookSource compiles mpv-format hook source, memoized by source content.
// Helper shader bodies for depth-to-space stages resolve through helpers;
// see [CompileHookSource].
func (c *Compiler) HookSource(source string, helpers pipeline.ShaderLoader) (*pipeline.Executable, error) {
	key := cache.Key(source)
	if exe, ok := c.cache.Get(key); ok {
		Logger().Debug("pipeline cache hit", "pipeline", exe.ID)
		return exe, nil
	}

	exe, err := CompileHookSource(source, helpers, c.opts)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, exe)
	return exe, nil
}

// Manifest compiles a YAML manifest, memoized by manifest content. Shader
// files resolve through loader; see [CompileManifest].
func (c *Compiler) Manifest(manifest []byte, loader pipeline.ShaderLoader) (*pipeline.Executable, error) {
	key := cache.Key(string(manifest))
	if exe, ok := c.cache.Get(key); ok {
		Logger().Debug("pipeline cache hit", "pipeline", exe.ID)
		return exe, nil
	}

	exe, err := CompileManifest(manifest, loader, c.opts)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, exe)
	return exe, nil
}

// CacheStats returns the cumulative cache hit and miss counts.
func (c *Compiler) CacheStats() (hits, misses uint64) {
	return c.cache.Stats()
}
