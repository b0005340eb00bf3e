package anime4k

import "testing"

func TestCompilerMemoizesManifest(t *testing.T) {
	c := NewCompiler(CompileOptions{})
	loader := func(filename string) (string, error) {
		return "// shader", nil
	}

	first, err := c.Manifest([]byte(testManifest), loader)
	if err != nil {
		t.Fatalf("Manifest: %v", err)
	}
	second, err := c.Manifest([]byte(testManifest), loader)
	if err != nil {
		t.Fatalf("Manifest (cached): %v", err)
	}
	if first != second {
		t.Error("second compile did not return the cached pipeline")
	}

	hits, misses := c.CacheStats()
	if hits != 1 || misses != 1 {
		t.Errorf("CacheStats = %d hits, %d misses; want 1, 1", hits, misses)
	}
}

func TestCompilerMemoizesHookSource(t *testing.T) {
	c := NewCompiler(CompileOptions{})

	first, err := c.HookSource(testHookSource, helperLoader(t))
	if err != nil {
		t.Fatalf("HookSource: %v", err)
	}
	second, err := c.HookSource(testHookSource, helperLoader(t))
	if err != nil {
		t.Fatalf("HookSource (cached): %v", err)
	}
	if first != second {
		t.Error("second compile did not return the cached pipeline")
	}
}

func TestCompilerDistinctSources(t *testing.T) {
	c := NewCompiler(CompileOptions{})
	loader := func(filename string) (string, error) {
		return "// shader", nil
	}

	a, err := c.Manifest([]byte(testManifest), loader)
	if err != nil {
		t.Fatalf("Manifest: %v", err)
	}
	other := []byte(testManifest + "\n# trailing comment\n")
	b, err := c.Manifest(other, loader)
	if err != nil {
		t.Fatalf("Manifest (variant): %v", err)
	}
	if a == b {
		t.Error("different manifest content shared a cache entry")
	}
}

func TestCompilerDoesNotCacheFailures(t *testing.T) {
	c := NewCompiler(CompileOptions{})

	if _, err := c.Manifest([]byte("id: [broken"), nil); err == nil {
		t.Fatal("Manifest succeeded on malformed YAML")
	}
	// A later compile of the same content must retry, not return a cached
	// failure.
	if _, err := c.Manifest([]byte("id: [broken"), nil); err == nil {
		t.Fatal("Manifest succeeded on malformed YAML after a failure")
	}
	hits, _ := c.CacheStats()
	if hits != 0 {
		t.Errorf("failed compiles produced %d cache hits", hits)
	}
}
