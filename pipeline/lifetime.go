package pipeline

import "sort"

// TextureLifetime is the inclusive range of pass indices during which a
// logical texture is live, from the pass that produces it to the last pass
// that reads it.
type TextureLifetime struct {
	// LogicalID is the logical texture identifier.
	LogicalID string
	// Components is the number of color components.
	Components uint32
	// ScaleFactor holds the [width, height] scale relative to the input.
	ScaleFactor [2]ScaleFactor
	// CreatedAt is the index of the pass that produces the texture.
	CreatedAt int
	// LastUsedAt is the highest pass index that reads the texture. A
	// texture never read again ends at its own creation pass.
	LastUsedAt int
}

// collectTextureLifetimes derives a lifetime for every logical texture
// produced by the pipeline. SOURCE is skipped; it is always available and
// never allocated.
//
// The result is sorted by creation pass. The allocator processes lifetimes
// in creation order and relies on every earlier-created texture having been
// assigned already.
func (s *Spec) collectTextureLifetimes() []TextureLifetime {
	var lifetimes []TextureLifetime

	for passIdx, pass := range s.Passes {
		for _, output := range pass.Outputs {
			if output.ID == SourceTextureName {
				continue
			}

			lastUsedAt := passIdx
			for laterIdx := passIdx + 1; laterIdx < len(s.Passes); laterIdx++ {
				for _, input := range s.Passes[laterIdx].Inputs {
					if input.ID == output.ID {
						lastUsedAt = laterIdx
					}
				}
			}

			lifetimes = append(lifetimes, TextureLifetime{
				LogicalID:   output.ID,
				Components:  output.Components,
				ScaleFactor: output.ScaleFactor,
				CreatedAt:   passIdx,
				LastUsedAt:  lastUsedAt,
			})
		}
	}

	sort.SliceStable(lifetimes, func(i, j int) bool {
		return lifetimes[i].CreatedAt < lifetimes[j].CreatedAt
	})
	return lifetimes
}
