package pipeline

import "math"

// Reserved logical texture names. SOURCE is the pipeline input and always
// exists; RESULT is the final output and may only be written by the last
// pass.
const (
	SourceTextureName = "SOURCE"
	ResultTextureName = "RESULT"
)

// SourceTextureID is the reserved physical id of the SOURCE texture,
// distinguishable from every allocated id.
const SourceTextureID uint32 = math.MaxUint32

// PhysicalTexture is a GPU texture slot that one or more logical textures
// occupy over disjoint lifetimes.
type PhysicalTexture struct {
	// ID is the physical texture id. Allocated ids are sequential from 0;
	// SOURCE uses the reserved SourceTextureID.
	ID uint32 `json:"id"`
	// Components is the number of color components.
	Components uint32 `json:"components"`
	// ScaleFactor holds the [width, height] scale relative to the input.
	ScaleFactor [2]ScaleFactor `json:"scale_factor"`
	// IsSource marks the pipeline's input texture.
	IsSource bool `json:"is_source"`
}

// AssignPhysicalTextures packs logical texture lifetimes into physical
// texture slots using greedy first-fit with immediate reuse. A slot is
// reusable once its occupant's lifetime has ended, and only for a texture
// with identical component count and scale factor. Scale comparison is
// strict: 2/1 and 4/2 never share a slot.
//
// The greedy strategy, including its first-fit tie-breaking, is part of the
// compiled pipeline contract. Interval-graph coloring could occasionally
// pack tighter but would change which slot each logical texture lands in.
//
// Lifetimes must be ordered by creation pass, as produced by lifetime
// analysis. The returned map contains an entry for every lifetime plus
// SOURCE.
func AssignPhysicalTextures(lifetimes []TextureLifetime) ([]PhysicalTexture, map[string]uint32) {
	physical := []PhysicalTexture{{
		ID:          SourceTextureID,
		Components:  4,
		ScaleFactor: [2]ScaleFactor{UnityScale(), UnityScale()},
		IsSource:    true,
	}}
	assignments := map[string]uint32{SourceTextureName: SourceTextureID}

	// slots[i] holds the current occupant of physical texture i, or nil
	// when the slot has never been filled.
	var slots []*TextureLifetime

	for i := range lifetimes {
		lifetime := lifetimes[i]
		assigned := int64(-1)
		reused := false

		for slotID := range slots {
			occupant := slots[slotID]
			if occupant == nil {
				assigned = int64(slotID)
				slots[slotID] = &lifetime
				break
			}
			if occupant.LastUsedAt < lifetime.CreatedAt &&
				occupant.Components == lifetime.Components &&
				occupant.ScaleFactor == lifetime.ScaleFactor {
				assigned = int64(slotID)
				slots[slotID] = &lifetime
				reused = true
				break
			}
		}

		var physicalID uint32
		if assigned >= 0 {
			physicalID = uint32(assigned)
		} else {
			physicalID = uint32(len(slots))
			slots = append(slots, &lifetime)
		}

		if !reused {
			physical = append(physical, PhysicalTexture{
				ID:          physicalID,
				Components:  lifetime.Components,
				ScaleFactor: lifetime.ScaleFactor,
			})
		}
		assignments[lifetime.LogicalID] = physicalID
	}

	return physical, assignments
}
