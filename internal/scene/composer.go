package scene

import (
	"math/rand/v2"

	"github.com/Faultbox/cubemerge/pkg/math"
)

// Viewer supplies a view matrix.
type Viewer interface {
	ViewMatrix() math.Mat4
}

// Projector supplies a projection matrix.
type Projector interface {
	Matrix() math.Mat4
}

// DrawRecord is everything the draw layer needs for one cube.
type DrawRecord struct {
	ModelID int
	MVP     math.Mat4
	Texture int // index into the texture set; ignored when Flat
	Flat    bool
	Color   Color // used when Flat
}

// FrameComposer turns models into draw records. It only reads the models;
// its sole side effect is drawing from the random source during the color flash.
type FrameComposer struct {
	rng          *rand.Rand
	textureCount int
}

// NewFrameComposer creates a composer for a texture set of the given size.
func NewFrameComposer(rng *rand.Rand, textureCount int) *FrameComposer {
	return &FrameComposer{rng: rng, textureCount: textureCount}
}

// Compose returns one record per model, in model order.
func (c *FrameComposer) Compose(view Viewer, proj Projector, models []Model, phase Phase, sel TextureSelection) []DrawRecord {
	vp := proj.Matrix().Mul(view.ViewMatrix())

	records := make([]DrawRecord, len(models))
	for i := range models {
		m := &models[i]
		r := DrawRecord{
			ModelID: m.ID,
			MVP:     vp.Mul(m.Transform),
		}
		switch phase {
		case PhaseColorFlash:
			r.Flat = true
			r.Color = randomColor(c.rng)
		case PhaseSteady:
			r.Texture = sel.Index
		default:
			r.Texture = m.ID % c.textureCount
		}
		records[i] = r
	}
	return records
}
