package scene

import "math/rand/v2"

// MinTextures is the smallest texture set the scene accepts: four
// selectable textures plus the default.
const MinTextures = 5

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// TextureSelection says how the merged cube is drawn: with a texture from
// the set, or with a flat color sampled per frame.
type TextureSelection struct {
	Index int
	Flat  bool
}

// texturePolicy picks textures for the merged cube.
type texturePolicy struct {
	count        int
	defaultIndex int
}

func (p texturePolicy) standard() TextureSelection {
	return TextureSelection{Index: p.defaultIndex}
}

// random draws uniformly from every index except the default.
func (p texturePolicy) random(rng *rand.Rand) TextureSelection {
	i := rng.IntN(p.count - 1)
	if i >= p.defaultIndex {
		i++
	}
	return TextureSelection{Index: i}
}

func randomColor(rng *rand.Rand) Color {
	return Color{rng.Float32(), rng.Float32(), rng.Float32(), 1}
}
