package scene

import (
	"math/rand/v2"
	"testing"

	"github.com/Faultbox/cubemerge/pkg/math"
)

type fixedView math.Mat4

func (v fixedView) ViewMatrix() math.Mat4 { return math.Mat4(v) }

type fixedProj math.Mat4

func (p fixedProj) Matrix() math.Mat4 { return math.Mat4(p) }

func composeModels(n int) []Model {
	models := make([]Model, n)
	for i := range models {
		p := math.Vec3{X: float32(i), Y: -float32(i)}
		models[i] = Model{ID: i, Position: p, Target: p, Transform: math.TranslateVec(p)}
	}
	return models
}

func TestComposeMVP(t *testing.T) {
	c := NewFrameComposer(rand.New(rand.NewPCG(1, 2)), 5)
	view := math.LookAt(math.Vec3{Z: 8}, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(0.8, 1.5, 0.1, 100)
	models := composeModels(3)

	records := c.Compose(fixedView(view), fixedProj(proj), models, PhaseCycling, TextureSelection{})
	if len(records) != len(models) {
		t.Fatalf("%d records for %d models", len(records), len(models))
	}
	for i, r := range records {
		want := proj.Mul(view).Mul(models[i].Transform)
		if r.MVP != want {
			t.Errorf("record %d MVP = %v, want %v", i, r.MVP, want)
		}
		if r.ModelID != models[i].ID {
			t.Errorf("record %d has model %d", i, r.ModelID)
		}
	}
}

func TestComposeTextureRoundRobin(t *testing.T) {
	c := NewFrameComposer(rand.New(rand.NewPCG(1, 2)), 5)
	id := math.Identity()

	for _, phase := range []Phase{PhaseCycling, PhaseMerging} {
		records := c.Compose(fixedView(id), fixedProj(id), composeModels(7), phase, TextureSelection{Index: 4})
		for i, r := range records {
			if r.Flat || r.Texture != i%5 {
				t.Errorf("%v record %d = texture %d flat %v, want texture %d", phase, i, r.Texture, r.Flat, i%5)
			}
		}
	}
}

func TestComposeSteadyUsesSelection(t *testing.T) {
	c := NewFrameComposer(rand.New(rand.NewPCG(1, 2)), 5)
	id := math.Identity()

	records := c.Compose(fixedView(id), fixedProj(id), composeModels(1), PhaseSteady, TextureSelection{Index: 2})
	if len(records) != 1 || records[0].Flat || records[0].Texture != 2 {
		t.Errorf("steady records = %+v, want one with texture 2", records)
	}
}

func TestComposeColorFlashSamplesFreshColors(t *testing.T) {
	c := NewFrameComposer(rand.New(rand.NewPCG(1, 2)), 5)
	id := math.Identity()
	models := composeModels(3)

	first := c.Compose(fixedView(id), fixedProj(id), models, PhaseColorFlash, TextureSelection{Flat: true})
	second := c.Compose(fixedView(id), fixedProj(id), models, PhaseColorFlash, TextureSelection{Flat: true})

	for i := range first {
		r := first[i]
		if !r.Flat {
			t.Fatalf("record %d not flat during color flash", i)
		}
		if r.Color[3] != 1 {
			t.Errorf("record %d alpha = %v, want 1", i, r.Color[3])
		}
		for ch := 0; ch < 3; ch++ {
			if r.Color[ch] < 0 || r.Color[ch] >= 1 {
				t.Errorf("record %d channel %d = %v out of [0, 1)", i, ch, r.Color[ch])
			}
		}
		if first[i].Color == second[i].Color {
			t.Errorf("record %d kept its color across frames", i)
		}
	}
	if first[0].Color == first[1].Color {
		t.Error("models share a color within one frame")
	}
}

func TestRandomTextureSkipsDefault(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, def := range []int{0, 2, 4} {
		p := texturePolicy{count: 5, defaultIndex: def}
		seen := map[int]int{}
		for i := 0; i < 2000; i++ {
			sel := p.random(rng)
			if sel.Index == def || sel.Index < 0 || sel.Index >= 5 {
				t.Fatalf("default %d: random picked %d", def, sel.Index)
			}
			seen[sel.Index]++
		}
		if len(seen) != 4 {
			t.Errorf("default %d: picks %v do not cover the other four textures", def, seen)
		}
	}
}
