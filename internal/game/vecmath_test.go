package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNormalize_ZeroVector(t *testing.T) {
	if got := normalize(mgl64.Vec2{}); got != (mgl64.Vec2{}) {
		t.Fatalf("expected zero vector, got %v", got)
	}
	if got := normalize(mgl64.Vec2{3, 4}); !approxVec(got, mgl64.Vec2{0.6, 0.8}) {
		t.Fatalf("expected (0.6,0.8), got %v", got)
	}
}

func TestRandomPointInDisk_StaysInside(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	inner := 0
	for i := 0; i < 5000; i++ {
		p := randomPointInDisk(rng, 100)
		d := length(p)
		if d > 100 {
			t.Fatalf("sample %v outside radius", p)
		}
		if d < 50 {
			inner++
		}
	}
	// Uniform over area: a quarter of the samples fall inside half the radius.
	if frac := float64(inner) / 5000; math.Abs(frac-0.25) > 0.03 {
		t.Fatalf("expected ~25%% of samples inside r/2, got %.3f", frac)
	}
}

func TestRandomUnit_IsUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		if l := length(randomUnit(rng)); math.Abs(l-1) > 1e-9 {
			t.Fatalf("expected unit length, got %f", l)
		}
	}
}

func TestRemoveOutward(t *testing.T) {
	out := mgl64.Vec2{1, 0}
	if got := removeOutward(mgl64.Vec2{2, 3}, out); got != (mgl64.Vec2{0, 3}) {
		t.Fatalf("outward part should be stripped, got %v", got)
	}
	if got := removeOutward(mgl64.Vec2{-2, 3}, out); got != (mgl64.Vec2{-2, 3}) {
		t.Fatalf("inward velocity should be untouched, got %v", got)
	}
}

func TestRandomChoice_Empty(t *testing.T) {
	if got := randomChoice(rand.New(rand.NewSource(1)), nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
