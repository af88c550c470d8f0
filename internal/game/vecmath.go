package game

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// frameRate is the logical update rate the speed/force constants were tuned for.
const frameRate = 60

// spawnEdgeGap keeps idle spawns clear of the outer boundary ring.
const spawnEdgeGap = 12

// length returns the Euclidean length of v.
func length(v mgl64.Vec2) float64 {
	return math.Hypot(v[0], v[1])
}

// normalize returns v scaled to unit length, or the zero vector for a zero v.
func normalize(v mgl64.Vec2) mgl64.Vec2 {
	l := length(v)
	if l == 0 {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{v[0] / l, v[1] / l}
}

// dist returns the distance between a and b.
func dist(a, b mgl64.Vec2) float64 {
	return length(a.Sub(b))
}

// randomPointInDisk samples a point uniformly inside a disk of the given
// radius centred on the origin.
func randomPointInDisk(rng *rand.Rand, radius float64) mgl64.Vec2 {
	t := rng.Float64() * math.Pi * 2
	r := math.Sqrt(rng.Float64()) * radius
	return mgl64.Vec2{math.Cos(t) * r, math.Sin(t) * r}
}

// randomUnit returns a unit vector at a uniformly random angle.
func randomUnit(rng *rand.Rand) mgl64.Vec2 {
	angle := rng.Float64() * math.Pi * 2
	return mgl64.Vec2{math.Cos(angle), math.Sin(angle)}
}

func randomRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func randomChoice(rng *rand.Rand, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.Intn(len(pool))]
}

// removeOutward strips the component of vel pointing along the unit vector
// out, if positive.
func removeOutward(vel, out mgl64.Vec2) mgl64.Vec2 {
	radial := vel.Dot(out)
	if radial <= 0 {
		return vel
	}
	return vel.Sub(out.Mul(radial))
}
