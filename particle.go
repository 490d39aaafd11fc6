package shapeswarm

import (
	"fmt"
	"math/rand/v2"
)

// Particle is one member of the swarm. Position moves every frame;
// Destination and Size are fixed when the particle is placed.
type Particle struct {
	Size        float64
	Position    Vec2
	Destination Vec2
}

// Rand is the uniform random source used by placement and physics.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// globalRand draws from math/rand/v2's top-level generator.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Pointer is the pointer influence for a frame: either absent (NoPointer)
// or present at a position (PointerAt). A half-present pointer cannot be built.
type Pointer struct {
	pos     Vec2
	present bool
}

// NoPointer disables repulsion.
var NoPointer = Pointer{}

// PointerAt returns a present pointer at (x, y).
func PointerAt(x, y float64) Pointer {
	return Pointer{pos: Vec2{x, y}, present: true}
}

// Position returns the pointer position and whether the pointer is present.
func (p Pointer) Position() (Vec2, bool) {
	return p.pos, p.present
}

// Present reports whether the pointer influences particles.
func (p Pointer) Present() bool {
	return p.present
}

func (p Pointer) String() string {
	if !p.present {
		return "none"
	}
	return fmt.Sprintf("(%.1f, %.1f)", p.pos.X, p.pos.Y)
}
