package shapeswarm

import "math"

// CharacteristicSize is the mean of the surface dimensions. Repulsion is
// scaled by it so the push feels the same on any surface size.
func CharacteristicSize(width, height int) float64 {
	return float64(width+height) / 2
}

// Step advances p by one frame. Three terms are added to the position per
// axis, in order, each measured from the position the previous term left:
//
//   - noise: uniform(-1, 1) * Noise, one draw per axis;
//   - drift: the unit vector toward Destination times Drift;
//   - repulsion, only when ptr is present: the unit vector away from the
//     pointer times (charSize/dc)² * Repulsion, dc being the pointer distance.
//
// Two random draws are made on every call, whatever the coefficients. A
// particle exactly on its destination (or on the pointer) gets a non-finite
// position; that case is not special-cased.
func (c PhysicsConfig) Step(p *Particle, ptr Pointer, charSize float64, rng Rand) {
	p.Position.X += (rng.Float64()*2 - 1) * c.Noise
	p.Position.Y += (rng.Float64()*2 - 1) * c.Noise

	dx := p.Destination.X - p.Position.X
	dy := p.Destination.Y - p.Position.Y
	d := math.Hypot(dx, dy)
	p.Position.X += dx / d * c.Drift
	p.Position.Y += dy / d * c.Drift

	at, ok := ptr.Position()
	if !ok {
		return
	}
	rx := p.Position.X - at.X
	ry := p.Position.Y - at.Y
	dc := math.Hypot(rx, ry)
	k := charSize / dc
	force := k * k * c.Repulsion
	p.Position.X += rx / dc * force
	p.Position.Y += ry / dc * force
}
