package shapeswarm

import "fmt"

// PlacementStats counts the rejection-sampling draws made by Place.
type PlacementStats struct {
	Accepted int
	Rejected int
}

// Place creates cfg.Amount particles for a width × height surface. Each
// destination is drawn uniformly from [0,width) × [0,height) until shape
// contains it; each position follows cfg.Mode. The mode is checked before
// any sampling, so an invalid mode fails even for an empty swarm.
//
// Without cfg.MaxAttempts the sampling loop is unbounded: a shape with no
// interior never returns.
func Place(shape Shape, width, height int, cfg ParticleConfig, rng Rand) ([]Particle, PlacementStats, error) {
	if shape == nil {
		return nil, PlacementStats{}, fmt.Errorf("place: no shape: %w", ErrUnavailable)
	}
	if !cfg.Mode.Valid() {
		return nil, PlacementStats{}, fmt.Errorf("place: mode %q: %w", string(cfg.Mode), ErrInvalidConfiguration)
	}
	if rng == nil {
		rng = globalRand{}
	}
	s := &sampler{
		shape:       shape,
		width:       float64(width),
		height:      float64(height),
		rng:         rng,
		maxAttempts: cfg.MaxAttempts,
	}
	amount := max(cfg.Amount, 0)
	set := make([]Particle, 0, amount)
	for range amount {
		p, err := s.particle(cfg.Mode, cfg.Size)
		if err != nil {
			return nil, s.stats, err
		}
		set = append(set, p)
	}
	return set, s.stats, nil
}

type sampler struct {
	shape         Shape
	width, height float64
	rng           Rand
	maxAttempts   int
	stats         PlacementStats
}

func (s *sampler) particle(mode PlacementMode, size float64) (Particle, error) {
	dest, err := s.destination()
	if err != nil {
		return Particle{}, err
	}
	pos, err := s.position(mode, dest)
	if err != nil {
		return Particle{}, err
	}
	return Particle{Size: size, Position: pos, Destination: dest}, nil
}

// destination rejection-samples a point inside the shape.
func (s *sampler) destination() (Vec2, error) {
	for attempt := 1; ; attempt++ {
		x := s.rng.Float64() * s.width
		y := s.rng.Float64() * s.height
		if s.shape.Contains(x, y) {
			s.stats.Accepted++
			return Vec2{x, y}, nil
		}
		s.stats.Rejected++
		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return Vec2{}, fmt.Errorf("place: %d draws: %w", attempt, ErrDegenerateShape)
		}
	}
}

func (s *sampler) position(mode PlacementMode, dest Vec2) (Vec2, error) {
	switch mode {
	case ModeInside:
		return dest, nil
	case ModeEvenly:
		return Vec2{s.rng.Float64() * s.width, s.rng.Float64() * s.height}, nil
	case ModeSides:
		side := s.rng.Float64()
		switch {
		case side < 0.25: // top
			return Vec2{s.rng.Float64() * s.width, 0}, nil
		case side < 0.5: // right
			return Vec2{s.width, s.rng.Float64() * s.height}, nil
		case side < 0.75: // bottom
			return Vec2{s.rng.Float64() * s.width, s.height}, nil
		default: // left
			return Vec2{0, s.rng.Float64() * s.height}, nil
		}
	}
	return Vec2{}, fmt.Errorf("place: mode %q: %w", string(mode), ErrInvalidConfiguration)
}
