package shapeswarm

import "errors"

var (
	// ErrUnavailable is returned when the surface, its drawing canvas or the
	// target shape is missing. Nothing is mutated when it is returned.
	ErrUnavailable = errors.New("shapeswarm: unavailable")

	// ErrInvalidConfiguration is returned for an unrecognized placement mode
	// and for malformed option values read from text or config files.
	ErrInvalidConfiguration = errors.New("shapeswarm: invalid configuration")

	// ErrDegenerateShape is returned when ParticleConfig.MaxAttempts is set and
	// rejection sampling could not find an interior point within that many draws.
	ErrDegenerateShape = errors.New("shapeswarm: no interior point found")
)
