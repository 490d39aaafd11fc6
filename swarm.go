package shapeswarm

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Swarm is one animation instance: it owns the particle set and the pointer
// state, and draws onto one surface. Swarms share no state, so any number
// can run side by side. A Swarm is not safe for concurrent use; pointer
// events and frames must arrive on the same goroutine.
type Swarm struct {
	surface   Surface
	shape     Shape
	cfg       Config
	lookupErr error

	particles []Particle
	pointer   Pointer
	rng       Rand
	charSize  float64

	fade  *fade
	alpha float64

	frames  uint64
	stopped bool

	debug    bool
	debugOut io.Writer
}

// New creates a swarm that will draw shape onto surface. A nil cfg means
// DefaultConfig. New never fails; missing collaborators are reported by
// Init and Animate.
func New(surface Surface, shape Shape, cfg *Config) *Swarm {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	return &Swarm{
		surface:  surface,
		shape:    shape,
		cfg:      c.withDefaults(),
		rng:      globalRand{},
		alpha:    1,
		debugOut: os.Stderr,
	}
}

// NewFromRegistry is like New but resolves the surface by id. An unknown id
// makes Init and Animate fail with ErrUnavailable.
func NewFromRegistry(reg SurfaceRegistry, id string, shape Shape, cfg *Config) *Swarm {
	surface, err := reg.Lookup(id)
	s := New(surface, shape, cfg)
	s.lookupErr = err
	return s
}

// available returns the canvas when every collaborator is present.
func (s *Swarm) available() (Canvas, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	if s.surface == nil {
		return nil, fmt.Errorf("no surface: %w", ErrUnavailable)
	}
	canvas := s.surface.Canvas()
	if canvas == nil {
		return nil, fmt.Errorf("no drawing context: %w", ErrUnavailable)
	}
	if s.shape == nil {
		return nil, fmt.Errorf("no shape: %w", ErrUnavailable)
	}
	return canvas, nil
}

// Init places Amount particles on the shape. On error the previous particle
// set, if any, is kept unchanged. Calling Init again replaces the set.
func (s *Swarm) Init() error {
	canvas, err := s.available()
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	fd, err := newFade(s.cfg.Fade)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}

	w, h := s.surface.Size()
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	set, stats, err := Place(s.shape, w, h, s.cfg.Particles, s.rng)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}

	s.particles = set
	s.charSize = CharacteristicSize(w, h)
	s.fade = fd
	s.alpha = 1
	if fd != nil {
		s.alpha = 0
	}
	if bs, ok := canvas.(blendSetter); ok {
		bs.SetBlend(s.cfg.Particles.Blend)
	}

	if s.debug {
		s.debugf("placed %d particles (mode %s) on %dx%d in %v | accepted: %d | rejected: %d",
			len(set), s.cfg.Particles.Mode, w, h, time.Since(t0), stats.Accepted, stats.Rejected)
	}
	return nil
}

// Animate hands the frame loop to sched. Each scheduled call runs one Frame
// and asks for the next until Stop is called or ctx is done. Collaborators
// are checked before the first frame.
func (s *Swarm) Animate(ctx context.Context, sched Scheduler) error {
	if _, err := s.available(); err != nil {
		return fmt.Errorf("animate: %w", err)
	}
	if sched == nil {
		return fmt.Errorf("animate: no scheduler: %w", ErrUnavailable)
	}
	s.stopped = false
	return sched.Run(func() bool {
		if s.stopped || ctx.Err() != nil {
			return false
		}
		s.Frame()
		return !s.stopped && ctx.Err() == nil
	})
}

// Stop makes the running animation decline its next frame.
func (s *Swarm) Stop() {
	s.stopped = true
}

// Frame runs one full frame: Step, the fade, then Draw.
func (s *Swarm) Frame() {
	var st frameStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.Step()

	if s.debug {
		st.stepTime = time.Since(t0)
		t0 = time.Now()
	}

	if s.fade != nil {
		s.alpha = s.fade.update()
	}
	s.Draw()
	s.frames++

	if s.debug {
		st.drawTime = time.Since(t0)
		st.particles = len(s.particles)
		st.pointer = s.pointer
		st.alpha = s.alpha
		s.debugLog(st)
	}
}

// Step advances every particle by one physics tick with the current pointer.
func (s *Swarm) Step() {
	ptr := s.pointer
	for i := range s.particles {
		s.cfg.Physics.Step(&s.particles[i], ptr, s.charSize, s.rng)
	}
}

// Draw clears the canvas and fills one Size × Size square per particle.
func (s *Swarm) Draw() {
	if s.surface == nil {
		return
	}
	canvas := s.surface.Canvas()
	if canvas == nil {
		return
	}
	c := s.cfg.Particles.Color
	c.A *= s.alpha

	canvas.Clear()
	for i := range s.particles {
		p := &s.particles[i]
		canvas.FillRect(p.Position.X, p.Position.Y, p.Size, p.Size, c)
	}
	canvas.Flush()
}

// PointerMoved sets the pointer to (x, y). Implements PointerSink.
func (s *Swarm) PointerMoved(x, y float64) {
	s.pointer = PointerAt(x, y)
}

// PointerLeft clears the pointer. Implements PointerSink.
func (s *Swarm) PointerLeft() {
	s.pointer = NoPointer
}

// SetPointer replaces the pointer state.
func (s *Swarm) SetPointer(p Pointer) {
	s.pointer = p
}

// Pointer returns the current pointer state.
func (s *Swarm) Pointer() Pointer {
	return s.pointer
}

// SetRand replaces the random source. nil restores math/rand/v2's global
// generator.
func (s *Swarm) SetRand(r Rand) {
	if r == nil {
		r = globalRand{}
	}
	s.rng = r
}

// Particles returns the particle set. The returned slice MUST NOT be mutated.
func (s *Swarm) Particles() []Particle {
	return s.particles
}

// Config returns the resolved configuration.
func (s *Swarm) Config() Config {
	return s.cfg
}

// Surface returns the surface the swarm draws on, or nil.
func (s *Swarm) Surface() Surface {
	return s.surface
}

// Frames returns the number of frames run so far.
func (s *Swarm) Frames() uint64 {
	return s.frames
}

// Alpha returns the current fade-in alpha in [0, 1].
func (s *Swarm) Alpha() float64 {
	return s.alpha
}
