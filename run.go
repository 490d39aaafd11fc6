package shapeswarm

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenScheduler drives frames from Ebitengine's game loop. Every Update
// advances the optional Runner, polls Input, then calls the frame function;
// Draw presents Surface on the screen. The loop ends when the frame function
// declines, or when the Runner is done and ExitWhenDone is set.
type EbitenScheduler struct {
	// Title is the window title.
	Title string
	// Width and Height are the window size. Zero means the surface size.
	Width, Height int
	// ShowFPS overlays FPS and TPS.
	ShowFPS bool
	// ClearColor fills the screen before the surface is presented.
	ClearColor Color

	// Surface is presented every Draw. Required.
	Surface *ImageSurface
	// Input is polled at the top of every Update. Optional.
	Input *PointerInput
	// Runner feeds scripted pointer events into Input. Optional; needs Input.
	Runner *TestRunner
	// ExitWhenDone stops the loop once Runner is done.
	ExitWhenDone bool
}

// Run implements Scheduler. It blocks until the loop ends.
func (e *EbitenScheduler) Run(frame func() bool) error {
	if e.Surface == nil || e.Surface.Image() == nil {
		return fmt.Errorf("ebiten scheduler: no surface: %w", ErrUnavailable)
	}
	w, h := e.Width, e.Height
	sw, sh := e.Surface.Size()
	if w <= 0 {
		w = sw
	}
	if h <= 0 {
		h = sh
	}
	ebiten.SetWindowTitle(e.Title)
	ebiten.SetWindowSize(w, h)

	g := &game{sched: e, frame: frame}
	if e.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return ebiten.RunGame(g)
}

// game adapts EbitenScheduler to ebiten.Game.
type game struct {
	sched *EbitenScheduler
	frame func() bool
	fps   *fpsOverlay
	op    ebiten.DrawImageOptions
}

func (g *game) Update() error {
	e := g.sched
	if e.Runner != nil && e.Input != nil {
		e.Runner.step(e.Input, e.Surface)
		if e.ExitWhenDone && e.Runner.Done() {
			return ebiten.Termination
		}
	}
	if e.Input != nil {
		e.Input.poll()
	}
	if !g.frame() {
		return ebiten.Termination
	}
	if g.fps != nil {
		g.fps.update(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.sched.ClearColor.IsZero() {
		screen.Fill(g.sched.ClearColor)
	}
	g.op.GeoM.Reset()
	screen.DrawImage(g.sched.Surface.Image(), &g.op)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout keeps the logical screen at the surface size so cursor positions
// are surface coordinates.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sched.Surface.Size()
}

// RunConfig configures a window for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	ClearColor    Color
	// Script, when set, plays scripted pointer input and screenshots.
	Script *TestRunner
	// ExitWhenDone closes the window once Script has finished.
	ExitWhenDone bool
}

// Run opens a window, places the swarm and animates it until the window is
// closed or ctx is done. The swarm's surface must be an *ImageSurface.
// Pointer movement inside the window repels particles.
func Run(ctx context.Context, sw *Swarm, cfg RunConfig) error {
	surface, ok := sw.Surface().(*ImageSurface)
	if !ok || surface == nil {
		return fmt.Errorf("run: surface is not an *ImageSurface: %w", ErrUnavailable)
	}
	if err := sw.Init(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	w, h := surface.Size()
	sched := &EbitenScheduler{
		Title:        cfg.Title,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFPS:      cfg.ShowFPS,
		ClearColor:   cfg.ClearColor,
		Surface:      surface,
		Input:        NewPointerInput(sw, w, h),
		Runner:       cfg.Script,
		ExitWhenDone: cfg.ExitWhenDone,
	}
	if err := sw.Animate(ctx, sched); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
