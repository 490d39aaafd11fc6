// Package shapeswarm renders a 2D shape as an animated particle swarm on
// [Ebitengine].
//
// Particles are placed once by [Swarm.Init]: each gets a destination drawn
// uniformly inside the shape and a starting position chosen by the
// placement mode (on the surface edges, anywhere, or on the destination).
// Every frame each particle jitters, drifts at constant speed toward its
// destination and is pushed away from the pointer by an inverse-square
// force, so the shape assembles itself and parts around the cursor.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and wires
// mouse and touch input for you:
//
//	shape := shapeswarm.MustParsePath("M 0 0 L 100 0 L 50 80 Z").Fit(800, 600, 40)
//	surface := shapeswarm.NewImageSurface(800, 600)
//	sw := shapeswarm.New(surface, shape, nil)
//	if err := shapeswarm.Run(context.Background(), sw, shapeswarm.RunConfig{
//		Title: "Swarm", ShowFPS: true,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, call [Swarm.Init] and then [Swarm.Animate] with any
// [Scheduler], or call [Swarm.Frame] yourself from an existing game loop and
// forward pointer events with [Swarm.PointerMoved] and [Swarm.PointerLeft].
//
// # Collaborators
//
// The swarm talks to its environment through small interfaces: a [Surface]
// and its [Canvas] for drawing, a [Shape] for the point-in-shape test, a
// [Scheduler] for the frame loop and a [PointerSink] for pointer events.
// [ImageSurface], [Path], [Circle], [ImageMask], [EbitenScheduler],
// [TickerScheduler] and [PointerInput] are the bundled implementations.
//
// # Configuration
//
// [DefaultConfig] holds the documented defaults. [LoadConfig] reads YAML or
// TOML files on top of them.
//
// [Ebitengine]: https://ebitengine.org
package shapeswarm
