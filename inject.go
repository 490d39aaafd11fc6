package shapeswarm

// syntheticPointerEvent is a single injected pointer event in surface
// coordinates. leave marks a pointer-left notification.
type syntheticPointerEvent struct {
	x, y  float64
	leave bool
}

// InjectMove queues a pointer move to (x, y). The event is consumed on the
// next poll. Positions outside the surface bounds are delivered as a leave,
// the same as real input.
func (in *PointerInput) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectLeave queues a pointer-left notification.
func (in *PointerInput) InjectLeave() {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{leave: true})
}

// InjectSweep queues moves from (fromX, fromY) to (toX, toY) linearly
// interpolated over frames events, both endpoints included. Minimum frames
// is 2.
func (in *PointerInput) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending returns the number of queued synthetic events.
func (in *PointerInput) Pending() int {
	return len(in.injectQueue)
}

// processInjectedInput pops one event and dispatches it. Returns true if an
// event was consumed (real input should be skipped).
func (in *PointerInput) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	if evt.leave {
		in.dispatch(NoPointer)
		return true
	}
	in.dispatch(in.within(evt.x, evt.y))
	return true
}
