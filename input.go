package shapeswarm

import "github.com/hajimehoshi/ebiten/v2"

// PointerSink receives pointer notifications. Swarm implements it.
type PointerSink interface {
	PointerMoved(x, y float64)
	PointerLeft()
}

// PointerInput is the pointer-event source for Ebitengine. Each poll reads
// the first active touch, or the mouse cursor when no touch is active, and
// notifies the sink on change: PointerMoved while the pointer is inside the
// surface bounds, PointerLeft once when it leaves or the touch ends.
//
// The cursor only counts once it has moved since the previous poll, so a
// window the mouse never entered, or a lifted finger on a touch screen,
// reads as no pointer rather than a stale (0, 0).
//
// Synthetic events queued with InjectMove and InjectLeave take precedence:
// one is consumed per poll and real input is skipped for that frame.
type PointerInput struct {
	sink   PointerSink
	bounds Rect
	last   Pointer

	injectQueue  []syntheticPointerEvent
	prevTouchIDs []ebiten.TouchID

	touching     bool
	cursorActive bool
	cursorKnown  bool
	cursorX      int
	cursorY      int

	appendTouchIDs func([]ebiten.TouchID) []ebiten.TouchID
	touchPosition  func(ebiten.TouchID) (int, int)
	cursorPosition func() (int, int)
}

// NewPointerInput creates an input source for a width × height surface.
func NewPointerInput(sink PointerSink, width, height int) *PointerInput {
	return &PointerInput{
		sink:           sink,
		bounds:         Rect{Width: float64(width), Height: float64(height)},
		appendTouchIDs: ebiten.AppendTouchIDs,
		touchPosition:  ebiten.TouchPosition,
		cursorPosition: ebiten.CursorPosition,
	}
}

// Last returns the pointer state most recently delivered to the sink.
func (in *PointerInput) Last() Pointer {
	return in.last
}

// poll is called once per frame before the swarm steps.
func (in *PointerInput) poll() {
	if in.processInjectedInput() {
		return
	}
	in.dispatch(in.read())
}

// read samples touch and cursor state.
func (in *PointerInput) read() Pointer {
	touches := in.appendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touches

	mx, my := in.cursorPosition()
	moved := in.cursorKnown && (mx != in.cursorX || my != in.cursorY)
	in.cursorX, in.cursorY, in.cursorKnown = mx, my, true

	if len(touches) > 0 {
		in.touching = true
		in.cursorActive = false
		tx, ty := in.touchPosition(touches[0])
		return in.within(float64(tx), float64(ty))
	}
	if in.touching {
		// Release frame: the cursor still holds whatever it held before the touch.
		in.touching = false
		return NoPointer
	}
	if moved {
		in.cursorActive = true
	}
	if !in.cursorActive {
		return NoPointer
	}
	return in.within(float64(mx), float64(my))
}

// within maps a screen position to a pointer, absent outside the bounds.
func (in *PointerInput) within(x, y float64) Pointer {
	if !in.bounds.Contains(x, y) {
		return NoPointer
	}
	return PointerAt(x, y)
}

// dispatch notifies the sink when p differs from the last delivered state.
func (in *PointerInput) dispatch(p Pointer) {
	if p == in.last {
		return
	}
	in.last = p
	if pos, ok := p.Position(); ok {
		in.sink.PointerMoved(pos.X, pos.Y)
		return
	}
	in.sink.PointerLeft()
}
