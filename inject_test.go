package shapeswarm

import "testing"

func TestInjectMove(t *testing.T) {
	sink := &recordingSink{}
	in := NewPointerInput(sink, 100, 100)

	in.InjectMove(50, 60)
	if in.Pending() != 1 {
		t.Fatalf("expected 1 queued event, got %d", in.Pending())
	}
	if !in.processInjectedInput() {
		t.Fatal("expected an event to be consumed")
	}
	if in.Pending() != 0 {
		t.Fatalf("expected 0 remaining events, got %d", in.Pending())
	}
	if len(sink.events) != 1 || sink.events[0] != "move 50 60" {
		t.Errorf("events = %v", sink.events)
	}
	if in.processInjectedInput() {
		t.Error("empty queue should consume nothing")
	}
}

func TestInjectLeave(t *testing.T) {
	sink := &recordingSink{}
	in := NewPointerInput(sink, 100, 100)

	in.InjectMove(10, 10)
	in.InjectLeave()
	in.InjectLeave()
	for in.Pending() > 0 {
		in.processInjectedInput()
	}
	if len(sink.events) != 2 || sink.events[1] != "left" {
		t.Errorf("events = %v, want one move and one left", sink.events)
	}
}

func TestInjectMoveOutsideIsLeave(t *testing.T) {
	sink := &recordingSink{}
	in := NewPointerInput(sink, 100, 100)

	in.InjectMove(10, 10)
	in.InjectMove(-5, 10)
	in.processInjectedInput()
	in.processInjectedInput()
	if len(sink.events) != 2 || sink.events[1] != "left" {
		t.Errorf("events = %v", sink.events)
	}
}

func TestInjectSweep(t *testing.T) {
	sink := &recordingSink{}
	in := NewPointerInput(sink, 200, 200)

	// Sweep from (10,10) to (90,50) over 5 frames:
	// (10,10) (30,20) (50,30) (70,40) (90,50)
	in.InjectSweep(10, 10, 90, 50, 5)
	if in.Pending() != 5 {
		t.Fatalf("expected 5 queued events, got %d", in.Pending())
	}
	for in.Pending() > 0 {
		in.processInjectedInput()
	}
	want := []string{"move 10 10", "move 30 20", "move 50 30", "move 70 40", "move 90 50"}
	if len(sink.events) != len(want) {
		t.Fatalf("events = %v, want %v", sink.events, want)
	}
	for i := range want {
		if sink.events[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, sink.events[i], want[i])
		}
	}
}

func TestInjectSweepMinFrames(t *testing.T) {
	in := NewPointerInput(&recordingSink{}, 100, 100)
	in.InjectSweep(0, 0, 10, 10, 1)
	if in.Pending() != 2 {
		t.Errorf("expected 2 events (minimum), got %d", in.Pending())
	}
}

func TestPollPrefersInjected(t *testing.T) {
	sink := &recordingSink{}
	in := NewPointerInput(sink, 100, 100)
	in.InjectMove(5, 5)
	in.poll()
	if in.Pending() != 0 || len(sink.events) != 1 {
		t.Errorf("poll should consume the injected event, events = %v", sink.events)
	}
}
