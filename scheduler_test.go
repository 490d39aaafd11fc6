package shapeswarm

import (
	"testing"
	"time"
)

func TestStepSchedulerFrames(t *testing.T) {
	calls := 0
	err := StepScheduler{Frames: 5}.Run(func() bool {
		calls++
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 5 {
		t.Errorf("calls = %d, want 5", calls)
	}
}

func TestStepSchedulerUntilDeclined(t *testing.T) {
	calls := 0
	_ = StepScheduler{}.Run(func() bool {
		calls++
		return calls < 7
	})
	if calls != 7 {
		t.Errorf("calls = %d, want 7", calls)
	}
}

func TestStepSchedulerStopsEarly(t *testing.T) {
	calls := 0
	_ = StepScheduler{Frames: 10}.Run(func() bool {
		calls++
		return calls < 2
	})
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestTickerScheduler(t *testing.T) {
	calls := 0
	start := time.Now()
	err := TickerScheduler{Interval: time.Millisecond}.Run(func() bool {
		calls++
		return calls < 3
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if elapsed := time.Since(start); elapsed < 3*time.Millisecond {
		t.Errorf("elapsed %v, expected at least 3 ticks", elapsed)
	}
}

func TestSchedulerFunc(t *testing.T) {
	var got func() bool
	sched := SchedulerFunc(func(frame func() bool) error {
		got = frame
		return nil
	})
	frame := func() bool { return false }
	if err := sched.Run(frame); err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Error("SchedulerFunc did not receive the frame function")
	}
}
