package shapeswarm

import "time"

// Scheduler is the render-tick primitive. Run calls frame once per tick on
// a single goroutine for as long as frame returns true, then returns.
type Scheduler interface {
	Run(frame func() bool) error
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(frame func() bool) error

// Run calls f(frame).
func (f SchedulerFunc) Run(frame func() bool) error {
	return f(frame)
}

// StepScheduler runs frames back to back with no delay. Frames caps the
// number of frames; zero runs until the frame function declines.
type StepScheduler struct {
	Frames int
}

// Run implements Scheduler.
func (s StepScheduler) Run(frame func() bool) error {
	for i := 0; s.Frames <= 0 || i < s.Frames; i++ {
		if !frame() {
			break
		}
	}
	return nil
}

const defaultTickInterval = time.Second / 60

// TickerScheduler paces frames with a time.Ticker on the caller's goroutine.
// Ticks missed while a frame runs are dropped, as time.Ticker does.
type TickerScheduler struct {
	// Interval between frames. Zero means 1/60 s.
	Interval time.Duration
}

// Run implements Scheduler.
func (s TickerScheduler) Run(frame func() bool) error {
	interval := s.Interval
	if interval <= 0 {
		interval = defaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		if !frame() {
			return nil
		}
	}
	return nil
}
