package shapeswarm

import (
	"fmt"
	"io"
	"time"
)

// frameStats holds per-frame timing. Only populated in debug mode.
type frameStats struct {
	stepTime  time.Duration
	drawTime  time.Duration
	particles int
	pointer   Pointer
	alpha     float64
}

// SetDebugMode enables or disables debug mode. When enabled, placement
// statistics are logged after Init and per-frame timing after every Frame.
func (s *Swarm) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetDebugOutput redirects debug lines. The default is stderr.
func (s *Swarm) SetDebugOutput(w io.Writer) {
	s.debugOut = w
}

func (s *Swarm) debugf(format string, args ...any) {
	if !s.debug || s.debugOut == nil {
		return
	}
	_, _ = fmt.Fprintf(s.debugOut, "[shapeswarm] "+format+"\n", args...)
}

// debugLog prints one frame's stats.
func (s *Swarm) debugLog(st frameStats) {
	s.debugf("frame %d | step: %v | draw: %v | total: %v | particles: %d | pointer: %v | alpha: %.2f",
		s.frames, st.stepTime, st.drawTime, st.stepTime+st.drawTime, st.particles, st.pointer, st.alpha)
}
