package shapeswarm

import (
	"fmt"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EaseName names an easing curve from the gween/ease package.
type EaseName string

const (
	EaseLinear     EaseName = "linear"
	EaseInQuad     EaseName = "in-quad"
	EaseOutQuad    EaseName = "out-quad"
	EaseInOutQuad  EaseName = "in-out-quad"
	EaseOutCubic   EaseName = "out-cubic"
	EaseInOutCubic EaseName = "in-out-cubic"
	EaseInOutSine  EaseName = "in-out-sine"
	EaseOutBounce  EaseName = "out-bounce"
	EaseOutElastic EaseName = "out-elastic"
)

var easeFuncs = map[EaseName]ease.TweenFunc{
	EaseLinear:     ease.Linear,
	EaseInQuad:     ease.InQuad,
	EaseOutQuad:    ease.OutQuad,
	EaseInOutQuad:  ease.InOutQuad,
	EaseOutCubic:   ease.OutCubic,
	EaseInOutCubic: ease.InOutCubic,
	EaseInOutSine:  ease.InOutSine,
	EaseOutBounce:  ease.OutBounce,
	EaseOutElastic: ease.OutElastic,
}

// Func returns the easing function for e. Empty means linear.
func (e EaseName) Func() (ease.TweenFunc, error) {
	if e == "" {
		return ease.Linear, nil
	}
	fn, ok := easeFuncs[EaseName(strings.ToLower(string(e)))]
	if !ok {
		return nil, fmt.Errorf("ease %q: %w", string(e), ErrInvalidConfiguration)
	}
	return fn, nil
}

// fade tweens the draw alpha of a swarm from 0 to 1, one unit per frame.
type fade struct {
	tween *gween.Tween
	alpha float64
	done  bool
}

// newFade returns nil when cfg disables fading.
func newFade(cfg FadeConfig) (*fade, error) {
	fn, err := cfg.Ease.Func()
	if err != nil {
		return nil, err
	}
	if cfg.Frames <= 0 {
		return nil, nil
	}
	return &fade{tween: gween.New(0, 1, float32(cfg.Frames), fn)}, nil
}

// update advances the fade by one frame and returns the new alpha.
func (f *fade) update() float64 {
	if f.done {
		return 1
	}
	v, finished := f.tween.Update(1)
	f.alpha = clamp01(float64(v))
	if finished {
		f.alpha = 1
		f.done = true
	}
	return f.alpha
}
