package systems

import (
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inquad":       ease.InQuad,
	"outquad":      ease.OutQuad,
	"inoutquad":    ease.InOutQuad,
	"incubic":      ease.InCubic,
	"outcubic":     ease.OutCubic,
	"inoutcubic":   ease.InOutCubic,
	"insine":       ease.InSine,
	"outsine":      ease.OutSine,
	"inoutsine":    ease.InOutSine,
	"inback":       ease.InBack,
	"outback":      ease.OutBack,
	"inoutback":    ease.InOutBack,
	"inelastic":    ease.InElastic,
	"outelastic":   ease.OutElastic,
	"inoutelastic": ease.InOutElastic,
	"inbounce":     ease.InBounce,
	"outbounce":    ease.OutBounce,
	"inoutbounce":  ease.InOutBounce,
}

// Easing looks up a gween ease by name, case-insensitively. Unknown names
// fall back to linear.
func Easing(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[strings.ToLower(name)]
	if !ok {
		return ease.Linear, false
	}
	return fn, true
}

// Tween runs a 0..1 gween tween as a scheduler task, calling apply with the
// eased progress each frame. The final call always receives 1 and is followed
// by done, if set. A cancelled tween never calls done.
func Tween(s *Scheduler, seconds float64, fn ease.TweenFunc, apply func(t float64), done func()) TaskID {
	if seconds <= 0 {
		apply(1)
		if done != nil {
			done()
		}
		return 0
	}
	tw := gween.New(0, 1, float32(seconds), fn)
	return s.EveryFrame(func(dt float64) bool {
		v, finished := tw.Update(float32(dt))
		if finished {
			apply(1)
			if done != nil {
				done()
			}
			return false
		}
		apply(float64(v))
		return true
	})
}
