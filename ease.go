package comet

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// DefaultEase is applied to transitions that do not name one.
var DefaultEase ease.TweenFunc = ease.OutQuad

// easeNames maps the site's ease vocabulary to gween curves. powerN follows
// the usual convention: power1 = quad, power2 = cubic, power3 = quart,
// power4 = quint.
var easeNames = map[string]ease.TweenFunc{
	"none":         ease.Linear,
	"linear":       ease.Linear,
	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inout": ease.InOutQuad,
	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inout": ease.InOutCubic,
	"power3.in":    ease.InQuart,
	"power3.out":   ease.OutQuart,
	"power3.inout": ease.InOutQuart,
	"power4.in":    ease.InQuint,
	"power4.out":   ease.OutQuint,
	"power4.inout": ease.InOutQuint,
	"sine.in":      ease.InSine,
	"sine.out":     ease.OutSine,
	"sine.inout":   ease.InOutSine,
	"expo.in":      ease.InExpo,
	"expo.out":     ease.OutExpo,
	"expo.inout":   ease.InOutExpo,
	"circ.in":      ease.InCirc,
	"circ.out":     ease.OutCirc,
	"circ.inout":   ease.InOutCirc,
	"back.in":      ease.InBack,
	"back.out":     ease.OutBack,
	"back.inout":   ease.InOutBack,
	"elastic.out":  ease.OutElastic,
	"bounce.out":   ease.OutBounce,
}

// EaseByName returns the curve for a name such as "power3.out" or "none".
// A bare family name ("power2") means its ".out" variant. Unknown names fall
// back to DefaultEase.
func EaseByName(name string) ease.TweenFunc {
	key := strings.ToLower(strings.TrimSpace(name))
	if fn, ok := easeNames[key]; ok {
		return fn
	}
	if fn, ok := easeNames[key+".out"]; ok {
		return fn
	}
	return DefaultEase
}

// easeFraction maps a linear fraction in [0, 1] through fn.
func easeFraction(fn ease.TweenFunc, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if fn == nil {
		fn = DefaultEase
	}
	return float64(fn(float32(t), 0, 1, 1))
}
