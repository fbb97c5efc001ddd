package comet

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and counts.
// Only populated when the page is in debug mode.
type debugStats struct {
	stepTime      time.Duration
	observerCount int
	activeCount   int
	timelineCount int
	elementCount  int
}

// debugLog writes the frame stats at debug level.
func (p *Page) debugLog(stats debugStats) {
	if !p.debug {
		return
	}
	p.log.Debug("frame",
		zap.Duration("step", stats.stepTime),
		zap.Int("observers", stats.observerCount),
		zap.Int("active", stats.activeCount),
		zap.Int("timelines", stats.timelineCount),
		zap.Int("elements", stats.elementCount),
		zap.Float64("scroll", p.scroll),
	)
}

// debugf logs a formatted debug line when debug mode is on.
func (p *Page) debugf(format string, args ...any) {
	if p == nil || !p.debug {
		return
	}
	p.log.Sugar().Debugf(format, args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed element
// is used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("comet debug: %s on disposed element %q", op, e.Name))
	}
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if the element sits deeper than debugMaxTreeDepth.
func debugCheckTreeDepth(log *zap.Logger, e *Element) {
	depth := 0
	for p := e; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		log.Warn("tree depth exceeds threshold",
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth),
			zap.String("element", e.Name))
	}
}

// countElements returns the number of elements in the subtree rooted at e.
func countElements(e *Element) int {
	n := 1
	for _, c := range e.children {
		n += countElements(c)
	}
	return n
}
