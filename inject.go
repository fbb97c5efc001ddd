package comet

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	syntheticScroll syntheticKind = iota
	syntheticWheel
	syntheticResize
	syntheticKey
	syntheticClick
	syntheticNavigate
)

// syntheticEvent is a single injected input event.
type syntheticEvent struct {
	kind   syntheticKind
	x, y   float64
	key    ebiten.Key
	anchor string
}

// InjectScroll queues a user scroll to offset y. Injected events are
// consumed one per frame by Update, in place of real input.
func (p *Page) InjectScroll(y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: syntheticScroll, y: y})
}

// InjectWheel queues a scroll by dy pixels.
func (p *Page) InjectWheel(dy float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: syntheticWheel, y: dy})
}

// InjectSmoothScroll queues a user scroll from the current target to y
// spread over the given number of frames. Minimum frames is 1.
func (p *Page) InjectSmoothScroll(y float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	from := p.scroll
	for i := len(p.injectQueue) - 1; i >= 0; i-- {
		if p.injectQueue[i].kind == syntheticScroll {
			from = p.injectQueue[i].y
			break
		}
	}
	for i := 1; i <= frames; i++ {
		p.InjectScroll(lerp(from, y, float64(i)/float64(frames)))
	}
}

// InjectResize queues a viewport resize.
func (p *Page) InjectResize(width, height float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: syntheticResize, x: width, y: height})
}

// InjectKey queues a key press.
func (p *Page) InjectKey(k ebiten.Key) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: syntheticKey, key: k})
}

// InjectClick queues a click at viewport coordinates.
func (p *Page) InjectClick(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: syntheticClick, x: x, y: y})
}

// InjectNavigate queues ScrollToSection(id).
func (p *Page) InjectNavigate(id string) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: syntheticNavigate, anchor: id})
}

// Pending returns the number of queued injected events.
func (p *Page) Pending() int {
	return len(p.injectQueue)
}

// processInjected pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input should be skipped).
func (p *Page) processInjected() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	switch evt.kind {
	case syntheticScroll:
		p.SetScroll(evt.y)
	case syntheticWheel:
		p.ScrollBy(evt.y)
	case syntheticResize:
		p.Resize(evt.x, evt.y)
	case syntheticKey:
		p.PressKey(evt.key)
	case syntheticClick:
		p.Click(evt.x, evt.y)
	case syntheticNavigate:
		p.ScrollToSection(evt.anchor)
	}
	return true
}
