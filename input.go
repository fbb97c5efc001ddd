package comet

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Scroll amounts for the built-in input bindings.
const (
	wheelStep    = 60.0 // pixels per wheel notch
	arrowStep    = 40.0 // pixels per arrow key press
	pageFraction = 0.9  // fraction of the viewport scrolled by page keys
)

// ScrollContext describes a scroll position change.
type ScrollContext struct {
	Scroll float64
	Delta  float64
	// User is false for changes made by navigation (ScrollTo).
	User bool
}

// ResizeContext describes a viewport size change.
type ResizeContext struct {
	Width, Height float64
}

// KeyContext describes a key press.
type KeyContext struct {
	Key ebiten.Key
}

// FrameContext describes one Step.
type FrameContext struct {
	DT    float64
	Frame int
}

// ClickContext describes a click in viewport coordinates. Element is the
// topmost interactable element under the pointer, or nil.
type ClickContext struct {
	Element *Element
	X, Y    float64
}

// --- Handler registry ---

type handlerKind uint8

const (
	handlerScroll handlerKind = iota
	handlerResize
	handlerKey
	handlerClick
	handlerFrame
)

type handler[T any] struct {
	id      uint32
	fn      func(T)
	removed bool
}

type handlerRegistry struct {
	scroll []*handler[ScrollContext]
	resize []*handler[ResizeContext]
	key    []*handler[KeyContext]
	click  []*handler[ClickContext]
	frame  []*handler[FrameContext]
	nextID uint32
}

// CallbackHandle allows removing a registered page-level callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters this callback. It does not fire again, even if it was
// removed while its event was being dispatched.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case handlerScroll:
		h.reg.scroll = removeHandler(h.reg.scroll, h.id)
	case handlerResize:
		h.reg.resize = removeHandler(h.reg.resize, h.id)
	case handlerKey:
		h.reg.key = removeHandler(h.reg.key, h.id)
	case handlerClick:
		h.reg.click = removeHandler(h.reg.click, h.id)
	case handlerFrame:
		h.reg.frame = removeHandler(h.reg.frame, h.id)
	}
}

func removeHandler[T any](s []*handler[T], id uint32) []*handler[T] {
	for i, h := range s {
		if h.id == id {
			h.removed = true
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

func addHandler[T any](reg *handlerRegistry, s *[]*handler[T], kind handlerKind, fn func(T)) CallbackHandle {
	reg.nextID++
	*s = append(*s, &handler[T]{id: reg.nextID, fn: fn})
	return CallbackHandle{id: reg.nextID, reg: reg, kind: kind}
}

// dispatch calls every handler registered when dispatch began, skipping
// those removed along the way.
func dispatch[T any](s []*handler[T], ctx T) {
	if len(s) == 0 {
		return
	}
	snapshot := make([]*handler[T], len(s))
	copy(snapshot, s)
	for _, h := range snapshot {
		if !h.removed {
			h.fn(ctx)
		}
	}
}

// --- Page-level event registration ---

// OnScroll registers a callback for every scroll position change.
func (p *Page) OnScroll(fn func(ScrollContext)) CallbackHandle {
	return addHandler(&p.handlers, &p.handlers.scroll, handlerScroll, fn)
}

// OnResize registers a callback for viewport size changes.
func (p *Page) OnResize(fn func(ResizeContext)) CallbackHandle {
	return addHandler(&p.handlers, &p.handlers.resize, handlerResize, fn)
}

// OnKey registers a callback for key presses.
func (p *Page) OnKey(fn func(KeyContext)) CallbackHandle {
	return addHandler(&p.handlers, &p.handlers.key, handlerKey, fn)
}

// OnClick registers a callback for clicks.
func (p *Page) OnClick(fn func(ClickContext)) CallbackHandle {
	return addHandler(&p.handlers, &p.handlers.click, handlerClick, fn)
}

// OnFrame registers a callback run at the end of every Step, after
// timelines and tweens have advanced.
func (p *Page) OnFrame(fn func(FrameContext)) CallbackHandle {
	return addHandler(&p.handlers, &p.handlers.frame, handlerFrame, fn)
}

// PressKey dispatches a key press as if it came from the keyboard,
// including the built-in scroll bindings.
func (p *Page) PressKey(k ebiten.Key) {
	dispatch(p.handlers.key, KeyContext{Key: k})
	switch k {
	case ebiten.KeyArrowDown:
		p.ScrollBy(arrowStep)
	case ebiten.KeyArrowUp:
		p.ScrollBy(-arrowStep)
	case ebiten.KeyPageDown, ebiten.KeySpace:
		p.ScrollBy(p.height * pageFraction)
	case ebiten.KeyPageUp:
		p.ScrollBy(-p.height * pageFraction)
	case ebiten.KeyHome:
		p.SetScroll(0)
	case ebiten.KeyEnd:
		p.SetScroll(p.MaxScroll())
	}
}

// Click dispatches a click at viewport coordinates (x, y).
func (p *Page) Click(x, y float64) {
	dispatch(p.handlers.click, ClickContext{Element: p.HitTest(x, y), X: x, Y: y})
}

// HitTest returns the topmost visible, interactable element whose screen
// rectangle contains (x, y), or nil.
func (p *Page) HitTest(x, y float64) *Element {
	var hit *Element
	var walk func(e *Element)
	walk = func(e *Element) {
		if !e.Visible {
			return
		}
		if e.Interactable && e.Alpha > 0 {
			r := p.ScreenRect(e)
			if x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Bottom() {
				if hit == nil || e.ZIndex >= hit.ZIndex {
					hit = e
				}
			}
		}
		for _, c := range e.children {
			walk(c)
		}
	}
	walk(p.root)
	return hit
}

// processInput reads wheel, keyboard and mouse state from ebiten. Called from
// Update after injected events.
func (p *Page) processInput() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		p.ScrollBy(-wy * wheelStep)
	}
	p.keyBuf = inpututil.AppendJustPressedKeys(p.keyBuf[:0])
	for _, k := range p.keyBuf {
		p.PressKey(k)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		p.Click(float64(mx), float64(my))
	}
}
