// Package sections mounts the Comet site onto a comet.Page: hero,
// portfolio, philosophy, about, contact, navbar, footer, progress bar and
// the portfolio detail page. Each section owns one comet.Scope, so
// Unmount tears down every observer, pin, timeline and handler it
// registered and restores the properties it animated.
package sections

import (
	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/content"
	"github.com/tanema/gween/ease"
)

// Section is a mounted part of the page.
type Section interface {
	Root() *comet.Element
	Unmount()
}

// Palette.
var (
	colorPaper = hex("#fafafa")
	colorInk   = hex("#000000")
	colorMuted = hex("#9ca3af")
	colorRule  = hex("#e5e7eb")
	colorCard  = hex("#ffffff")
	colorWash  = hex("#f5f5f5")
)

// Easing curves shared by the sections.
var (
	easeOut                  = comet.EaseByName("power3.out")
	easeInOut                = comet.EaseByName("power2.inOut")
	easeSoft                 = comet.EaseByName("power2.out")
	easeSharp                = comet.EaseByName("power4.inOut")
	easeNone  ease.TweenFunc = ease.Linear
)

// hex converts "#rrggbb" to an opaque color, or black if malformed.
func hex(s string) comet.Color {
	rgb, err := content.ParseHexColor(s)
	if err != nil {
		return comet.ColorBlack
	}
	return comet.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255, A: 1}
}

// base is embedded by every section.
type base struct {
	page  *comet.Page
	scope *comet.Scope
	root  *comet.Element
}

func newBase(page *comet.Page, parent *comet.Element, name string) base {
	root := comet.NewElement(name)
	root.FillWidth = true
	if parent == nil {
		parent = page.Root()
	}
	parent.AddChild(root)
	return base{page: page, scope: page.NewScope(name), root: root}
}

// Root returns the section's top element.
func (b *base) Root() *comet.Element { return b.root }

// Scope returns the scope owning the section's animations.
func (b *base) Scope() *comet.Scope { return b.scope }

// Unmount reverts the section's scope and removes its elements.
func (b *base) Unmount() {
	if b.scope.Reverted() {
		return
	}
	b.scope.Revert()
	b.root.Dispose()
	b.page.Refresh()
}

// text returns a transparent element that draws s.
func text(name, s string, w, h float64) *comet.Element {
	e := comet.NewElement(name)
	e.Width, e.Height = w, h
	e.Text = s
	return e
}

// rule returns a one pixel high line.
func rule(name string, w float64) *comet.Element {
	return comet.NewBox(name, w, 1, colorRule)
}

// reveal plays tl once when trigger crosses start.
func (b *base) reveal(name string, trigger *comet.Element, start string, tl *comet.Timeline) *comet.Observer {
	return b.scope.Observe(comet.ObserverConfig{
		Name:      name,
		Trigger:   trigger,
		Start:     start,
		Once:      true,
		Animation: tl,
	})
}

// fadeUp fades el in while it rises dy pixels into place.
func fadeUp(tl *comet.Timeline, el *comet.Element, dy, duration float64, fn ease.TweenFunc, off comet.Offset) {
	tl.FromTo(el, comet.PropAlpha, 0, 1, duration, fn, off)
	tl.FromTo(el, comet.PropY, dy, 0, duration, fn, comet.WithPrev())
}

// staggerUp is fadeUp across several elements.
func staggerUp(tl *comet.Timeline, els []*comet.Element, dy, duration, each float64, fn ease.TweenFunc, off comet.Offset) {
	tl.Stagger(els, comet.Transition{Property: comet.PropAlpha, From: 0, To: 1, HasFrom: true, Duration: duration, Ease: fn}, each, off)
	tl.Stagger(els, comet.Transition{Property: comet.PropY, From: dy, To: 0, HasFrom: true, Duration: duration, Ease: fn}, each, comet.WithPrev())
}
