package comet

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim is an active navigation scroll.
type scrollAnim struct {
	tween  *gween.Tween
	target float64
}

// Anchor registers el as the target of ScrollToSection(id). Registering an
// id again replaces the previous element.
func (p *Page) Anchor(id string, el *Element) {
	p.anchors[id] = el
}

// RemoveAnchor unregisters id.
func (p *Page) RemoveAnchor(id string) {
	delete(p.anchors, id)
}

// AnchorElement returns the live element registered under id.
func (p *Page) AnchorElement(id string) (*Element, bool) {
	el, ok := p.anchors[id]
	if !ok || !el.alive() {
		return nil, false
	}
	return el, true
}

// AnchorTarget returns the scroll offset ScrollToSection(id) heads for.
func (p *Page) AnchorTarget(id string) (float64, bool) {
	el, ok := p.anchors[id]
	if !ok || !el.alive() {
		return 0, false
	}
	if p.layoutDirty {
		p.Refresh()
	}
	return math.Max(0, math.Min(el.DocumentTop()-p.NavOffset, p.MaxScroll())), true
}

// ScrollToSection smoothly scrolls to the anchor registered under id. An
// unknown id, or one whose element is gone, does nothing. Completion is
// not reported.
func (p *Page) ScrollToSection(id string) {
	y, ok := p.AnchorTarget(id)
	if !ok {
		p.debugf("navigate: unknown anchor %q", id)
		return
	}
	p.ScrollTo(y, p.NavDuration, p.NavEase)
}

// ScrollTo scrolls to y over duration seconds. Navigation is exclusive: a
// new ScrollTo replaces any scroll still in progress. A non-positive
// duration jumps immediately.
func (p *Page) ScrollTo(y, duration float64, fn ease.TweenFunc) {
	y = math.Max(0, math.Min(y, p.MaxScroll()))
	if duration <= 0 {
		p.nav = nil
		p.setScroll(y, false)
		return
	}
	if fn == nil {
		fn = DefaultNavEase
	}
	p.nav = &scrollAnim{
		tween:  gween.New(float32(p.scroll), float32(y), float32(duration), fn),
		target: y,
	}
}

// Navigating reports whether a navigation scroll is in progress.
func (p *Page) Navigating() bool {
	return p.nav != nil
}

// NavigationTarget returns the target of the navigation in progress.
func (p *Page) NavigationTarget() (float64, bool) {
	if p.nav == nil {
		return 0, false
	}
	return p.nav.target, true
}

// Settle jumps a navigation in progress to its target and snaps every
// played timeline to its end. Scrubbed timelines are left where the scroll
// put them. Scripted runs use it before a screenshot.
func (p *Page) Settle() {
	if p.nav != nil {
		target := p.nav.target
		p.nav = nil
		p.setScroll(target, false)
	}
	timelines := make([]*Timeline, len(p.timelines))
	copy(timelines, p.timelines)
	for _, tl := range timelines {
		if tl.played && tl.state == TimelinePlaying {
			tl.Complete()
		}
	}
}

// stepNav advances the navigation scroll. Called from Step.
func (p *Page) stepNav(dt float64) {
	if p.nav == nil {
		return
	}
	anim := p.nav
	val, done := anim.tween.Update(float32(dt))
	y := float64(val)
	if done {
		y = anim.target
	}
	p.setScroll(y, false)
	// A handler may have started another navigation.
	if done && p.nav == anim {
		p.nav = nil
	}
}
