package comet

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 properties of an Element simultaneously, for
// short-lived interaction feedback (hover, menu toggles) that does not belong
// on a timeline. Create one with the constructors below and either call
// Update(dt) each frame or hand it to Page.AddTween. If the target element is
// disposed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	props  [4]Property
	target *Element
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target.
// If the target has been disposed, Done is set and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if !g.target.alive() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.target.SetProp(g.props[i], float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Stop ends the group where it is.
func (g *TweenGroup) Stop() {
	g.Done = true
}

func (g *TweenGroup) add(prop Property, to float64, duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = DefaultEase
	}
	g.tweens[g.count] = gween.New(float32(g.target.Prop(prop)), float32(to), duration, fn)
	g.props[g.count] = prop
	g.count++
}

// TweenProp animates a single property to the given value.
func TweenProp(el *Element, prop Property, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: el}
	g.add(prop, to, duration, fn)
	return g
}

// TweenTranslate animates el.X and el.Y.
func TweenTranslate(el *Element, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: el}
	g.add(PropX, toX, duration, fn)
	g.add(PropY, toY, duration, fn)
	return g
}

// TweenScale animates both scale axes to the same value.
func TweenScale(el *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: el}
	g.add(PropScaleX, to, duration, fn)
	g.add(PropScaleY, to, duration, fn)
	return g
}

// TweenAlpha animates el.Alpha.
func TweenAlpha(el *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenProp(el, PropAlpha, to, duration, fn)
}

// AddTween registers g so that it advances on every Step until done.
func (p *Page) AddTween(g *TweenGroup) *TweenGroup {
	p.tweens = append(p.tweens, g)
	return g
}

// stepTweens advances registered tween groups and drops finished ones.
func (p *Page) stepTweens(dt float64) {
	live := p.tweens[:0]
	for _, g := range p.tweens {
		g.Update(float32(dt))
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(p.tweens); i++ {
		p.tweens[i] = nil
	}
	p.tweens = live
}
