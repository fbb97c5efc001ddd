package sections

import (
	"fmt"

	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/content"
)

const (
	heroPadding    = 96.0
	heroLineHeight = 120.0
)

// Hero is the full-screen opening section. On mount a curtain lifts and the
// headline words slide up one after another; once the reader scrolls, the
// section pins while each word's solid layer wipes away to its outline.
type Hero struct {
	base
	Curtain   *comet.Element
	Words     []*comet.Element
	Solid     []*comet.Element
	Outline   []*comet.Element
	Subtext   *comet.Element
	Indicator *comet.Element

	Intro *comet.Timeline
	Wipe  *comet.Timeline
	Pin   *comet.Pin
}

// MountHero builds the hero under parent.
func MountHero(page *comet.Page, parent *comet.Element, c content.Hero, t HeroTiming) *Hero {
	h := &Hero{base: newBase(page, parent, "hero")}
	h.root.ViewportHeight = 1
	h.build(c)

	h.Intro = h.scope.Timeline(comet.TimelineConfig{Name: "hero-intro", Ease: easeOut})
	h.Intro.FromTo(h.Curtain, comet.PropClipBottom, 0, 100, t.Curtain, easeSharp, comet.End())
	h.Intro.Stagger(h.Words, comet.Transition{
		Property: comet.PropYPercent, From: 110, To: 0, HasFrom: true, Duration: t.Word,
	}, t.WordStagger, comet.Overlap(t.WordOverlap))
	h.Intro.Stagger(h.Words, comet.Transition{
		Property: comet.PropRotateX, From: -20, To: 0, HasFrom: true, Duration: t.Word,
	}, t.WordStagger, comet.WithPrev())
	fadeUp(h.Intro, h.Subtext, 20, t.Subtext, nil, comet.Overlap(t.SubtextOverlap))
	fadeUp(h.Intro, h.Indicator, -10, t.Indicator, nil, comet.Overlap(t.IndicatorOverlap))
	h.Intro.Play()

	h.Wipe = h.scope.Timeline(comet.TimelineConfig{Name: "hero-wipe", Ease: easeNone})
	for _, solid := range h.Solid {
		h.Wipe.To(solid, comet.PropClipRight, 100, 1, nil, comet.End())
	}
	h.Pin = h.scope.Pin(comet.PinConfig{
		Name:     "hero",
		Element:  h.root,
		Distance: t.PinDistance,
		Timeline: h.Wipe,
		Smooth:   t.Smooth,
	})

	// The fades only take over once scrolling starts, so the intro owns the
	// same properties until then.
	subFade := h.scope.Timeline(comet.TimelineConfig{Name: "hero-subtext-fade", Ease: easeNone, Lazy: true})
	subFade.FromTo(h.Subtext, comet.PropAlpha, 1, 0, 1, nil, comet.End())
	subFade.FromTo(h.Subtext, comet.PropY, 0, -20, 1, nil, comet.WithPrev())
	h.scope.Observe(comet.ObserverConfig{
		Name: "hero-subtext-fade", Trigger: h.root, Start: "top top", End: t.SubtextFadeEnd,
		Animation: subFade, Scrub: true,
	})

	indFade := h.scope.Timeline(comet.TimelineConfig{Name: "hero-indicator-fade", Ease: easeNone, Lazy: true})
	indFade.FromTo(h.Indicator, comet.PropAlpha, 1, 0, 1, nil, comet.End())
	h.scope.Observe(comet.ObserverConfig{
		Name: "hero-indicator-fade", Trigger: h.root, Start: "top top", End: t.IndicatorFadeEnd,
		Animation: indFade, Scrub: true,
	})
	return h
}

func (h *Hero) build(c content.Hero) {
	h.Curtain = comet.NewElement("hero-curtain")
	h.Curtain.FillWidth = true
	h.Curtain.ViewportHeight = 1
	h.Curtain.Color = colorPaper
	h.Curtain.ZIndex = 20

	for i, word := range c.Headline {
		wrapper := comet.NewElement(fmt.Sprintf("hero-word-%d", i))
		wrapper.Left = heroPadding
		wrapper.Top = heroPadding + float64(i)*heroLineHeight
		wrapper.Width, wrapper.Height = 900, heroLineHeight
		wrapper.ZIndex = 10

		outline := text(fmt.Sprintf("hero-word-%d-outline", i), word, 900, heroLineHeight)
		solid := text(fmt.Sprintf("hero-word-%d-solid", i), word, 900, heroLineHeight)
		solid.Color = colorWash
		solid.ZIndex = 1
		wrapper.AddChildren(outline, solid)

		h.Words = append(h.Words, wrapper)
		h.Outline = append(h.Outline, outline)
		h.Solid = append(h.Solid, solid)
		h.root.AddChild(wrapper)
	}

	h.Subtext = text("hero-subtext", c.Subtext, 600, 24)
	h.Subtext.Left = heroPadding
	h.Subtext.Top = heroPadding + float64(len(c.Headline))*heroLineHeight + 40

	h.Indicator = text("hero-indicator", "SCROLL", 80, 24)
	h.Indicator.Left = heroPadding
	h.Indicator.Top = h.Subtext.Top + 80

	h.root.AddChildren(h.Subtext, h.Indicator, h.Curtain)
}
