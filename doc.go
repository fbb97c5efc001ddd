// Package comet is a retained-mode scroll choreography engine for the Comet
// Holdings site.
//
// Comet binds property transitions on a tree of elements to the scroll
// position of a single document: one-shot reveals that play when an element
// crosses a viewport threshold, scrubbed timelines whose progress is mapped
// directly to scroll distance, and pinned sections that hold still while the
// reader scrolls through an internal sequence.
//
// # Quick start
//
// A [Page] is the context object every section is mounted into. It owns the
// element tree, the viewport, the scroll position, and every registered
// observer:
//
//	page := comet.NewPage(1280, 800)
//	hero := comet.NewElement("hero")
//	hero.ViewportHeight = 1
//	headline := comet.NewBox("headline", 800, 120, comet.ColorBlack)
//	hero.AddChild(headline)
//	page.Root().AddChild(hero)
//
//	scope := page.NewScope("hero")
//	defer scope.Revert()
//	tl := scope.Timeline(comet.TimelineConfig{})
//	tl.FromTo(headline, comet.PropAlpha, 0, 1, 0.9, comet.EaseByName("power2.out"), comet.End())
//	scope.Observe(comet.ObserverConfig{
//		Trigger:   hero,
//		Start:     "top 85%",
//		Once:      true,
//		Animation: tl,
//	})
//
// Feed it scroll samples and frame ticks from whatever host drives it:
//
//	page.SetScroll(y)  // on every scroll event
//	page.Step(dt)      // on every frame
//
// [Run] wraps both in an [Ebitengine] window for previewing a page.
//
// # Triggers, scrubs, and pins
//
// An [Observer] reports edge-triggered crossings (enter, leave, enter-back,
// leave-back) and a continuous progress value between its start and end
// positions. Positions use the "<element edge> <viewport edge>" notation,
// e.g. "top 85%" or "bottom top"; ends may be relative, e.g. "+=150%".
//
// A [Timeline] is an ordered list of transitions whose offsets are resolved
// once, when each transition is added. Evaluation is a pure function of time,
// so a scrubbed timeline reverses exactly when the reader scrolls back up.
//
// A [Pin] freezes an element on screen for a reserved scroll distance and
// feeds the distance travelled into a timeline. The reservation is fixed when
// the pin activates.
//
// # Teardown
//
// Every section registers its work through a [Scope]. [Scope.Revert] kills
// the scope's observers, pins and tweens and restores every property its
// timelines touched; no callback of a reverted scope fires afterwards.
//
// Easing curves come from [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package comet
