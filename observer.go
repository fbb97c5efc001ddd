package comet

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default observer range: from the trigger's top entering at the bottom of
// the viewport until its bottom leaves at the top.
const (
	DefaultStart = "top bottom"
	DefaultEnd   = "bottom top"
)

// observerPhase is where the scroll position sits relative to an observer's
// range.
type observerPhase uint8

const (
	phaseBefore observerPhase = iota
	phaseActive
	phaseAfter
)

// ObserverConfig configures a viewport observer.
type ObserverConfig struct {
	Name string
	// Trigger is the element whose box the Start and End positions refer
	// to. A nil trigger observes the whole document.
	Trigger *Element
	// Start and End are positions such as "top 85%" or, for End, a
	// relative "+=150%". Empty strings use DefaultStart and DefaultEnd.
	Start string
	End   string
	// Once kills the observer right after its first enter. A new observer
	// must be built to observe again.
	Once bool

	// Animation is played on enter, or scrubbed by progress when Scrub is
	// set.
	Animation *Timeline
	Scrub     bool
	// Smooth is the time in seconds scrubbed progress takes to catch up
	// with the scroll position. Zero maps progress directly.
	Smooth float64

	OnEnter     func(*Observer)
	OnLeave     func(*Observer)
	OnEnterBack func(*Observer)
	OnLeaveBack func(*Observer)
	// OnToggle is called with the new active state on every crossing.
	OnToggle func(*Observer, bool)
	// OnUpdate is called with the raw progress whenever it changes.
	OnUpdate func(*Observer, float64)
}

// Observer watches a trigger element's position relative to the viewport.
// It reports edge-triggered crossings of its start and end positions and a
// progress value in [0, 1] that is a clamped linear function of scroll.
type Observer struct {
	id    uint32
	page  *Page
	cfg   ObserverConfig
	start Position
	end   Position

	startScroll float64
	endScroll   float64

	phase     observerPhase
	progress  float64
	smoothed  float64
	smoothing *gween.Tween
	killed    bool

	// pin, when set, owns the range end and is synced after every sample.
	pin *Pin
}

// Observe creates an observer and evaluates it against the current scroll
// position. Sections should prefer Scope.Observe, which also kills the
// observer on unmount.
func (p *Page) Observe(cfg ObserverConfig) (*Observer, error) {
	o, err := p.newObserver(cfg)
	if err != nil {
		return nil, err
	}
	p.addObserver(o)
	return o, nil
}

func (p *Page) newObserver(cfg ObserverConfig) (*Observer, error) {
	if cfg.Start == "" {
		cfg.Start = DefaultStart
	}
	if cfg.End == "" {
		cfg.End = DefaultEnd
	}
	start, err := ParsePosition(cfg.Start)
	if err != nil {
		return nil, fmt.Errorf("observer %q start: %w", cfg.Name, err)
	}
	if start.Relative {
		return nil, fmt.Errorf("observer %q start: %w: relative start %q", cfg.Name, ErrBadPosition, cfg.Start)
	}
	end, err := ParsePosition(cfg.End)
	if err != nil {
		return nil, fmt.Errorf("observer %q end: %w", cfg.Name, err)
	}
	p.nextObserverID++
	return &Observer{
		id:    p.nextObserverID,
		page:  p,
		cfg:   cfg,
		start: start,
		end:   end,
	}, nil
}

// addObserver registers o, resolves its range and evaluates it once so that
// an observer created below its start fires immediately.
func (p *Page) addObserver(o *Observer) {
	p.layout(p.root)
	p.observers = append(p.observers, o)
	o.refresh()
	o.evaluate(p.scroll)
}

// ID returns the observer's page-unique ID.
func (o *Observer) ID() uint32 { return o.id }

// Name returns the configured name.
func (o *Observer) Name() string { return o.cfg.Name }

// Trigger returns the trigger element.
func (o *Observer) Trigger() *Element { return o.cfg.Trigger }

// StartScroll returns the resolved scroll offset of the range start.
func (o *Observer) StartScroll() float64 { return o.startScroll }

// EndScroll returns the resolved scroll offset of the range end.
func (o *Observer) EndScroll() float64 { return o.endScroll }

// Progress returns the raw progress through the range.
func (o *Observer) Progress() float64 { return o.progress }

// SmoothedProgress returns the progress fed to a scrubbed animation.
func (o *Observer) SmoothedProgress() float64 { return o.smoothed }

// IsActive reports whether the scroll position lies within the range.
func (o *Observer) IsActive() bool { return o.phase == phaseActive }

// Killed reports whether the observer has stopped.
func (o *Observer) Killed() bool { return o.killed }

// Kill stops the observer. No callback fires after Kill returns.
func (o *Observer) Kill() {
	if o.killed {
		return
	}
	o.killed = true
	o.smoothing = nil
	o.page.observersDirty = true
}

// triggerBox returns the trigger's document top and height.
func (o *Observer) triggerBox() (float64, float64) {
	if o.cfg.Trigger == nil {
		return 0, o.page.DocumentHeight()
	}
	return o.cfg.Trigger.DocumentTop(), o.cfg.Trigger.Height
}

// refresh recomputes the scroll range from the current layout. A pinned
// pin keeps the range it was activated with.
func (o *Observer) refresh() {
	if o.killed {
		return
	}
	if o.pin != nil && o.pin.pinned {
		return
	}
	top, h := o.triggerBox()
	vh := o.page.height
	o.startScroll = o.start.ScrollFor(top, h, vh, 0)
	if o.pin != nil {
		o.endScroll = o.startScroll + o.pin.reserve(vh)
		return
	}
	o.endScroll = o.end.ScrollFor(top, h, vh, o.startScroll)
	if o.endScroll < o.startScroll {
		o.endScroll = o.startScroll
	}
}

func (o *Observer) rawProgress(scroll float64) float64 {
	if o.endScroll <= o.startScroll {
		if scroll >= o.startScroll {
			return 1
		}
		return 0
	}
	return clamp01((scroll - o.startScroll) / (o.endScroll - o.startScroll))
}

func (o *Observer) phaseAt(scroll float64) observerPhase {
	switch {
	case scroll < o.startScroll:
		return phaseBefore
	case scroll > o.endScroll:
		return phaseAfter
	}
	return phaseActive
}

// evaluate samples the scroll position, fires crossings and updates
// progress. Callbacks may kill the observer; every step checks for that.
func (o *Observer) evaluate(scroll float64) {
	if o.killed {
		return
	}
	if o.cfg.Trigger != nil && !o.cfg.Trigger.alive() {
		o.page.debugf("observer %q: trigger disposed, stopping", o.cfg.Name)
		o.Kill()
		return
	}

	next := o.phaseAt(scroll)
	prev := o.phase
	switch {
	case prev == phaseBefore && next == phaseActive:
		o.cross(EventEnter, scroll)
	case prev == phaseActive && next == phaseAfter:
		o.cross(EventLeave, scroll)
	case prev == phaseAfter && next == phaseActive:
		o.cross(EventEnterBack, scroll)
	case prev == phaseActive && next == phaseBefore:
		o.cross(EventLeaveBack, scroll)
	case prev == phaseBefore && next == phaseAfter:
		o.cross(EventEnter, scroll)
		o.cross(EventLeave, scroll)
	case prev == phaseAfter && next == phaseBefore:
		o.cross(EventEnterBack, scroll)
		o.cross(EventLeaveBack, scroll)
	}
	if o.killed {
		return
	}
	o.phase = next

	p := o.rawProgress(scroll)
	if p != o.progress {
		o.progress = p
		o.scrub(p)
		if o.cfg.OnUpdate != nil {
			o.cfg.OnUpdate(o, p)
		}
	}
	if o.killed {
		return
	}
	if o.pin != nil {
		o.pin.sync(o, scroll)
	}
}

// cross fires one crossing: event store, animation, callbacks. The phase is
// updated as the crossing happens so callbacks observe the new state.
func (o *Observer) cross(t ScrollEventType, scroll float64) {
	if o.killed {
		return
	}
	switch t {
	case EventEnter, EventEnterBack:
		o.phase = phaseActive
	case EventLeave:
		o.phase = phaseAfter
	case EventLeaveBack:
		o.phase = phaseBefore
	}
	ev := ScrollEvent{
		Type:       t,
		ObserverID: o.id,
		Name:       o.cfg.Name,
		Scroll:     scroll,
		Progress:   o.rawProgress(scroll),
	}
	if o.cfg.Trigger != nil {
		ev.ElementID = o.cfg.Trigger.ID
	}
	o.page.emit(ev)
	o.page.debugf("observer %q: %s at %.1f", o.cfg.Name, t, scroll)

	if t == EventEnter && o.cfg.Animation != nil && !o.cfg.Scrub {
		o.cfg.Animation.Play()
	}

	var fn func(*Observer)
	switch t {
	case EventEnter:
		fn = o.cfg.OnEnter
	case EventLeave:
		fn = o.cfg.OnLeave
	case EventEnterBack:
		fn = o.cfg.OnEnterBack
	case EventLeaveBack:
		fn = o.cfg.OnLeaveBack
	}
	if fn != nil {
		fn(o)
	}
	if o.killed {
		return
	}
	if o.cfg.OnToggle != nil {
		o.cfg.OnToggle(o, o.phase == phaseActive)
	}
	if t == EventEnter && o.cfg.Once {
		o.Kill()
	}
}

// scrub feeds new progress into a scrubbed animation, directly or through
// the smoothing tween.
func (o *Observer) scrub(p float64) {
	if !o.cfg.Scrub || o.cfg.Animation == nil {
		return
	}
	if o.cfg.Smooth <= 0 {
		o.smoothed = p
		o.cfg.Animation.SetProgress(p)
		return
	}
	o.smoothing = gween.New(float32(o.smoothed), float32(p), float32(o.cfg.Smooth), ease.OutCubic)
}

// step advances scrub smoothing by dt seconds.
func (o *Observer) step(dt float64) {
	if o.killed || o.smoothing == nil {
		return
	}
	v, done := o.smoothing.Update(float32(dt))
	o.smoothed = float64(v)
	if done {
		o.smoothed = o.progress
		o.smoothing = nil
	}
	o.cfg.Animation.SetProgress(o.smoothed)
}
