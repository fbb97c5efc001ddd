package comet

import (
	"math"

	"github.com/tanema/gween/ease"
)

// TimelineState is the tagged playback state of a Timeline.
type TimelineState uint8

const (
	TimelineIdle    TimelineState = iota // constructed, nothing rendered past t=0
	TimelinePlaying                      // advancing (played) or mid-scrub
	TimelineDone                         // reached its end, or was killed
)

var timelineStateNames = [...]string{"idle", "playing", "done"}

// String returns the state's name.
func (s TimelineState) String() string {
	if int(s) < len(timelineStateNames) {
		return timelineStateNames[s]
	}
	return "unknown"
}

// TimelineConfig controls a Timeline.
type TimelineConfig struct {
	Name string
	// Delay is the time in seconds a played timeline waits before its first
	// transition starts.
	Delay float64
	// Ease is the default curve for transitions that do not name one.
	Ease ease.TweenFunc
	// Lazy suppresses rendering of initial values until progress first moves
	// away from zero. Use it when another timeline owns the same properties
	// until this one starts.
	Lazy bool
	// OnComplete is called once when a played timeline reaches its end.
	OnComplete func()
}

// Transition animates one property of one element between two values.
// A nil Target with a non-nil OnUpdate animates a free value that is only
// reported through OnUpdate.
type Transition struct {
	Target   *Element
	Property Property
	From     float64
	To       float64
	// HasFrom marks From as explicit. Without it From is captured when the
	// transition is added: the end value of the previous transition on the
	// same property in this timeline, else the property's current value.
	HasFrom  bool
	Duration float64
	Ease     ease.TweenFunc
	OnUpdate func(v float64)
}

type offsetKind uint8

const (
	offsetEnd offsetKind = iota
	offsetNext
	offsetWithPrev
	offsetAt
)

// Offset places a transition on a timeline relative to what was added
// before it. Offsets are resolved to absolute start times when the
// transition is added and never recomputed.
type Offset struct {
	kind  offsetKind
	value float64
}

// End starts at the current end of the timeline.
func End() Offset { return Offset{kind: offsetEnd} }

// Gap starts d seconds after the current end of the timeline.
func Gap(d float64) Offset { return Offset{kind: offsetEnd, value: d} }

// Overlap starts d seconds before the current end of the timeline.
func Overlap(d float64) Offset { return Offset{kind: offsetEnd, value: -d} }

// Next starts when the most recently added transition completes.
func Next() Offset { return Offset{kind: offsetNext} }

// AfterPrev starts d seconds after the most recently added transition
// completes; a negative d overlaps it.
func AfterPrev(d float64) Offset { return Offset{kind: offsetNext, value: d} }

// WithPrev starts together with the most recently added transition.
func WithPrev() Offset { return Offset{kind: offsetWithPrev} }

// At starts at an absolute time t.
func At(t float64) Offset { return Offset{kind: offsetAt, value: t} }

// transition is a Transition placed on a timeline.
type transition struct {
	Transition
	start float64
}

// valueAt evaluates the transition at timeline time t. Before its start the
// transition holds From; after its end, To.
func (tr *transition) valueAt(t float64) float64 {
	if tr.Duration <= 0 {
		if t >= tr.start {
			return tr.To
		}
		return tr.From
	}
	frac := easeFraction(tr.Ease, (t-tr.start)/tr.Duration)
	return lerp(tr.From, tr.To, frac)
}

// track groups every transition on one (element, property) pair.
type track struct {
	target *Element
	prop   Property
	base   float64 // value before this timeline touched the property
	items  []*transition
}

// valueAt returns the property value at time t: the latest-starting
// transition that has started wins. Before any has started the earliest
// transition's From applies, unless initial rendering is suppressed.
func (k *track) valueAt(t float64, renderInitial bool) (float64, bool) {
	var cur, first *transition
	for _, it := range k.items {
		if first == nil || it.start < first.start {
			first = it
		}
		if it.start <= t && (cur == nil || it.start >= cur.start) {
			cur = it
		}
	}
	if cur != nil {
		return cur.valueAt(t), true
	}
	if first == nil || !renderInitial {
		return 0, false
	}
	return first.From, true
}

// Timeline is an ordered sequence of transitions. It is either played once,
// forward only, driven by frame ticks, or scrubbed, with its progress set
// directly from scroll position. Evaluation is a pure function of time, so
// scrubbing backwards reproduces earlier states exactly.
type Timeline struct {
	page *Page
	cfg  TimelineConfig

	tracks []*track
	items  []*transition

	duration  float64
	prevStart float64
	prevEnd   float64

	state        TimelineState
	time         float64
	lastProgress float64
	rendered     bool
	killed       bool
	// played is set by Play and cleared by SetProgress. Only played
	// timelines advance with frame time.
	played bool
}

// NewTimeline creates a timeline registered with the page so that played
// timelines advance on Page.Step. Sections should prefer Scope.Timeline,
// which also reverts the timeline on unmount.
func (p *Page) NewTimeline(cfg TimelineConfig) *Timeline {
	tl := &Timeline{page: p, cfg: cfg}
	p.timelines = append(p.timelines, tl)
	return tl
}

// Name returns the configured name.
func (tl *Timeline) Name() string {
	return tl.cfg.Name
}

// Duration returns the end time of the last transition.
func (tl *Timeline) Duration() float64 {
	return tl.duration
}

// State returns the playback state.
func (tl *Timeline) State() TimelineState {
	return tl.state
}

// Time returns the current timeline time. Negative while a played timeline
// is still in its delay.
func (tl *Timeline) Time() float64 {
	return tl.time
}

// Progress returns the current time as a fraction of the duration.
func (tl *Timeline) Progress() float64 {
	if tl.duration <= 0 {
		if tl.state == TimelineDone {
			return 1
		}
		return 0
	}
	return clamp01(tl.time / tl.duration)
}

// Killed reports whether the timeline was killed or reverted.
func (tl *Timeline) Killed() bool {
	return tl.killed
}

// resolve turns an offset into an absolute start time.
func (tl *Timeline) resolve(off Offset) float64 {
	var start float64
	switch off.kind {
	case offsetEnd:
		start = tl.duration + off.value
	case offsetNext:
		start = tl.prevEnd + off.value
	case offsetWithPrev:
		start = tl.prevStart + off.value
	case offsetAt:
		start = off.value
	}
	return math.Max(0, start)
}

// Add places tr at off. A transition whose target is missing or disposed
// keeps its time slot but animates nothing.
func (tl *Timeline) Add(tr Transition, off Offset) *Timeline {
	start := tl.resolve(off)
	tl.place(tr, start)
	tl.prevStart = start
	tl.prevEnd = start + math.Max(0, tr.Duration)
	return tl
}

// place adds tr at an absolute start without touching the previous-item
// bookkeeping.
func (tl *Timeline) place(tr Transition, start float64) {
	if tl.killed {
		return
	}
	if tr.Duration < 0 {
		tr.Duration = 0
	}
	if tr.Ease == nil {
		tr.Ease = tl.cfg.Ease
	}
	if end := start + tr.Duration; end > tl.duration {
		tl.duration = end
	}

	if tr.Target == nil {
		if tr.OnUpdate == nil {
			tl.page.debugf("timeline %q: transition without target skipped", tl.cfg.Name)
			return
		}
		tl.items = append(tl.items, &transition{Transition: tr, start: start})
		return
	}
	if !tr.Target.alive() {
		tl.page.debugf("timeline %q: transition on missing element skipped", tl.cfg.Name)
		return
	}

	k := tl.trackFor(tr.Target, tr.Property)
	fresh := len(k.items) == 0
	if !tr.HasFrom {
		if fresh {
			tr.From = tr.Target.Prop(tr.Property)
		} else {
			tr.From = k.items[len(k.items)-1].To
		}
	}
	it := &transition{Transition: tr, start: start}
	k.items = append(k.items, it)
	tl.items = append(tl.items, it)

	// Explicit from-values render immediately so elements start hidden
	// before their reveal fires.
	if fresh && tr.HasFrom && !tl.cfg.Lazy {
		tr.Target.SetProp(tr.Property, tr.From)
	}
}

func (tl *Timeline) trackFor(el *Element, prop Property) *track {
	for _, k := range tl.tracks {
		if k.target == el && k.prop == prop {
			return k
		}
	}
	k := &track{target: el, prop: prop, base: el.Prop(prop)}
	tl.tracks = append(tl.tracks, k)
	return k
}

// To animates target's property from its current value to to.
func (tl *Timeline) To(target *Element, prop Property, to, duration float64, fn ease.TweenFunc, off Offset) *Timeline {
	return tl.Add(Transition{Target: target, Property: prop, To: to, Duration: duration, Ease: fn}, off)
}

// FromTo animates target's property from from to to. The from value is
// rendered immediately unless the timeline is lazy.
func (tl *Timeline) FromTo(target *Element, prop Property, from, to, duration float64, fn ease.TweenFunc, off Offset) *Timeline {
	return tl.Add(Transition{Target: target, Property: prop, From: from, To: to, HasFrom: true, Duration: duration, Ease: fn}, off)
}

// Set jumps target's property to v at off.
func (tl *Timeline) Set(target *Element, prop Property, v float64, off Offset) *Timeline {
	return tl.Add(Transition{Target: target, Property: prop, To: v}, off)
}

// Hold appends d seconds of empty time to the end of the timeline.
func (tl *Timeline) Hold(d float64) *Timeline {
	start := tl.duration
	tl.duration += math.Max(0, d)
	tl.prevStart = start
	tl.prevEnd = tl.duration
	return tl
}

// Stagger adds one copy of tmpl per target, each starting each seconds after
// the previous. The whole group counts as one item for Next/WithPrev.
func (tl *Timeline) Stagger(targets []*Element, tmpl Transition, each float64, off Offset) *Timeline {
	base := tl.resolve(off)
	end := base
	for i, target := range targets {
		tr := tmpl
		tr.Target = target
		start := base + float64(i)*each
		tl.place(tr, start)
		if e := start + math.Max(0, tr.Duration); e > end {
			end = e
		}
	}
	tl.prevStart = base
	tl.prevEnd = end
	return tl
}

// render writes every track's value at time t.
func (tl *Timeline) render(t float64) {
	if tl.killed {
		return
	}
	renderInitial := tl.rendered || !tl.cfg.Lazy
	for _, k := range tl.tracks {
		if !k.target.alive() {
			continue
		}
		if v, ok := k.valueAt(t, renderInitial); ok {
			k.target.SetProp(k.prop, v)
			tl.rendered = true
		}
	}
	for _, it := range tl.items {
		if it.OnUpdate == nil || t < it.start {
			continue
		}
		if it.Target != nil && !it.Target.alive() {
			continue
		}
		it.OnUpdate(it.valueAt(t))
	}
}

// Seek renders the timeline at time t (clamped to [0, Duration]) without
// changing its playback state.
func (tl *Timeline) Seek(t float64) {
	t = math.Max(0, math.Min(t, tl.duration))
	tl.time = t
	tl.render(t)
}

// SetProgress renders the timeline at progress p of its duration. This is
// the scrub entry point: the rendered state depends on p alone.
func (tl *Timeline) SetProgress(p float64) {
	if tl.killed {
		return
	}
	p = clamp01(p)
	if tl.cfg.Lazy && !tl.rendered && p == 0 {
		return
	}
	tl.played = false
	tl.lastProgress = p
	tl.Seek(p * tl.duration)
	switch {
	case p >= 1:
		tl.state = TimelineDone
	case p <= 0:
		tl.state = TimelineIdle
	default:
		tl.state = TimelinePlaying
	}
}

// Play starts one-shot forward playback. A timeline plays at most once:
// calling Play while playing or after completion does nothing.
func (tl *Timeline) Play() {
	if tl.killed || tl.state != TimelineIdle {
		return
	}
	tl.state = TimelinePlaying
	tl.played = true
	tl.time = -tl.cfg.Delay
	if tl.time >= 0 {
		tl.render(0)
	}
}

// Pause stops playback where it is. A paused timeline can only be played
// again through Restart.
func (tl *Timeline) Pause() {
	if tl.state == TimelinePlaying {
		tl.state = TimelineDone
	}
}

// Restart plays the timeline again from the start, whatever its state.
// Used for toggles such as a menu that opens and closes repeatedly.
func (tl *Timeline) Restart() {
	if tl.killed {
		return
	}
	tl.state = TimelineIdle
	tl.Play()
}

// Step advances a played timeline by dt seconds. Scrubbed timelines only
// move through SetProgress.
func (tl *Timeline) Step(dt float64) {
	if tl.killed || !tl.played || tl.state != TimelinePlaying {
		return
	}
	tl.time += dt
	if tl.time < 0 {
		return
	}
	if tl.time >= tl.duration {
		tl.time = tl.duration
		tl.render(tl.duration)
		tl.state = TimelineDone
		if tl.cfg.OnComplete != nil {
			tl.cfg.OnComplete()
		}
		return
	}
	tl.render(tl.time)
}

// Complete snaps the timeline to its end state. A played timeline that
// had not finished fires OnComplete.
func (tl *Timeline) Complete() {
	if tl.killed {
		return
	}
	fire := tl.played && tl.state == TimelinePlaying
	tl.time = tl.duration
	tl.render(tl.duration)
	tl.state = TimelineDone
	if fire && tl.cfg.OnComplete != nil {
		tl.cfg.OnComplete()
	}
}

// Kill stops the timeline where it is. Properties keep their current values.
func (tl *Timeline) Kill() {
	if tl.killed {
		return
	}
	tl.killed = true
	tl.state = TimelineDone
	if tl.page != nil {
		tl.page.removeTimeline(tl)
	}
}

// Revert restores every property the timeline touched to the value it had
// before the timeline was built, then kills the timeline.
func (tl *Timeline) Revert() {
	if tl.killed {
		return
	}
	for i := len(tl.tracks) - 1; i >= 0; i-- {
		k := tl.tracks[i]
		if k.target.alive() {
			k.target.SetProp(k.prop, k.base)
		}
	}
	tl.Kill()
}
