package comet

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/tanema/gween/ease"
)

// newStackPage builds a 1000x800 page with full-width sections of the given
// heights stacked from the top.
func newStackPage(heights ...float64) (*Page, []*Element) {
	p := NewPage(1000, 800)
	var els []*Element
	for i, h := range heights {
		el := NewBox(fmt.Sprintf("section-%d", i), 1000, h, ColorBlack)
		p.Root().AddChild(el)
		els = append(els, el)
	}
	p.Refresh()
	return p, els
}

func TestObserverResolvesRange(t *testing.T) {
	p, els := newStackPage(800, 800, 800)
	o, err := p.Observe(ObserverConfig{Trigger: els[1], Start: "top 85%"})
	if err != nil {
		t.Fatal(err)
	}
	if !approx(o.StartScroll(), 800-680) {
		t.Errorf("StartScroll = %f, want 120", o.StartScroll())
	}
	// Default end: trigger bottom at viewport top.
	if o.EndScroll() != 1600 {
		t.Errorf("EndScroll = %f, want 1600", o.EndScroll())
	}
}

func TestObserverBadPosition(t *testing.T) {
	p, els := newStackPage(800)
	if _, err := p.Observe(ObserverConfig{Trigger: els[0], Start: "sideways"}); err == nil {
		t.Error("expected error for bad start")
	}
	if _, err := p.Observe(ObserverConfig{Trigger: els[0], Start: "+=100"}); err == nil {
		t.Error("expected error for relative start")
	}
}

func TestObserverCrossings(t *testing.T) {
	p, els := newStackPage(800, 800, 800)
	var got []string
	record := func(name string) func(*Observer) {
		return func(*Observer) { got = append(got, name) }
	}
	_, err := p.Observe(ObserverConfig{
		Trigger:     els[1],
		Start:       "top center",    // 400
		End:         "bottom center", // 1200
		OnEnter:     record("enter"),
		OnLeave:     record("leave"),
		OnEnterBack: record("enterBack"),
		OnLeaveBack: record("leaveBack"),
	})
	if err != nil {
		t.Fatal(err)
	}

	p.SetScroll(100)
	p.SetScroll(500)
	p.SetScroll(600) // still inside: no crossing
	p.SetScroll(1300)
	p.SetScroll(1000)
	p.SetScroll(100)
	p.SetScroll(1300) // jump over the whole range
	p.SetScroll(0)

	want := []string{
		"enter", "leave", "enterBack", "leaveBack",
		"enter", "leave", "enterBack", "leaveBack",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("crossings = %v, want %v", got, want)
	}
}

func TestObserverProgressClamps(t *testing.T) {
	p, els := newStackPage(800, 800, 800)
	var updates []float64
	o, _ := p.Observe(ObserverConfig{
		Trigger:  els[1],
		Start:    "top center",
		End:      "bottom center",
		OnUpdate: func(_ *Observer, v float64) { updates = append(updates, v) },
	})

	tests := []struct {
		scroll, want float64
	}{
		{0, 0},
		{400, 0},
		{600, 0.25},
		{800, 0.5},
		{1200, 1},
		{1600, 1},
		{200, 0},
	}
	for _, tt := range tests {
		p.SetScroll(tt.scroll)
		if !approx(o.Progress(), tt.want) {
			t.Errorf("scroll %f: progress = %f, want %f", tt.scroll, o.Progress(), tt.want)
		}
	}
	if len(updates) != 4 {
		t.Errorf("OnUpdate calls = %d (%v), want 4", len(updates), updates)
	}
}

func TestObserverOnceFiresOnce(t *testing.T) {
	p, els := newStackPage(800, 800, 800)
	el := NewElement("reveal")
	els[1].AddChild(el)

	tl := p.NewTimeline(TimelineConfig{})
	tl.FromTo(el, PropAlpha, 0, 1, 1, ease.Linear, End())
	tl.FromTo(el, PropY, 40, 0, 1, ease.Linear, WithPrev())

	enters := 0
	o, _ := p.Observe(ObserverConfig{
		Trigger:   els[1],
		Start:     "top 85%",
		Once:      true,
		Animation: tl,
		OnEnter:   func(*Observer) { enters++ },
	})

	if el.Alpha != 0 {
		t.Fatalf("Alpha = %f, want hidden before trigger", el.Alpha)
	}
	p.SetScroll(200)
	if enters != 1 {
		t.Fatalf("enters = %d, want 1", enters)
	}
	if !o.Killed() {
		t.Error("once observer should stop after its first enter")
	}
	p.Step(0.5)
	p.SetScroll(0)
	p.SetScroll(300)
	p.Refresh()
	p.Step(0.6)
	p.SetScroll(0)
	p.SetScroll(250)

	if enters != 1 {
		t.Errorf("enters = %d, want 1", enters)
	}
	if el.Alpha != 1 || el.Y != 0 {
		t.Errorf("alpha, y = %f, %f, want full range 1, 0", el.Alpha, el.Y)
	}
	if tl.State() != TimelineDone {
		t.Errorf("timeline state = %v, want done", tl.State())
	}
}

func TestObserverFiresOnCreationWhenPastStart(t *testing.T) {
	p, els := newStackPage(800, 800, 800)
	p.SetScroll(1600)
	var got []string
	p.Observe(ObserverConfig{
		Trigger: els[0],
		OnEnter: func(*Observer) { got = append(got, "enter") },
		OnLeave: func(*Observer) { got = append(got, "leave") },
	})
	if !reflect.DeepEqual(got, []string{"enter", "leave"}) {
		t.Errorf("got %v, want [enter leave]", got)
	}
}

func TestObserverReevaluatesOnResize(t *testing.T) {
	p, els := newStackPage(800, 800, 800)
	leaveBacks := 0
	o, _ := p.Observe(ObserverConfig{
		Trigger:     els[1],
		Start:       "top 50%", // 400 at 800 tall
		OnLeaveBack: func(*Observer) { leaveBacks++ },
	})
	p.SetScroll(500)
	if !o.IsActive() {
		t.Fatal("observer should be active at 500")
	}

	p.Resize(1000, 400) // start moves to 800 - 200 = 600
	if o.StartScroll() != 600 {
		t.Errorf("StartScroll = %f, want 600", o.StartScroll())
	}
	if o.IsActive() || leaveBacks != 1 {
		t.Errorf("active = %v, leaveBacks = %d, want false, 1", o.IsActive(), leaveBacks)
	}
}

func TestObserverStopsWhenTriggerDisposed(t *testing.T) {
	p, els := newStackPage(800, 800, 800)
	calls := 0
	o, _ := p.Observe(ObserverConfig{
		Trigger:  els[1],
		Start:    "top center",
		OnEnter:  func(*Observer) { calls++ },
		OnUpdate: func(*Observer, float64) { calls++ },
	})
	els[1].Dispose()
	p.SetScroll(500)
	p.Resize(1000, 600)
	if calls != 0 {
		t.Errorf("callbacks after dispose = %d, want 0", calls)
	}
	if !o.Killed() {
		t.Error("observer should stop when its trigger is disposed")
	}
	if p.Observers() != 0 {
		t.Errorf("live observers = %d, want 0", p.Observers())
	}
}

func TestObserverScrubDeterministic(t *testing.T) {
	p, els := newStackPage(800, 800, 800)
	box := NewElement("box")
	els[1].AddChild(box)

	tl := p.NewTimeline(TimelineConfig{})
	tl.FromTo(box, PropScaleX, 0, 1, 1, ease.InOutQuad, End())
	tl.FromTo(box, PropAlpha, 1, 0, 0.5, ease.OutCubic, Overlap(0.25))
	p.Observe(ObserverConfig{Trigger: els[1], Start: "top bottom", End: "bottom top", Scrub: true, Animation: tl})

	scrolls := []float64{0, 150, 420, 777, 1000, 1333, 1600}
	forward := make([][2]float64, len(scrolls))
	for i, s := range scrolls {
		p.SetScroll(s)
		forward[i] = [2]float64{box.ScaleX, box.Alpha}
	}
	for i := len(scrolls) - 1; i >= 0; i-- {
		p.SetScroll(scrolls[i])
		if got := [2]float64{box.ScaleX, box.Alpha}; got != forward[i] {
			t.Errorf("scroll %f reversed = %v, want %v", scrolls[i], got, forward[i])
		}
	}
}

func TestObserverScrubSmoothing(t *testing.T) {
	p, els := newStackPage(800, 800, 800)
	box := NewElement("box")
	els[1].AddChild(box)

	tl := p.NewTimeline(TimelineConfig{})
	tl.FromTo(box, PropX, 0, 100, 1, ease.Linear, End())
	o, _ := p.Observe(ObserverConfig{Trigger: els[1], Start: "top top", End: "bottom top", Scrub: true, Smooth: 1, Animation: tl})

	p.SetScroll(1200) // raw progress 0.5
	if box.X != 0 {
		t.Errorf("X = %f, want 0 before smoothing catches up", box.X)
	}
	p.Step(0.5)
	if box.X <= 0 || box.X >= 50 {
		t.Errorf("X mid-smoothing = %f, want in (0, 50)", box.X)
	}
	p.Step(0.6)
	if !approx(box.X, 50) || o.SmoothedProgress() != o.Progress() {
		t.Errorf("X = %f, smoothed %f, want caught up at 50", box.X, o.SmoothedProgress())
	}
}

func TestObserverEventStore(t *testing.T) {
	p, els := newStackPage(800, 800, 800)
	store := &recordingStore{}
	p.SetEventStore(store)
	p.Observe(ObserverConfig{Name: "probe", Trigger: els[1], Start: "top center", End: "bottom center"})
	p.SetScroll(500)
	p.SetScroll(1300)

	if len(store.events) != 2 {
		t.Fatalf("events = %d, want 2", len(store.events))
	}
	if store.events[0].Type != EventEnter || store.events[1].Type != EventLeave {
		t.Errorf("types = %v, %v, want enter, leave", store.events[0].Type, store.events[1].Type)
	}
	if store.events[0].Name != "probe" || store.events[0].ElementID != els[1].ID {
		t.Errorf("event = %+v", store.events[0])
	}
}

type recordingStore struct {
	events []ScrollEvent
}

func (s *recordingStore) EmitEvent(ev ScrollEvent) {
	s.events = append(s.events, ev)
}

func TestObserverScrubHoldsWithoutScroll(t *testing.T) {
	p, els := newStackPage(800, 800, 800)
	box := NewElement("box")
	els[1].AddChild(box)

	done := 0
	tl := p.NewTimeline(TimelineConfig{OnComplete: func() { done++ }})
	tl.FromTo(box, PropX, 0, 100, 1, ease.Linear, End())
	p.Observe(ObserverConfig{Trigger: els[1], Start: "top top", End: "bottom top", Scrub: true, Animation: tl})

	p.SetScroll(1200) // progress 0.5
	if box.X != 50 {
		t.Fatalf("X = %f, want 50", box.X)
	}
	for i := 0; i < 3; i++ {
		p.Step(1.0 / 60)
	}
	p.Step(1)
	if box.X != 50 || done != 0 {
		t.Errorf("X = %f, completions %d, want 50 and none without scrolling", box.X, done)
	}

	p.SetScroll(1600)
	if box.X != 100 {
		t.Errorf("X = %f, want 100 at the end of the range", box.X)
	}
}
