package comet

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestTimelineOffsetsResolveAtAdd(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("el")
	p.Root().AddChild(el)

	tl := p.NewTimeline(TimelineConfig{})
	tl.To(el, PropX, 100, 1, ease.Linear, End())             // 0.0 - 1.0
	tl.To(el, PropY, 100, 1, ease.Linear, Overlap(0.6))      // 0.4 - 1.4
	tl.To(el, PropAlpha, 0, 1, ease.Linear, AfterPrev(-0.5)) // 0.9 - 1.9
	tl.To(el, PropScale, 2, 1, ease.Linear, Next())          // 1.9 - 2.9
	tl.To(el, PropRotateX, 90, 0.5, ease.Linear, WithPrev()) // 1.9 - 2.4
	tl.To(el, PropValue, 10, 0.2, ease.Linear, At(0.1))      // 0.1 - 0.3
	tl.To(el, PropClipTop, 50, 0.5, ease.Linear, Gap(0.1))   // 3.0 - 3.5

	want := []float64{0, 0.4, 0.9, 1.9, 1.9, 0.1, 3.0}
	if len(tl.items) != len(want) {
		t.Fatalf("items = %d, want %d", len(tl.items), len(want))
	}
	for i, w := range want {
		if !approx(tl.items[i].start, w) {
			t.Errorf("item %d start = %f, want %f", i, tl.items[i].start, w)
		}
	}
	if !approx(tl.Duration(), 3.5) {
		t.Errorf("Duration = %f, want 3.5", tl.Duration())
	}

	// Playing does not move already resolved starts.
	tl.Play()
	tl.Step(1.2)
	for i, w := range want {
		if !approx(tl.items[i].start, w) {
			t.Errorf("after play, item %d start = %f, want %f", i, tl.items[i].start, w)
		}
	}
}

func TestTimelineNextWaitsForPrevious(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("el")
	p.Root().AddChild(el)

	tl := p.NewTimeline(TimelineConfig{})
	tl.FromTo(el, PropX, 0, 100, 1, ease.Linear, End())
	tl.FromTo(el, PropY, 0, 50, 1, ease.Linear, Next())

	tl.Seek(0.5)
	if !approx(el.X, 50) {
		t.Errorf("X = %f, want 50", el.X)
	}
	if el.Y != 0 {
		t.Errorf("Y = %f, want 0 before previous completes", el.Y)
	}
	tl.Seek(1.5)
	if el.X != 100 || !approx(el.Y, 25) {
		t.Errorf("X, Y = %f, %f, want 100, 25", el.X, el.Y)
	}
}

func TestTimelineScrubIsDeterministic(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("el")
	p.Root().AddChild(el)

	tl := p.NewTimeline(TimelineConfig{})
	tl.FromTo(el, PropX, 0, 100, 1, ease.InOutCubic, End())
	tl.To(el, PropX, 40, 1, ease.OutQuart, Overlap(0.3))
	tl.FromTo(el, PropAlpha, 0, 1, 0.5, ease.InSine, WithPrev())

	progress := []float64{0, 0.1, 0.25, 0.4, 0.5, 0.66, 0.8, 0.95, 1}
	forward := make([][2]float64, len(progress))
	for i, pr := range progress {
		tl.SetProgress(pr)
		forward[i] = [2]float64{el.X, el.Alpha}
	}
	for i := len(progress) - 1; i >= 0; i-- {
		tl.SetProgress(progress[i])
		got := [2]float64{el.X, el.Alpha}
		if got != forward[i] {
			t.Errorf("progress %.2f reversed = %v, want %v", progress[i], got, forward[i])
		}
	}
	// Jumping around reproduces the same values too.
	tl.SetProgress(0.25)
	if el.X != forward[2][0] {
		t.Errorf("X at 0.25 after jump = %f, want %f", el.X, forward[2][0])
	}
}

func TestTimelineScrubFollowsEase(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("el")
	p.Root().AddChild(el)

	tl := p.NewTimeline(TimelineConfig{})
	tl.FromTo(el, PropX, 0, 100, 1, ease.InQuad, End())

	prev := -1.0
	for _, pr := range []float64{0, 0.2, 0.4, 0.6, 0.8, 1} {
		tl.SetProgress(pr)
		want := 100 * float64(ease.InQuad(float32(pr), 0, 1, 1))
		if !approx(el.X, want) {
			t.Errorf("X at %.1f = %f, want %f", pr, el.X, want)
		}
		if el.X < prev {
			t.Errorf("X decreased at %.1f: %f < %f", pr, el.X, prev)
		}
		prev = el.X
	}
}

func TestTimelineStateMachine(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("el")
	p.Root().AddChild(el)

	completed := 0
	tl := p.NewTimeline(TimelineConfig{Delay: 0.5, OnComplete: func() { completed++ }})
	tl.FromTo(el, PropAlpha, 0, 1, 1, ease.Linear, End())

	if el.Alpha != 0 {
		t.Errorf("Alpha = %f, want 0 (from value renders immediately)", el.Alpha)
	}
	if tl.State() != TimelineIdle {
		t.Errorf("State = %v, want idle", tl.State())
	}

	tl.Play()
	if tl.State() != TimelinePlaying {
		t.Errorf("State = %v, want playing", tl.State())
	}
	p.Step(0.25)
	if el.Alpha != 0 {
		t.Errorf("Alpha during delay = %f, want 0", el.Alpha)
	}
	p.Step(0.75)
	if !approx(el.Alpha, 0.5) {
		t.Errorf("Alpha = %f, want 0.5", el.Alpha)
	}
	p.Step(1)
	if el.Alpha != 1 {
		t.Errorf("Alpha = %f, want 1", el.Alpha)
	}
	if tl.State() != TimelineDone {
		t.Errorf("State = %v, want done", tl.State())
	}
	if completed != 1 {
		t.Errorf("OnComplete called %d times, want 1", completed)
	}

	// Forward-only, once: replaying does nothing.
	el.Alpha = 0.3
	tl.Play()
	p.Step(1)
	if el.Alpha != 0.3 || completed != 1 {
		t.Errorf("replay changed state: alpha %f, completed %d", el.Alpha, completed)
	}
}

func TestTimelineSkipsMissingTargets(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("el")
	gone := NewElement("gone")
	p.Root().AddChildren(el, gone)
	gone.Dispose()

	tl := p.NewTimeline(TimelineConfig{})
	tl.To(nil, PropX, 100, 1, nil, End())
	tl.To(gone, PropX, 100, 1, nil, End())
	tl.To(el, PropX, 100, 1, ease.Linear, End())

	if len(tl.items) != 1 {
		t.Fatalf("items = %d, want 1", len(tl.items))
	}
	// Skipped transitions keep their time slots.
	if tl.items[0].start != 2 {
		t.Errorf("start = %f, want 2", tl.items[0].start)
	}
	tl.SetProgress(1)
	if el.X != 100 {
		t.Errorf("X = %f, want 100", el.X)
	}
}

func TestTimelineTargetDisposedMidPlay(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("el")
	p.Root().AddChild(el)

	tl := p.NewTimeline(TimelineConfig{})
	tl.FromTo(el, PropX, 0, 100, 1, ease.Linear, End())
	tl.Play()
	p.Step(0.5)
	el.Dispose()
	p.Step(0.5) // must not panic
	if tl.State() != TimelineDone {
		t.Errorf("State = %v, want done", tl.State())
	}
}

func TestTimelineRevertRestoresBase(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("el")
	el.X = 10
	p.Root().AddChild(el)

	tl := p.NewTimeline(TimelineConfig{})
	tl.FromTo(el, PropAlpha, 0, 1, 1, ease.Linear, End())
	tl.To(el, PropX, 100, 1, ease.Linear, End())
	tl.To(el, PropX, 200, 1, ease.Linear, End())

	tl.SetProgress(0.5)
	tl.Revert()
	if el.X != 10 || el.Alpha != 1 {
		t.Errorf("after revert X, Alpha = %f, %f, want 10, 1", el.X, el.Alpha)
	}
	if !tl.Killed() {
		t.Error("reverted timeline should be killed")
	}
	tl.SetProgress(1)
	if el.X != 10 {
		t.Errorf("killed timeline wrote X = %f", el.X)
	}
}

func TestTimelineFromCapture(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("el")
	el.X = 5
	p.Root().AddChild(el)

	tl := p.NewTimeline(TimelineConfig{})
	tl.To(el, PropX, 100, 1, ease.Linear, End())
	tl.To(el, PropX, 50, 1, ease.Linear, End())

	if tl.items[0].From != 5 {
		t.Errorf("first From = %f, want current value 5", tl.items[0].From)
	}
	if tl.items[1].From != 100 {
		t.Errorf("second From = %f, want previous To 100", tl.items[1].From)
	}
	tl.Seek(1.5)
	if !approx(el.X, 75) {
		t.Errorf("X = %f, want 75", el.X)
	}
	tl.Seek(0)
	if el.X != 5 {
		t.Errorf("X = %f, want 5", el.X)
	}
}

func TestTimelineLazySkipsInitialRender(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("el")
	p.Root().AddChild(el)

	tl := p.NewTimeline(TimelineConfig{Lazy: true})
	tl.FromTo(el, PropAlpha, 1, 0, 1, ease.Linear, End())

	el.Alpha = 0.3 // owned by another animation for now
	tl.SetProgress(0)
	if el.Alpha != 0.3 {
		t.Errorf("lazy timeline rendered at 0: alpha = %f", el.Alpha)
	}
	tl.SetProgress(0.5)
	if !approx(el.Alpha, 0.5) {
		t.Errorf("Alpha = %f, want 0.5", el.Alpha)
	}
	tl.SetProgress(0)
	if el.Alpha != 1 {
		t.Errorf("Alpha = %f, want 1 once rendered", el.Alpha)
	}
}

func TestTimelineStagger(t *testing.T) {
	p := NewPage(1000, 800)
	var items []*Element
	for i := 0; i < 4; i++ {
		el := NewElement("item")
		p.Root().AddChild(el)
		items = append(items, el)
	}

	tl := p.NewTimeline(TimelineConfig{})
	tl.Stagger(items, Transition{Property: PropY, From: 30, To: 0, HasFrom: true, Duration: 0.6, Ease: ease.Linear}, 0.1, At(0.2))
	tl.FromTo(items[0], PropAlpha, 0, 1, 0.1, ease.Linear, Next())

	for i, it := range tl.items[:4] {
		want := 0.2 + float64(i)*0.1
		if !approx(it.start, want) {
			t.Errorf("item %d start = %f, want %f", i, it.start, want)
		}
	}
	// Next follows the whole group: last item ends at 0.5 + 0.6.
	if !approx(tl.items[4].start, 1.1) {
		t.Errorf("after-stagger start = %f, want 1.1", tl.items[4].start)
	}
	for _, el := range items {
		if el.Y != 30 {
			t.Errorf("%s Y = %f, want 30 before start", el.Name, el.Y)
		}
	}
}

func TestTimelineVirtualTransition(t *testing.T) {
	p := NewPage(1000, 800)
	var got float64
	tl := p.NewTimeline(TimelineConfig{})
	tl.Add(Transition{To: 150, Duration: 2, Ease: ease.Linear, OnUpdate: func(v float64) { got = v }}, End())

	tl.Play()
	p.Step(1)
	if !approx(got, 75) {
		t.Errorf("counter = %f, want 75", got)
	}
	p.Step(1)
	if got != 150 {
		t.Errorf("counter = %f, want 150", got)
	}
}

func TestTimelineHoldExtendsDuration(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("el")
	p.Root().AddChild(el)

	tl := p.NewTimeline(TimelineConfig{})
	tl.FromTo(el, PropX, 0, 100, 1, ease.Linear, End())
	tl.Hold(1)
	if tl.Duration() != 2 {
		t.Fatalf("Duration = %f, want 2", tl.Duration())
	}
	tl.SetProgress(0.5)
	if el.X != 100 {
		t.Errorf("X = %f, want 100 (hold after transition)", el.X)
	}
}

func TestTimelineRestartAndPause(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("menu")
	p.Root().AddChild(el)

	done := 0
	tl := p.NewTimeline(TimelineConfig{OnComplete: func() { done++ }})
	tl.FromTo(el, PropClipBottom, 100, 0, 1, ease.Linear, End())
	tl.Play()
	p.Step(0.5)
	tl.Pause()
	p.Step(1)
	if !approx(el.ClipBottom, 50) {
		t.Errorf("clip = %f after pause, want 50", el.ClipBottom)
	}
	tl.Play()
	if tl.State() == TimelinePlaying {
		t.Error("Play should not resume a paused timeline")
	}

	tl.Restart()
	if el.ClipBottom != 100 {
		t.Errorf("clip = %f after restart, want 100", el.ClipBottom)
	}
	p.Step(1.1)
	tl.Restart()
	p.Step(1.1)
	if done != 2 || el.ClipBottom != 0 {
		t.Errorf("completions = %d, clip = %f, want 2, 0", done, el.ClipBottom)
	}
}

func TestTimelineScrubIgnoresFrameTime(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("el")
	p.Root().AddChild(el)

	done := 0
	tl := p.NewTimeline(TimelineConfig{OnComplete: func() { done++ }})
	tl.FromTo(el, PropX, 0, 100, 1, ease.Linear, End())

	tl.SetProgress(0.5)
	for i := 0; i < 3; i++ {
		p.Step(1.0 / 60)
	}
	p.Step(1)
	if el.X != 50 {
		t.Errorf("X = %f, want 50 while progress is unchanged", el.X)
	}
	if done != 0 {
		t.Errorf("OnComplete fired %d times for a scrubbed timeline", done)
	}

	// Play after a scrub does not turn it into a played timeline.
	tl.Play()
	p.Step(1)
	if el.X != 50 {
		t.Errorf("X = %f after Play on a scrubbed timeline, want 50", el.X)
	}
}

func TestTimelineComplete(t *testing.T) {
	p := NewPage(1000, 800)
	el := NewElement("el")
	p.Root().AddChild(el)

	done := 0
	tl := p.NewTimeline(TimelineConfig{OnComplete: func() { done++ }})
	tl.FromTo(el, PropX, 0, 100, 2, ease.Linear, End())
	tl.Play()
	p.Step(0.5)

	tl.Complete()
	if el.X != 100 || tl.State() != TimelineDone {
		t.Errorf("X = %f, state %v, want 100, done", el.X, tl.State())
	}
	tl.Complete()
	p.Step(1)
	if done != 1 {
		t.Errorf("OnComplete fired %d times, want 1", done)
	}
}
