package comet

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInjectClick(t *testing.T) {
	p, els := newStackPage(800, 800)
	button := NewBox("button", 100, 100, ColorBlack)
	button.Interactable = true
	els[0].AddChild(button)
	p.Refresh()

	var clicked *Element
	p.OnClick(func(ctx ClickContext) { clicked = ctx.Element })

	p.InjectClick(50, 50)
	if p.Pending() != 1 {
		t.Fatalf("expected 1 queued event, got %d", p.Pending())
	}
	if clicked != nil {
		t.Error("click should not fire before the event is processed")
	}
	if !p.processInjected() {
		t.Fatal("expected an event")
	}
	if clicked != button {
		t.Errorf("clicked = %v, want button", clicked)
	}
}

func TestInjectOnePerFrame(t *testing.T) {
	p, _ := newStackPage(800, 800, 800)
	p.InjectWheel(100)
	p.InjectWheel(50)
	p.InjectKey(ebiten.KeyEnd)

	p.processInjected()
	if p.Scroll() != 100 || p.Pending() != 2 {
		t.Errorf("frame 1: scroll %f, pending %d", p.Scroll(), p.Pending())
	}
	p.processInjected()
	if p.Scroll() != 150 {
		t.Errorf("frame 2: scroll %f, want 150", p.Scroll())
	}
	p.processInjected()
	if p.Scroll() != p.MaxScroll() || p.Pending() != 0 {
		t.Errorf("frame 3: scroll %f, pending %d", p.Scroll(), p.Pending())
	}
}

func TestInjectSmoothScrollChainsFromQueuedTarget(t *testing.T) {
	p, _ := newStackPage(800, 800, 800)
	p.InjectSmoothScroll(400, 2)
	p.InjectSmoothScroll(800, 2)

	var got []float64
	for p.processInjected() {
		got = append(got, p.Scroll())
	}
	want := []float64{200, 400, 600, 800}
	if len(got) != len(want) {
		t.Fatalf("scrolls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scrolls = %v, want %v", got, want)
			break
		}
	}
}

func TestInjectResizeAndNavigate(t *testing.T) {
	p, els := newStackPage(800, 800, 800)
	p.Anchor("last", els[2])

	p.InjectResize(1200, 600)
	p.InjectNavigate("last")
	p.processInjected()
	if w, h := p.Viewport(); w != 1200 || h != 600 {
		t.Errorf("viewport = %fx%f, want 1200x600", w, h)
	}
	p.processInjected()
	if !p.Navigating() {
		t.Error("expected navigation after injected navigate")
	}
}
