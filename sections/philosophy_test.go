package sections

import (
	"testing"

	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/content"
)

func TestPhilosophyPinnedSequence(t *testing.T) {
	p := comet.NewPage(1000, 800)
	var chapters []int
	ph := MountPhilosophy(p, nil, content.Default().Philosophy, instantTiming().Philosophy, func(i int) {
		chapters = append(chapters, i)
	})

	if len(ph.Statements) != 4 || len(ph.Cues) != 4 {
		t.Fatalf("statements, cues = %d, %d, want 4, 4", len(ph.Statements), len(ph.Cues))
	}
	if ph.Heading.Alpha != 0 || ph.Divider.ScaleX != 0 {
		t.Errorf("heading alpha %f, divider scale %f, want hidden", ph.Heading.Alpha, ph.Divider.ScaleX)
	}
	for i, s := range ph.Statements {
		if s.Alpha != 0.25 || s.X != -100 {
			t.Errorf("statement %d starts at %f / %f, want 0.25 / -100", i, s.Alpha, s.X)
		}
	}
	if p.MaxScroll() != 2000 {
		t.Fatalf("max scroll = %f, want 2.5 viewports", p.MaxScroll())
	}

	p.SetScroll(2000)
	if !approx(ph.Master.Progress(), 1) {
		t.Errorf("master progress = %f, want 1", ph.Master.Progress())
	}
	for i, s := range ph.Statements {
		if s.Alpha != 1 || s.X != 0 {
			t.Errorf("statement %d at %f / %f, want 1 / 0", i, s.Alpha, s.X)
		}
	}

	p.SetScroll(1000)
	if ph.Active() != 2 {
		t.Errorf("active chapter = %d, want 2", ph.Active())
	}
	sum := 0.0
	for _, c := range ph.Cues {
		sum += c.Alpha
	}
	if !approx(sum, 1) {
		t.Errorf("cue alphas sum to %f, want 1", sum)
	}
	mid := make([]float64, len(ph.Statements))
	for i, s := range ph.Statements {
		mid[i] = s.Alpha
	}

	p.SetScroll(1800)
	p.SetScroll(1000)
	for i, s := range ph.Statements {
		if s.Alpha != mid[i] {
			t.Errorf("statement %d alpha %f after scrubbing back, want %f", i, s.Alpha, mid[i])
		}
	}

	p.SetScroll(0)
	if ph.Heading.Alpha != 0 || ph.Statements[3].Alpha != 0.25 {
		t.Errorf("scrubbing to 0 left heading %f, last statement %f", ph.Heading.Alpha, ph.Statements[3].Alpha)
	}
	want := []int{3, 2, 3, 2, 0}
	if len(chapters) != len(want) {
		t.Fatalf("chapter changes = %v, want %v", chapters, want)
	}
	for i := range want {
		if chapters[i] != want[i] {
			t.Errorf("chapter changes = %v, want %v", chapters, want)
			break
		}
	}

	ph.Unmount()
	assertTornDown(t, p)
}
