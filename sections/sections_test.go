package sections

import (
	"math"
	"testing"

	"github.com/cometholdings/comet"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// instantTiming is DefaultTiming with scrub smoothing off, so scrubbed
// values follow the scroll position within the same sample.
func instantTiming() Timing {
	t := DefaultTiming()
	t.Hero.Smooth = 0
	t.Philosophy.Smooth = 0
	t.About.MorphSmooth = 0
	t.Contact.ParallaxSmooth = 0
	t.Progress.Smooth = 0
	return t
}

// spacer pushes the next section down by h pixels.
func spacer(p *comet.Page, h float64) *comet.Element {
	s := comet.NewBox("spacer", 0, h, colorWash)
	s.FillWidth = true
	p.Root().AddChild(s)
	return s
}

func assertTornDown(t *testing.T, p *comet.Page) {
	t.Helper()
	if p.Observers() != 0 || p.Scopes() != 0 {
		t.Errorf("observers, scopes = %d, %d after unmount, want 0, 0", p.Observers(), p.Scopes())
	}
}
