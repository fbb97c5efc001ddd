package sections

import (
	"testing"

	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/content"
)

func TestPortfolioCardsShrinkUnderNext(t *testing.T) {
	p := comet.NewPage(1000, 800)
	items := content.Default().Portfolio[:3]
	var selected []string
	pf := MountPortfolio(p, nil, items, instantTiming().Portfolio, func(slug string) {
		selected = append(selected, slug)
	})

	if len(pf.Cards) != 3 || p.DocumentHeight() != 240+3*800 {
		t.Fatalf("cards = %d, height = %f", len(pf.Cards), p.DocumentHeight())
	}

	p.SetScroll(640)
	card := pf.Cards[0]
	if !approx(card.ScaleX, 0.975) || !approx(card.ScaleY, 0.975) || !approx(card.Alpha, 0.9) {
		t.Errorf("card 0 scale, alpha = %f, %f, want 0.975, 0.9", card.ScaleX, card.Alpha)
	}
	if y := p.ScreenRect(card).Y; y != 0 {
		t.Errorf("sticky card at y %f, want 0", y)
	}
	if pf.Cards[1].ScaleX != 1 {
		t.Errorf("card 1 scale = %f, want untouched", pf.Cards[1].ScaleX)
	}

	p.SetScroll(1040)
	if !approx(card.ScaleX, 0.95) || !approx(card.Alpha, 0.8) {
		t.Errorf("card 0 scale, alpha = %f, %f, want 0.95, 0.8", card.ScaleX, card.Alpha)
	}
	p.SetScroll(0)
	if card.ScaleX != 1 || card.Alpha != 1 {
		t.Errorf("card 0 did not reverse: %f, %f", card.ScaleX, card.Alpha)
	}

	p.SetScroll(640)
	p.Click(100, 150)
	if len(selected) != 1 || selected[0] != items[0].Slug {
		t.Errorf("selected = %v, want [%s]", selected, items[0].Slug)
	}

	pf.Unmount()
	assertTornDown(t, p)
	p.Click(100, 150)
	if len(selected) != 1 {
		t.Error("click handler survived unmount")
	}
}
