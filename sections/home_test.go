package sections

import (
	"testing"

	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/content"
	"github.com/hajimehoshi/ebiten/v2"
)

func mountTestHome(t *testing.T) (*comet.Page, *Home) {
	t.Helper()
	p := comet.NewPage(1280, 800)
	site := content.Default()
	return p, MountHome(p, site, instantTiming(), HomeOptions{})
}

func target(t *testing.T, p *comet.Page, id string) float64 {
	t.Helper()
	y, ok := p.AnchorTarget(id)
	if !ok {
		t.Fatalf("anchor %q not registered", id)
	}
	return y
}

func TestHomeAnchorsInDocumentOrder(t *testing.T) {
	p, h := mountTestHome(t)
	prev := -1.0
	for _, id := range []string{AnchorHome, AnchorPortfolio, AnchorPhilosophy, AnchorAbout, AnchorContact} {
		y := target(t, p, id)
		if y <= prev {
			t.Errorf("anchor %q at %f, not below the previous one at %f", id, y, prev)
		}
		prev = y
	}
	if y := target(t, p, AnchorPortfolio); y != 2000 {
		t.Errorf("portfolio at %f, want after the hero and its pin reservation", y)
	}
	if len(h.Sections()) != 8 {
		t.Errorf("sections = %d, want 8", len(h.Sections()))
	}
}

func TestNavbarTracksActiveSection(t *testing.T) {
	p, h := mountTestHome(t)
	n := h.Navbar
	if n.Active() != 0 {
		t.Errorf("active = %d at the top, want 0", n.Active())
	}
	p.Step(3)
	if n.Bar.Y != 0 || n.Bar.Alpha != 1 {
		t.Errorf("entrance left bar at y %f alpha %f", n.Bar.Y, n.Bar.Alpha)
	}

	p.SetScroll(target(t, p, AnchorPortfolio))
	if n.Active() != 1 {
		t.Errorf("active = %d, want 1", n.Active())
	}
	if y := p.ScreenRect(n.Bar).Y; y != 0 {
		t.Errorf("navbar at y %f, want stuck at 0", y)
	}
	p.SetScroll(target(t, p, AnchorPhilosophy) - 500)
	if n.Active() != 1 {
		t.Errorf("active = %d with philosophy below the line, want 1", n.Active())
	}
	p.SetScroll(target(t, p, AnchorPhilosophy) - 300)
	if n.Active() != 2 {
		t.Errorf("active = %d with philosophy past the line, want 2", n.Active())
	}
}

func TestNavbarLinkNavigates(t *testing.T) {
	p, h := mountTestHome(t)
	n := h.Navbar
	p.Step(3)

	p.Click(1000, 30) // fifth link: contact
	want := target(t, p, AnchorContact)
	if got, ok := p.NavigationTarget(); !ok || got != want {
		t.Fatalf("navigation target = %f (%v), want %f", got, ok, want)
	}
	p.Step(2)
	if p.Scroll() != want || n.Active() != 4 {
		t.Errorf("scroll %f active %d, want %f and 4", p.Scroll(), n.Active(), want)
	}
	if !approx(n.Indicator.X, n.Links[4].Left-navLinkLeft) {
		t.Errorf("indicator at %f, want under the contact link", n.Indicator.X)
	}
}

func TestNavbarMenu(t *testing.T) {
	p, h := mountTestHome(t)
	n := h.Navbar
	p.Step(3)
	if n.Menu.ClipBottom != 100 || n.MenuLinks[0].Alpha != 0 {
		t.Fatalf("menu visible before opening: clip %f", n.Menu.ClipBottom)
	}

	p.Click(1120, 30)
	if !n.IsOpen() {
		t.Fatal("toggle did not open the menu")
	}
	p.Step(2)
	if n.Menu.ClipBottom != 0 || n.MenuLinks[4].Alpha != 1 {
		t.Errorf("open menu: clip %f, last link alpha %f", n.Menu.ClipBottom, n.MenuLinks[4].Alpha)
	}

	p.PressKey(ebiten.KeyEscape)
	if n.IsOpen() {
		t.Fatal("Escape did not close the menu")
	}
	p.Step(1)
	if n.Menu.ClipBottom != 100 {
		t.Errorf("closed menu clip = %f, want 100", n.Menu.ClipBottom)
	}

	n.Open()
	p.Step(2)
	p.Click(120, 266) // second menu link: portfolio
	if n.IsOpen() {
		t.Error("menu link did not close the menu")
	}
	if got, _ := p.NavigationTarget(); got != target(t, p, AnchorPortfolio) {
		t.Errorf("navigation target = %f, want portfolio", got)
	}
}

func TestHomeUnmount(t *testing.T) {
	p, h := mountTestHome(t)
	p.Step(0.5)
	p.SetScroll(3000)
	h.Unmount()
	h.Unmount()
	assertTornDown(t, p)
	if _, ok := p.AnchorTarget(AnchorHome); ok {
		t.Error("anchors survived unmount")
	}
	if p.DocumentHeight() != 0 || p.Scroll() != 0 {
		t.Errorf("document height %f, scroll %f, want 0, 0", p.DocumentHeight(), p.Scroll())
	}
	p.PressKey(ebiten.KeyEscape)
	p.Step(1)
}

func TestHomeDividersRevealOnce(t *testing.T) {
	p, h := mountTestHome(t)
	if len(h.Dividers) != 3 {
		t.Fatalf("dividers = %d, want 3", len(h.Dividers))
	}
	d := h.Dividers[1]
	if d.Width != 1280 || d.ScaleX != 0 {
		t.Fatalf("divider width %f scale %f before reveal, want 1280, 0", d.Width, d.ScaleX)
	}
	if top := d.DocumentTop(); top <= h.Philosophy.Root().DocumentTop() || top >= h.About.Root().DocumentTop() {
		t.Errorf("divider at %f, want between philosophy and about", top)
	}

	// Just above "top 90%".
	p.SetScroll(d.DocumentTop() - 720 - 10)
	p.Step(2)
	if d.ScaleX != 0 {
		t.Errorf("scale = %f before the start line, want 0", d.ScaleX)
	}

	p.SetScroll(d.DocumentTop() - 720 + 10)
	p.Step(0.75)
	if d.ScaleX <= 0 || d.ScaleX >= 1 {
		t.Errorf("scale mid-reveal = %f, want in (0, 1)", d.ScaleX)
	}
	p.Step(1)
	p.SetScroll(0)
	p.Step(1)
	if d.ScaleX != 1 {
		t.Errorf("scale = %f after scrolling back, want 1", d.ScaleX)
	}
}
