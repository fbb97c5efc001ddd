package sections

import (
	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/content"
)

// Anchor ids registered by MountHome.
const (
	AnchorHome       = "home"
	AnchorPortfolio  = "portfolio"
	AnchorPhilosophy = "philosophy"
	AnchorAbout      = "about"
	AnchorContact    = "contact"
)

// HomeOptions wires the home page to the rest of the application. Every
// field may be left empty.
type HomeOptions struct {
	// Submitter delivers contact form submissions.
	Submitter Submitter
	// OnSelect is called with a portfolio slug when a card title is clicked.
	OnSelect func(slug string)
	// OnChapter is called when the philosophy chapter changes.
	OnChapter func(int)
}

// Home is the single-page scroll narrative.
type Home struct {
	base
	Navbar     *Navbar
	Progress   *ProgressBar
	Hero       *Hero
	Portfolio  *Portfolio
	Philosophy *Philosophy
	About      *About
	Contact    *Contact
	Footer     *Footer
	// Dividers are the rules between portfolio, philosophy, about and
	// contact, in document order.
	Dividers []*comet.Element
}

// MountHome mounts every section on page in document order and registers
// the navigation anchors. The header overlays come first because they
// stick to the top of the page.
func MountHome(page *comet.Page, site *content.Site, t Timing, opts HomeOptions) *Home {
	h := &Home{base: newBase(page, nil, "home")}
	h.root.Layout = comet.LayoutColumn
	h.root.AutoHeight = true

	page.NavDuration = t.Navbar.Navigate
	page.NavEase = comet.EaseByName("power3.inOut")

	h.Navbar = MountNavbar(page, h.root, site.Nav, t.Navbar)
	h.Progress = MountProgress(page, h.root, t.Progress)
	h.Hero = MountHero(page, h.root, site.Hero, t.Hero)
	h.Portfolio = MountPortfolio(page, h.root, site.Portfolio, t.Portfolio, opts.OnSelect)
	h.divider("divider-philosophy", t.Divider)
	h.Philosophy = MountPhilosophy(page, h.root, site.Philosophy, t.Philosophy, opts.OnChapter)
	h.divider("divider-about", t.Divider)
	h.About = MountAbout(page, h.root, site.About, site.Team, t.About)
	h.divider("divider-contact", t.Divider)
	h.Contact = MountContact(page, h.root, site.Contact, t.Contact, opts.Submitter)
	h.Footer = MountFooter(page, h.root, site.Footer, t.Footer)

	anchors := map[string]*comet.Element{
		AnchorHome:       h.Hero.Root(),
		AnchorPortfolio:  h.Portfolio.Root(),
		AnchorPhilosophy: h.Philosophy.Root(),
		AnchorAbout:      h.About.Root(),
		AnchorContact:    h.Contact.Root(),
	}
	for id, el := range anchors {
		page.Anchor(id, el)
	}
	h.scope.Defer(func() {
		for id := range anchors {
			page.RemoveAnchor(id)
		}
	})

	page.Refresh()
	h.Navbar.track()
	return h
}

// divider appends a rule that grows out from its center once it scrolls
// into view.
func (h *Home) divider(name string, t DividerTiming) {
	el := rule(name, 0)
	el.FillWidth = true
	el.ScaleX = 0
	h.root.AddChild(el)
	h.Dividers = append(h.Dividers, el)

	tl := h.scope.Timeline(comet.TimelineConfig{Name: name})
	tl.FromTo(el, comet.PropScaleX, 0, 1, t.Reveal, easeInOut, comet.End())
	h.reveal(name, el, t.Start, tl)
}

// Sections returns the mounted sections in document order.
func (h *Home) Sections() []Section {
	return []Section{h.Navbar, h.Progress, h.Hero, h.Portfolio, h.Philosophy, h.About, h.Contact, h.Footer}
}

// Unmount tears down every section, last mounted first, then the anchors.
func (h *Home) Unmount() {
	if h.scope.Reverted() {
		return
	}
	secs := h.Sections()
	for i := len(secs) - 1; i >= 0; i-- {
		secs[i].Unmount()
	}
	h.base.Unmount()
}
