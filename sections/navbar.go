package sections

import (
	"fmt"

	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/content"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	navHeight    = 72.0
	navLinkLeft  = 400.0
	navLinkWidth = 120.0
)

// Navbar is the fixed header: a link per section with an indicator under
// the active one, and a full-screen menu for small viewports. It sticks to
// the top of the viewport, so it must be the first child of its parent.
type Navbar struct {
	base
	Bar       *comet.Element
	Logo      *comet.Element
	Links     []*comet.Element
	Indicator *comet.Element
	Toggle    *comet.Element
	Menu      *comet.Element
	MenuLinks []*comet.Element

	Entrance *comet.Timeline

	items     []content.NavItem
	targets   map[*comet.Element]string
	timing    NavbarTiming
	active    int
	open      bool
	openTL    *comet.Timeline
	closeTL   *comet.Timeline
	indicator *comet.TweenGroup
}

// MountNavbar builds the header for items. Each item's anchor must be
// registered with page.Anchor for navigation and active tracking to work;
// missing anchors are skipped.
func MountNavbar(page *comet.Page, parent *comet.Element, items []content.NavItem, t NavbarTiming) *Navbar {
	n := &Navbar{
		base:    newBase(page, parent, "navbar"),
		items:   items,
		targets: make(map[*comet.Element]string),
		timing:  t,
		active:  -1,
	}
	n.root.Sticky = true
	n.root.ZIndex = 100
	n.build()

	n.Entrance = n.scope.Timeline(comet.TimelineConfig{Name: "navbar-entrance", Delay: t.EntranceDelay, Ease: easeOut})
	n.Entrance.FromTo(n.Bar, comet.PropY, -60, 0, t.Entrance, nil, comet.End())
	n.Entrance.FromTo(n.Bar, comet.PropAlpha, 0, 1, t.Entrance, nil, comet.WithPrev())
	n.Entrance.Play()

	n.openTL = n.scope.Timeline(comet.TimelineConfig{Name: "navbar-menu-open", Ease: easeSharp})
	n.openTL.FromTo(n.Menu, comet.PropClipBottom, 100, 0, t.MenuOpen, nil, comet.End())
	n.openTL.Stagger(n.MenuLinks, comet.Transition{
		Property: comet.PropAlpha, From: 0, To: 1, HasFrom: true, Duration: t.MenuOpen, Ease: easeOut,
	}, t.LinkStagger, comet.At(t.LinkDelay))
	n.openTL.Stagger(n.MenuLinks, comet.Transition{
		Property: comet.PropY, From: 30, To: 0, HasFrom: true, Duration: t.MenuOpen, Ease: easeOut,
	}, t.LinkStagger, comet.WithPrev())

	n.closeTL = n.scope.Timeline(comet.TimelineConfig{Name: "navbar-menu-close", Ease: easeSharp, Lazy: true})
	n.closeTL.FromTo(n.Menu, comet.PropClipBottom, 0, 100, t.MenuClose, nil, comet.End())
	n.closeTL.Stagger(n.MenuLinks, comet.Transition{
		Property: comet.PropAlpha, From: 1, To: 0, HasFrom: true, Duration: t.MenuClose / 2,
	}, 0, comet.WithPrev())

	n.scope.OnScroll(func(comet.ScrollContext) { n.track() })
	n.scope.OnResize(func(comet.ResizeContext) { n.track() })
	n.scope.OnClick(n.click)
	n.scope.OnKey(func(ctx comet.KeyContext) {
		if ctx.Key == ebiten.KeyEscape {
			n.Close()
		}
	})
	n.track()
	return n
}

func (n *Navbar) build() {
	n.Bar = comet.NewBox("navbar-bar", 0, navHeight, colorPaper)
	n.Bar.FillWidth = true
	n.Bar.ZIndex = 100

	n.Logo = text("navbar-logo", "COMET", 160, 32)
	n.Logo.Left, n.Logo.Top = 48, 20
	n.Logo.Interactable = true
	n.Logo.ZIndex = 101
	if len(n.items) > 0 {
		n.targets[n.Logo] = n.items[0].Anchor
	}

	n.Indicator = comet.NewBox("navbar-indicator", navLinkWidth, 2, colorInk)
	n.Indicator.Left, n.Indicator.Top = navLinkLeft, navHeight-12
	n.Indicator.ZIndex = 101
	n.Indicator.Alpha = 0

	n.Toggle = text("navbar-menu-toggle", "MENU", 80, 32)
	n.Toggle.Top = 20
	n.Toggle.Interactable = true
	n.Toggle.ZIndex = 101

	n.Bar.AddChildren(n.Logo, n.Indicator, n.Toggle)

	n.Menu = comet.NewBox("navbar-menu", 0, 0, colorInk)
	n.Menu.FillWidth = true
	n.Menu.ViewportHeight = 1
	n.Menu.ZIndex = 200

	for i, item := range n.items {
		link := text(fmt.Sprintf("navbar-link-%d", i), item.Label, navLinkWidth, 32)
		link.Left, link.Top = navLinkLeft+float64(i)*(navLinkWidth+20), 20
		link.Interactable = true
		link.ZIndex = 101
		link.Color = colorMuted
		n.Links = append(n.Links, link)
		n.targets[link] = item.Anchor
		n.Bar.AddChild(link)

		ml := text(fmt.Sprintf("navbar-menu-link-%d", i), item.Label, 600, 72)
		ml.Left, ml.Top = 96, 160+float64(i)*96
		ml.Interactable = true
		ml.ZIndex = 201
		ml.Color = colorPaper
		n.MenuLinks = append(n.MenuLinks, ml)
		n.targets[ml] = item.Anchor
		n.Menu.AddChild(ml)
	}
	n.Toggle.Left = navLinkLeft + float64(len(n.items))*(navLinkWidth+20)

	n.root.AddChildren(n.Bar, n.Menu)
}

// Active returns the index of the active nav item, or -1.
func (n *Navbar) Active() int { return n.active }

// IsOpen reports whether the menu is open.
func (n *Navbar) IsOpen() bool { return n.open }

// Open shows the menu.
func (n *Navbar) Open() {
	if n.open {
		return
	}
	n.open = true
	n.closeTL.Pause()
	n.openTL.Restart()
}

// Close hides the menu.
func (n *Navbar) Close() {
	if !n.open {
		return
	}
	n.open = false
	n.openTL.Pause()
	n.closeTL.Restart()
}

func (n *Navbar) click(ctx comet.ClickContext) {
	if ctx.Element == nil {
		return
	}
	if ctx.Element == n.Toggle {
		if n.open {
			n.Close()
		} else {
			n.Open()
		}
		return
	}
	if anchor, ok := n.targets[ctx.Element]; ok {
		n.Close()
		n.page.ScrollToSection(anchor)
	}
}

// track marks the last section whose top has passed the active line.
func (n *Navbar) track() {
	_, vh := n.page.Viewport()
	line := n.timing.ActiveLine * vh
	active := -1
	for i, item := range n.items {
		el, ok := n.page.AnchorElement(item.Anchor)
		if !ok {
			continue
		}
		if n.page.ScreenRect(el).Y <= line {
			active = i
		}
	}
	if active != n.active {
		n.setActive(active)
	}
}

func (n *Navbar) setActive(i int) {
	n.active = i
	for j, link := range n.Links {
		if j == i {
			link.Color = colorInk
		} else {
			link.Color = colorMuted
		}
	}
	if n.indicator != nil {
		n.indicator.Stop()
	}
	if i < 0 {
		n.indicator = n.scope.Tween(comet.TweenAlpha(n.Indicator, 0, float32(n.timing.Indicator), easeSoft))
		return
	}
	n.Indicator.Alpha = 1
	n.indicator = n.scope.Tween(comet.TweenProp(n.Indicator, comet.PropX, n.Links[i].Left-navLinkLeft, float32(n.timing.Indicator), easeSoft))
}
