package sections

import (
	"fmt"

	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/content"
)

const (
	portfolioHeader = 240.0
	cardPadding     = 64.0
)

// Portfolio is the sticky card stack. Every card sticks to the top of the
// viewport and, while the next card slides over it, shrinks and dims.
type Portfolio struct {
	base
	Heading *comet.Element
	Cards   []*comet.Element
	Titles  []*comet.Element
	// Shrink[i] is the scrubbed timeline of card i.
	Shrink []*comet.Timeline

	slugs map[*comet.Element]string
}

// MountPortfolio builds the card stack. onSelect is called with a project
// slug when its title is clicked; it may be nil.
func MountPortfolio(page *comet.Page, parent *comet.Element, items []content.PortfolioItem, t PortfolioTiming, onSelect func(slug string)) *Portfolio {
	p := &Portfolio{
		base:  newBase(page, parent, "portfolio"),
		slugs: make(map[*comet.Element]string, len(items)),
	}
	p.root.Layout = comet.LayoutColumn
	p.root.AutoHeight = true

	p.Heading = text("portfolio-heading", "Portfolio", 600, portfolioHeader)
	p.root.AddChild(p.Heading)

	for i, item := range items {
		card := p.card(i, item)
		p.root.AddChild(card)

		tl := p.scope.Timeline(comet.TimelineConfig{Name: "portfolio-card-" + item.Slug, Ease: easeNone})
		tl.To(card, comet.PropScale, t.CardScale, 1, nil, comet.End())
		tl.To(card, comet.PropAlpha, t.CardAlpha, 1, nil, comet.WithPrev())
		p.scope.Observe(comet.ObserverConfig{
			Name:      "portfolio-card-" + item.Slug,
			Trigger:   card,
			Start:     "top top",
			End:       t.CardEnd,
			Animation: tl,
			Scrub:     true,
		})
		p.Shrink = append(p.Shrink, tl)
	}

	if onSelect != nil {
		p.scope.OnClick(func(ctx comet.ClickContext) {
			if slug, ok := p.slugs[ctx.Element]; ok {
				onSelect(slug)
			}
		})
	}
	page.Refresh()
	return p
}

func (p *Portfolio) card(i int, item content.PortfolioItem) *comet.Element {
	card := comet.NewElement(fmt.Sprintf("portfolio-card-%d", i))
	card.FillWidth = true
	card.ViewportHeight = 1
	card.Sticky = true
	card.ZIndex = i + 1
	card.Color = colorCard
	card.UserData = item.Slug

	num := text(card.Name+"-number", fmt.Sprintf("%02d", i+1), 80, 24)
	num.Left, num.Top = cardPadding, cardPadding

	title := text(card.Name+"-title", item.Name, 800, 96)
	title.Left, title.Top = cardPadding, cardPadding+48
	title.Interactable = true

	tagline := text(card.Name+"-tagline", item.Tagline, 800, 32)
	tagline.Left, tagline.Top = cardPadding, title.Top+120
	tagline.Color = colorMuted

	image := comet.NewBox(card.Name+"-image", 640, 400, colorWash)
	image.Left, image.Top = cardPadding, tagline.Top+64
	image.UserData = item.DisplayImage()

	card.AddChildren(num, title, tagline, image)
	p.Titles = append(p.Titles, title)
	p.slugs[title] = item.Slug
	return card
}
