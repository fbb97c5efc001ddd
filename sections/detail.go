package sections

import (
	"fmt"
	"strings"

	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/content"
)

// Detail is the page for one portfolio company.
type Detail struct {
	base
	Project content.PortfolioItem

	Back    *comet.Element
	Words   []*comet.Element
	Tagline *comet.Element
	Image   *comet.Element
	Items   []*comet.Element

	Intro *comet.Timeline
}

// MountDetail builds the detail page for slug. An unknown slug mounts
// nothing and returns an error wrapping content.ErrNotFound. Optional
// fields that are empty are left out. onBack is called when the back link
// is clicked; it may be nil.
func MountDetail(page *comet.Page, parent *comet.Element, site *content.Site, slug string, t DetailTiming, onBack func()) (*Detail, error) {
	item, err := site.Project(slug)
	if err != nil {
		return nil, fmt.Errorf("detail %q: %w", slug, err)
	}
	d := &Detail{base: newBase(page, parent, "detail-"+slug), Project: item}
	d.root.Layout = comet.LayoutColumn
	d.root.AutoHeight = true
	d.root.Gap = 48
	d.build(item)

	d.Intro = d.scope.Timeline(comet.TimelineConfig{Name: "detail-intro", Ease: easeOut})
	d.Intro.FromTo(d.Back, comet.PropAlpha, 0, 1, t.Back, nil, comet.End())
	d.Intro.FromTo(d.Back, comet.PropX, -20, 0, t.Back, nil, comet.WithPrev())
	d.Intro.Stagger(d.Words, comet.Transition{
		Property: comet.PropYPercent, From: 110, To: 0, HasFrom: true, Duration: t.Word,
	}, t.WordStagger, comet.At(0.2))
	fadeUp(d.Intro, d.Tagline, 20, t.Tagline, nil, comet.AfterPrev(-t.Word/2))
	d.Intro.FromTo(d.Image, comet.PropClipBottom, 100, 0, t.Image, easeSharp, comet.Overlap(t.ImageOverlap))
	d.Intro.FromTo(d.Image, comet.PropScale, 1.1, 1, t.Image, nil, comet.WithPrev())
	d.Intro.Play()

	if len(d.Items) > 0 {
		tl := d.scope.Timeline(comet.TimelineConfig{Name: "detail-items", Ease: easeOut})
		staggerUp(tl, d.Items, 30, t.Item, t.ItemStagger, nil, comet.End())
		d.reveal("detail-items", d.Items[0], "top 85%", tl)
	}

	if onBack != nil {
		d.scope.OnClick(func(ctx comet.ClickContext) {
			if ctx.Element == d.Back {
				onBack()
			}
		})
	}
	page.Refresh()
	return d, nil
}

func (d *Detail) build(item content.PortfolioItem) {
	d.Back = text("detail-back", "Back to portfolio", 240, 24)
	d.Back.Interactable = true

	title := comet.NewElement("detail-title")
	title.Width, title.Height = 1000, 120
	left := 0.0
	for i, w := range item.TitleWords() {
		width := float64(len(w)) * 56
		word := text(fmt.Sprintf("detail-title-%d", i), w, width, 120)
		word.Left = left
		left += width + 32
		d.Words = append(d.Words, word)
		title.AddChild(word)
	}

	d.Tagline = text("detail-tagline", item.Tagline, 900, 40)
	d.Tagline.Color = colorMuted

	d.Image = comet.NewBox("detail-image", 0, 560, colorWash)
	d.Image.FillWidth = true
	d.Image.UserData = item.DisplayImage()

	d.root.AddChildren(d.Back, title, d.Tagline, d.Image)

	for _, f := range detailFields(item) {
		el := comet.NewElement("detail-" + f.key)
		el.Width, el.Height = 900, 120
		label := text(el.Name+"-label", f.label, 300, 24)
		label.Color = colorMuted
		value := text(el.Name+"-value", f.value, 900, 80)
		value.Top = 32
		el.AddChildren(label, value)
		d.Items = append(d.Items, el)
		d.root.AddChild(el)
	}
}

type detailField struct {
	key, label, value string
}

// detailFields lists the item's facts in display order, skipping empty
// ones.
func detailFields(item content.PortfolioItem) []detailField {
	all := []detailField{
		{"industry", "Industry", item.Industry},
		{"location", "Location", item.Location},
		{"mission", "Mission", item.Mission},
		{"what", "What it does", item.WhatItDoes},
		{"problem", "Problem it solves", item.ProblemItSolves},
		{"role", "Comet's role", item.CometRole},
		{"services", "Services", strings.Join(item.Services, ", ")},
		{"url", "Website", item.URL},
	}
	out := all[:0]
	for _, f := range all {
		if strings.TrimSpace(f.value) != "" {
			out = append(out, f)
		}
	}
	return out
}
