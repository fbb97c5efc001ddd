package sections

import (
	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/content"
)

// Footer closes the page: a rule draws across and the two lines fade in.
type Footer struct {
	base
	Border    *comet.Element
	Copyright *comet.Element
	Tagline   *comet.Element
}

// MountFooter builds the footer.
func MountFooter(page *comet.Page, parent *comet.Element, c content.Footer, t FooterTiming) *Footer {
	f := &Footer{base: newBase(page, parent, "footer")}
	f.root.Height = 200

	f.Border = rule("footer-border", 0)
	f.Border.FillWidth = true
	f.Border.OriginX = 0
	f.Copyright = text("footer-copyright", c.Copyright, 600, 24)
	f.Copyright.Left, f.Copyright.Top = 48, 80
	f.Tagline = text("footer-tagline", c.Tagline, 600, 24)
	f.Tagline.Left, f.Tagline.Top = 48, 120
	f.Tagline.Color = colorMuted
	f.root.AddChildren(f.Border, f.Copyright, f.Tagline)

	tl := f.scope.Timeline(comet.TimelineConfig{Name: "footer", Ease: easeOut})
	tl.FromTo(f.Border, comet.PropScaleX, 0, 1, t.Border, easeSharp, comet.End())
	for i, el := range []*comet.Element{f.Copyright, f.Tagline} {
		tl.FromTo(el, comet.PropAlpha, 0, 1, t.Text, nil, comet.At(t.TextDelay+float64(i)*t.TextStagger))
	}
	f.reveal("footer", f.root, "top 95%", tl)
	return f
}
