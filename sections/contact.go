package sections

import (
	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/content"
)

// Contact is the closing call to action with the contact form.
type Contact struct {
	base
	Border  *comet.Element
	Content *comet.Element
	Label   *comet.Element
	Sub     *comet.Element
	Email   *comet.Element
	Form    *ContactForm

	Parallax *comet.Timeline
}

// MountContact builds the contact section. submitter may be nil, in which
// case the form reports itself unavailable on submit.
func MountContact(page *comet.Page, parent *comet.Element, c content.Contact, t ContactTiming, submitter Submitter) *Contact {
	ct := &Contact{base: newBase(page, parent, "contact")}
	ct.root.ViewportHeight = 1

	ct.Border = rule("contact-border", 0)
	ct.Border.FillWidth = true
	ct.Border.OriginX = 0

	ct.Content = comet.NewElement("contact-content")
	ct.Content.Left, ct.Content.Top = 96, 120
	ct.Content.Width, ct.Content.Height = 1000, 600

	ct.Label = text("contact-label", c.Label, 600, 24)
	ct.Label.Color = colorMuted
	ct.Sub = text("contact-sub", c.Sub, 800, 48)
	ct.Sub.Top = 40
	ct.Email = text("contact-email", c.Email, 1000, 120)
	ct.Email.Top = 120
	ct.Email.Interactable = true

	ct.Form = newContactForm(ct.scope, submitter, c.Subjects)
	ct.Form.Status.Top = 300
	ct.Form.Button.Top = 340

	ct.Content.AddChildren(ct.Label, ct.Sub, ct.Email, ct.Form.Status, ct.Form.Button)
	ct.root.AddChildren(ct.Border, ct.Content)

	border := ct.scope.Timeline(comet.TimelineConfig{Name: "contact-border", Ease: easeSharp})
	border.FromTo(ct.Border, comet.PropScaleX, 0, 1, t.Border, nil, comet.End())
	ct.reveal("contact-border", ct.root, "top 90%", border)

	label := ct.scope.Timeline(comet.TimelineConfig{Name: "contact-label", Ease: easeOut})
	fadeUp(label, ct.Label, 15, t.Label, nil, comet.End())
	fadeUp(label, ct.Sub, 15, t.Label, nil, comet.At(t.SubDelay))
	ct.reveal("contact-label", ct.Label, "top 85%", label)

	email := ct.scope.Timeline(comet.TimelineConfig{Name: "contact-email", Ease: easeOut})
	fadeUp(email, ct.Email, 40, t.Email, nil, comet.At(t.EmailDelay))
	email.FromTo(ct.Email, comet.PropClipBottom, 100, 0, t.Email, nil, comet.WithPrev())
	ct.reveal("contact-email", ct.Email, "top 80%", email)

	ct.Parallax = ct.scope.Timeline(comet.TimelineConfig{Name: "contact-parallax", Ease: easeNone, Lazy: true})
	ct.Parallax.FromTo(ct.Content, comet.PropY, 0, -20, 1, nil, comet.End())
	ct.scope.Observe(comet.ObserverConfig{
		Name:      "contact-parallax",
		Trigger:   ct.root,
		Start:     "top center",
		End:       "bottom top",
		Animation: ct.Parallax,
		Scrub:     true,
		Smooth:    t.ParallaxSmooth,
	})
	return ct
}
