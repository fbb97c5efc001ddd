package sections

import (
	"fmt"
	"math"

	"github.com/cometholdings/comet"
	"github.com/cometholdings/comet/content"
)

// About tells the company story. The copy rises in once, the stats count
// up from zero, the team grid staggers in, and the heading's weight and
// tracking are scrubbed as it crosses the upper half of the screen.
type About struct {
	base
	Heading *comet.Element
	Body    *comet.Element
	Stats   []*comet.Element
	Team    []*comet.Element

	Morph    *comet.Timeline
	Counters *comet.Timeline
}

// MountAbout builds the about block. team may be empty.
func MountAbout(page *comet.Page, parent *comet.Element, c content.About, team []content.TeamMember, t AboutTiming) *About {
	a := &About{base: newBase(page, parent, "about")}
	a.root.Layout = comet.LayoutColumn
	a.root.AutoHeight = true
	a.root.Gap = 64

	a.Heading = text("about-heading", c.Heading, 900, 120)
	a.Body = comet.NewElement("about-body")
	a.Body.Width, a.Body.Height = 900, 320
	story := text("about-story", c.Story, 900, 160)
	mission := text("about-mission", c.Mission, 900, 80)
	mission.Top = 180
	model := text("about-model", c.OperatingModel, 900, 60)
	model.Top = 260
	a.Body.AddChildren(story, mission, model)

	statRow := comet.NewElement("about-stats")
	statRow.Width, statRow.Height = 900, 140
	for i, s := range c.Stats {
		el := text(fmt.Sprintf("about-stat-%d", i), s.Value, 240, 96)
		el.Left = float64(i) * 300
		el.UserData = s.Label
		lbl := text(el.Name+"-label", s.Label, 240, 24)
		lbl.Top = 100
		lbl.Color = colorMuted
		el.AddChild(lbl)
		a.Stats = append(a.Stats, el)
		statRow.AddChild(el)
	}

	teamGrid := comet.NewElement("about-team")
	teamGrid.Width = 900
	for i, m := range team {
		el := text(fmt.Sprintf("about-team-%d", i), m.Name, 280, 80)
		el.Left = float64(i%3) * 310
		el.Top = float64(i/3) * 110
		role := text(el.Name+"-role", m.Role, 280, 24)
		role.Top = 40
		role.Color = colorMuted
		el.AddChild(role)
		a.Team = append(a.Team, el)
		teamGrid.AddChild(el)
		teamGrid.Height = el.Top + el.Height
	}

	a.root.AddChildren(a.Heading, a.Body, statRow, teamGrid)

	body := a.scope.Timeline(comet.TimelineConfig{Name: "about-body", Ease: easeOut})
	fadeUp(body, a.Body, 60, t.Reveal, nil, comet.End())
	a.reveal("about-body", a.Body, "top 80%", body)

	a.Counters = a.scope.Timeline(comet.TimelineConfig{Name: "about-stats", Ease: easeOut})
	staggerUp(a.Counters, a.Stats, 30, t.Stat, t.StatStagger, nil, comet.End())
	for i, s := range c.Stats {
		n, suffix, ok := s.Number()
		if !ok {
			continue
		}
		el := a.Stats[i]
		el.Text = "0" + suffix
		a.Counters.Add(comet.Transition{
			From: 0, To: float64(n), HasFrom: true, Duration: t.Counter,
			OnUpdate: func(v float64) { el.Text = fmt.Sprintf("%d%s", int(math.Round(v)), suffix) },
		}, comet.At(float64(i)*t.StatStagger))
	}
	a.reveal("about-stats", statRow, "top 80%", a.Counters)

	if len(a.Team) > 0 {
		tl := a.scope.Timeline(comet.TimelineConfig{Name: "about-team", Ease: easeOut})
		staggerUp(tl, a.Team, 20, t.Team, t.TeamStagger, nil, comet.End())
		a.reveal("about-team", teamGrid, "top 85%", tl)
	}

	a.Morph = a.scope.Timeline(comet.TimelineConfig{Name: "about-morph", Ease: easeNone})
	a.Morph.FromTo(a.Heading, comet.PropFontWeight, 300, 800, 1, nil, comet.End())
	a.Morph.FromTo(a.Heading, comet.PropLetterSpacing, 0.05, -0.02, 1, nil, comet.WithPrev())
	a.scope.Observe(comet.ObserverConfig{
		Name:      "about-morph",
		Trigger:   a.Heading,
		Start:     "top 80%",
		End:       "top 40%",
		Animation: a.Morph,
		Scrub:     true,
		Smooth:    t.MorphSmooth,
	})
	return a
}
