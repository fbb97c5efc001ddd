package content

import (
	"fmt"
	"strings"
)

// Inventory renders every piece of copy on the site as markdown, preceded
// by the release notes. It is the reference sheet editors use when asking
// for text changes.
func (s *Site) Inventory() string {
	var b strings.Builder
	w := func(format string, args ...any) { fmt.Fprintf(&b, format, args...) }
	item := func(label, value string) {
		if value != "" {
			w("- **%s:** %s\n", label, value)
		}
	}

	w("# Content Inventory\n\n")
	if len(s.Changelog) > 0 {
		w("## Changelog\n\n")
		for _, c := range s.Changelog {
			w("### %s (%s)\n\n%s\n\n", c.Version, c.Date, strings.TrimSpace(c.Notes))
		}
	}

	w("## Hero\n\n")
	item("Headline", strings.Join(s.Hero.Headline, " "))
	item("Rotating Words", strings.Join(s.Hero.RotatingWords, ", "))
	item("Subtext", s.Hero.Subtext)

	w("\n## Portfolio\n\n")
	for _, p := range s.Portfolio {
		w("### %s\n\n", p.Name)
		item("Tagline", p.Tagline)
		item("What It Does", p.WhatItDoes)
		item("Problem It Solves", p.ProblemItSolves)
		item("Comet Role", p.CometRole)
		item("Industry", p.Industry)
		item("Location", p.Location)
		item("URL", p.URL)
		w("\n")
	}

	w("## Philosophy\n\n")
	for i, st := range s.Philosophy.Statements {
		item(fmt.Sprintf("Statement %d", i+1), st.Text)
	}
	for _, c := range s.Philosophy.Chapters {
		item(c.Title, fmt.Sprintf("%s (%s)", c.Subtitle, c.Color))
	}

	w("\n## Operating Principles\n\n")
	for _, p := range s.Principles {
		item(p.Number+" "+p.Title, p.Description)
	}

	w("\n## About\n\n")
	item("Mission", s.About.Mission)
	item("Story", s.About.Story)
	item("Operating Model", s.About.OperatingModel)
	for _, st := range s.About.Stats {
		item(st.Label, st.Value)
	}

	w("\n## Leadership\n\n")
	for _, m := range s.Team {
		item(m.Name, m.Role)
	}

	w("\n## Insights\n\n")
	for _, in := range s.Insights {
		item(in.Date, in.Title)
	}

	w("\n## Contact\n\n")
	item("Heading", s.Contact.Label)
	item("Note", s.Contact.Sub)
	item("Email", s.Contact.Email)
	item("Subjects", strings.Join(s.Contact.Subjects, ", "))
	return b.String()
}
