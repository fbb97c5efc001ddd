// Package content holds the copy and structured data rendered by the site
// sections: hero lines, portfolio companies, philosophy statements, the
// about block, contact details and navigation. Content is plain data; it
// can be loaded from YAML, validated, and swapped at runtime through a
// Store.
package content

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotFound is returned when a portfolio slug does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid content")

// Site is the complete content record for the site.
type Site struct {
	Hero       Hero            `yaml:"hero" json:"hero"`
	Portfolio  []PortfolioItem `yaml:"portfolio" json:"portfolio"`
	Philosophy Philosophy      `yaml:"philosophy" json:"philosophy"`
	Principles []Principle     `yaml:"principles" json:"principles"`
	About      About           `yaml:"about" json:"about"`
	Team       []TeamMember    `yaml:"team" json:"team"`
	Insights   []Insight       `yaml:"insights" json:"insights"`
	Contact    Contact         `yaml:"contact" json:"contact"`
	Nav        []NavItem       `yaml:"nav" json:"nav"`
	Footer     Footer          `yaml:"footer" json:"footer"`
	Changelog  []Changelog     `yaml:"changelog" json:"changelog"`
}

// Hero is the opening headline block.
type Hero struct {
	Headline      []string `yaml:"headline" json:"headline"`
	RotatingWords []string `yaml:"rotating_words,omitempty" json:"rotatingWords,omitempty"`
	Subtext       string   `yaml:"subtext" json:"subtext"`
}

// PortfolioItem is one company in the portfolio. Industry, Location,
// Mission, Services and URL are optional.
type PortfolioItem struct {
	Slug            string   `yaml:"slug" json:"slug"`
	Name            string   `yaml:"name" json:"name"`
	Tagline         string   `yaml:"tagline" json:"tagline"`
	WhatItDoes      string   `yaml:"what_it_does" json:"whatItDoes"`
	ProblemItSolves string   `yaml:"problem_it_solves" json:"problemItSolves"`
	CometRole       string   `yaml:"comet_role" json:"cometRole"`
	Image           string   `yaml:"image" json:"image"`
	Screenshot      string   `yaml:"screenshot,omitempty" json:"screenshot,omitempty"`
	URL             string   `yaml:"url,omitempty" json:"url,omitempty"`
	Industry        string   `yaml:"industry,omitempty" json:"industry,omitempty"`
	Location        string   `yaml:"location,omitempty" json:"location,omitempty"`
	Mission         string   `yaml:"mission,omitempty" json:"mission,omitempty"`
	Services        []string `yaml:"services,omitempty" json:"services,omitempty"`
}

// DisplayImage returns the screenshot, falling back to the card image.
func (p PortfolioItem) DisplayImage() string {
	if p.Screenshot != "" {
		return p.Screenshot
	}
	return p.Image
}

// TitleWords splits the name into the words revealed one by one on the
// detail page.
func (p PortfolioItem) TitleWords() []string {
	return strings.Fields(p.Name)
}

// Philosophy is the pinned statement section.
type Philosophy struct {
	Heading    string      `yaml:"heading" json:"heading"`
	Statements []Statement `yaml:"statements" json:"statements"`
	Chapters   []Chapter   `yaml:"chapters" json:"chapters"`
}

// Statement is one line of the philosophy sequence.
type Statement struct {
	Text string `yaml:"text" json:"text"`
	Bold bool   `yaml:"bold,omitempty" json:"bold,omitempty"`
}

// Chapter is one stage of the philosophy background. Color is a #rrggbb
// hex string.
type Chapter struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Color    string `yaml:"color" json:"color"`
}

// Principle is a numbered operating principle.
type Principle struct {
	Number      string `yaml:"number" json:"number"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// About is the company story block.
type About struct {
	Heading        string `yaml:"heading" json:"heading"`
	Story          string `yaml:"story" json:"story"`
	Mission        string `yaml:"mission" json:"mission"`
	OperatingModel string `yaml:"operating_model" json:"operatingModel"`
	Stats          []Stat `yaml:"stats" json:"stats"`
}

// Stat is a headline figure such as "10+" years operating.
type Stat struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Number splits Value into its leading integer and trailing suffix, so
// "10+" yields (10, "+", true). ok is false when Value does not start with
// a digit; such stats are shown verbatim instead of counted.
func (s Stat) Number() (n int, suffix string, ok bool) {
	i := 0
	for i < len(s.Value) && s.Value[i] >= '0' && s.Value[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, s.Value, false
	}
	n, err := strconv.Atoi(s.Value[:i])
	if err != nil {
		return 0, s.Value, false
	}
	return n, s.Value[i:], true
}

// TeamMember is one person in the leadership grid.
type TeamMember struct {
	Name string `yaml:"name" json:"name"`
	Role string `yaml:"role" json:"role"`
}

// Insight is a published essay title.
type Insight struct {
	Title string `yaml:"title" json:"title"`
	Date  string `yaml:"date" json:"date"`
}

// Contact is the closing call to action and form setup.
type Contact struct {
	Label    string   `yaml:"label" json:"label"`
	Sub      string   `yaml:"sub" json:"sub"`
	Email    string   `yaml:"email" json:"email"`
	Subjects []string `yaml:"subjects" json:"subjects"`
}

// NavItem is one navigation link. Anchor names a section registered with
// comet.Page.Anchor.
type NavItem struct {
	Label  string `yaml:"label" json:"label"`
	Anchor string `yaml:"anchor" json:"anchor"`
}

// Footer is the closing line pair.
type Footer struct {
	Copyright string `yaml:"copyright" json:"copyright"`
	Tagline   string `yaml:"tagline" json:"tagline"`
}

// Changelog is one release note. Notes is markdown.
type Changelog struct {
	Version string `yaml:"version" json:"version"`
	Date    string `yaml:"date" json:"date"`
	Notes   string `yaml:"notes" json:"notes"`
}

// Project returns the portfolio item with the given slug.
func (s *Site) Project(slug string) (PortfolioItem, error) {
	for _, p := range s.Portfolio {
		if p.Slug == slug {
			return p, nil
		}
	}
	return PortfolioItem{}, ErrNotFound
}
