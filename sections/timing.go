package sections

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Timing collects every duration, delay, offset and distance the sections
// use. Durations and offsets are seconds; distances are viewport heights.
// The values are tuned by eye, so they live in configuration.
type Timing struct {
	Hero       HeroTiming       `yaml:"hero"`
	Portfolio  PortfolioTiming  `yaml:"portfolio"`
	Philosophy PhilosophyTiming `yaml:"philosophy"`
	About      AboutTiming      `yaml:"about"`
	Contact    ContactTiming    `yaml:"contact"`
	Navbar     NavbarTiming     `yaml:"navbar"`
	Footer     FooterTiming     `yaml:"footer"`
	Progress   ProgressTiming   `yaml:"progress"`
	Divider    DividerTiming    `yaml:"divider"`
	Detail     DetailTiming     `yaml:"detail"`
}

type HeroTiming struct {
	Curtain          float64 `yaml:"curtain"`
	Word             float64 `yaml:"word"`
	WordStagger      float64 `yaml:"word_stagger"`
	WordOverlap      float64 `yaml:"word_overlap"`
	Subtext          float64 `yaml:"subtext"`
	SubtextOverlap   float64 `yaml:"subtext_overlap"`
	Indicator        float64 `yaml:"indicator"`
	IndicatorOverlap float64 `yaml:"indicator_overlap"`
	PinDistance      float64 `yaml:"pin_distance"`
	SubtextFadeEnd   string  `yaml:"subtext_fade_end"`
	IndicatorFadeEnd string  `yaml:"indicator_fade_end"`
	Smooth           float64 `yaml:"smooth"`
}

type PortfolioTiming struct {
	CardScale float64 `yaml:"card_scale"`
	CardAlpha float64 `yaml:"card_alpha"`
	// CardEnd is how far past "top top" the card finishes shrinking.
	CardEnd string `yaml:"card_end"`
}

type PhilosophyTiming struct {
	PinDistance      float64 `yaml:"pin_distance"`
	Heading          float64 `yaml:"heading"`
	Divider          float64 `yaml:"divider"`
	Statement        float64 `yaml:"statement"`
	StatementOverlap float64 `yaml:"statement_overlap"`
	Hold             float64 `yaml:"hold"`
	// Crossfade is the fraction of each chapter window shared with its
	// neighbours.
	Crossfade float64 `yaml:"crossfade"`
	Smooth    float64 `yaml:"smooth"`
}

type AboutTiming struct {
	Reveal      float64 `yaml:"reveal"`
	Stat        float64 `yaml:"stat"`
	StatStagger float64 `yaml:"stat_stagger"`
	Counter     float64 `yaml:"counter"`
	Team        float64 `yaml:"team"`
	TeamStagger float64 `yaml:"team_stagger"`
	MorphSmooth float64 `yaml:"morph_smooth"`
}

type ContactTiming struct {
	Border         float64 `yaml:"border"`
	Label          float64 `yaml:"label"`
	SubDelay       float64 `yaml:"sub_delay"`
	Email          float64 `yaml:"email"`
	EmailDelay     float64 `yaml:"email_delay"`
	ParallaxSmooth float64 `yaml:"parallax_smooth"`
}

type NavbarTiming struct {
	EntranceDelay float64 `yaml:"entrance_delay"`
	Entrance      float64 `yaml:"entrance"`
	Indicator     float64 `yaml:"indicator"`
	MenuOpen      float64 `yaml:"menu_open"`
	MenuClose     float64 `yaml:"menu_close"`
	LinkStagger   float64 `yaml:"link_stagger"`
	LinkDelay     float64 `yaml:"link_delay"`
	// ActiveLine is the viewport fraction a section's top must pass to
	// become the active nav item.
	ActiveLine float64 `yaml:"active_line"`
	Navigate   float64 `yaml:"navigate"`
}

type FooterTiming struct {
	Border      float64 `yaml:"border"`
	Text        float64 `yaml:"text"`
	TextDelay   float64 `yaml:"text_delay"`
	TextStagger float64 `yaml:"text_stagger"`
}

type ProgressTiming struct {
	Smooth float64 `yaml:"smooth"`
}

// DividerTiming drives the rules drawn between home sections.
type DividerTiming struct {
	Reveal float64 `yaml:"reveal"`
	Start  string  `yaml:"start"`
}

type DetailTiming struct {
	Back         float64 `yaml:"back"`
	Word         float64 `yaml:"word"`
	WordStagger  float64 `yaml:"word_stagger"`
	Tagline      float64 `yaml:"tagline"`
	Image        float64 `yaml:"image"`
	ImageOverlap float64 `yaml:"image_overlap"`
	Item         float64 `yaml:"item"`
	ItemStagger  float64 `yaml:"item_stagger"`
}

// DefaultTiming returns the tuned production values.
func DefaultTiming() Timing {
	return Timing{
		Hero: HeroTiming{
			Curtain:          1.2,
			Word:             1.2,
			WordStagger:      0.08,
			WordOverlap:      0.6,
			Subtext:          1.0,
			SubtextOverlap:   0.5,
			Indicator:        0.8,
			IndicatorOverlap: 0.3,
			PinDistance:      1.5,
			SubtextFadeEnd:   "+=50%",
			IndicatorFadeEnd: "+=20%",
			Smooth:           1,
		},
		Portfolio: PortfolioTiming{
			CardScale: 0.95,
			CardAlpha: 0.8,
			CardEnd:   "+=100%",
		},
		Philosophy: PhilosophyTiming{
			PinDistance:      2.5,
			Heading:          0.5,
			Divider:          0.8,
			Statement:        2,
			StatementOverlap: 0.5,
			Hold:             1,
			Crossfade:        0.2,
			Smooth:           1,
		},
		About: AboutTiming{
			Reveal:      1,
			Stat:        0.8,
			StatStagger: 0.15,
			Counter:     2,
			Team:        0.6,
			TeamStagger: 0.1,
			MorphSmooth: 1,
		},
		Contact: ContactTiming{
			Border:         1.5,
			Label:          0.9,
			SubDelay:       0.15,
			Email:          1.2,
			EmailDelay:     0.3,
			ParallaxSmooth: 0.5,
		},
		Navbar: NavbarTiming{
			EntranceDelay: 1.8,
			Entrance:      0.8,
			Indicator:     0.4,
			MenuOpen:      0.6,
			MenuClose:     0.5,
			LinkStagger:   0.08,
			LinkDelay:     0.3,
			ActiveLine:    0.4,
			Navigate:      1.2,
		},
		Footer: FooterTiming{
			Border:      1.5,
			Text:        0.8,
			TextDelay:   0.3,
			TextStagger: 0.15,
		},
		Progress: ProgressTiming{Smooth: 0.3},
		Divider:  DividerTiming{Reveal: 1.5, Start: "top 90%"},
		Detail: DetailTiming{
			Back:         0.8,
			Word:         1.1,
			WordStagger:  0.08,
			Tagline:      0.9,
			Image:        1.2,
			ImageOverlap: 0.8,
			Item:         0.8,
			ItemStagger:  0.1,
		},
	}
}

// ParseTiming decodes YAML over the defaults: keys that are absent keep
// their default value.
func ParseTiming(data []byte) (Timing, error) {
	t := DefaultTiming()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Timing{}, fmt.Errorf("parse timing: %w", err)
	}
	return t, nil
}

// LoadTiming reads a timing file. An empty path returns the defaults.
func LoadTiming(path string) (Timing, error) {
	if path == "" {
		return DefaultTiming(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Timing{}, fmt.Errorf("read timing: %w", err)
	}
	return ParseTiming(data)
}
