package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Load reads and validates a YAML content file.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// Parse decodes and validates YAML content. Unknown keys are rejected so
// that typos in a content file surface instead of silently dropping copy.
func Parse(data []byte) (*Site, error) {
	var site Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Marshal encodes the site as YAML in the format Parse accepts.
func (s *Site) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}
	return data, nil
}

// Validate checks the invariants the sections rely on. All problems are
// reported together, each wrapped in ErrInvalid.
func (s *Site) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if len(s.Hero.Headline) == 0 {
		fail("hero headline is empty")
	}
	seen := make(map[string]bool, len(s.Portfolio))
	for i, p := range s.Portfolio {
		switch {
		case p.Slug == "":
			fail("portfolio[%d]: slug is required", i)
		case !slugPattern.MatchString(p.Slug):
			fail("portfolio[%d]: slug %q is not lowercase-hyphenated", i, p.Slug)
		case seen[p.Slug]:
			fail("portfolio[%d]: duplicate slug %q", i, p.Slug)
		}
		seen[p.Slug] = true
		if p.Name == "" {
			fail("portfolio[%d]: name is required", i)
		}
	}
	for i, c := range s.Philosophy.Chapters {
		if _, err := ParseHexColor(c.Color); err != nil {
			fail("philosophy.chapters[%d]: %v", i, err)
		}
	}
	for i, m := range s.Team {
		if m.Name == "" {
			fail("team[%d]: name is required", i)
		}
	}
	anchors := make(map[string]bool, len(s.Nav))
	for i, n := range s.Nav {
		if n.Anchor == "" || n.Label == "" {
			fail("nav[%d]: label and anchor are required", i)
		}
		if anchors[n.Anchor] {
			fail("nav[%d]: duplicate anchor %q", i, n.Anchor)
		}
		anchors[n.Anchor] = true
	}
	if s.Contact.Email == "" {
		fail("contact email is required")
	}
	return errors.Join(errs...)
}

// ParseHexColor parses "#rrggbb" into 8-bit channels.
func ParseHexColor(s string) ([3]uint8, error) {
	var rgb [3]uint8
	if len(s) != 7 || s[0] != '#' {
		return rgb, fmt.Errorf("color %q is not #rrggbb", s)
	}
	for i := range rgb {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return rgb, fmt.Errorf("color %q is not #rrggbb", s)
		}
		rgb[i] = uint8(v)
	}
	return rgb, nil
}
