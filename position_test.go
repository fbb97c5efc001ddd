package comet

import (
	"errors"
	"math"
	"testing"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in   string
		want Position
	}{
		{"top 85%", Position{Element: Edge{}, Viewport: Edge{Frac: 0.85}}},
		{"top top", Position{}},
		{"bottom top", Position{Element: Edge{Frac: 1}}},
		{"center center", Position{Element: Edge{Frac: 0.5}, Viewport: Edge{Frac: 0.5}}},
		{"top 120px", Position{Viewport: Edge{Px: 120}}},
		{"top 80", Position{Viewport: Edge{Px: 80}}},
		{"  top   bottom ", Position{Viewport: Edge{Frac: 1}}},
		{"+=150%", Position{Relative: true, Offset: Edge{Frac: 1.5}}},
		{"+=400", Position{Relative: true, Offset: Edge{Px: 400}}},
		{"-=50%", Position{Relative: true, Offset: Edge{Frac: -0.5}}},
	}
	for _, tt := range tests {
		got, err := ParsePosition(tt.in)
		if err != nil {
			t.Errorf("ParsePosition(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePosition(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParsePositionErrors(t *testing.T) {
	for _, in := range []string{"", "top", "top 85% extra", "middle top", "top x%", "+=abc"} {
		_, err := ParsePosition(in)
		if !errors.Is(err, ErrBadPosition) {
			t.Errorf("ParsePosition(%q) error = %v, want ErrBadPosition", in, err)
		}
	}
}

func TestMustParsePositionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParsePosition should panic on a bad position")
		}
	}()
	MustParsePosition("nowhere")
}

func TestScrollFor(t *testing.T) {
	// Element at document offset 1000, 500 tall, viewport 800 tall.
	tests := []struct {
		pos  string
		want float64
	}{
		{"top 85%", 1000 - 680},
		{"top top", 1000},
		{"top bottom", 200},
		{"bottom top", 1500},
		{"center center", 1250 - 400},
	}
	for _, tt := range tests {
		got := MustParsePosition(tt.pos).ScrollFor(1000, 500, 800, 0)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%q.ScrollFor = %f, want %f", tt.pos, got, tt.want)
		}
	}

	rel := MustParsePosition("+=150%")
	if got := rel.ScrollFor(1000, 500, 800, 1000); got != 2200 {
		t.Errorf("+=150%% from 1000 = %f, want 2200", got)
	}
}

func TestPositionString(t *testing.T) {
	for _, s := range []string{"top 85%", "top top", "bottom center", "top 120px", "+=150%", "-=400px"} {
		if got := MustParsePosition(s).String(); got != s {
			t.Errorf("String() = %q, want %q", got, s)
		}
	}
}
