package sections

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseTimingOverridesDefaults(t *testing.T) {
	tm, err := ParseTiming([]byte("hero:\n  pin_distance: 2\nnavbar:\n  active_line: 0.5\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm.Hero.PinDistance != 2 || tm.Navbar.ActiveLine != 0.5 {
		t.Errorf("overrides not applied: %+v %+v", tm.Hero, tm.Navbar)
	}
	if tm.Hero.Curtain != 1.2 || tm.Hero.SubtextFadeEnd != "+=50%" {
		t.Errorf("unset keys lost their defaults: %+v", tm.Hero)
	}
}

func TestParseTimingEmpty(t *testing.T) {
	tm, err := ParseTiming(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm != DefaultTiming() {
		t.Error("empty input should yield the defaults")
	}
}

func TestParseTimingRejectsUnknownKeys(t *testing.T) {
	if _, err := ParseTiming([]byte("hero:\n  curtian: 1\n")); err == nil {
		t.Error("expected error for misspelled key")
	}
}

func TestLoadTiming(t *testing.T) {
	tm, err := LoadTiming("")
	if err != nil || tm != DefaultTiming() {
		t.Fatalf("LoadTiming(\"\") = %v, want defaults", err)
	}

	path := filepath.Join(t.TempDir(), "timing.yaml")
	if err := os.WriteFile(path, []byte("philosophy:\n  hold: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tm, err = LoadTiming(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm.Philosophy.Hold != 3 {
		t.Errorf("hold = %f, want 3", tm.Philosophy.Hold)
	}

	if _, err := LoadTiming(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
