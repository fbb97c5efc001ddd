package comet

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"after-hero", "after-hero"},
		{"frame.01", "frame.01"},
		{"pinned philosophy", "pinned_philosophy"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	p := NewPage(100, 100)
	p.Screenshot("a")
	p.Screenshot("b")
	if len(p.screenshotQueue) != 2 || p.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", p.screenshotQueue)
	}
}

func TestRunnerQueuesScreenshot(t *testing.T) {
	p, _ := newStackPage(800, 800)
	r, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "top"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.step(p)
	if len(p.screenshotQueue) != 1 || p.screenshotQueue[0] != "top" {
		t.Errorf("queue = %v, want [top]", p.screenshotQueue)
	}
}

func TestStraightAlpha(t *testing.T) {
	// One opaque red pixel, one half-transparent premultiplied grey.
	img := straightAlpha([]byte{255, 0, 0, 255, 64, 64, 64, 128}, 2, 1)
	if got := img.NRGBAAt(0, 0); got.R != 255 || got.A != 255 {
		t.Errorf("pixel 0 = %v", got)
	}
	if got := img.NRGBAAt(1, 0); got.R != 127 || got.A != 128 {
		t.Errorf("pixel 1 = %v, want r 127 a 128", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	if err := writePNG(path, src); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 3 || decoded.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v", decoded.Bounds())
	}
}
