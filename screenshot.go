package comet

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// DefaultScreenshotDir is where screenshots are written when
// Page.ScreenshotDir is empty.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled screenshot to be captured at the end of the
// next Draw. The PNG is written to ScreenshotDir with a timestamped
// filename. Test scripts use the "screenshot" action.
func (p *Page) Screenshot(label string) {
	p.screenshotQueue = append(p.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame once for every queued label.
// Called at the end of Page.Draw.
func (p *Page) flushScreenshots(screen *ebiten.Image) {
	if len(p.screenshotQueue) == 0 {
		return
	}
	dir := p.ScreenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		p.log.Warn("screenshot: create directory", zap.String("dir", dir), zap.Error(err))
		p.screenshotQueue = p.screenshotQueue[:0]
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := straightAlpha(pixels, w, h)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range p.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_f%d_%s.png", stamp, p.frame, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			p.log.Warn("screenshot", zap.Error(err))
			continue
		}
		p.log.Info("screenshot written", zap.String("path", path))
	}
	p.screenshotQueue = p.screenshotQueue[:0]
}

// straightAlpha converts ReadPixels output, which is premultiplied, into
// an NRGBA image.
func straightAlpha(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	n := min(len(pixels), len(img.Pix))
	for i := 0; i+3 < n; i += 4 {
		px := img.Pix[i : i+4 : i+4]
		copy(px, pixels[i:i+4])
		if a := int(px[3]); a > 0 && a < 255 {
			for c := 0; c < 3; c++ {
				px[c] = uint8(min(int(px[c])*255/a, 255))
			}
		}
	}
	return img
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("screenshot %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel maps a label to a file-name-safe token. Anything outside
// [A-Za-z0-9.-] becomes an underscore; blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return r
		}
		return '_'
	}, label)
}
