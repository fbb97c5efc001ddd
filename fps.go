package comet

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsOverlay draws FPS, TPS, scroll position and observer counts in the
// top-left corner. The text refreshes every ~0.5 seconds.
type statsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	dirty      bool
}

func newStatsOverlay() *statsOverlay {
	// 160x64 fits four lines of debug text.
	return &statsOverlay{img: ebiten.NewImage(160, 64), dirty: true}
}

func (s *statsOverlay) update(dt float64, p *Page) {
	s.lastUpdate += dt
	if s.lastUpdate < 0.5 && !s.dirty {
		return
	}
	s.lastUpdate = 0
	s.dirty = false

	s.img.Clear()
	// Semi-transparent background for readability
	s.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(s.img, statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), p))
}

func (s *statsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(s.img, nil)
}

func statsText(fps, tps float64, p *Page) string {
	active := 0
	for _, o := range p.observers {
		if !o.killed && o.IsActive() {
			active++
		}
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nScroll: %.0f/%.0f\nObservers: %d (%d active)",
		fps, tps, p.scroll, p.MaxScroll(), p.Observers(), active)
}
