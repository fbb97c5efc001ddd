package comet

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the preview window opened by Run.
type RunConfig struct {
	Title     string
	Resizable bool
	// TPS overrides ebiten's ticks per second when positive.
	TPS int
	// OnUpdate, when set, is called after the page steps each tick.
	// Returning an error stops the loop with that error.
	OnUpdate func(*Page) error
	// ShowStats draws frame rate, scroll and observer counts on top.
	ShowStats bool
}

// game adapts a Page to ebiten.Game.
type game struct {
	page  *Page
	cfg   RunConfig
	stats *statsOverlay
}

func (g *game) Update() error {
	g.page.Update()
	if g.stats != nil {
		g.stats.update(1/float64(ebiten.TPS()), g.page)
	}
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate(g.page)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.page.Draw(screen)
	if g.stats != nil {
		g.stats.draw(screen)
	}
}

// Layout follows the window size; a size change resizes the page.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.page.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window sized to the page viewport and drives the page from
// ebiten's game loop until the window closes.
func Run(page *Page, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "comet"
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(page.width), int(page.height))
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	g := &game{page: page, cfg: cfg}
	if cfg.ShowStats {
		g.stats = newStatsOverlay()
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run page: %w", err)
	}
	return nil
}
