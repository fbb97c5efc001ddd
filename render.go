package comet

import (
	"image/color"
	"math"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// drawCommand is one filled rectangle in viewport coordinates.
type drawCommand struct {
	rect  Rect
	color Color
	alpha float64
	z     int
	order int
	text  string
}

// collect walks the tree and appends a draw command for every visible
// element that intersects the viewport. Alpha multiplies down the tree.
func (p *Page) collect(e *Element, alpha float64, cmds []drawCommand) []drawCommand {
	if !e.Visible || !e.alive() {
		return cmds
	}
	alpha *= clamp01(e.Alpha)
	if alpha <= 0 {
		return cmds
	}
	if e.Color.A > 0 || e.Text != "" {
		r := p.visualRect(e)
		if r.Width > 0 && r.Height > 0 && r.Intersects(Rect{Width: p.width, Height: p.height}) {
			cmds = append(cmds, drawCommand{
				rect:  r,
				color: e.Color,
				alpha: alpha,
				z:     e.ZIndex,
				order: len(cmds),
				text:  e.Text,
			})
		}
	}
	for _, c := range e.children {
		cmds = p.collect(c, alpha, cmds)
	}
	return cmds
}

// visualRect applies scale (about the element's origin), the X-axis
// rotation's foreshortening and clip insets to e's screen rectangle.
func (p *Page) visualRect(e *Element) Rect {
	r := p.ScreenRect(e)
	sx := e.ScaleX
	sy := e.ScaleY * math.Abs(math.Cos(e.RotateX*math.Pi/180))
	ox, oy := r.X+r.Width*e.OriginX, r.Y+r.Height*e.OriginY
	r.Width *= sx
	r.Height *= sy
	r.X = ox - r.Width*e.OriginX
	r.Y = oy - r.Height*e.OriginY

	top := clamp01(e.ClipTop/100) * r.Height
	bottom := clamp01(e.ClipBottom/100) * r.Height
	left := clamp01(e.ClipLeft/100) * r.Width
	right := clamp01(e.ClipRight/100) * r.Width
	r.X += left
	r.Y += top
	r.Width = math.Max(0, r.Width-left-right)
	r.Height = math.Max(0, r.Height-top-bottom)
	return r
}

// Draw renders the page as a preview: every visible element is a filled
// rectangle in its color, text is drawn with the debug font.
func (p *Page) Draw(screen *ebiten.Image) {
	var start time.Time
	if p.debug {
		start = time.Now()
	}
	screen.Fill(p.Background.toRGBA(1))

	cmds := p.collect(p.root, 1, nil)
	sort.SliceStable(cmds, func(i, j int) bool {
		return cmds[i].z < cmds[j].z
	})

	px := ensureWhitePixel()
	for i := range cmds {
		cmd := &cmds[i]
		if cmd.color.A > 0 {
			var op ebiten.DrawImageOptions
			op.GeoM.Scale(cmd.rect.Width, cmd.rect.Height)
			op.GeoM.Translate(cmd.rect.X, cmd.rect.Y)
			a := float32(cmd.color.A * cmd.alpha)
			op.ColorScale.Scale(float32(cmd.color.R)*a, float32(cmd.color.G)*a, float32(cmd.color.B)*a, a)
			screen.DrawImage(px, &op)
		}
		if cmd.text != "" && cmd.alpha > 0.5 {
			ebitenutil.DebugPrintAt(screen, cmd.text, int(cmd.rect.X)+4, int(cmd.rect.Y)+4)
		}
	}

	if p.debug {
		p.log.Debug("draw",
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("commands", len(cmds)))
	}
	p.flushScreenshots(screen)
}
