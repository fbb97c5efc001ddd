package comet

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorTransparent is the default element color. Transparent elements are
// laid out and animated but draw nothing.
var ColorTransparent = Color{}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// toRGBA converts to a premultiplied color.RGBA scaled by alpha.
func (c Color) toRGBA(alpha float64) color.RGBA {
	a := clamp01(c.A * alpha)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Bottom returns the Y coordinate of the rectangle's lower edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Property names an animatable element property.
type Property uint8

const (
	PropX             Property = iota // horizontal translation in pixels
	PropY                             // vertical translation in pixels
	PropXPercent                      // horizontal translation in percent of width
	PropYPercent                      // vertical translation in percent of height
	PropScale                         // uniform scale (reads ScaleX, writes both)
	PropScaleX                        // horizontal scale
	PropScaleY                        // vertical scale
	PropRotateX                       // rotation around the X axis in degrees
	PropAlpha                         // opacity in [0, 1]
	PropClipTop                       // clip inset from the top edge, percent
	PropClipRight                     // clip inset from the right edge, percent
	PropClipBottom                    // clip inset from the bottom edge, percent
	PropClipLeft                      // clip inset from the left edge, percent
	PropFontWeight                    // font weight (100–900)
	PropLetterSpacing                 // letter spacing in em
	PropValue                         // free numeric value (counters, progress bars)
	numProperties
)

var propertyNames = [numProperties]string{
	"x", "y", "xPercent", "yPercent", "scale", "scaleX", "scaleY", "rotateX",
	"opacity", "clipTop", "clipRight", "clipBottom", "clipLeft",
	"fontWeight", "letterSpacing", "value",
}

// String returns the property's name as used in snapshots and logs.
func (p Property) String() string {
	if p < numProperties {
		return propertyNames[p]
	}
	return "unknown"
}

// LayoutMode selects how an element positions its children.
type LayoutMode uint8

const (
	LayoutAbsolute LayoutMode = iota // children keep their own Top/Left
	LayoutColumn                     // children are stacked top to bottom
)

// ScrollEventType identifies an observer or pin state change.
type ScrollEventType uint8

const (
	EventEnter     ScrollEventType = iota // scrolled forward past the start
	EventLeave                            // scrolled forward past the end
	EventEnterBack                        // scrolled backward past the end
	EventLeaveBack                        // scrolled backward past the start
	EventPin                              // a pin froze its element
	EventUnpin                            // a pin released its element
)

var scrollEventNames = [...]string{"enter", "leave", "enterBack", "leaveBack", "pin", "unpin"}

// String returns the event type's name.
func (t ScrollEventType) String() string {
	if int(t) < len(scrollEventNames) {
		return scrollEventNames[t]
	}
	return "unknown"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
