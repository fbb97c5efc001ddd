package comet

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Navigation defaults for ScrollToSection.
const (
	DefaultNavDuration = 1.2
)

// DefaultNavEase is the curve used by ScrollToSection.
var DefaultNavEase ease.TweenFunc = ease.InOutQuart

// Page is the explicit scroll context shared by every section mounted on it:
// the element tree, the viewport, the scroll position and every registered
// observer, timeline, pin and handler. All mutation happens synchronously
// inside SetScroll, Resize and Step; a Page must be driven from a single
// goroutine.
type Page struct {
	root   *Element
	width  float64
	height float64
	scroll float64

	log   *zap.Logger
	debug bool
	store EventStore

	observers      []*Observer
	observersDirty bool
	nextObserverID uint32
	pins           []*Pin
	timelines      []*Timeline
	tweens         []*TweenGroup
	scopes         []*Scope
	handlers       handlerRegistry

	anchors map[string]*Element
	nav     *scrollAnim

	// NavDuration and NavEase configure ScrollToSection. NavOffset is
	// subtracted from an anchor's top, leaving room for a fixed header.
	NavDuration float64
	NavEase     ease.TweenFunc
	NavOffset   float64

	// Background fills the screen before elements are drawn.
	Background Color
	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir string

	layoutDirty bool
	// pinStale is set when a pin unpins with a reservation computed for an
	// older viewport height.
	pinStale bool

	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	snapshots       []Snapshot
	screenshotQueue []string
	keyBuf          []ebiten.Key
	frame           int
}

// NewPage creates a page with the given viewport size. The root element
// stacks its children in a column and grows to fit them.
func NewPage(width, height float64) *Page {
	root := NewElement("root")
	root.Width = width
	root.Layout = LayoutColumn
	root.AutoHeight = true
	p := &Page{
		root:        root,
		width:       width,
		height:      height,
		log:         zap.NewNop(),
		anchors:     make(map[string]*Element),
		NavDuration: DefaultNavDuration,
		NavEase:     DefaultNavEase,
		Background:  ColorBlack,
	}
	root.page = p
	return p
}

// Root returns the page's root element.
func (p *Page) Root() *Element {
	return p.root
}

// SetLogger sets the logger used for warnings and debug output. A nil
// logger disables logging.
func (p *Page) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	p.log = log
}

// Logger returns the page logger.
func (p *Page) Logger() *zap.Logger {
	return p.log
}

// SetEventStore sets the optional ECS bridge.
func (p *Page) SetEventStore(store EventStore) {
	p.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-element
// access panics, deep trees are reported, and crossings and per-frame stats
// are logged at debug level.
func (p *Page) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// --- Viewport and scroll ---

// Viewport returns the viewport size.
func (p *Page) Viewport() (width, height float64) {
	return p.width, p.height
}

// Scroll returns the current scroll offset.
func (p *Page) Scroll() float64 {
	return p.scroll
}

// Frame returns the number of Step calls so far.
func (p *Page) Frame() int {
	return p.frame
}

// DocumentHeight returns the height of the laid-out document including pin
// spacing.
func (p *Page) DocumentHeight() float64 {
	return p.root.FlowHeight()
}

// MaxScroll returns the largest valid scroll offset.
func (p *Page) MaxScroll() float64 {
	return math.Max(0, p.DocumentHeight()-p.height)
}

// SetScroll records a user scroll sample. The offset is clamped to
// [0, MaxScroll]. A user scroll cancels an in-progress navigation.
func (p *Page) SetScroll(y float64) {
	p.setScroll(y, true)
}

// ScrollBy scrolls by dy pixels.
func (p *Page) ScrollBy(dy float64) {
	p.setScroll(p.scroll+dy, true)
}

func (p *Page) setScroll(y float64, user bool) {
	if p.layoutDirty {
		p.Refresh()
	}
	y = math.Max(0, math.Min(y, p.MaxScroll()))
	if user {
		p.nav = nil
	}
	delta := y - p.scroll
	if delta == 0 {
		return
	}
	p.scroll = y
	p.evaluate()
	dispatch(p.handlers.scroll, ScrollContext{Scroll: y, Delta: delta, User: user})
}

// Resize changes the viewport size and refreshes every observer.
func (p *Page) Resize(width, height float64) {
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height
	p.root.Width = width
	p.Refresh()
	dispatch(p.handlers.resize, ResizeContext{Width: width, Height: height})
}

// Refresh lays the document out again, recomputes pin reservations and
// observer ranges from the new layout, and re-evaluates every observer
// against the current scroll position. Pins that are currently pinned keep
// their reservation.
func (p *Page) Refresh() {
	p.layoutDirty = false
	p.layout(p.root)
	for _, pin := range p.pins {
		pin.reserve(p.height)
	}
	for _, o := range p.observers {
		o.refresh()
	}
	p.scroll = math.Max(0, math.Min(p.scroll, p.MaxScroll()))
	p.evaluate()
}

// evaluate samples every live observer against the current scroll offset,
// in registration order.
func (p *Page) evaluate() {
	snapshot := make([]*Observer, len(p.observers))
	copy(snapshot, p.observers)
	for _, o := range snapshot {
		o.evaluate(p.scroll)
	}
	p.compactObservers()
	if p.pinStale {
		p.pinStale = false
		p.Refresh()
	}
}

func (p *Page) compactObservers() {
	if !p.observersDirty {
		return
	}
	p.observersDirty = false
	live := p.observers[:0]
	for _, o := range p.observers {
		if !o.killed {
			live = append(live, o)
		}
	}
	for i := len(live); i < len(p.observers); i++ {
		p.observers[i] = nil
	}
	p.observers = live
}

// Observers returns the number of live observers.
func (p *Page) Observers() int {
	n := 0
	for _, o := range p.observers {
		if !o.killed {
			n++
		}
	}
	return n
}

// Scopes returns the number of scopes that have not been reverted.
func (p *Page) Scopes() int {
	return len(p.scopes)
}

func (p *Page) removeTimeline(tl *Timeline) {
	for i, t := range p.timelines {
		if t == tl {
			copy(p.timelines[i:], p.timelines[i+1:])
			p.timelines[len(p.timelines)-1] = nil
			p.timelines = p.timelines[:len(p.timelines)-1]
			return
		}
	}
}

func (p *Page) removePin(pin *Pin) {
	for i, q := range p.pins {
		if q == pin {
			copy(p.pins[i:], p.pins[i+1:])
			p.pins[len(p.pins)-1] = nil
			p.pins = p.pins[:len(p.pins)-1]
			return
		}
	}
}

func (p *Page) removeScope(s *Scope) {
	for i, q := range p.scopes {
		if q == s {
			copy(p.scopes[i:], p.scopes[i+1:])
			p.scopes[len(p.scopes)-1] = nil
			p.scopes = p.scopes[:len(p.scopes)-1]
			return
		}
	}
}

// --- Layout ---

// layout sizes and positions e's subtree for the current viewport.
func (p *Page) layout(e *Element) {
	if e.Parent == nil {
		e.Width = p.width
	} else if e.FillWidth {
		e.Width = e.Parent.Width
	}
	minHeight := 0.0
	if e.ViewportHeight > 0 {
		minHeight = e.ViewportHeight * p.height
		e.Height = minHeight
	}

	var content float64
	switch e.Layout {
	case LayoutColumn:
		y := 0.0
		for i, c := range e.children {
			p.layout(c)
			if i > 0 {
				y += e.Gap
			}
			c.Top = y
			y += c.Height
		}
		content = y
	default:
		for _, c := range e.children {
			p.layout(c)
			content = math.Max(content, c.Top+c.Height)
		}
	}
	if e.AutoHeight {
		e.Height = math.Max(minHeight, content)
	}
}

// ScreenRect returns e's box in viewport coordinates: its layout box moved
// by scroll, pin offsets, sticky positioning and translations of e and its
// ancestors. Scale is not applied.
func (p *Page) ScreenRect(e *Element) Rect {
	if e.Parent == nil {
		return Rect{
			X:      e.Left + translateX(e),
			Y:      e.Top - p.scroll + e.pinOffset + translateY(e),
			Width:  e.Width,
			Height: e.Height,
		}
	}
	parent := p.ScreenRect(e.Parent)
	y := parent.Y + e.Top + e.spacingAbove() + e.pinOffset
	if e.Sticky {
		y = math.Max(y, 0)
		y = math.Min(y, parent.Y+e.Parent.FlowHeight()-e.Height)
	}
	return Rect{
		X:      parent.X + e.Left + translateX(e),
		Y:      y + translateY(e),
		Width:  e.Width,
		Height: e.Height,
	}
}

func translateX(e *Element) float64 {
	return e.X + e.XPercent/100*e.Width
}

func translateY(e *Element) float64 {
	return e.Y + e.YPercent/100*e.Height
}

// --- Frame tick ---

// Step advances playing timelines, scrub smoothing, tween groups and
// navigation by dt seconds.
func (p *Page) Step(dt float64) {
	var start time.Time
	if p.debug {
		start = time.Now()
	}
	p.frame++
	if p.layoutDirty {
		p.Refresh()
	}
	p.stepNav(dt)

	observers := make([]*Observer, len(p.observers))
	copy(observers, p.observers)
	for _, o := range observers {
		o.step(dt)
	}
	timelines := make([]*Timeline, len(p.timelines))
	copy(timelines, p.timelines)
	for _, tl := range timelines {
		tl.Step(dt)
	}
	p.stepTweens(dt)
	dispatch(p.handlers.frame, FrameContext{DT: dt, Frame: p.frame})

	if p.debug {
		active := 0
		for _, o := range p.observers {
			if o.IsActive() {
				active++
			}
		}
		p.debugLog(debugStats{
			stepTime:      time.Since(start),
			observerCount: len(p.observers),
			activeCount:   active,
			timelineCount: len(p.timelines),
			elementCount:  countElements(p.root),
		})
	}
}

// Update is the ebiten-facing frame entry point: it runs the attached test
// runner, consumes one injected event (or real input when none is queued)
// and steps the page by one tick.
func (p *Page) Update() {
	dt := 1.0 / float64(ebiten.TPS())
	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	if !p.processInjected() {
		p.processInput()
	}
	p.Step(dt)
}
