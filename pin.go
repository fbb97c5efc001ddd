package comet

// PinState is the tagged state of a pin.
type PinState uint8

const (
	PinBefore PinState = iota // unpinned, scroll above the pin range
	PinActive                 // pinned
	PinAfter                  // unpinned, scroll below the pin range
)

var pinStateNames = [...]string{"before", "pinned", "after"}

// String returns the state's name.
func (s PinState) String() string {
	if int(s) < len(pinStateNames) {
		return pinStateNames[s]
	}
	return "unknown"
}

// PinConfig configures a pinned section.
type PinConfig struct {
	Name    string
	Element *Element
	// Start is where the pin engages. Empty means "top top".
	Start string
	// Distance is the reserved scroll distance in viewport heights.
	// DistancePx is added to it.
	Distance   float64
	DistancePx float64
	// Timeline is scrubbed by progress through the reservation.
	Timeline *Timeline
	// Smooth is the scrub smoothing time in seconds.
	Smooth float64
	// NoSpacing leaves the document height unchanged: content after the
	// pinned element scrolls underneath it instead of being pushed down.
	NoSpacing bool
	// OnUpdate reports raw progress through the reservation.
	OnUpdate func(*Pin, float64)
}

// Pin holds an element still for a reserved scroll distance while the
// scroll consumed during the reservation scrubs a timeline from 0 to 1.
//
// The reservation is computed from the viewport height when the pin is
// unpinned and kept fixed while pinned, so a resize mid-pin only takes
// effect on the next activation.
type Pin struct {
	page     *Page
	cfg      PinConfig
	observer *Observer
	state    PinState
	pinned   bool
	reserved float64
	// reservedFor is the viewport height the reservation was computed for.
	reservedFor float64
	killed      bool
}

// Pin creates a pinned section. A missing or disposed element yields an
// inert, already killed pin. Sections should prefer Scope.Pin.
func (p *Page) Pin(cfg PinConfig) (*Pin, error) {
	pin := &Pin{page: p, cfg: cfg}
	if !cfg.Element.alive() {
		p.debugf("pin %q: missing element, skipped", cfg.Name)
		pin.killed = true
		return pin, nil
	}
	if cfg.Start == "" {
		cfg.Start = "top top"
	}
	oc := ObserverConfig{
		Name:      cfg.Name,
		Trigger:   cfg.Element,
		Start:     cfg.Start,
		End:       "+=0",
		Animation: cfg.Timeline,
		Scrub:     cfg.Timeline != nil,
		Smooth:    cfg.Smooth,
	}
	if cfg.OnUpdate != nil {
		oc.OnUpdate = func(_ *Observer, v float64) { cfg.OnUpdate(pin, v) }
	}
	o, err := p.newObserver(oc)
	if err != nil {
		return nil, err
	}
	o.pin = pin
	pin.observer = o
	p.pins = append(p.pins, pin)

	// The reservation pushes later content down, so every range moves.
	pin.reserve(p.height)
	p.observers = append(p.observers, o)
	p.Refresh()
	return pin, nil
}

// reserve recomputes the reserved distance unless pinned, applies spacing
// and returns the reservation.
func (pin *Pin) reserve(viewportHeight float64) float64 {
	if pin.killed || pin.pinned {
		return pin.reserved
	}
	pin.reservedFor = viewportHeight
	pin.reserved = pin.cfg.Distance*viewportHeight + pin.cfg.DistancePx
	if pin.reserved < 0 {
		pin.reserved = 0
	}
	if !pin.cfg.NoSpacing {
		pin.cfg.Element.spacing = pin.reserved
	}
	return pin.reserved
}

// sync applies the observer's phase to the element after every sample.
func (pin *Pin) sync(o *Observer, scroll float64) {
	if pin.killed {
		return
	}
	el := pin.cfg.Element
	was := pin.pinned
	switch o.phase {
	case phaseBefore:
		pin.state = PinBefore
		el.pinOffset = 0
	case phaseActive:
		pin.state = PinActive
		el.pinOffset = scroll - o.startScroll
	case phaseAfter:
		pin.state = PinAfter
		el.pinOffset = pin.reserved
	}
	pin.pinned = pin.state == PinActive
	el.pinned = pin.pinned

	if pin.pinned != was {
		t := EventUnpin
		if pin.pinned {
			t = EventPin
		}
		pin.page.emit(ScrollEvent{
			Type:       t,
			ObserverID: o.id,
			Name:       pin.cfg.Name,
			ElementID:  el.ID,
			Scroll:     scroll,
			Progress:   o.progress,
		})
		pin.page.debugf("pin %q: %s at %.1f (reserved %.1f)", pin.cfg.Name, t, scroll, pin.reserved)
	}

	// A resize while pinned was deferred; apply it now that the pin let go.
	if was && !pin.pinned && pin.reservedFor != pin.page.height {
		pin.page.pinStale = true
	}
}

// Name returns the configured name.
func (pin *Pin) Name() string { return pin.cfg.Name }

// Element returns the pinned element.
func (pin *Pin) Element() *Element { return pin.cfg.Element }

// State returns the current pin state.
func (pin *Pin) State() PinState { return pin.state }

// Pinned reports whether the element is currently held in place.
func (pin *Pin) Pinned() bool { return pin.pinned }

// Reserved returns the reserved scroll distance in pixels.
func (pin *Pin) Reserved() float64 { return pin.reserved }

// Progress returns the raw progress through the reservation.
func (pin *Pin) Progress() float64 {
	if pin.observer == nil {
		return 0
	}
	return pin.observer.progress
}

// Observer returns the observer driving the pin.
func (pin *Pin) Observer() *Observer { return pin.observer }

// Killed reports whether the pin was reverted.
func (pin *Pin) Killed() bool { return pin.killed }

// Revert unpins the element, removes its spacing and stops the pin. The
// element returns to its in-flow position with no residual offset.
func (pin *Pin) Revert() {
	if pin.killed {
		return
	}
	pin.killed = true
	if pin.observer != nil {
		pin.observer.Kill()
	}
	el := pin.cfg.Element
	el.pinned = false
	el.pinOffset = 0
	el.spacing = 0
	pin.pinned = false
	pin.state = PinBefore
	pin.page.removePin(pin)
	pin.page.layoutDirty = true
}
