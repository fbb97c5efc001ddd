package comet

// EventStore is the interface for optional ECS integration.
// When set on a Page, observer and pin state changes are forwarded to it.
type EventStore interface {
	EmitEvent(event ScrollEvent)
}

// ScrollEvent describes one observer or pin state change.
type ScrollEvent struct {
	Type       ScrollEventType
	ObserverID uint32
	Name       string
	// ElementID is the trigger element's ID, zero for observers without one.
	ElementID uint32
	Scroll    float64
	Progress  float64
}

// emit forwards ev to the event store, if any.
func (p *Page) emit(ev ScrollEvent) {
	if p.store != nil {
		p.store.EmitEvent(ev)
	}
}
