// Package ecs provides ECS adapters for comet.
package ecs

import (
	"github.com/cometholdings/comet"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ScrollEventType carries every scroll event unchanged.
var ScrollEventType = events.NewEventType[comet.ScrollEvent]()

// CrossingEventType carries observer boundary crossings only.
var CrossingEventType = events.NewEventType[Crossing]()

// PinEventType carries pin and unpin changes only.
var PinEventType = events.NewEventType[PinChange]()

// Crossing is an observer entering or leaving its scroll range.
type Crossing struct {
	Name      string
	ElementID uint32
	Type      comet.ScrollEventType
	// Active reports whether the observer is inside its range afterwards.
	Active bool
	// Forward is true when the crossing happened while scrolling down.
	Forward  bool
	Scroll   float64
	Progress float64
}

// PinChange is a pin freezing or releasing its element.
type PinChange struct {
	Name      string
	ElementID uint32
	Pinned    bool
	Scroll    float64
}

// Section is the component kept on one entity per observer or pin name.
// It holds the state as of the last event for that name, so systems can
// query it instead of subscribing.
type Section struct {
	Name      string
	ElementID uint32
	Active    bool
	Pinned    bool
	Progress  float64
	Crossings int
}

// SectionComponent is the Donburi component type for Section.
var SectionComponent = donburi.NewComponentType[Section]()

// Option configures a Donburi store.
type Option func(*donburiStore)

// WithNames restricts the store to events from the named observers and
// pins. Events from other names are dropped.
func WithNames(names ...string) Option {
	return func(s *donburiStore) {
		s.names = make(map[string]bool, len(names))
		for _, n := range names {
			s.names[n] = true
		}
	}
}

type donburiStore struct {
	world    donburi.World
	names    map[string]bool
	sections map[string]donburi.Entity
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Each
// event is published to ScrollEventType and to CrossingEventType or
// PinEventType, and the Section entity for the event's name is updated.
// Published events are delivered by ProcessEvents.
func NewDonburiStore(world donburi.World, opts ...Option) comet.EventStore {
	s := &donburiStore{world: world, sections: make(map[string]donburi.Entity)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *donburiStore) EmitEvent(ev comet.ScrollEvent) {
	if s.names != nil && !s.names[ev.Name] {
		return
	}
	ScrollEventType.Publish(s.world, ev)

	sec := s.section(ev.Name)
	sec.ElementID = ev.ElementID
	sec.Progress = ev.Progress

	switch ev.Type {
	case comet.EventPin, comet.EventUnpin:
		sec.Pinned = ev.Type == comet.EventPin
		PinEventType.Publish(s.world, PinChange{
			Name:      ev.Name,
			ElementID: ev.ElementID,
			Pinned:    sec.Pinned,
			Scroll:    ev.Scroll,
		})
	default:
		sec.Active = ev.Type == comet.EventEnter || ev.Type == comet.EventEnterBack
		sec.Crossings++
		CrossingEventType.Publish(s.world, Crossing{
			Name:      ev.Name,
			ElementID: ev.ElementID,
			Type:      ev.Type,
			Active:    sec.Active,
			Forward:   ev.Type == comet.EventEnter || ev.Type == comet.EventLeave,
			Scroll:    ev.Scroll,
			Progress:  ev.Progress,
		})
	}
}

// section returns the Section for name, creating its entity on first use.
func (s *donburiStore) section(name string) *Section {
	e, ok := s.sections[name]
	if !ok || !s.world.Valid(e) {
		e = s.world.Create(SectionComponent)
		SectionComponent.SetValue(s.world.Entry(e), Section{Name: name})
		s.sections[name] = e
	}
	return SectionComponent.Get(s.world.Entry(e))
}

// ActiveSections returns the names of sections whose observer is currently
// inside its range, in no particular order.
func ActiveSections(world donburi.World) []string {
	var names []string
	donburi.NewQuery(filter.Contains(SectionComponent)).Each(world, func(entry *donburi.Entry) {
		if sec := SectionComponent.Get(entry); sec.Active {
			names = append(names, sec.Name)
		}
	})
	return names
}
