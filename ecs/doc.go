// Package ecs provides ECS adapters for comet's scroll event stream.
//
// The primary adapter is [NewDonburiStore], which bridges observer
// crossings (enter, leave, enterBack, leaveBack) and pin changes into a
// [Donburi] world. Every event goes to [ScrollEventType]; crossings also go
// to [CrossingEventType] and pin changes to [PinEventType]. Each observer or
// pin name gets an entity with a [Section] component holding its latest
// state, which [ActiveSections] queries.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world, ecs.WithNames("hero", "philosophy"))
//	page.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
