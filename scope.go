package comet

import "go.uber.org/zap"

// Scope collects everything one section registers with a page so that the
// section can tear it all down in one synchronous call.
type Scope struct {
	page      *Page
	name      string
	observers []*Observer
	timelines []*Timeline
	pins      []*Pin
	tweens    []*TweenGroup
	handles   []CallbackHandle
	cleanups  []func()
	reverted  bool
}

// NewScope creates a scope registered with the page.
func (p *Page) NewScope(name string) *Scope {
	s := &Scope{page: p, name: name}
	p.scopes = append(p.scopes, s)
	return s
}

// Name returns the scope's name.
func (s *Scope) Name() string { return s.name }

// Page returns the owning page.
func (s *Scope) Page() *Page { return s.page }

// Reverted reports whether Revert has run.
func (s *Scope) Reverted() bool { return s.reverted }

// Timeline creates a timeline owned by the scope.
func (s *Scope) Timeline(cfg TimelineConfig) *Timeline {
	tl := s.page.NewTimeline(cfg)
	if s.reverted {
		tl.Kill()
		return tl
	}
	s.timelines = append(s.timelines, tl)
	return tl
}

// Observe creates an observer owned by the scope. A configuration error is
// logged and yields an inert observer, so a bad position string never
// breaks the section.
func (s *Scope) Observe(cfg ObserverConfig) *Observer {
	if s.reverted {
		return &Observer{page: s.page, cfg: cfg, killed: true}
	}
	o, err := s.page.Observe(cfg)
	if err != nil {
		s.page.log.Warn("observer skipped", zap.String("scope", s.name), zap.Error(err))
		return &Observer{page: s.page, cfg: cfg, killed: true}
	}
	s.observers = append(s.observers, o)
	return o
}

// Pin creates a pin owned by the scope. Errors are logged and yield an
// inert pin.
func (s *Scope) Pin(cfg PinConfig) *Pin {
	if s.reverted {
		return &Pin{page: s.page, cfg: cfg, killed: true}
	}
	pin, err := s.page.Pin(cfg)
	if err != nil {
		s.page.log.Warn("pin skipped", zap.String("scope", s.name), zap.Error(err))
		return &Pin{page: s.page, cfg: cfg, killed: true}
	}
	s.pins = append(s.pins, pin)
	return pin
}

// Tween registers a tween group with the page and the scope.
func (s *Scope) Tween(g *TweenGroup) *TweenGroup {
	if s.reverted {
		g.Stop()
		return g
	}
	s.tweens = append(s.tweens, g)
	return s.page.AddTween(g)
}

// OnScroll registers a scroll handler removed on Revert.
func (s *Scope) OnScroll(fn func(ScrollContext)) CallbackHandle {
	return s.track(s.page.OnScroll(fn))
}

// OnResize registers a resize handler removed on Revert.
func (s *Scope) OnResize(fn func(ResizeContext)) CallbackHandle {
	return s.track(s.page.OnResize(fn))
}

// OnKey registers a key handler removed on Revert.
func (s *Scope) OnKey(fn func(KeyContext)) CallbackHandle {
	return s.track(s.page.OnKey(fn))
}

// OnClick registers a click handler removed on Revert.
func (s *Scope) OnClick(fn func(ClickContext)) CallbackHandle {
	return s.track(s.page.OnClick(fn))
}

// OnFrame registers a per-frame handler removed on Revert.
func (s *Scope) OnFrame(fn func(FrameContext)) CallbackHandle {
	return s.track(s.page.OnFrame(fn))
}

func (s *Scope) track(h CallbackHandle) CallbackHandle {
	if s.reverted {
		h.Remove()
		return h
	}
	s.handles = append(s.handles, h)
	return h
}

// Defer registers fn to run on Revert, after everything else is torn down.
// Deferred functions run in reverse order.
func (s *Scope) Defer(fn func()) {
	if s.reverted {
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
}

// Revert synchronously tears the scope down: observers stop, pins release
// their elements, timelines restore every property they touched, handlers
// are removed. No callback registered through the scope fires afterwards,
// even if Revert runs from inside one of them.
func (s *Scope) Revert() {
	if s.reverted {
		return
	}
	s.reverted = true

	for _, o := range s.observers {
		o.Kill()
	}
	for _, h := range s.handles {
		h.Remove()
	}
	for _, g := range s.tweens {
		g.Stop()
	}
	for i := len(s.pins) - 1; i >= 0; i-- {
		s.pins[i].Revert()
	}
	for i := len(s.timelines) - 1; i >= 0; i-- {
		s.timelines[i].Revert()
	}
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		s.cleanups[i]()
	}
	s.observers, s.handles, s.tweens, s.pins, s.timelines, s.cleanups = nil, nil, nil, nil, nil, nil
	s.page.removeScope(s)
	s.page.debugf("scope %q reverted", s.name)
}
