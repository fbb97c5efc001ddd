package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Store holds the current Site. Readers always see a complete record;
// reloads swap the pointer.
type Store struct {
	mu      sync.RWMutex
	site    *Site
	version int
	subs    []func(*Site)
}

// NewStore returns a store serving site.
func NewStore(site *Site) *Store {
	return &Store{site: site, version: 1}
}

// Site returns the current content. Callers must not mutate it.
func (s *Store) Site() *Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

// Version increments on every Set.
func (s *Store) Version() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Set replaces the content and notifies subscribers.
func (s *Store) Set(site *Site) {
	s.mu.Lock()
	s.site = site
	s.version++
	subs := make([]func(*Site), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(site)
	}
}

// OnChange registers fn to run after every Set.
func (s *Store) OnChange(fn func(*Site)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// DefaultDebounce is how long a content file must be quiet before it is
// reloaded.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads a content file into a Store when it changes. Editors
// that save by rename are handled by watching the parent directory.
type Watcher struct {
	store    *Store
	path     string
	log      *zap.Logger
	watcher  *fsnotify.Watcher
	Debounce time.Duration
}

// NewWatcher starts watching path. Events are only consumed once Run is
// called.
func NewWatcher(store *Store, path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch content: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch content: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch content: %w", err)
	}
	return &Watcher{
		store:    store,
		path:     abs,
		log:      log,
		watcher:  fw,
		Debounce: DefaultDebounce,
	}, nil
}

// Run processes file events until ctx is cancelled, then closes the
// underlying watcher. A file that fails to load is logged and the previous
// content stays live.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("content file changed", zap.String("op", event.Op.String()))
			reload = time.After(w.Debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("content watcher error", zap.Error(err))

		case <-reload:
			reload = nil
			site, err := Load(w.path)
			if err != nil {
				w.log.Warn("content reload failed; keeping previous content", zap.Error(err))
				continue
			}
			w.store.Set(site)
			w.log.Info("content reloaded",
				zap.String("path", w.path),
				zap.Int("version", w.store.Version()),
				zap.Int("portfolio", len(site.Portfolio)))
		}
	}
}
