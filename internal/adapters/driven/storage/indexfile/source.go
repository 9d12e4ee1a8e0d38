package indexfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
	"github.com/custodia-labs/topicsearch/internal/core/ports/driven"
	"github.com/custodia-labs/topicsearch/internal/logger"
)

// Verify interface compliance.
var _ driven.IndexSource = (*Source)(nil)

// DefaultReloadInterval is the minimum gap between reloads triggered by
// file events. Editors and build tools often emit bursts of writes.
const DefaultReloadInterval = 250 * time.Millisecond

// Source is a file-backed index source.
type Source struct {
	path     string
	format   Format
	recorder driven.SearchRecorder
	limiter  *rate.Limiter

	mu      sync.RWMutex
	entries []domain.IndexEntry
	loaded  bool
}

// NewSource creates a source for the index file at path. The file is not
// read until the first call to Entries. recorder may be nil.
func NewSource(path string, recorder driven.SearchRecorder) (*Source, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve index path: %w", err)
	}
	return &Source{
		path:     abs,
		format:   format,
		recorder: recorder,
		limiter:  rate.NewLimiter(rate.Every(DefaultReloadInterval), 1),
	}, nil
}

// Path returns the absolute path of the index file.
func (s *Source) Path() string {
	return s.path
}

// Entries returns the cached snapshot, loading the file on first use.
func (s *Source) Entries(ctx context.Context) ([]domain.IndexEntry, error) {
	s.mu.RLock()
	if s.loaded {
		entries := s.entries
		s.mu.RUnlock()
		return entries, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have loaded it while we waited.
	if s.loaded {
		return s.entries, nil
	}

	entries, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	s.entries = entries
	s.loaded = true
	return entries, nil
}

// Invalidate drops the cached snapshot so the next Entries call rereads
// the file.
func (s *Source) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.loaded = false
}

// Reload rereads the file and swaps the snapshot. On failure the previous
// snapshot is kept.
func (s *Source) Reload(ctx context.Context) error {
	entries, err := s.read(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries = entries
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Watch reloads the index whenever the file changes, until ctx is
// cancelled. Reloads are throttled to one per DefaultReloadInterval.
func (s *Source) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files by rename, which drops a
	// watch held on the file itself.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}
	logger.Debug("watching index %s", s.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !s.relevant(event) {
				continue
			}
			if err := s.limiter.Wait(ctx); err != nil {
				return nil
			}
			drain(watcher.Events)

			if err := s.Reload(ctx); err != nil {
				logger.Warn("reload index: %v", err)
				continue
			}
			logger.Info("index reloaded from %s", s.path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("index watcher: %v", err)
		}
	}
}

// relevant reports whether the event touches the index file contents.
func (s *Source) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != s.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// drain discards events queued during the throttle wait; the reload
// that follows covers them.
func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (s *Source) read(ctx context.Context) (entries []domain.IndexEntry, err error) {
	if s.recorder != nil {
		defer func() { s.recorder.ObserveReload(len(entries), err) }()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.path, domain.ErrIndexUnavailable)
		}
		return nil, fmt.Errorf("open index: %w", err)
	}
	defer f.Close()

	entries, err = Decode(f, s.format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	logger.Debug("loaded %d index entries from %s", len(entries), s.path)
	return entries, nil
}
