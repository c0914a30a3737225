package bookmarks

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/filetug/dirbuf/pkg/listing"
	"go.uber.org/zap"
)

var ErrInvalidKey = errors.New("invalid bookmark key")

// Store is the in-memory bookmark map. It is owned by a single goroutine;
// only the hand-off to the background writer is synchronized.
type Store struct {
	persister Persister
	logger    *zap.Logger

	marks  map[string]string
	closed bool

	mu      sync.Mutex
	pending map[string]string
	dirty   bool

	wake chan struct{}
	done chan struct{}
}

// Open loads bookmarks from p and starts the writer.
func Open(p Persister, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	marks, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("loading bookmarks: %w", err)
	}
	if marks == nil {
		marks = make(map[string]string)
	}
	s := &Store{
		persister: p,
		logger:    logger,
		marks:     marks,
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	go s.writer()
	return s, nil
}

// ValidKey reports whether key can be rendered and parsed back from a
// "[key] path/" line.
func ValidKey(key string) bool {
	return key != "" && !strings.ContainsAny(key, "[]\n\r") && strings.TrimSpace(key) == key
}

// Add inserts or replaces the bookmark for key.
func (s *Store) Add(key, path string) error {
	if !ValidKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	s.marks[key] = filepath.Clean(path)
	s.schedule()
	return nil
}

// Remove deletes key and reports whether it existed.
func (s *Store) Remove(key string) bool {
	if _, ok := s.marks[key]; !ok {
		return false
	}
	delete(s.marks, key)
	s.schedule()
	return true
}

func (s *Store) Lookup(key string) (string, bool) {
	path, ok := s.marks[key]
	return path, ok
}

func (s *Store) Len() int {
	return len(s.marks)
}

// All returns bookmarks ordered by key.
func (s *Store) All() []listing.Bookmark {
	all := make([]listing.Bookmark, 0, len(s.marks))
	for key, path := range s.marks {
		all = append(all, listing.Bookmark{Key: key, Path: path})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Key < all[j].Key
	})
	return all
}

// Keys returns the bookmark keys in order.
func (s *Store) Keys() []string {
	all := s.All()
	keys := make([]string, len(all))
	for i, b := range all {
		keys[i] = b.Key
	}
	return keys
}

// Close waits for the last scheduled snapshot to be written.
func (s *Store) Close() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.wake)
	<-s.done
}

func (s *Store) snapshot() map[string]string {
	snap := make(map[string]string, len(s.marks))
	for k, v := range s.marks {
		snap[k] = v
	}
	return snap
}

func (s *Store) schedule() {
	if s.closed {
		s.logger.Warn("bookmark store is closed, change not persisted")
		return
	}
	s.mu.Lock()
	s.pending = s.snapshot()
	s.dirty = true
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Store) writer() {
	defer close(s.done)
	for range s.wake {
		s.flush()
	}
	s.flush()
}

func (s *Store) flush() {
	s.mu.Lock()
	snap, dirty := s.pending, s.dirty
	s.pending, s.dirty = nil, false
	s.mu.Unlock()
	if !dirty {
		return
	}
	if err := s.persister.Save(snap); err != nil {
		s.logger.Warn("failed to save bookmarks", zap.Int("count", len(snap)), zap.Error(err))
	}
}
