package index

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Paintersrp/lens/internal/display"
	"github.com/Paintersrp/lens/internal/pathutil"
	"github.com/Paintersrp/lens/internal/vault"
)

// ErrClosed signals that the index service has been shut down and cannot be
// used to produce new snapshots.
var ErrClosed = errors.New("index service closed")

// ErrUnavailable indicates that the display index has not been built yet.
var ErrUnavailable = errors.New("display index unavailable")

// Stats captures lightweight instrumentation about the shared index.
type Stats struct {
	LastRebuild time.Time
	Pending     int
	Records     int
}

// Service owns the shared display index for a vault and coordinates
// incremental invalidations coming from the vault watcher. Watcher events
// funnel into QueueUpdate; consumers call AcquireSnapshot and get an index
// that already reflects every queued change.
type Service struct {
	mu          sync.RWMutex
	vault       *vault.Vault
	property    string
	index       *display.Index
	pending     map[string]struct{}
	lastRebuild time.Time
	closed      bool

	now    func() time.Time
	stat   func(string) (fs.FileInfo, error)
	maxAge time.Duration
}

// NewService constructs a vault-scoped index service deriving display names
// from the given front-matter property.
func NewService(v *vault.Vault, property string) *Service {
	return &Service{
		vault:    v,
		property: property,
		pending:  make(map[string]struct{}),
		now:      time.Now,
		stat:     os.Stat,
		maxAge:   time.Hour,
	}
}

// AcquireSnapshot returns an independent copy of the display index, building
// it or applying pending invalidations first as needed.
func (s *Service) AcquireSnapshot() (*display.Index, error) {
	if s == nil {
		return nil, ErrUnavailable
	}

	if err := s.ensureFresh(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}
	if s.index == nil {
		return nil, ErrUnavailable
	}

	return s.index.Clone(), nil
}

// QueueUpdate schedules a vault-relative path for targeted invalidation.
func (s *Service) QueueUpdate(rel string) {
	if s == nil {
		return
	}

	trimmed := strings.TrimSpace(rel)
	if trimmed == "" {
		return
	}

	normalized := filepath.ToSlash(trimmed)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.pending == nil {
		s.pending = make(map[string]struct{})
	}
	s.pending[normalized] = struct{}{}
}

// SetProperty changes the display property key. The current index is
// discarded so the next snapshot is derived from the new key.
func (s *Service) SetProperty(key string) {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || strings.TrimSpace(key) == "" || key == s.property {
		return
	}
	s.property = key
	s.index = nil
}

// Stats returns instrumentation about the index lifecycle.
func (s *Service) Stats() Stats {
	if s == nil {
		return Stats{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{LastRebuild: s.lastRebuild, Pending: len(s.pending)}
	if s.index != nil {
		st.Records = s.index.Len()
	}
	return st
}

// Close releases the service. Subsequent calls to AcquireSnapshot will return
// ErrClosed.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.index = nil
	s.pending = nil
	return nil
}

func (s *Service) ensureFresh() error {
	if s == nil {
		return ErrUnavailable
	}

	s.mu.RLock()
	closed := s.closed
	needsRebuild := s.index == nil
	if !needsRebuild && s.maxAge > 0 {
		needsRebuild = s.now().Sub(s.lastRebuild) > s.maxAge
	}
	hasPending := len(s.pending) > 0
	s.mu.RUnlock()

	if closed {
		return ErrClosed
	}

	if needsRebuild {
		if err := s.rebuild(); err != nil {
			return err
		}
	}

	if hasPending {
		if err := s.applyPending(); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) rebuild() error {
	s.mu.RLock()
	property := s.property
	s.mu.RUnlock()

	idx := display.NewIndex(s.vault, property)
	if err := idx.Rebuild(); err != nil {
		return fmt.Errorf("build display index: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.index = idx
	s.pending = make(map[string]struct{})
	s.lastRebuild = s.now()
	return nil
}

func (s *Service) applyPending() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.index == nil {
		return ErrUnavailable
	}
	if len(s.pending) == 0 {
		return nil
	}

	idx := s.index
	pending := s.pending
	s.pending = make(map[string]struct{})

	for rel := range pending {
		abs := filepath.Join(s.vault.Dir(), filepath.FromSlash(rel))
		normalized := pathutil.NormalizePath(abs)
		if normalized == "" {
			continue
		}

		info, err := s.stat(normalized)
		switch {
		case err == nil:
			if info.IsDir() {
				idx.Remove(normalized)
				continue
			}
			if err := idx.Invalidate(normalized); err != nil {
				return fmt.Errorf("invalidate %s: %w", normalized, err)
			}
		case errors.Is(err, fs.ErrNotExist):
			idx.Remove(normalized)
		default:
			return fmt.Errorf("stat %s: %w", normalized, err)
		}
	}

	return nil
}
