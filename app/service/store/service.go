// Package store keeps per-conversation interview state in memory. Entries
// expire after the configured session lifetime; a periodic sweep is the only
// deletion path.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"schuldenkompass/app/config"
	"schuldenkompass/app/service/interview"

	"github.com/elliotchance/pie/v2"
	"github.com/samber/do"
)

// Entry wraps one conversation's state with its own mutex. Holding the mutex
// while processing a message gives single-writer-per-conversation semantics.
type Entry struct {
	Mu    sync.Mutex
	State *interview.State
}

type Service struct {
	cfg *config.Config

	mu      sync.RWMutex
	entries map[string]*Entry
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		cfg:     do.MustInvoke[*config.Config](di),
		entries: make(map[string]*Entry),
	}, nil
}

// GetOrCreate returns the entry for a conversation id, creating fresh state
// on first contact. The second return value reports whether it was created.
func (s *Service) GetOrCreate(id string) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[id]; ok {
		return entry, false
	}

	entry := &Entry{State: interview.NewState()}
	s.entries[id] = entry

	return entry, true
}

func (s *Service) Get(id string) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]

	return entry, ok
}

func (s *Service) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
}

func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Sweep removes every conversation idle for longer than maxAge and returns
// the number of removed entries. The scan is linear in store size.
func (s *Service) Sweep(maxAge time.Duration) int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}

	expired := pie.Filter(ids, func(id string) bool {
		return now.Sub(s.entries[id].State.LastActivityAt) > maxAge
	})

	for _, id := range expired {
		delete(s.entries, id)
	}

	return len(expired)
}

// RunSweepLoop periodically evicts expired conversations until the context
// is cancelled.
func (s *Service) RunSweepLoop(ctx context.Context) {
	interval := time.Duration(s.cfg.Session.SweepIntervalMinutes) * time.Minute
	maxAge := time.Duration(s.cfg.Session.LifetimeHours) * time.Hour

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(maxAge); removed > 0 {
				slog.Info("Swept expired conversations",
					"removed", removed,
					"remaining", s.Len())
			}
		}
	}
}
