package service

import (
	"sync"
	"time"

	"dagsplott/internal/core/ngram"
)

// snapshot is a cached normalized super-window series keyed by the data
// inputs that produced it
type snapshot struct {
	key      string
	series   ngram.Series
	storedAt time.Time
}

type sessionEntry struct {
	snap *snapshot

	// gen increments every time a fetch starts for this session; a commit
	// carrying a stale generation is discarded so the latest fetch wins
	gen uint64
}

// sessions is an in-memory per-session snapshot store with lazy expiry
type sessions struct {
	mu  sync.Mutex
	m   map[string]*sessionEntry
	ttl time.Duration
	now func() time.Time
}

func newSessions(ttl time.Duration, now func() time.Time) *sessions {
	if now == nil {
		now = time.Now
	}
	return &sessions{m: make(map[string]*sessionEntry), ttl: ttl, now: now}
}

// get returns the cached series when the session holds a fresh snapshot for
// exactly this data-input key
func (s *sessions) get(id, key string) (ngram.Series, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.m[id]
	if e == nil || e.snap == nil || e.snap.key != key {
		return ngram.Series{}, false
	}
	if s.ttl > 0 && s.now().Sub(e.snap.storedAt) > s.ttl {
		e.snap = nil
		return ngram.Series{}, false
	}
	return e.snap.series, true
}

// begin marks the start of a fetch and returns the generation token the
// eventual commit must present
func (s *sessions) begin(id string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.m[id]
	if e == nil {
		e = &sessionEntry{}
		s.m[id] = e
	}
	e.gen++
	return e.gen
}

// commit stores a snapshot unless a newer fetch has started since gen was
// issued. Reports whether the snapshot was kept.
func (s *sessions) commit(id string, gen uint64, key string, series ngram.Series) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.m[id]
	if e == nil || e.gen != gen {
		return false
	}
	e.snap = &snapshot{key: key, series: series, storedAt: s.now()}
	return true
}

// sweep drops sessions whose snapshot expired; called opportunistically
func (s *sessions) sweep() {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	for id, e := range s.m {
		if e.snap != nil && e.snap.storedAt.Before(cutoff) {
			delete(s.m, id)
		}
	}
}

func (s *sessions) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}
