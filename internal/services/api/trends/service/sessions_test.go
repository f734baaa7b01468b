package service

import (
	"testing"
	"time"

	"dagsplott/internal/core/ngram"
)

func sampleSeries() ngram.Series {
	return ngram.Series{
		Words:  []string{"frihet"},
		Dates:  []time.Time{day(2023, 6, 12)},
		Values: [][]float64{{10}},
	}
}

func TestSessions_CommitThenGet(t *testing.T) {
	s := newSessions(time.Hour, nil)

	gen := s.begin("a")
	if !s.commit("a", gen, "k1", sampleSeries()) {
		t.Fatalf("expected commit to be kept")
	}

	got, ok := s.get("a", "k1")
	if !ok || got.Empty() {
		t.Fatalf("expected cached series")
	}
	if _, ok := s.get("a", "k2"); ok {
		t.Fatalf("different key must miss")
	}
	if _, ok := s.get("b", "k1"); ok {
		t.Fatalf("different session must miss")
	}
}

func TestSessions_StaleCommitDiscarded(t *testing.T) {
	s := newSessions(time.Hour, nil)

	old := s.begin("a")
	newer := s.begin("a")

	if s.commit("a", old, "k-old", sampleSeries()) {
		t.Fatalf("stale generation must be discarded")
	}
	if !s.commit("a", newer, "k-new", sampleSeries()) {
		t.Fatalf("latest generation must win")
	}
	if _, ok := s.get("a", "k-old"); ok {
		t.Fatalf("stale snapshot visible")
	}
	if _, ok := s.get("a", "k-new"); !ok {
		t.Fatalf("latest snapshot missing")
	}
}

func TestSessions_TTLExpiry(t *testing.T) {
	clock := day(2023, 6, 12)
	now := func() time.Time { return clock }
	s := newSessions(time.Minute, now)

	gen := s.begin("a")
	s.commit("a", gen, "k", sampleSeries())

	clock = clock.Add(2 * time.Minute)
	s.sweep()
	if s.count() != 0 {
		t.Fatalf("expected sweep to drop expired session got %d", s.count())
	}
	if _, ok := s.get("a", "k"); ok {
		t.Fatalf("expected snapshot expired")
	}
}
