// Package titles loads the publication title catalogue offered by the
// publication filter dropdown
package titles

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"dagsplott/internal/platform/logger"
)

// Fallback is served when the catalogue file is missing or unreadable so the
// dropdown always has at least one entry
const Fallback = "No titles available"

const column = "title"

// List is an immutable in-memory title catalogue
type List struct {
	titles []string
}

// Load reads titles from a CSV file with a "title" header column. Any load
// failure degrades to the fallback catalogue; the caller keeps running.
func Load(path string) *List {
	log := logger.Named("titles")

	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("title catalogue unavailable, using fallback")
		return &List{titles: []string{Fallback}}
	}
	defer func() { _ = f.Close() }()

	ts, err := parse(f)
	if err != nil || len(ts) == 0 {
		log.Warn().Err(err).Str("path", path).Msg("title catalogue unreadable, using fallback")
		return &List{titles: []string{Fallback}}
	}

	log.Info().Str("path", path).Int("count", len(ts)).Msg("title catalogue loaded")
	return &List{titles: ts}
}

func parse(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	col := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), column) {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, nil
	}

	var out []string
	seen := make(map[string]bool)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if col >= len(rec) {
			continue
		}
		t := strings.TrimSpace(rec[col])
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}

// All returns the catalogue in file order
func (l *List) All() []string {
	out := make([]string, len(l.titles))
	copy(out, l.titles)
	return out
}

// Count returns the catalogue size
func (l *List) Count() int { return len(l.titles) }

// Contains reports whether t is a known title
func (l *List) Contains(t string) bool {
	for _, have := range l.titles {
		if have == t {
			return true
		}
	}
	return false
}
