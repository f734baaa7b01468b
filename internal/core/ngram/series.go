// Package ngram implements the word-frequency normalization pipeline:
// ratio normalization against a reference series, window slicing around a
// mid date, Sunday masking and trailing rolling-mean smoothing.
package ngram

import (
	"math"
	"sort"
	"time"
)

const (
	// MaxDays is the half-width of the fetch super-window in days.
	// Raw series cover [mid-MaxDays, mid+MaxDays] so later re-slicing to a
	// smaller period never needs a refetch.
	MaxDays = 7400

	// MinDays is the smallest allowed period size; it also pads the lower
	// bound of the adjusted window
	MinDays = 3
)

// WindowFloor is the earliest date an adjusted window may start at.
// The newspaper corpus has no usable daily coverage before it.
var WindowFloor = time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC)

// Series is a dense daily matrix of per-word frequencies.
// Dates are UTC midnights sorted ascending with no duplicates; Values holds
// one row per date, one column per word, NaN marking a masked cell.
// Word order is significant for display and survives every pipeline stage.
type Series struct {
	Words  []string    `json:"words"`
	Dates  []time.Time `json:"dates"`
	Values [][]float64 `json:"values"`
}

// Empty reports whether the series has no dates or no words
func (s Series) Empty() bool { return len(s.Dates) == 0 || len(s.Words) == 0 }

// Clone returns a deep copy so pipeline stages never mutate their input
func (s Series) Clone() Series {
	out := Series{
		Words:  append([]string(nil), s.Words...),
		Dates:  append([]time.Time(nil), s.Dates...),
		Values: make([][]float64, len(s.Values)),
	}
	for i, row := range s.Values {
		out.Values[i] = append([]float64(nil), row...)
	}
	return out
}

// sortByDate orders rows ascending by date, stable on equal dates
func (s *Series) sortByDate() {
	idx := make([]int, len(s.Dates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return s.Dates[idx[a]].Before(s.Dates[idx[b]]) })
	dates := make([]time.Time, len(idx))
	values := make([][]float64, len(idx))
	for i, j := range idx {
		dates[i] = s.Dates[j]
		values[i] = s.Values[j]
	}
	s.Dates = dates
	s.Values = values
}

// Day truncates t to a UTC midnight, the canonical date key of the pipeline
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// isNaN is a tiny alias so pipeline code reads as intent
func isNaN(v float64) bool { return math.IsNaN(v) }
