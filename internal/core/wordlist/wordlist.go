// Package wordlist parses user word queries into clean search tokens
package wordlist

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// MaxWords caps how many unique words a single query may carry
	MaxWords = 30

	// CompareAll is the sentinel token meaning "compare against the whole corpus"
	// it is produced when the comparison list contains an empty element
	CompareAll = ","
)

// fold trims and NFC-normalizes a token so composed and decomposed
// spellings of the same word (vanlig for æøå input) collapse to one column
func fold(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Parse splits a comma-separated word query into unique trimmed tokens.
// First-seen order is preserved (it drives chart column order) and the
// result is capped at MaxWords. Empty tokens are dropped.
func Parse(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		w := fold(p)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == MaxWords {
			break
		}
	}
	return out
}

// ParseComparison parses the reference (denominator) word list. An empty
// element anywhere in the list means "compare against everything" and is
// encoded as the CompareAll sentinel placed first, ahead of any named words.
func ParseComparison(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	words := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	hasEmpty := false
	for _, p := range parts {
		w := fold(p)
		if w == "" {
			hasEmpty = true
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	if hasEmpty {
		return append([]string{CompareAll}, words...)
	}
	return words
}
