package wordlist_test

import (
	"fmt"
	"strings"
	"testing"

	"dagsplott/internal/core/wordlist"
)

func TestParse_TrimsAndDedupes(t *testing.T) {
	got := wordlist.Parse(" frihet , likhet,frihet,  ,brorskap ")
	want := []string{"frihet", "likhet", "brorskap"}
	if len(got) != len(want) {
		t.Fatalf("expected %d words got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected word %d to be %q got %q", i, want[i], got[i])
		}
	}
}

func TestParse_PreservesFirstSeenOrder(t *testing.T) {
	got := wordlist.Parse("b,a,c,a,b")
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v got %v", want, got)
		}
	}
}

func TestParse_CapsAtMaxWords(t *testing.T) {
	parts := make([]string, 0, wordlist.MaxWords+10)
	for i := 0; i < wordlist.MaxWords+10; i++ {
		parts = append(parts, fmt.Sprintf("w%d", i))
	}
	got := wordlist.Parse(strings.Join(parts, ","))
	if len(got) != wordlist.MaxWords {
		t.Fatalf("expected cap at %d got %d", wordlist.MaxWords, len(got))
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if got := wordlist.Parse(""); len(got) != 0 {
		t.Fatalf("expected no words got %v", got)
	}
	if got := wordlist.Parse(" , ,, "); len(got) != 0 {
		t.Fatalf("expected no words got %v", got)
	}
}

func TestParseComparison_EmptyMeansNoComparison(t *testing.T) {
	if got := wordlist.ParseComparison(""); got != nil {
		t.Fatalf("expected nil got %v", got)
	}
}

func TestParseComparison_NamedWords(t *testing.T) {
	got := wordlist.ParseComparison("og,i")
	want := []string{"og", "i"}
	if len(got) != len(want) {
		t.Fatalf("expected %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v got %v", want, got)
		}
	}
}

func TestParseComparison_EmptyElementYieldsSentinelFirst(t *testing.T) {
	got := wordlist.ParseComparison("og,i,")
	if len(got) != 3 || got[0] != wordlist.CompareAll {
		t.Fatalf("expected sentinel first got %v", got)
	}
	if got[1] != "og" || got[2] != "i" {
		t.Fatalf("expected named words after sentinel got %v", got)
	}
}

func TestParseComparison_WhitespaceOnlyIsSentinel(t *testing.T) {
	got := wordlist.ParseComparison("  ")
	if len(got) != 1 || got[0] != wordlist.CompareAll {
		t.Fatalf("expected bare sentinel got %v", got)
	}
}
