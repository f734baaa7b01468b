package ngram_test

import (
	"math"
	"testing"
	"time"

	"dagsplott/internal/core/ngram"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seriesOf(words []string, dates []time.Time, values [][]float64) ngram.Series {
	return ngram.Series{Words: words, Dates: dates, Values: values}
}

func TestSumColumns_TotalsPerDate(t *testing.T) {
	s := seriesOf(
		[]string{"og", "i"},
		[]time.Time{day(2023, 1, 2), day(2023, 1, 3)},
		[][]float64{{10, 30}, {5, 5}},
	)
	ref := ngram.SumColumns(s)
	if got := ref[day(2023, 1, 2)]; got != 40 {
		t.Fatalf("expected total 40 got %v", got)
	}
	if got := ref[day(2023, 1, 3)]; got != 10 {
		t.Fatalf("expected total 10 got %v", got)
	}
}

func TestSumColumns_SkipsNulls(t *testing.T) {
	s := seriesOf(
		[]string{"og", "i"},
		[]time.Time{day(2023, 1, 2)},
		[][]float64{{math.NaN(), 7}},
	)
	ref := ngram.SumColumns(s)
	if got := ref[day(2023, 1, 2)]; got != 7 {
		t.Fatalf("expected null-skipping total 7 got %v", got)
	}
}

func TestSumColumns_Empty(t *testing.T) {
	if ref := ngram.SumColumns(ngram.Series{}); ref != nil {
		t.Fatalf("expected nil reference got %v", ref)
	}
}

func TestNormalize_NoReferenceIsIdentity(t *testing.T) {
	s := seriesOf(
		[]string{"frihet"},
		[]time.Time{day(2023, 1, 2)},
		[][]float64{{42}},
	)
	got := ngram.Normalize(s, nil)
	if got.Values[0][0] != 42 {
		t.Fatalf("expected identity got %v", got.Values[0][0])
	}
}

func TestNormalize_DividesByReferenceTotal(t *testing.T) {
	s := seriesOf(
		[]string{"frihet"},
		[]time.Time{day(2023, 1, 2), day(2023, 1, 3)},
		[][]float64{{10}, {3}},
	)
	ref := ngram.Reference{
		day(2023, 1, 2): 100,
		day(2023, 1, 3): 10,
	}
	got := ngram.Normalize(s, ref)
	if got.Values[0][0] != 0.1 {
		t.Fatalf("expected 0.1 got %v", got.Values[0][0])
	}
	if got.Values[1][0] != 0.3 {
		t.Fatalf("expected 0.3 got %v", got.Values[1][0])
	}
}

func TestNormalize_ZeroReferenceYieldsZero(t *testing.T) {
	s := seriesOf(
		[]string{"frihet"},
		[]time.Time{day(2023, 1, 2), day(2023, 1, 3)},
		[][]float64{{10}, {10}},
	)
	// one date has a zero total, the other is simply missing
	ref := ngram.Reference{day(2023, 1, 2): 0}
	got := ngram.Normalize(s, ref)
	for i := range got.Values {
		if got.Values[i][0] != 0 {
			t.Fatalf("expected zero at row %d got %v", i, got.Values[i][0])
		}
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	s := seriesOf(
		[]string{"frihet"},
		[]time.Time{day(2023, 1, 2)},
		[][]float64{{10}},
	)
	_ = ngram.Normalize(s, ngram.Reference{day(2023, 1, 2): 2})
	if s.Values[0][0] != 10 {
		t.Fatalf("input mutated: got %v", s.Values[0][0])
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	got := ngram.Normalize(ngram.Series{}, ngram.Reference{day(2023, 1, 2): 1})
	if !got.Empty() {
		t.Fatalf("expected empty output")
	}
}
