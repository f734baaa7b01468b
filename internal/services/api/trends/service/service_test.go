package service

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"dagsplott/internal/adapters/titles"
	"dagsplott/internal/core/ngram"
	perr "dagsplott/internal/platform/errors"
	"dagsplott/internal/services/api/trends/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fakeCorpus records calls and serves a canned series
type fakeCorpus struct {
	mu    sync.Mutex
	calls [][]string
	fail  bool
}

func (f *fakeCorpus) NgramCounts(_ context.Context, words []string, _, _ time.Time, _ string) (ngram.Series, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]string(nil), words...))
	if f.fail {
		return ngram.Series{}, perr.Upstreamf("corpus down")
	}
	dates := []time.Time{day(2023, 6, 12), day(2023, 6, 13), day(2023, 6, 14)}
	values := make([][]float64, len(dates))
	for i := range dates {
		row := make([]float64, len(words))
		for j := range words {
			row[j] = 10
		}
		values[i] = row
	}
	return ngram.Series{Words: words, Dates: dates, Values: values}, nil
}

func (f *fakeCorpus) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestSvc(t *testing.T, fc *fakeCorpus) *Svc {
	t.Helper()
	catalog := titles.Load(filepath.Join(t.TempDir(), "missing.csv"))
	s := New(fc, catalog, Config{SessionTTL: time.Hour})
	s.now = func() time.Time { return day(2023, 6, 20) }
	s.newID = func() string { return "11111111-1111-4111-8111-111111111111" }
	return s
}

func chartInput() domain.ChartInput {
	return domain.ChartInput{
		Query: domain.Query{
			Words:      "frihet",
			MidDate:    "2023-06-15",
			PeriodSize: 10,
		},
	}
}

func TestChart_FetchesAndRenders(t *testing.T) {
	fc := &fakeCorpus{}
	s := newTestSvc(t, fc)

	out, err := s.Chart(context.Background(), chartInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State != StateOK {
		t.Fatalf("expected ok state got %q", out.State)
	}
	if out.Cached {
		t.Fatalf("first resolve must not report cached")
	}
	if fc.callCount() != 1 {
		t.Fatalf("expected 1 corpus call got %d", fc.callCount())
	}
	if out.SessionID == "" {
		t.Fatalf("expected a session id")
	}
	if len(out.Figure.Data) != 1 || out.Figure.Data[0].Name != "frihet" {
		t.Fatalf("expected one trace for frihet got %+v", out.Figure.Data)
	}
}

func TestChart_CosmeticChangeReusesSnapshot(t *testing.T) {
	fc := &fakeCorpus{}
	s := newTestSvc(t, fc)

	first, err := s.Chart(context.Background(), chartInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := chartInput()
	in.SessionID = first.SessionID
	in.Render = domain.RenderOpts{Theme: "plotly_dark", Smooth: 7, Width: 1.5}

	second, err := s.Chart(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Cached {
		t.Fatalf("expected cosmetic rerender to reuse the snapshot")
	}
	if fc.callCount() != 1 {
		t.Fatalf("expected no refetch got %d calls", fc.callCount())
	}
	if second.Figure.Layout.Template != "plotly_dark" {
		t.Fatalf("render options not applied: %q", second.Figure.Layout.Template)
	}
}

func TestChart_DataChangeRefetches(t *testing.T) {
	fc := &fakeCorpus{}
	s := newTestSvc(t, fc)

	first, err := s.Chart(context.Background(), chartInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := chartInput()
	in.SessionID = first.SessionID
	in.Query.Words = "frihet, likhet"

	second, err := s.Chart(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Cached {
		t.Fatalf("expected data change to refetch")
	}
	if fc.callCount() != 2 {
		t.Fatalf("expected 2 corpus calls got %d", fc.callCount())
	}
}

func TestChart_ComparisonFetchesReference(t *testing.T) {
	fc := &fakeCorpus{}
	s := newTestSvc(t, fc)

	in := chartInput()
	in.Query.Compare = "og,"

	out, err := s.Chart(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State != StateOK {
		t.Fatalf("expected ok state got %q", out.State)
	}
	if fc.callCount() != 2 {
		t.Fatalf("expected counts plus reference fetch got %d", fc.callCount())
	}
	ref := fc.calls[1]
	if ref[0] != "," || ref[1] != "og" {
		t.Fatalf("expected sentinel-first reference wordbag got %v", ref)
	}
}

func TestChart_UpstreamFailureDegradesToEmpty(t *testing.T) {
	fc := &fakeCorpus{fail: true}
	s := newTestSvc(t, fc)

	out, err := s.Chart(context.Background(), chartInput())
	if err != nil {
		t.Fatalf("failures must degrade, not error: %v", err)
	}
	if out.State != StateEmpty {
		t.Fatalf("expected empty state got %q", out.State)
	}
	if len(out.Figure.Data) != 0 {
		t.Fatalf("expected no traces got %d", len(out.Figure.Data))
	}
}

func TestChart_InvalidInputs(t *testing.T) {
	s := newTestSvc(t, &fakeCorpus{})

	in := chartInput()
	in.Query.MidDate = "15.06.2023"
	if _, err := s.Chart(context.Background(), in); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for bad date got %v", err)
	}

	in = chartInput()
	in.Query.Words = " , ,"
	if _, err := s.Chart(context.Background(), in); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for empty words got %v", err)
	}
}

func TestChart_SummaryAndLinks(t *testing.T) {
	s := newTestSvc(t, &fakeCorpus{})

	out, err := s.Chart(context.Background(), chartInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Søk: frihet | Publikasjon: Alle | Periode: 2023-06-05 til 2023-06-25"
	if out.Summary != want {
		t.Fatalf("expected summary %q got %q", want, out.Summary)
	}
	if len(out.Links) != 1 {
		t.Fatalf("expected one link got %d", len(out.Links))
	}
	if out.Links[0].Word != "frihet" || !strings.Contains(out.Links[0].URL, "q=frihet") {
		t.Fatalf("unexpected link %+v", out.Links[0])
	}
}

func TestSeries_ParallelArrays(t *testing.T) {
	s := newTestSvc(t, &fakeCorpus{})

	out, err := s.Series(context.Background(), domain.SeriesInput{Query: chartInput().Query})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State != StateOK {
		t.Fatalf("expected ok state got %q", out.State)
	}
	if len(out.Dates) != len(out.Values) {
		t.Fatalf("dates and values out of step: %d vs %d", len(out.Dates), len(out.Values))
	}
	for i, row := range out.Values {
		if len(row) != len(out.Words) {
			t.Fatalf("row %d width %d does not match %d words", i, len(row), len(out.Words))
		}
	}
}

func TestExport_DefaultFilename(t *testing.T) {
	s := newTestSvc(t, &fakeCorpus{})

	out, err := s.Export(context.Background(), domain.ExportInput{Query: chartInput().Query})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Filename != "dagsplott_2023-06-20_2023-06-20.xlsx" {
		t.Fatalf("unexpected default filename %q", out.Filename)
	}
	if len(out.Content) == 0 {
		t.Fatalf("expected workbook bytes")
	}
}

func TestExport_FilenameExtension(t *testing.T) {
	s := newTestSvc(t, &fakeCorpus{})

	out, err := s.Export(context.Background(), domain.ExportInput{Query: chartInput().Query, Filename: "minfil"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Filename != "minfil.xlsx" {
		t.Fatalf("expected appended extension got %q", out.Filename)
	}

	out, err = s.Export(context.Background(), domain.ExportInput{Query: chartInput().Query, Filename: "egen.xlsx"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Filename != "egen.xlsx" {
		t.Fatalf("expected filename kept got %q", out.Filename)
	}
}

func TestTitles_FallbackCatalogue(t *testing.T) {
	s := newTestSvc(t, &fakeCorpus{})

	out, err := s.Titles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 1 || out.Titles[0] != titles.Fallback {
		t.Fatalf("expected fallback catalogue got %+v", out)
	}
}
