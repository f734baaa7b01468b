package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"dagsplott/internal/adapters/export"
	"dagsplott/internal/core/ngram"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func open(t *testing.T, b []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue("Sheet1", ref)
	if err != nil {
		t.Fatalf("read cell %s: %v", ref, err)
	}
	return v
}

func TestXlsx_DateIndexFirstColumn(t *testing.T) {
	s := ngram.Series{
		Words: []string{"frihet", "likhet"},
		Dates: []time.Time{day(2023, 6, 14), day(2023, 6, 15)},
		Values: [][]float64{
			{1, 10},
			{2, 20},
		},
	}
	b, err := export.Xlsx(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := open(t, b)
	if got := cell(t, f, "A1"); got != "date" {
		t.Fatalf("expected date header got %q", got)
	}
	if got := cell(t, f, "B1"); got != "frihet" {
		t.Fatalf("expected word header got %q", got)
	}
	if got := cell(t, f, "C1"); got != "likhet" {
		t.Fatalf("expected word header got %q", got)
	}
	if got := cell(t, f, "A2"); got != "2023-06-14" {
		t.Fatalf("expected ISO date got %q", got)
	}
	if got := cell(t, f, "C3"); got != "20" {
		t.Fatalf("expected value 20 got %q", got)
	}
}

func TestXlsx_EmptySeriesHeaderOnly(t *testing.T) {
	b, err := export.Xlsx(ngram.Series{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := open(t, b)
	if got := cell(t, f, "A1"); got != "date" {
		t.Fatalf("expected lone date header got %q", got)
	}
	if got := cell(t, f, "A2"); got != "" {
		t.Fatalf("expected no data rows got %q", got)
	}
}

func TestXlsx_TruncatedIntegers(t *testing.T) {
	s := ngram.Series{
		Words:  []string{"frihet"},
		Dates:  []time.Time{day(2023, 6, 14)},
		Values: [][]float64{{7}},
	}
	b, err := export.Xlsx(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := open(t, b)
	if got := cell(t, f, "B2"); got != "7" {
		t.Fatalf("expected integer cell got %q", got)
	}
}
