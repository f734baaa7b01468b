package titles_test

import (
	"os"
	"path/filepath"
	"testing"

	"dagsplott/internal/adapters/titles"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "titles.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_ReadsTitleColumn(t *testing.T) {
	path := writeCSV(t, "id,title\n1,aftenposten\n2,vg\n3,aftenposten\n4,\n")
	l := titles.Load(path)

	got := l.All()
	want := []string{"aftenposten", "vg"}
	if len(got) != len(want) {
		t.Fatalf("expected %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v got %v", want, got)
		}
	}
	if l.Count() != 2 {
		t.Fatalf("expected count 2 got %d", l.Count())
	}
}

func TestLoad_HeaderCaseInsensitive(t *testing.T) {
	path := writeCSV(t, "Title\naftenposten\n")
	l := titles.Load(path)
	if l.Count() != 1 || !l.Contains("aftenposten") {
		t.Fatalf("expected title loaded got %v", l.All())
	}
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	l := titles.Load(filepath.Join(t.TempDir(), "nope.csv"))
	if l.Count() != 1 || l.All()[0] != titles.Fallback {
		t.Fatalf("expected fallback got %v", l.All())
	}
}

func TestLoad_MissingColumnFallsBack(t *testing.T) {
	path := writeCSV(t, "id,name\n1,aftenposten\n")
	l := titles.Load(path)
	if l.Count() != 1 || l.All()[0] != titles.Fallback {
		t.Fatalf("expected fallback got %v", l.All())
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	path := writeCSV(t, "title\naftenposten\n")
	l := titles.Load(path)

	got := l.All()
	got[0] = "mutated"
	if l.All()[0] != "aftenposten" {
		t.Fatalf("catalogue mutated through All")
	}
}
