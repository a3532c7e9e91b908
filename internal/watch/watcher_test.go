package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestPollDetectsModification(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "index.html")
	writeFile(t, page, "<div>one</div>")

	w := New(Config{Path: dir, Exts: []string{".html"}})
	var got []Change
	w.OnChange(func(c Change) { got = append(got, c) })

	// First poll establishes the baseline and reports the new file.
	w.Poll()
	if len(got) != 1 || got[0].Path != page || got[0].Deleted {
		t.Fatalf("initial poll: %+v", got)
	}

	got = nil
	w.Poll()
	if len(got) != 0 {
		t.Fatalf("unchanged poll reported %+v", got)
	}

	// Force the mtime forward so the change is visible regardless of
	// filesystem timestamp granularity.
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(page, future, future); err != nil {
		t.Fatal(err)
	}
	w.Poll()
	if len(got) != 1 || got[0].Path != page {
		t.Fatalf("modified poll: %+v", got)
	}
}

func TestPollDetectsDeletion(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "about.html")
	writeFile(t, page, "<p>hi</p>")

	w := New(Config{Path: dir, Exts: []string{".html"}})
	w.Poll()

	var got []Change
	w.OnChange(func(c Change) { got = append(got, c) })

	if err := os.Remove(page); err != nil {
		t.Fatal(err)
	}
	w.Poll()
	if len(got) != 1 || !got[0].Deleted || got[0].Path != page {
		t.Fatalf("deletion poll: %+v", got)
	}
}

func TestExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignore me")
	writeFile(t, filepath.Join(dir, "home.html"), "<div/>")

	w := New(Config{Path: dir, Exts: []string{".html"}})
	var got []Change
	w.OnChange(func(c Change) { got = append(got, c) })

	w.Poll()
	if len(got) != 1 || filepath.Base(got[0].Path) != "home.html" {
		t.Fatalf("filter poll: %+v", got)
	}
}
