package upload

import (
	"errors"
	"testing"
)

func TestAddGeneratesPreview(t *testing.T) {
	calls := 0
	set := NewSet(func(path string) (string, error) {
		calls++
		return "art:" + path, nil
	})

	p := set.Add("/tmp/a.jpg")
	if p.Key == "" {
		t.Error("expected a generated key")
	}
	if p.Preview != "art:/tmp/a.jpg" {
		t.Errorf("preview = %q", p.Preview)
	}
	if calls != 1 {
		t.Errorf("render calls = %d, want 1", calls)
	}
	if set.Len() != 1 {
		t.Errorf("Len = %d, want 1", set.Len())
	}
}

func TestAddKeepsEntryOnPreviewFailure(t *testing.T) {
	renderErr := errors.New("decode failed")
	set := NewSet(func(string) (string, error) {
		return "", renderErr
	})

	p := set.Add("/tmp/broken.jpg")
	if !errors.Is(p.PreviewErr, renderErr) {
		t.Errorf("PreviewErr = %v", p.PreviewErr)
	}
	if set.Len() != 1 {
		t.Error("a preview failure must not reject the file")
	}
	if got := set.Paths(); len(got) != 1 || got[0] != "/tmp/broken.jpg" {
		t.Errorf("Paths = %v", got)
	}
}

func TestRemove(t *testing.T) {
	set := NewSet(func(string) (string, error) { return "x", nil })
	a := set.Add("/tmp/a.jpg")
	set.Add("/tmp/b.jpg")

	if !set.Remove(a.Key) {
		t.Fatal("Remove returned false for a known key")
	}
	if set.Len() != 1 {
		t.Errorf("Len = %d, want 1", set.Len())
	}
	if got := set.Paths(); got[0] != "/tmp/b.jpg" {
		t.Errorf("Paths = %v", got)
	}
	if set.Remove(a.Key) {
		t.Error("Remove should return false for a missing key")
	}
}

func TestReleaseAll(t *testing.T) {
	set := NewSet(func(string) (string, error) { return "x", nil })
	set.Add("/tmp/a.jpg")
	set.Add("/tmp/b.jpg")

	set.ReleaseAll()
	if set.Len() != 0 {
		t.Errorf("Len = %d after ReleaseAll", set.Len())
	}
	if len(set.Paths()) != 0 {
		t.Error("Paths should be empty after ReleaseAll")
	}
}

func TestPathsPreserveSelectionOrder(t *testing.T) {
	set := NewSet(nil)
	set.Add("/a")
	set.Add("/b")
	set.Add("/c")

	got := set.Paths()
	want := []string{"/a", "/b", "/c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Paths = %v, want %v", got, want)
		}
	}
}
