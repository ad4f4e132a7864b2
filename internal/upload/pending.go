package upload

import "github.com/google/uuid"

// RenderFunc turns an image file on disk into a terminal preview. The UI
// supplies one backed by the graphics package; tests supply stubs.
type RenderFunc func(path string) (string, error)

// Pending is one image selected for upload but not yet submitted: the file
// path plus a locally generated preview that lives only as long as the
// entry does.
type Pending struct {
	Key        string
	Path       string
	Preview    string
	PreviewErr error
}

// Set holds the images attached to a form between selection and submit.
// Previews are acquired on Add and released on Remove or ReleaseAll,
// including the successful-submit path, so nothing outlives its form.
type Set struct {
	render RenderFunc
	items  []Pending
}

// NewSet creates an empty pending set using render for previews.
func NewSet(render RenderFunc) *Set {
	return &Set{render: render}
}

// Add selects a file and generates its preview. A preview failure is
// recorded on the entry rather than rejecting the file; the upload itself
// may still succeed.
func (s *Set) Add(path string) Pending {
	p := Pending{
		Key:  uuid.NewString(),
		Path: path,
	}
	if s.render != nil {
		p.Preview, p.PreviewErr = s.render(path)
	}
	s.items = append(s.items, p)
	return p
}

// Remove drops one entry by key, releasing its preview immediately.
// Returns false when no entry matches.
func (s *Set) Remove(key string) bool {
	for i := range s.items {
		if s.items[i].Key == key {
			s.items[i].Preview = ""
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// ReleaseAll drops every entry and its preview. Called on cancel, on
// leaving the form, and on successful submit.
func (s *Set) ReleaseAll() {
	for i := range s.items {
		s.items[i].Preview = ""
	}
	s.items = nil
}

// Items returns the current entries in selection order.
func (s *Set) Items() []Pending {
	return s.items
}

// Paths returns the file paths in selection order, for submission.
func (s *Set) Paths() []string {
	paths := make([]string, 0, len(s.items))
	for _, p := range s.items {
		paths = append(paths, p.Path)
	}
	return paths
}

// Len returns the number of pending images.
func (s *Set) Len() int {
	return len(s.items)
}
