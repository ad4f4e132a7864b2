package ui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aryamadhavi03/githubs-pages/internal/api"
	"github.com/aryamadhavi03/githubs-pages/internal/model"
	"github.com/aryamadhavi03/githubs-pages/internal/upload"
)

type formToken string

func (f formToken) Token() (string, error) { return string(f), nil }

func noPreview(string) (string, error) { return "", nil }

func fillValidFields(m *CampgroundFormModel) {
	m.inputs[fieldTitle].SetValue("Riverbend Pines")
	m.inputs[fieldLocation].SetValue("Manali, Himachal Pradesh")
	m.inputs[fieldDescription].SetValue("Quiet pine grove right on the river.")
	m.inputs[fieldPrice].SetValue("450")
}

func TestCreateWithoutImagesMakesNoRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := api.New(server.URL, formToken("tok"))
	m := NewCampgroundFormModel(client, "", upload.NewSet(noPreview))
	fillValidFields(m)

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	errMsg, ok := cmd().(model.ErrorMsg)
	if !ok {
		t.Fatalf("expected ErrorMsg, got %T", cmd())
	}
	if !strings.Contains(errMsg.Err.Error(), "attach at least one photo") {
		t.Errorf("error = %q", errMsg.Err)
	}
	if requests != 0 {
		t.Errorf("server saw %d requests, want 0", requests)
	}
}

func TestInvalidFieldsBlockSubmit(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := api.New(server.URL, formToken("tok"))
	m := NewCampgroundFormModel(client, "", upload.NewSet(noPreview))
	fillValidFields(m)
	m.inputs[fieldTitle].SetValue("ab")

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	errMsg, ok := cmd().(model.ErrorMsg)
	if !ok {
		t.Fatalf("expected ErrorMsg, got %T", cmd())
	}
	if !strings.Contains(errMsg.Err.Error(), "Title must be at least 3 characters") {
		t.Errorf("error = %q", errMsg.Err)
	}
	if requests != 0 {
		t.Errorf("server saw %d requests, want 0", requests)
	}
}

func TestSuccessfulCreateReleasesUploads(t *testing.T) {
	dir := t.TempDir()
	photo := filepath.Join(dir, "site.jpg")
	if err := os.WriteFile(photo, []byte("jpeg bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/campgrounds" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"c42","title":"Riverbend Pines"}`))
	}))
	defer server.Close()

	client := api.New(server.URL, formToken("tok"))
	uploads := upload.NewSet(noPreview)
	m := NewCampgroundFormModel(client, "", uploads)
	fillValidFields(m)
	m.inputs[fieldImagePath].SetValue(photo)
	m.focusedField = fieldImagePath
	m.attachImage()
	if uploads.Len() != 1 {
		t.Fatalf("uploads = %d, want 1", uploads.Len())
	}

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	created, ok := cmd().(model.CampgroundCreatedMsg)
	if !ok {
		t.Fatalf("expected CampgroundCreatedMsg, got %T", cmd())
	}
	if created.Campground.Key() != "c42" {
		t.Errorf("created id = %s", created.Campground.Key())
	}
	if uploads.Len() != 0 {
		t.Errorf("uploads = %d after submit, want 0", uploads.Len())
	}
}

func TestEditPrefillAndDeletionMarks(t *testing.T) {
	client := api.New("http://unused", formToken("tok"))
	m := NewCampgroundFormModel(client, "c7", upload.NewSet(noPreview))
	if !m.Loading() {
		t.Fatal("edit form should wait for prefill")
	}

	m.LoadCampground(model.Campground{
		MongoID:     "c7",
		Title:       "Old Title",
		Location:    "Somewhere",
		Description: "desc long enough",
		Price:       450,
		Images: []model.Image{
			{Filename: "a.jpg"}, {Filename: "b.jpg"},
		},
	})
	if m.Loading() {
		t.Fatal("prefill should clear loading")
	}
	if got := m.inputs[fieldPrice].Value(); got != "450" {
		t.Errorf("price prefill = %q, want 450", got)
	}

	m.focusedField = fieldImageList
	m.imageCursor = 1
	m.removeImageAtCursor()
	if got := m.DeleteFilenames(); len(got) != 1 || got[0] != "b.jpg" {
		t.Errorf("DeleteFilenames = %v, want [b.jpg]", got)
	}
	// Removing again unmarks instead of deleting twice.
	m.removeImageAtCursor()
	if got := m.DeleteFilenames(); len(got) != 0 {
		t.Errorf("DeleteFilenames after toggle = %v, want empty", got)
	}
}

func TestEscapeReleasesUploads(t *testing.T) {
	uploads := upload.NewSet(noPreview)
	uploads.Add("somewhere.jpg")
	client := api.New("http://unused", formToken(""))
	m := NewCampgroundFormModel(client, "", uploads)

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(model.FormCancelledMsg); !ok {
		t.Fatalf("expected FormCancelledMsg, got %T", cmd())
	}
	if uploads.Len() != 0 {
		t.Errorf("uploads = %d after cancel, want 0", uploads.Len())
	}
}
