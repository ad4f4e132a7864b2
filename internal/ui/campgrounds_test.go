package ui

import (
	"testing"

	"github.com/aryamadhavi03/githubs-pages/internal/model"
)

func TestCampgroundsApprovedOnly(t *testing.T) {
	m := NewCampgroundsModel([]model.Campground{
		{MongoID: "c1", Title: "First", Approved: true},
		{MongoID: "c2", Title: "Hidden"},
		{MongoID: "c3", Title: "Third", Approved: true},
	})

	visible := m.Visible()
	if len(visible) != 2 {
		t.Fatalf("visible = %d, want 2", len(visible))
	}
	if visible[0].Key() != "c1" || visible[1].Key() != "c3" {
		t.Errorf("server order not preserved: %v, %v", visible[0].Key(), visible[1].Key())
	}
}

func TestCampgroundsServerOrderPreserved(t *testing.T) {
	// Deliberately not alphabetical; the list must not reorder.
	m := NewCampgroundsModel([]model.Campground{
		{MongoID: "z", Title: "Zebra Flats", Approved: true},
		{MongoID: "a", Title: "Alpine Meadow", Approved: true},
		{MongoID: "m", Title: "Midway Camp", Approved: true},
	})

	visible := m.Visible()
	want := []string{"z", "a", "m"}
	for i, id := range want {
		if visible[i].Key() != id {
			t.Fatalf("position %d = %s, want %s", i, visible[i].Key(), id)
		}
	}
}

func TestCampgroundsCursor(t *testing.T) {
	m := NewCampgroundsModel([]model.Campground{
		{MongoID: "c1", Approved: true},
		{MongoID: "c2", Approved: true},
		{MongoID: "c3", Approved: true},
	})

	if m.SelectedID() != "c1" {
		t.Errorf("initial selection = %s", m.SelectedID())
	}
	m.MoveDown()
	m.MoveDown()
	if m.SelectedID() != "c3" {
		t.Errorf("after two downs = %s", m.SelectedID())
	}
	m.MoveDown()
	if m.SelectedID() != "c3" {
		t.Error("cursor should stop at the last row")
	}
	m.JumpToTop()
	if m.SelectedID() != "c1" {
		t.Errorf("after JumpToTop = %s", m.SelectedID())
	}
	m.JumpToBottom()
	if m.SelectedID() != "c3" {
		t.Errorf("after JumpToBottom = %s", m.SelectedID())
	}
	m.HalfPageUp(10)
	if m.SelectedID() != "c1" {
		t.Errorf("after HalfPageUp = %s", m.SelectedID())
	}
}

func TestCampgroundsEmptySelection(t *testing.T) {
	m := NewCampgroundsModel(nil)
	if m.SelectedID() != "" {
		t.Errorf("empty list selection = %q", m.SelectedID())
	}
	m.MoveDown()
	m.JumpToBottom()
	if m.SelectedID() != "" {
		t.Error("navigation on an empty list should stay empty")
	}
}
