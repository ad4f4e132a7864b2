package validate

import (
	"testing"

	"github.com/aryamadhavi03/githubs-pages/internal/model"
)

func validFields() model.CampgroundFields {
	return model.CampgroundFields{
		Title:       "Riverside Retreat",
		Location:    "Manali, Himachal Pradesh",
		Description: "Pine forest site right on the river bank.",
		Price:       "1200",
	}
}

func TestCampgroundValid(t *testing.T) {
	errs := Campground(validFields())
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestCampgroundTitleTooShort(t *testing.T) {
	f := validFields()
	f.Title = "ab"
	errs := Campground(f)
	if errs["title"] != "Title must be at least 3 characters" {
		t.Errorf("title error = %q", errs["title"])
	}
}

func TestCampgroundLocationTooShort(t *testing.T) {
	f := validFields()
	f.Location = "x"
	errs := Campground(f)
	if _, ok := errs["location"]; !ok {
		t.Error("expected location error")
	}
}

func TestCampgroundDescriptionTooShort(t *testing.T) {
	f := validFields()
	f.Description = "too short"
	errs := Campground(f)
	if _, ok := errs["description"]; !ok {
		t.Error("expected description error")
	}
}

func TestCampgroundPrice(t *testing.T) {
	tests := []struct {
		price   string
		wantErr bool
	}{
		{"1200", false},
		{"0.5", false},
		{" 450 ", false},
		{"0", true},
		{"-5", true},
		{"abc", true},
		{"", true},
	}
	for _, tt := range tests {
		f := validFields()
		f.Price = tt.price
		errs := Campground(f)
		_, got := errs["price"]
		if got != tt.wantErr {
			t.Errorf("price %q: error = %v, want %v", tt.price, got, tt.wantErr)
		}
	}
}

func TestCampgroundEmptyFormFailsEverything(t *testing.T) {
	errs := Campground(model.CampgroundFields{})
	for _, field := range []string{"title", "location", "description", "price"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s on empty form", field)
		}
	}
}
