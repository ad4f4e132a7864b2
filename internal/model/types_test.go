package model

import "testing"

func TestUserRefKeyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		user UserRef
		want string
	}{
		{"mongo id wins", UserRef{MongoID: "m1", AltID: "a1", UserID: "u1"}, "m1"},
		{"alt id next", UserRef{AltID: "a1", UserID: "u1"}, "a1"},
		{"user id last", UserRef{UserID: "u1"}, "u1"},
		{"all empty", UserRef{Username: "sam"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserRefKeyNil(t *testing.T) {
	var u *UserRef
	if got := u.Key(); got != "" {
		t.Errorf("nil Key() = %q, want empty", got)
	}
}

func TestSameUser(t *testing.T) {
	tests := []struct {
		name string
		a, b *UserRef
		want bool
	}{
		{"mongo vs alt alias", &UserRef{MongoID: "abc"}, &UserRef{AltID: "abc"}, true},
		{"mongo vs userId alias", &UserRef{MongoID: "abc"}, &UserRef{UserID: "abc"}, true},
		{"different ids", &UserRef{MongoID: "abc"}, &UserRef{MongoID: "def"}, false},
		{"both empty never match", &UserRef{}, &UserRef{}, false},
		{"one empty", &UserRef{MongoID: "abc"}, &UserRef{}, false},
		{"nil never matches", nil, &UserRef{MongoID: "abc"}, false},
		{"both nil", nil, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameUser(tt.a, tt.b); got != tt.want {
				t.Errorf("SameUser() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCampgroundKey(t *testing.T) {
	c := Campground{MongoID: "m1", AltID: "a1"}
	if c.Key() != "m1" {
		t.Errorf("Key() = %q, want m1", c.Key())
	}
	c = Campground{AltID: "a1"}
	if c.Key() != "a1" {
		t.Errorf("Key() = %q, want a1", c.Key())
	}
}

func TestGeometry(t *testing.T) {
	g := &Geometry{Type: "Point", Coordinates: []float64{77.59, 12.97}}
	if !g.Valid() {
		t.Fatal("expected valid geometry")
	}
	if g.Lng() != 77.59 || g.Lat() != 12.97 {
		t.Errorf("got (%v, %v), want (77.59, 12.97)", g.Lng(), g.Lat())
	}

	var nilGeom *Geometry
	if nilGeom.Valid() {
		t.Error("nil geometry should not be valid")
	}
	if nilGeom.Lng() != 0 || nilGeom.Lat() != 0 {
		t.Error("nil geometry coordinates should be zero")
	}

	short := &Geometry{Coordinates: []float64{77.59}}
	if short.Valid() {
		t.Error("single-coordinate geometry should not be valid")
	}
}
