package session

import (
	"path/filepath"
	"testing"

	"github.com/aryamadhavi03/githubs-pages/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEmptySession(t *testing.T) {
	store := openTestStore(t)

	token, err := store.Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if token != "" {
		t.Errorf("token = %q, want empty", token)
	}
	if store.IsAuthenticated() {
		t.Error("fresh store should not be authenticated")
	}
	if store.IsAdmin() {
		t.Error("fresh store should not be admin")
	}
	user, err := store.User()
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if user != nil {
		t.Errorf("user = %+v, want nil", user)
	}
}

func TestSetSessionRoundTrip(t *testing.T) {
	store := openTestStore(t)

	err := store.SetSession(model.UserRef{
		MongoID:  "u123",
		Username: "ranger",
		Email:    "ranger@example.com",
		IsAdmin:  true,
	}, "tok-abc")
	if err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	token, err := store.Token()
	if err != nil || token != "tok-abc" {
		t.Errorf("token = %q, %v; want tok-abc", token, err)
	}
	if !store.IsAuthenticated() {
		t.Error("expected authenticated after SetSession")
	}
	if !store.IsAdmin() {
		t.Error("expected admin flag set")
	}
	user, err := store.User()
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if user == nil || user.Username != "ranger" || user.Key() != "u123" {
		t.Errorf("user = %+v", user)
	}
}

func TestSetSessionNonAdmin(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetSession(model.UserRef{MongoID: "u1", Username: "sam"}, "t"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if store.IsAdmin() {
		t.Error("non-admin user should not set the admin flag")
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetSession(model.UserRef{MongoID: "u1", IsAdmin: true}, "tok"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if err := store.SetReturnTo("admin"); err != nil {
		t.Fatalf("SetReturnTo: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if store.IsAuthenticated() || store.IsAdmin() {
		t.Error("flags should be cleared")
	}
	token, _ := store.Token()
	if token != "" {
		t.Errorf("token = %q after Clear", token)
	}
	target, _ := store.TakeReturnTo()
	if target != "" {
		t.Errorf("return target = %q after Clear", target)
	}
}

func TestReturnToIsOneShot(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetReturnTo("admin"); err != nil {
		t.Fatalf("SetReturnTo: %v", err)
	}
	target, err := store.TakeReturnTo()
	if err != nil {
		t.Fatalf("TakeReturnTo: %v", err)
	}
	if target != "admin" {
		t.Errorf("target = %q, want admin", target)
	}

	target, err = store.TakeReturnTo()
	if err != nil {
		t.Fatalf("second TakeReturnTo: %v", err)
	}
	if target != "" {
		t.Errorf("second take = %q, want empty", target)
	}
}

func TestSetSessionOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetSession(model.UserRef{MongoID: "u1", IsAdmin: true}, "first"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if err := store.SetSession(model.UserRef{MongoID: "u2"}, "second"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	token, _ := store.Token()
	if token != "second" {
		t.Errorf("token = %q, want second", token)
	}
	if store.IsAdmin() {
		t.Error("admin flag should follow the latest user")
	}
	user, _ := store.User()
	if user == nil || user.Key() != "u2" {
		t.Errorf("user = %+v, want u2", user)
	}
}
