package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aryamadhavi03/githubs-pages/internal/model"
)

type staticToken string

func (s staticToken) Token() (string, error) { return string(s), nil }

func TestListCampgrounds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/campgrounds" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("public list should not send Authorization, got %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]model.Campground{
			{MongoID: "c1", Title: "Riverside", Approved: true},
			{MongoID: "c2", Title: "Hilltop"},
		})
	}))
	defer server.Close()

	client := New(server.URL, staticToken(""))
	campgrounds, err := client.ListCampgrounds(context.Background())
	if err != nil {
		t.Fatalf("ListCampgrounds: %v", err)
	}
	if len(campgrounds) != 2 || campgrounds[0].Title != "Riverside" {
		t.Errorf("campgrounds = %+v", campgrounds)
	}
}

func TestAdminListSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/campgrounds" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok-123" {
			t.Errorf("Authorization = %q", auth)
		}
		json.NewEncoder(w).Encode([]model.Campground{})
	}))
	defer server.Close()

	client := New(server.URL, staticToken("tok-123"))
	if _, err := client.AdminListCampgrounds(context.Background()); err != nil {
		t.Fatalf("AdminListCampgrounds: %v", err)
	}
}

func TestNon2xxIsUniformError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, staticToken(""))
	_, err := client.GetCampground(context.Background(), "c1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Errorf("err = %v", err)
	}
}

func TestCreateCampgroundMultipart(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "site.jpg")
	if err := os.WriteFile(imgPath, []byte("fake image bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if got := r.FormValue("campground[title]"); got != "Riverside" {
			t.Errorf("campground[title] = %q", got)
		}
		if got := r.FormValue("campground[location]"); got != "Manali" {
			t.Errorf("campground[location] = %q", got)
		}
		if got := r.FormValue("campground[price]"); got != "1200" {
			t.Errorf("campground[price] = %q", got)
		}
		files := r.MultipartForm.File["image"]
		if len(files) != 1 || files[0].Filename != "site.jpg" {
			t.Errorf("image files = %+v", files)
		}
		if del := r.MultipartForm.Value["deleteImages[]"]; len(del) != 0 {
			t.Errorf("create should not carry deleteImages[], got %v", del)
		}
		json.NewEncoder(w).Encode(model.Campground{MongoID: "new1", Title: "Riverside"})
	}))
	defer server.Close()

	client := New(server.URL, staticToken("tok"))
	created, err := client.CreateCampground(context.Background(), model.CampgroundFields{
		Title:       "Riverside",
		Location:    "Manali",
		Description: "Pine forest by the river",
		Price:       "1200",
	}, []string{imgPath})
	if err != nil {
		t.Fatalf("CreateCampground: %v", err)
	}
	if created.Key() != "new1" {
		t.Errorf("created = %+v", created)
	}
}

func TestUpdateCampgroundCarriesDeletions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/campgrounds/c9" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		del := r.MultipartForm.Value["deleteImages[]"]
		if len(del) != 2 || del[0] != "old1.jpg" || del[1] != "old2.jpg" {
			t.Errorf("deleteImages[] = %v", del)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := New(server.URL, staticToken("tok"))
	err := client.UpdateCampground(context.Background(), "c9", model.CampgroundFields{
		Title:       "Updated title",
		Location:    "Updated place",
		Description: "Updated description",
		Price:       "900",
	}, nil, []string{"old1.jpg", "old2.jpg"})
	if err != nil {
		t.Fatalf("UpdateCampground: %v", err)
	}
}

func TestCreateCampgroundMissingFile(t *testing.T) {
	client := New("http://unused.invalid", staticToken("tok"))
	_, err := client.CreateCampground(context.Background(), model.CampgroundFields{}, []string{"/nope/missing.jpg"})
	if err == nil {
		t.Fatal("expected error for missing image file")
	}
	if !strings.Contains(err.Error(), "missing.jpg") {
		t.Errorf("err = %v", err)
	}
}

func TestAddReviewBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/campgrounds/c1/reviews" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var payload struct {
			Review struct {
				Rating  int    `json:"rating"`
				Content string `json:"content"`
			} `json:"review"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if payload.Review.Rating != 4 || payload.Review.Content != "Great spot" {
			t.Errorf("payload = %+v", payload)
		}
		json.NewEncoder(w).Encode(model.Review{MongoID: "r1", Rating: 4, Content: "Great spot"})
	}))
	defer server.Close()

	client := New(server.URL, staticToken("tok"))
	review, err := client.AddReview(context.Background(), "c1", 4, "Great spot")
	if err != nil {
		t.Fatalf("AddReview: %v", err)
	}
	if review.Key() != "r1" {
		t.Errorf("review = %+v", review)
	}
}

func TestApproveAndRevokePaths(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL, staticToken("tok"))
	if err := client.Approve(context.Background(), "c1"); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if err := client.Revoke(context.Background(), "c1"); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if len(paths) != 2 || paths[0] != "/campgrounds/c1/approve" || paths[1] != "/campgrounds/c1/revoke" {
		t.Errorf("paths = %v", paths)
	}
}

func TestLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["email"] != "sam@example.com" || creds["password"] != "hunter2" {
			t.Errorf("creds = %v", creds)
		}
		json.NewEncoder(w).Encode(model.AuthResponse{
			Success: true,
			Message: "Welcome back",
			Token:   "tok-xyz",
			User:    &model.UserRef{MongoID: "u1", Username: "sam"},
		})
	}))
	defer server.Close()

	client := New(server.URL, staticToken(""))
	auth, err := client.Login(context.Background(), "sam@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if auth.Token != "tok-xyz" || auth.User == nil || auth.User.Username != "sam" {
		t.Errorf("auth = %+v", auth)
	}
}

func TestLoginFailureSurfacesServerMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   model.AuthResponse
		want   string
	}{
		{"success flag false", http.StatusOK, model.AuthResponse{Success: false, Message: "Invalid credentials"}, "Invalid credentials"},
		{"ok but no token", http.StatusOK, model.AuthResponse{Success: true}, "authentication failed"},
		{"401 with message", http.StatusUnauthorized, model.AuthResponse{Message: "Invalid credentials"}, "Invalid credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(tt.body)
			}))
			defer server.Close()

			client := New(server.URL, staticToken(""))
			_, err := client.Login(context.Background(), "a@b.c", "pw")
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.want {
				t.Errorf("err = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoginFailureWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New(server.URL, staticToken(""))
	_, err := client.Login(context.Background(), "a@b.c", "pw")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status 401") {
		t.Errorf("err = %v", err)
	}
}

func TestProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/profile" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok" {
			t.Errorf("Authorization = %q", auth)
		}
		json.NewEncoder(w).Encode(model.UserRef{UserID: "u7", Username: "scout", IsAdmin: true})
	}))
	defer server.Close()

	client := New(server.URL, staticToken("tok"))
	user, err := client.Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if user.Key() != "u7" || !user.IsAdmin {
		t.Errorf("user = %+v", user)
	}
}
