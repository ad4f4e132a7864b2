package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/aryamadhavi03/githubs-pages/internal/model"
)

// TokenSource supplies the persisted bearer token. The session store
// satisfies it; tests use a literal.
type TokenSource interface {
	Token() (string, error)
}

// Client wraps the campground REST API. One instance is configured at
// startup and shared by every screen.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New creates a new API client for the given base URL.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		tokens:     tokens,
	}
}

// newRequest builds a request against the base URL. When auth is set the
// persisted bearer token, if any, goes into the Authorization header.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, auth bool) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if auth && c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("reading session token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// do executes a request and decodes the JSON response into out when out is
// non-nil. Transport failures and non-2xx statuses are reported uniformly;
// callers never branch on the status code.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("JSON decode error: %w", err)
	}
	return nil
}

// ListCampgrounds fetches every publicly listed campground. Approval
// filtering is the list screen's job, not the client's.
func (c *Client) ListCampgrounds(ctx context.Context) ([]model.Campground, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/campgrounds", nil, false)
	if err != nil {
		return nil, err
	}
	var campgrounds []model.Campground
	if err := c.do(req, &campgrounds); err != nil {
		return nil, err
	}
	return campgrounds, nil
}

// AdminListCampgrounds fetches the unfiltered campground set. Admin only;
// the server enforces that, the client just presents the result.
func (c *Client) AdminListCampgrounds(ctx context.Context) ([]model.Campground, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/admin/campgrounds", nil, true)
	if err != nil {
		return nil, err
	}
	var campgrounds []model.Campground
	if err := c.do(req, &campgrounds); err != nil {
		return nil, err
	}
	return campgrounds, nil
}

// GetCampground fetches one full campground record, reviews and author
// included.
func (c *Client) GetCampground(ctx context.Context, id string) (model.Campground, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/campgrounds/"+id, nil, false)
	if err != nil {
		return model.Campground{}, err
	}
	var campground model.Campground
	if err := c.do(req, &campground); err != nil {
		return model.Campground{}, err
	}
	return campground, nil
}

// CreateCampground submits a new campground as a multipart form: each text
// field under campground[<name>], each image file under image.
func (c *Client) CreateCampground(ctx context.Context, fields model.CampgroundFields, imagePaths []string) (model.Campground, error) {
	body, contentType, err := buildCampgroundForm(fields, imagePaths, nil)
	if err != nil {
		return model.Campground{}, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/campgrounds", body, true)
	if err != nil {
		return model.Campground{}, err
	}
	req.Header.Set("Content-Type", contentType)

	var campground model.Campground
	if err := c.do(req, &campground); err != nil {
		return model.Campground{}, err
	}
	return campground, nil
}

// UpdateCampground submits field changes, newly attached image files, and
// the filenames of existing images marked for deletion.
func (c *Client) UpdateCampground(ctx context.Context, id string, fields model.CampgroundFields, imagePaths, deleteFilenames []string) error {
	body, contentType, err := buildCampgroundForm(fields, imagePaths, deleteFilenames)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPut, "/campgrounds/"+id, body, true)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, nil)
}

// DeleteCampground deletes one campground.
func (c *Client) DeleteCampground(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/campgrounds/"+id, nil, true)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// AddReview posts a review against one campground and returns the created
// record.
func (c *Client) AddReview(ctx context.Context, campgroundID string, rating int, content string) (model.Review, error) {
	payload := map[string]interface{}{
		"review": map[string]interface{}{
			"rating":  rating,
			"content": content,
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return model.Review{}, fmt.Errorf("encoding review: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/campgrounds/"+campgroundID+"/reviews", bytes.NewReader(data), true)
	if err != nil {
		return model.Review{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var review model.Review
	if err := c.do(req, &review); err != nil {
		return model.Review{}, err
	}
	return review, nil
}

// DeleteReview deletes one review from one campground.
func (c *Client) DeleteReview(ctx context.Context, campgroundID, reviewID string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/campgrounds/"+campgroundID+"/reviews/"+reviewID, nil, true)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// Approve sets a campground's approval flag on the server.
func (c *Client) Approve(ctx context.Context, id string) error {
	return c.postEmpty(ctx, "/campgrounds/"+id+"/approve")
}

// Revoke clears a campground's approval flag on the server.
func (c *Client) Revoke(ctx context.Context, id string) error {
	return c.postEmpty(ctx, "/campgrounds/"+id+"/revoke")
}

func (c *Client) postEmpty(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, true)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// Profile fetches the current user's record for the persisted token.
func (c *Client) Profile(ctx context.Context) (model.UserRef, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/profile", nil, true)
	if err != nil {
		return model.UserRef{}, err
	}
	var user model.UserRef
	if err := c.do(req, &user); err != nil {
		return model.UserRef{}, err
	}
	return user, nil
}

// Login exchanges credentials for a token. The upstream response mixes a
// success flag with HTTP status signaling; both collapse into a plain
// error here so callers see exactly one failure convention.
func (c *Client) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	return c.auth(ctx, "/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Register creates an account and logs it in, same response shape as Login.
func (c *Client) Register(ctx context.Context, username, email, password string) (model.AuthResponse, error) {
	return c.auth(ctx, "/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
}

func (c *Client) auth(ctx context.Context, path string, creds map[string]string) (model.AuthResponse, error) {
	data, err := json.Marshal(creds)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("encoding credentials: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(data), false)
	if err != nil {
		return model.AuthResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	// Decode before checking the status: failed auth responses still carry
	// a server message worth surfacing.
	var auth model.AuthResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&auth)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && auth.Message != "" {
			return model.AuthResponse{}, fmt.Errorf("%s", auth.Message)
		}
		return model.AuthResponse{}, fmt.Errorf("API error: status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return model.AuthResponse{}, fmt.Errorf("JSON decode error: %w", decodeErr)
	}
	if !auth.Success || auth.Token == "" {
		msg := auth.Message
		if msg == "" {
			msg = "authentication failed"
		}
		return model.AuthResponse{}, fmt.Errorf("%s", msg)
	}
	return auth, nil
}

// Logout notifies the server. Best effort: clearing the local session is
// what actually ends the session on this side.
func (c *Client) Logout(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/logout", nil, true)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// FetchImage downloads a campground image for terminal rendering.
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API error: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// buildCampgroundForm assembles the multipart body shared by create and
// update.
func buildCampgroundForm(fields model.CampgroundFields, imagePaths, deleteFilenames []string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	formValues := map[string]string{
		"campground[title]":       fields.Title,
		"campground[location]":    fields.Location,
		"campground[description]": fields.Description,
		"campground[price]":       fields.Price,
	}
	for name, value := range formValues {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("writing form field: %w", err)
		}
	}

	for _, path := range imagePaths {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("opening image %s: %w", filepath.Base(path), err)
		}
		part, err := writer.CreateFormFile("image", filepath.Base(path))
		if err != nil {
			f.Close()
			return nil, "", fmt.Errorf("writing image part: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("copying image %s: %w", filepath.Base(path), err)
		}
		f.Close()
	}

	for _, filename := range deleteFilenames {
		if err := writer.WriteField("deleteImages[]", filename); err != nil {
			return nil, "", fmt.Errorf("writing delete field: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}
