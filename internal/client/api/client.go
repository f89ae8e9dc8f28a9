// Package api is a typed client of the travel story REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/travelstory-server/internal/model"
)

// Error is a failed API call. Message is the server-provided text.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 answer.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// StoryInput is the editable content of a story.
type StoryInput struct {
	Title           string
	Story           string
	VisitedLocation []string
	ImageURL        string
	VisitedDate     time.Time
}

func (in StoryInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title           string   `json:"title"`
		Story           string   `json:"story"`
		VisitedLocation []string `json:"visitedLocation"`
		ImageURL        string   `json:"imageUrl,omitempty"`
		VisitedDate     int64    `json:"visitedDate"`
	}{
		Title:           in.Title,
		Story:           in.Story,
		VisitedLocation: in.VisitedLocation,
		ImageURL:        in.ImageURL,
		VisitedDate:     in.VisitedDate.UnixMilli(),
	})
}

// Client calls the REST API and holds the bearer token of the signed-in user.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a Client for baseURL. A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Logout forgets the bearer token.
func (c *Client) Logout() {
	c.SetToken("")
}

type sessionResponse struct {
	AccessToken string `json:"accessToken"`
	User        struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
	} `json:"user"`
}

// Register creates an account and keeps the issued token.
func (c *Client) Register(ctx context.Context, fullName, email, password string) (model.Profile, error) {
	body := map[string]string{"fullName": fullName, "email": email, "password": password}
	return c.startSession(ctx, "/create-account", body)
}

// Login signs in and keeps the issued token.
func (c *Client) Login(ctx context.Context, email, password string) (model.Profile, error) {
	body := map[string]string{"email": email, "password": password}
	return c.startSession(ctx, "/login", body)
}

func (c *Client) startSession(ctx context.Context, path string, body any) (model.Profile, error) {
	var resp sessionResponse
	if err := c.doJSON(ctx, http.MethodPost, path, body, &resp); err != nil {
		return model.Profile{}, err
	}
	c.SetToken(resp.AccessToken)
	return model.Profile{FullName: resp.User.FullName, Email: resp.User.Email}, nil
}

func (c *Client) GetUser(ctx context.Context) (model.Profile, error) {
	var resp struct {
		User model.Profile `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/get-user", nil, &resp); err != nil {
		return model.Profile{}, err
	}
	return resp.User, nil
}

// UploadImage sends the file as the "image" form field and returns its hosted URL.
// The part content type is derived from the file name extension.
func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filepath.Base(filename)))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finish form: %w", err)
	}

	var resp struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.do(ctx, http.MethodPost, "/image-upload", &buf, mw.FormDataContentType(), &resp); err != nil {
		return "", err
	}
	return resp.ImageURL, nil
}

func (c *Client) DeleteImage(ctx context.Context, imageURL string) error {
	path := "/delete-image?" + url.Values{"imageUrl": {imageURL}}.Encode()
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

type storyResponse struct {
	Story model.Story `json:"story"`
}

type storiesResponse struct {
	Stories []model.Story `json:"stories"`
}

func (c *Client) AddStory(ctx context.Context, in StoryInput) (model.Story, error) {
	var resp storyResponse
	err := c.doJSON(ctx, http.MethodPost, "/add-travel-story", in, &resp)
	return resp.Story, err
}

func (c *Client) ListStories(ctx context.Context) ([]model.Story, error) {
	var resp storiesResponse
	err := c.doJSON(ctx, http.MethodGet, "/get-all-stories", nil, &resp)
	return resp.Stories, err
}

func (c *Client) GetStory(ctx context.Context, id uuid.UUID) (model.Story, error) {
	var resp storyResponse
	err := c.doJSON(ctx, http.MethodGet, "/get-story/"+id.String(), nil, &resp)
	return resp.Story, err
}

func (c *Client) EditStory(ctx context.Context, id uuid.UUID, in StoryInput) (model.Story, error) {
	var resp storyResponse
	err := c.doJSON(ctx, http.MethodPost, "/edit-story/"+id.String(), in, &resp)
	return resp.Story, err
}

func (c *Client) DeleteStory(ctx context.Context, id uuid.UUID) error {
	return c.doJSON(ctx, http.MethodDelete, "/delete-story/"+id.String(), nil, nil)
}

func (c *Client) SetFavourite(ctx context.Context, id uuid.UUID, isFavourite bool) (model.Story, error) {
	var resp storyResponse
	body := map[string]bool{"isFavourite": isFavourite}
	err := c.doJSON(ctx, http.MethodPut, "/update-is-favourite/"+id.String(), body, &resp)
	return resp.Story, err
}

func (c *Client) SearchStories(ctx context.Context, query string) ([]model.Story, error) {
	var resp storiesResponse
	path := "/search?" + url.Values{"query": {query}}.Encode()
	err := c.doJSON(ctx, http.MethodGet, path, nil, &resp)
	return resp.Stories, err
}

// FilterStoriesByDate asks the server for stories visited within [start, end].
func (c *Client) FilterStoriesByDate(ctx context.Context, start, end time.Time) ([]model.Story, error) {
	var resp storiesResponse
	path := "/travel-stories/filter?" + url.Values{
		"startDate": {strconv.FormatInt(start.UnixMilli(), 10)},
		"endDate":   {strconv.FormatInt(end.UnixMilli(), 10)},
	}.Encode()
	err := c.doJSON(ctx, http.MethodGet, path, nil, &resp)
	return resp.Stories, err
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	if body == nil {
		return c.do(ctx, method, path, nil, "", out)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.do(ctx, method, path, bytes.NewReader(data), "application/json", out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(data, &body); err != nil || body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode)
	}
	return &Error{StatusCode: resp.StatusCode, Message: body.Message}
}
