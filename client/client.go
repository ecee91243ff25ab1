// Package client is a typed Go client for the site API. Authenticated calls
// take an explicit Session; the client itself holds no credentials.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jacsonsite/models"
)

// Session is what a successful login yields.
type Session struct {
	UserID   string
	Username string
	Token    string
}

// APIError is a non-2xx reply.
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Field, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	lang    string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLanguage sets Accept-Language so error messages come back localized.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.lang = lang }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do sends in as JSON (when non-nil) and decodes the reply into out (when
// non-nil). An empty token makes an anonymous call.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.lang != "" {
		req.Header.Set("Accept-Language", c.lang)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var e struct {
			Message string `json:"message"`
			Field   string `json:"field"`
		}
		if json.NewDecoder(resp.Body).Decode(&e) == nil {
			apiErr.Message, apiErr.Field = e.Message, e.Field
		}
		return apiErr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", "", nil, nil)
}

func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	var resp struct {
		ID       string `json:"_id"`
		Username string `json:"username"`
		Token    string `json:"token"`
	}
	in := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", in, &resp); err != nil {
		return Session{}, err
	}
	return Session{UserID: resp.ID, Username: resp.Username, Token: resp.Token}, nil
}

func (c *Client) ChangePassword(ctx context.Context, s Session, oldPassword, newPassword string) error {
	in := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.do(ctx, http.MethodPost, "/api/auth/change-password", s.Token, in, nil)
}

// Me validates the session and returns its account.
func (c *Client) Me(ctx context.Context, s Session) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodGet, "/api/auth/me", s.Token, nil, &u)
	return u, err
}

// Catalog addresses one slug-keyed collection.
type Catalog struct {
	c    *Client
	path string
}

func (c *Client) Services() Catalog { return Catalog{c: c, path: "/api/services"} }
func (c *Client) Projects() Catalog { return Catalog{c: c, path: "/api/projects"} }

func (cat Catalog) List(ctx context.Context) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	err := cat.c.do(ctx, http.MethodGet, cat.path, "", nil, &items)
	return items, err
}

func (cat Catalog) Get(ctx context.Context, id string) (models.CatalogItem, error) {
	var item models.CatalogItem
	err := cat.c.do(ctx, http.MethodGet, cat.path+"/"+url.PathEscape(id), "", nil, &item)
	return item, err
}

func (cat Catalog) Create(ctx context.Context, s Session, p models.CatalogPatch) (models.CatalogItem, error) {
	var item models.CatalogItem
	err := cat.c.do(ctx, http.MethodPost, cat.path, s.Token, p, &item)
	return item, err
}

func (cat Catalog) Update(ctx context.Context, s Session, id string, p models.CatalogPatch) (models.CatalogItem, error) {
	var item models.CatalogItem
	err := cat.c.do(ctx, http.MethodPut, cat.path+"/"+url.PathEscape(id), s.Token, p, &item)
	return item, err
}

func (cat Catalog) Delete(ctx context.Context, s Session, id string) error {
	return cat.c.do(ctx, http.MethodDelete, cat.path+"/"+url.PathEscape(id), s.Token, nil, nil)
}
