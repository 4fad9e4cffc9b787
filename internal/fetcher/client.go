package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"go-async-exercises/internal/models"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
)

type UserService interface {
	GetUser(ctx context.Context, id int) (*models.User, error)
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// NewClient builds a users API client rooted at baseURL.
// A nil httpClient falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: u, http: httpClient}, nil
}

func (c *Client) userURL(id int) string {
	u := *c.baseURL
	u.Path = path.Join("/", u.Path, "users", strconv.Itoa(id))
	return u.String()
}

func (c *Client) GetUser(ctx context.Context, id int) (*models.User, error) {
	target := c.userURL(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("Fetching user", "url", target)
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, res.Body) // drain for connection reuse; never decoded
		return nil, &StatusError{StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrRequest, err)
	}
	return decodeUser(body)
}

// decodeUser accepts exactly one JSON object. Trailing data, null and
// non-object documents are decode failures.
func decodeUser(body []byte) (*models.User, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: body is not a JSON object", ErrDecode)
	}
	var user models.User
	if err := json.Unmarshal(trimmed, &user); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &user, nil
}
