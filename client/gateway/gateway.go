// File: /client/gateway/gateway.go

// Package gateway is the thin HTTP boundary between the client flows and the
// REST backend. Every call is a single best-effort attempt: no retries, no
// timeout policy beyond the transport's. Callers own user-facing messaging.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// Envelope is the common part of every backend response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Post is a feed entry. Field names are the canonical wire names: filepath,
// latitude and longitude, never the legacy image/lat/lng variants.
type Post struct {
	ID        int       `json:"id"`
	User      string    `json:"user"`
	Caption   string    `json:"caption"`
	Filepath  string    `json:"filepath"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Likes     int       `json:"likes"`
	Comments  []Comment `json:"comments"`
	IsMine    bool      `json:"is_mine"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	User string `json:"user"`
	Text string `json:"text"`
}

type Photo struct {
	ID        int      `json:"id"`
	Filepath  string   `json:"filepath"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Title     string   `json:"title"`
}

type User struct {
	Email     string `json:"email"`
	Kibidango int    `json:"kibidango"`
}

// Typed payloads for the endpoints the flows consume.

type AllPostsResponse struct {
	Envelope
	Posts   []Post `json:"posts"`
	MyLikes []int  `json:"my_likes"`
}

type PhotoListResponse struct {
	Envelope
	Photos []Photo `json:"photos"`
}

type UploadResponse struct {
	Envelope
	ID       int    `json:"id"`
	Filepath string `json:"filepath"`
}

type MeResponse struct {
	Envelope
	LoggedIn bool  `json:"logged_in"`
	User     *User `json:"user"`
}

// Client issues requests against a single backend base URL. The cookie jar
// carries the session across calls.
type Client struct {
	base *url.URL
	http *http.Client
}

func New(baseURL string) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		base: base,
		http: &http.Client{Jar: jar},
	}, nil
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// PostJSON issues a POST with a JSON body and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(encoded), out)
}

// PostForm issues a multipart POST carrying one file plus text fields.
func (c *Client) PostForm(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file []byte, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("encode form: %w", err)
		}
	}
	fw, err := w.CreateFormFile(fileField, fileName)
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}
	if _, err := fw.Write(file); err != nil {
		return fmt.Errorf("encode form: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("encode form: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, w.FormDataContentType(), &buf, out)
}

// Delete issues a DELETE request and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, out)
}

// Page fetches the HTML template for a router fragment.
func (c *Client) Page(ctx context.Context, name string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve("/pages/"+name+".html"), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("page %s: unexpected status %d", name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchImage downloads a stored image, for the edit flow.
func (c *Client) FetchImage(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(path), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("image %s: unexpected status %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The error envelope still carries the backend's message
		var env Envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, env.Message, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (c *Client) resolve(path string) string {
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	return u.String()
}
