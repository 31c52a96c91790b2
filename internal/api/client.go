package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aferro/curator/internal/resource"
)

const (
	defaultUserAgent = "curator/0.1"
	defaultTimeout   = 10 * time.Second
)

// Client talks to the CMS HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the given base URL or host:port value.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Error reports a non-2xx API response, with the server-provided detail
// text when the body carried one.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api returned status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api returned status %d", e.Status)
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	return c.send(ctx, http.MethodGet, path, nil, "", dest)
}

func (c *Client) deleteReq(ctx context.Context, path string) error {
	return c.send(ctx, http.MethodDelete, path, nil, "", nil)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	return c.send(ctx, method, path, bytes.NewReader(body), "application/json", dest)
}

// sendForm submits a draft as multipart form data. The attachment part is
// only written when the draft carries one, so an update without a new
// file leaves the stored asset untouched server-side.
func (c *Client) sendForm(ctx context.Context, method, path string, draft resource.Draft, dest any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range draft.Fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("encode field %s: %w", name, err)
		}
	}
	if att := draft.Attachment; att != nil {
		part, err := writer.CreateFormFile(att.Field, att.Name)
		if err != nil {
			return fmt.Errorf("encode file field %s: %w", att.Field, err)
		}
		if _, err := part.Write(att.Data); err != nil {
			return fmt.Errorf("encode file %s: %w", att.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize form: %w", err)
	}
	return c.send(ctx, method, path, &buf, writer.FormDataContentType(), dest)
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readDetail extracts a human-readable message from an error body. The
// API reports either {"detail": ...} or {"error": ...}; anything else is
// discarded.
func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
		ErrMsg string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.ErrMsg
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("api base url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
