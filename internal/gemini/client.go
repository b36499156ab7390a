// Package gemini holds the single-shot generateContent client.
package gemini

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
)

// DefaultTimeout bounds the one request this client ever makes.
const DefaultTimeout = 60 * time.Second

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ClientOptions configures the client.
type ClientOptions struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Client sends one generateContent request per invocation.
type Client struct {
	apiKey string
	base   string
	http   *http.Client
}

// NewClient returns a client for the generative-language endpoint.
func NewClient(opts ClientOptions) *Client {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		apiKey: strings.TrimSpace(opts.APIKey),
		base:   strings.TrimRight(base, "/"),
		http:   httpClient,
	}
}

// Endpoint is the fully-formed URL for model, with the key as a query
// parameter.
func (c *Client) Endpoint(model string) string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.base, url.PathEscape(model), url.QueryEscape(c.apiKey))
}

// GenerateContent sends question as a single user turn and returns the
// answer text. The question goes into the payload verbatim.
func (c *Client) GenerateContent(ctx context.Context, model, question string) (string, error) {
	payload := map[string]any{
		"contents": []map[string]any{
			{
				"role":  "user",
				"parts": []map[string]string{{"text": question}},
			},
		},
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(model), bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &HTTPError{Status: resp.StatusCode, Body: string(body)}
	}
	return ExtractText(body)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
