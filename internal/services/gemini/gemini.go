// Package gemini wraps the Google Gemini text-generation API behind a
// small adapter so handlers (and tests) only see "prompt in, text out".
//
// Exactly one outbound call per Generate; no retry, no streaming.
// Cancellation and deadlines come from the caller's context.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

// DefaultModel is the flash-tier model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// ErrNotConfigured means no API key was supplied. Shown to the user
// with a remediation hint rather than crashing the server.
var ErrNotConfigured = errors.New("gemini API key not configured; set GEMINI_API_KEY")

// UpstreamError wraps any failure from the remote call (network, auth,
// rate limit, empty reply). The underlying message is preserved so the
// handler can surface it rather than swallowing it.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Client is a configured Gemini API client bound to one model id.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Gemini client. The API key is an explicit argument,
// not read from the environment here, so tests can construct clients
// with fake keys and the config layer stays the single source of truth.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = DefaultModel
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{client: c, model: model}, nil
}

// Model returns the model id this client sends requests to.
func (c *Client) Model() string { return c.model }

// Generate sends one synchronous generation request and returns the
// reply text.
func (c *Client) Generate(ctx context.Context, promptText string) (string, error) {
	res, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{
		genai.NewContentFromText(promptText, genai.RoleUser),
	}, nil)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}

	text := res.Text()
	if strings.TrimSpace(text) == "" {
		return "", &UpstreamError{Err: errors.New("model returned an empty response")}
	}

	return text, nil
}
