package plantid

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"garden-api/domain"
)

// The upstream caps suggestions at three; enforce it here so a
// misbehaving upstream cannot flood the modal.
const maxSuggestions = 3

const maxResponseSize = 256 * 1024

// Client forwards photos to the plant-identification API and relays the
// top suggestions. Suggestion details pass through verbatim.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates an identification client for the given upstream URL.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Identify posts the base64-encoded photo upstream and returns at most
// three suggestions.
func (c *Client) Identify(ctx context.Context, imageBase64 string) ([]domain.Suggestion, error) {
	payload, err := sonic.Marshal(struct {
		ImageBase64 string `json:"imageBase64"`
	}{ImageBase64: imageBase64})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identification upstream status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, err
	}

	var out struct {
		Suggestions []domain.Suggestion `json:"suggestions"`
	}
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	if len(out.Suggestions) > maxSuggestions {
		out.Suggestions = out.Suggestions[:maxSuggestions]
	}
	return out.Suggestions, nil
}
