// Package textgen calls the third-party generative-text API used by the
// copy-improvement endpoint. One attempt, fixed timeout, no retries.
package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Timeout bounds every improvement call. The upstream aborts in-flight
// requests when it fires.
const Timeout = 30 * time.Second

type Config struct {
	BaseURL string
	APIKey  string
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: Timeout},
	}
}

type improveRequest struct {
	Text  string `json:"text"`
	Field string `json:"field"`
}

type improveResponse struct {
	Text string `json:"text"`
}

// Improve asks the upstream to rewrite marketing copy for the given quiz
// field (slogan, differentiators, ...). Returns the improved text.
func (c *Client) Improve(ctx context.Context, text, field string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	body, err := json.Marshal(improveRequest{Text: text, Field: field})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/improve", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling textgen api: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return "", fmt.Errorf("textgen api status %d: %s", res.StatusCode, raw)
	}

	var out improveResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding textgen response: %w", err)
	}
	return out.Text, nil
}
