// Package billing creates one-time PIX charges with the payment provider.
// The provider owns the checkout; we only hand back its redirect URL.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	clinicflow "github.com/clinicflow/backend"
	"github.com/clinicflow/backend/money"
)

const timeout = 15 * time.Second

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
		http:    &http.Client{Timeout: timeout},
	}
}

type chargeRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Description string `json:"description"`
	Method      string `json:"method"`
}

type chargeResponse struct {
	ID          string `json:"id"`
	RedirectURL string `json:"redirect_url"`
}

func (c *Client) CreateCharge(ctx context.Context, amount money.Cents, description string) (clinicflow.PixCharge, error) {
	body, err := json.Marshal(chargeRequest{
		AmountCents: int64(amount),
		Description: description,
		Method:      "pix",
	})
	if err != nil {
		return clinicflow.PixCharge{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/charges", bytes.NewReader(body))
	if err != nil {
		return clinicflow.PixCharge{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.http.Do(req)
	if err != nil {
		return clinicflow.PixCharge{}, fmt.Errorf("calling billing api: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return clinicflow.PixCharge{}, fmt.Errorf("billing api status %d: %s", res.StatusCode, raw)
	}

	var out chargeResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return clinicflow.PixCharge{}, fmt.Errorf("decoding billing response: %w", err)
	}

	return clinicflow.PixCharge{
		ID:          out.ID,
		RedirectURL: out.RedirectURL,
	}, nil
}
