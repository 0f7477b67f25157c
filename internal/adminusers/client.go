// Package adminusers provides the service-record client for the adminusers
// API, which owns gateway-account to service mapping and branding.
package adminusers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	apperrors "productsui/internal/common/errors"
	"productsui/internal/common/middleware"
)

// Config holds adminusers API client configuration.
type Config struct {
	BaseURL string        `envconfig:"ADMINUSERS_URL" default:"http://localhost:9700"`
	Timeout time.Duration `envconfig:"ADMINUSERS_TIMEOUT" default:"15s"`
}

// Service is the owning service of a gateway account, used for page
// branding.
type Service struct {
	ExternalID       string          `json:"external_id"`
	Name             string          `json:"name"`
	OrganisationName string          `json:"merchant_details_name,omitempty"`
	CustomBranding   *CustomBranding `json:"custom_branding,omitempty"`
}

// CustomBranding carries per-service page styling.
type CustomBranding struct {
	CSSURL   string `json:"css_url,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Client talks to the adminusers API.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates an adminusers API client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// GetServiceByGatewayAccountID fetches the service owning a gateway account.
func (c *Client) GetServiceByGatewayAccountID(ctx context.Context, gatewayAccountID int64) (*Service, error) {
	const op = "adminusers.get_service"

	q := url.Values{}
	q.Set("gatewayAccountId", fmt.Sprintf("%d", gatewayAccountID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/api/services?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if id := middleware.GetCorrelationID(ctx); id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("adminusers API error",
			"op", op,
			"status", resp.StatusCode,
			"gateway_account_id", gatewayAccountID,
		)
		return nil, &apperrors.UpstreamError{Op: op, StatusCode: resp.StatusCode}
	}

	var svc Service
	if err := json.NewDecoder(resp.Body).Decode(&svc); err != nil {
		return nil, fmt.Errorf("%s: decoding response: %w", op, err)
	}
	return &svc, nil
}
