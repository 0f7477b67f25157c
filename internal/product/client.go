package product

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "productsui/internal/common/errors"
	"productsui/internal/common/middleware"
)

// Upstream error identifiers attached to payment-creation failures.
const (
	IdentifierCardNumberInReference = "CARD_NUMBER_IN_PAYMENT_LINK_REFERENCE_REJECTED"
)

// Config holds products API client configuration.
type Config struct {
	BaseURL string        `envconfig:"PRODUCTS_URL" default:"http://localhost:3002"`
	Timeout time.Duration `envconfig:"PRODUCTS_TIMEOUT" default:"15s"`
}

// Client talks to the products API.
type Client struct {
	baseURL  string
	client   *http.Client
	validate *validator.Validate
	logger   *slog.Logger
}

// NewClient creates a products API client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		client:   &http.Client{Timeout: cfg.Timeout},
		validate: validator.New(),
		logger:   logger,
	}
}

// GetByExternalID fetches a product by its external identifier.
func (c *Client) GetByExternalID(ctx context.Context, externalID string) (*Product, error) {
	var p Product
	path := fmt.Sprintf("/v1/api/products/%s", url.PathEscape(externalID))
	if err := c.getJSON(ctx, "products.get", path, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByPath resolves a product from its friendly service and product name
// paths.
func (c *Client) GetByPath(ctx context.Context, serviceNamePath, productNamePath string) (*Product, error) {
	q := url.Values{}
	q.Set("serviceNamePath", serviceNamePath)
	q.Set("productNamePath", productNamePath)

	var p Product
	if err := c.getJSON(ctx, "products.get_by_path", "/v1/api/products?"+q.Encode(), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPaymentByExternalID fetches a payment by its external identifier.
func (c *Client) GetPaymentByExternalID(ctx context.Context, externalID string) (*Payment, error) {
	var p Payment
	path := fmt.Sprintf("/v1/api/payments/%s", url.PathEscape(externalID))
	if err := c.getJSON(ctx, "products.get_payment", path, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// createPaymentRequest is the payment-creation body. Price is omitted for
// fixed-price products, where the products API uses the configured price.
type createPaymentRequest struct {
	Price           int64  `json:"price,omitempty"`
	ReferenceNumber string `json:"reference_number,omitempty"`
}

// CreatePayment creates a payment for a product. amountPence is ignored by
// the upstream for fixed-price products; reference is empty when the product
// does not collect one.
func (c *Client) CreatePayment(ctx context.Context, productExternalID string, amountPence int64, reference string) (*Payment, error) {
	const op = "products.create_payment"

	body, err := json.Marshal(createPaymentRequest{
		Price:           amountPence,
		ReferenceNumber: reference,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: encoding request: %w", op, err)
	}

	path := fmt.Sprintf("/v1/api/products/%s/payments", url.PathEscape(productExternalID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setCorrelation(ctx, req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, c.upstreamError(op, resp)
	}

	var payment Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("%s: decoding response: %w", op, err)
	}
	if err := c.validate.Struct(&payment); err != nil {
		return nil, fmt.Errorf("%s: invalid payment record: %w", op, err)
	}

	c.logger.Info("payment created",
		"product_external_id", productExternalID,
		"payment_external_id", payment.ExternalID,
	)
	return &payment, nil
}

// getJSON performs a GET and decodes the response into out, validating the
// typed record at the boundary.
func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%s: building request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	c.setCorrelation(ctx, req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.upstreamError(op, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", op, err)
	}
	if err := c.validate.Struct(out); err != nil {
		return fmt.Errorf("%s: invalid record: %w", op, err)
	}
	return nil
}

// upstreamErrorBody is the error shape returned by the products API.
type upstreamErrorBody struct {
	ErrorIdentifier string   `json:"error_identifier"`
	Errors          []string `json:"errors"`
}

func (c *Client) upstreamError(op string, resp *http.Response) error {
	var body upstreamErrorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &body)

	c.logger.Warn("products API error",
		"op", op,
		"status", resp.StatusCode,
		"identifier", body.ErrorIdentifier,
	)
	return &apperrors.UpstreamError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Identifier: body.ErrorIdentifier,
	}
}

// setCorrelation forwards the request-scoped correlation id upstream.
func (c *Client) setCorrelation(ctx context.Context, req *http.Request) {
	if id := middleware.GetCorrelationID(ctx); id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}
