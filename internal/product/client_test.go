package product

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "productsui/internal/common/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, testLogger())
}

func TestGetByExternalID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/api/products/prod-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Product{
			ExternalID:       "prod-1",
			GatewayAccountID: 42,
			Type:             TypeAdhoc,
			ReferenceEnabled: true,
			ReferenceLabel:   "invoice number",
		})
	})

	p, err := client.GetByExternalID(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "prod-1", p.ExternalID)
	assert.True(t, p.ReferenceEnabled)
	assert.False(t, p.FixedPrice())
	assert.True(t, p.IsPaymentLinkJourney())
}

func TestGetByExternalIDNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetByExternalID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(err))
}

func TestGetByPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/api/products", r.URL.Path)
		assert.Equal(t, "my-service", r.URL.Query().Get("serviceNamePath"))
		assert.Equal(t, "pay-invoice", r.URL.Query().Get("productNamePath"))
		_ = json.NewEncoder(w).Encode(Product{
			ExternalID:       "prod-2",
			GatewayAccountID: 42,
			Type:             TypeAdhoc,
		})
	})

	p, err := client.GetByPath(context.Background(), "my-service", "pay-invoice")
	require.NoError(t, err)
	assert.Equal(t, "prod-2", p.ExternalID)
}

func TestCreatePayment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/api/products/prod-1/payments", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(2000), body["price"])
		assert.Equal(t, "INV-42", body["reference_number"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Payment{
			ExternalID: "pay-1",
			Links: []Link{
				{Href: "https://payments.example/next/pay-1", Method: "GET", Rel: "next"},
			},
		})
	})

	payment, err := client.CreatePayment(context.Background(), "prod-1", 2000, "INV-42")
	require.NoError(t, err)
	assert.Equal(t, "pay-1", payment.ExternalID)
	assert.Equal(t, "https://payments.example/next/pay-1", payment.NextURL())
}

func TestCreatePaymentOmitsZeroPrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, present := body["price"]
		assert.False(t, present)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Payment{ExternalID: "pay-2"})
	})

	_, err := client.CreatePayment(context.Background(), "prod-1", 0, "")
	require.NoError(t, err)
}

func TestCreatePaymentCarriesErrorIdentifier(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error_identifier": IdentifierCardNumberInReference,
			"errors":           []string{"payment reference rejected"},
		})
	})

	_, err := client.CreatePayment(context.Background(), "prod-1", 2000, "4242424242424242")
	require.Error(t, err)
	assert.Equal(t, IdentifierCardNumberInReference, apperrors.UpstreamIdentifier(err))
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))
}

func TestGetPaymentByExternalID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/api/payments/pay-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Payment{
			ExternalID: "pay-1",
			Status:     "SUBMITTED",
			Links:      []Link{{Href: "https://payments.example/next", Rel: "next"}},
		})
	})

	payment, err := client.GetPaymentByExternalID(context.Background(), "pay-1")
	require.NoError(t, err)
	assert.Equal(t, "SUBMITTED", payment.Status)
	assert.Equal(t, "https://payments.example/next", payment.NextURL())
}
