package captcha

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVerifier(t *testing.T, handler http.HandlerFunc) *Verifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewVerifier(
		Config{VerifyURL: srv.URL, SecretKey: "shh", Timeout: 5 * time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestVerifySuccess(t *testing.T) {
	v := testVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "shh", r.PostForm.Get("secret"))
		assert.Equal(t, "token-1", r.PostForm.Get("response"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true}`))
	})

	ok, err := v.Verify(context.Background(), "token-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyChallengeFailed(t *testing.T) {
	v := testVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	})

	ok, err := v.Verify(context.Background(), "token-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyEmptyTokenFailsWithoutCalling(t *testing.T) {
	called := false
	v := testVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	ok, err := v.Verify(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, called)
}

func TestVerifyEndpointError(t *testing.T) {
	v := testVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := v.Verify(context.Background(), "token-1")
	assert.Error(t, err)
}
