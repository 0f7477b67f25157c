// Package captcha verifies reCAPTCHA tokens for products that require a
// challenge before payment creation.
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config holds CAPTCHA verifier configuration.
type Config struct {
	VerifyURL string        `envconfig:"CAPTCHA_VERIFY_URL" default:"https://www.google.com/recaptcha/api/siteverify"`
	SiteKey   string        `envconfig:"CAPTCHA_SITE_KEY"`
	SecretKey string        `envconfig:"CAPTCHA_SECRET_KEY"`
	Timeout   time.Duration `envconfig:"CAPTCHA_TIMEOUT" default:"10s"`
}

// Verifier checks challenge tokens against the reCAPTCHA verify endpoint.
type Verifier struct {
	verifyURL string
	secret    string
	client    *http.Client
	logger    *slog.Logger
}

// NewVerifier creates a CAPTCHA verifier.
func NewVerifier(cfg Config, logger *slog.Logger) *Verifier {
	return &Verifier{
		verifyURL: cfg.VerifyURL,
		secret:    cfg.SecretKey,
		client:    &http.Client{Timeout: cfg.Timeout},
		logger:    logger,
	}
}

// Verify checks a challenge token. A false return with nil error means the
// challenge failed; an error means the check itself could not be performed.
func (v *Verifier) Verify(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("captcha.verify: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("captcha.verify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("captcha.verify: verify endpoint returned %d", resp.StatusCode)
	}

	var body struct {
		Success    bool     `json:"success"`
		ErrorCodes []string `json:"error-codes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("captcha.verify: decoding response: %w", err)
	}

	if !body.Success {
		v.logger.Info("captcha challenge failed", "error_codes", body.ErrorCodes)
	}
	return body.Success, nil
}
