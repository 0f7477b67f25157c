// Package session stores in-flight payment-link journey state in an
// encrypted, HTTP-only browser cookie. State is kept per product external id
// so concurrent journeys for different products never leak into each other.
// The cookie is the only persistence layer: losing it restarts the journey
// at the landing page.
package session

import (
	"encoding/gob"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/sessions"
)

func init() {
	gob.Register(PaymentLinkSession{})
}

// Config holds session cookie configuration.
type Config struct {
	CookieName    string        `envconfig:"SESSION_COOKIE_NAME" default:"products_ui_session"`
	AuthKey       string        `envconfig:"SESSION_AUTH_KEY" required:"true"`
	EncryptionKey string        `envconfig:"SESSION_ENCRYPTION_KEY" required:"true"`
	Secure        bool          `envconfig:"SESSION_SECURE" default:"true"`
	MaxAge        time.Duration `envconfig:"SESSION_MAX_AGE" default:"90m"`
}

// PaymentLinkSession is the per-product journey state. The provenance flags
// record whether a value arrived via URL query parameter rather than being
// typed by the payer; query-provided values are not editable on the confirm
// page unless the payer explicitly re-opens the step.
type PaymentLinkSession struct {
	Reference                      string
	ReferenceProvidedByQueryParams bool
	// AmountPence is zero when no amount has been collected yet; zero
	// amounts are never stored.
	AmountPence                 int64
	AmountProvidedByQueryParams bool
	ErrorCode                   string
}

// HasReference reports whether a reference has been collected.
func (p PaymentLinkSession) HasReference() bool {
	return p.Reference != ""
}

// HasAmount reports whether an amount has been collected.
func (p PaymentLinkSession) HasAmount() bool {
	return p.AmountPence > 0
}

// Store reads and writes PaymentLinkSessions through the session cookie.
// All mutation goes through this type so the provenance invariants are
// enforced in one place.
type Store struct {
	cookies *sessions.CookieStore
	name    string
}

// NewStore creates a cookie-backed session store. The cookie is signed with
// the auth key and encrypted with the encryption key.
func NewStore(cfg Config) *Store {
	cs := sessions.NewCookieStore([]byte(cfg.AuthKey), []byte(cfg.EncryptionKey))
	cs.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Secure,
		MaxAge:   int(cfg.MaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cs, name: cfg.CookieName}
}

func key(productExternalID string) string {
	return "paylink:" + productExternalID
}

// Get returns the journey state for a product. A missing or undecodable
// cookie yields a fresh, empty state.
func (s *Store) Get(r *http.Request, productExternalID string) PaymentLinkSession {
	sess, _ := s.cookies.Get(r, s.name)
	if v, ok := sess.Values[key(productExternalID)].(PaymentLinkSession); ok {
		return v
	}
	return PaymentLinkSession{}
}

func (s *Store) put(w http.ResponseWriter, r *http.Request, productExternalID string, pls PaymentLinkSession) error {
	sess, _ := s.cookies.Get(r, s.name)
	sess.Values[key(productExternalID)] = pls
	return s.save(w, r, sess)
}

// save writes the cookie and collapses duplicate Set-Cookie headers: each
// Save emits a full snapshot, so a request that writes the session more than
// once only needs the newest header.
func (s *Store) save(w http.ResponseWriter, r *http.Request, sess *sessions.Session) error {
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("saving session cookie: %w", err)
	}
	collapseSetCookie(w.Header(), s.name)
	return nil
}

func collapseSetCookie(h http.Header, name string) {
	lines := h["Set-Cookie"]
	prefix := name + "="
	last := -1
	for i, l := range lines {
		if strings.HasPrefix(l, prefix) {
			last = i
		}
	}
	if last < 0 {
		return
	}
	kept := make([]string, 0, len(lines))
	for i, l := range lines {
		if strings.HasPrefix(l, prefix) && i != last {
			continue
		}
		kept = append(kept, l)
	}
	h["Set-Cookie"] = kept
}

// SetReference stores a reference. providedByQueryParams may only stick when
// the value is non-empty.
func (s *Store) SetReference(w http.ResponseWriter, r *http.Request, productExternalID, value string, providedByQueryParams bool) error {
	pls := s.Get(r, productExternalID)
	pls.Reference = value
	pls.ReferenceProvidedByQueryParams = providedByQueryParams && value != ""
	return s.put(w, r, productExternalID, pls)
}

// SetAmount stores an amount in pence. Zero clears the amount.
func (s *Store) SetAmount(w http.ResponseWriter, r *http.Request, productExternalID string, pence int64, providedByQueryParams bool) error {
	pls := s.Get(r, productExternalID)
	pls.AmountPence = pence
	pls.AmountProvidedByQueryParams = providedByQueryParams && pence > 0
	return s.put(w, r, productExternalID, pls)
}

// SetError stores a one-shot error code to be shown on the next render of
// the relevant step.
func (s *Store) SetError(w http.ResponseWriter, r *http.Request, productExternalID, code string) error {
	pls := s.Get(r, productExternalID)
	pls.ErrorCode = code
	return s.put(w, r, productExternalID, pls)
}

// ConsumeError returns the stored error code and clears it, so a stale error
// never resurfaces on a later unrelated request.
func (s *Store) ConsumeError(w http.ResponseWriter, r *http.Request, productExternalID string) (string, error) {
	pls := s.Get(r, productExternalID)
	code := pls.ErrorCode
	if code == "" {
		return "", nil
	}
	pls.ErrorCode = ""
	return code, s.put(w, r, productExternalID, pls)
}

// Delete removes the journey state for a product, called once a payment has
// been created so a returning payer starts afresh.
func (s *Store) Delete(w http.ResponseWriter, r *http.Request, productExternalID string) error {
	sess, _ := s.cookies.Get(r, s.name)
	delete(sess.Values, key(productExternalID))
	return s.save(w, r, sess)
}
