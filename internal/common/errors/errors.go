// Package errors defines the error taxonomy shared across the service.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError indicates a page or resource was requested in a state the
// product configuration forbids, or does not exist at all.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// NewNotFound creates a NotFoundError for a resource.
func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// InvalidPrefilledReferenceError indicates a reference supplied via URL query
// parameter failed validation. Bad prefills are rejected rather than silently
// dropped so the payer is never shown a journey that quietly discarded them.
type InvalidPrefilledReferenceError struct {
	Reason string
}

func (e *InvalidPrefilledReferenceError) Error() string {
	return fmt.Sprintf("invalid prefilled reference: %s", e.Reason)
}

// InvalidPrefilledAmountError indicates an amount supplied via URL query
// parameter failed validation.
type InvalidPrefilledAmountError struct {
	Reason string
}

func (e *InvalidPrefilledAmountError) Error() string {
	return fmt.Sprintf("invalid prefilled amount: %s", e.Reason)
}

// AccountCannotTakePaymentsError indicates payment creation was refused
// because the owning gateway account is not able to take payments.
type AccountCannotTakePaymentsError struct{}

func (e *AccountCannotTakePaymentsError) Error() string {
	return "account cannot take payments"
}

// UpstreamError carries the HTTP status returned by an upstream API
// (products, adminusers) so the error handler can mirror it to the browser.
type UpstreamError struct {
	Op         string
	StatusCode int
	Identifier string
}

func (e *UpstreamError) Error() string {
	if e.Identifier != "" {
		return fmt.Sprintf("%s: upstream returned %d (%s)", e.Op, e.StatusCode, e.Identifier)
	}
	return fmt.Sprintf("%s: upstream returned %d", e.Op, e.StatusCode)
}

// StatusCode extracts the upstream HTTP status from an error chain.
// Returns 500 when the error carries no status.
func StatusCode(err error) int {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.StatusCode
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err represents a missing resource, either a
// domain NotFoundError or an upstream 404.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return true
	}
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound
}

// UpstreamIdentifier extracts the upstream error identifier, if any.
func UpstreamIdentifier(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Identifier
	}
	return ""
}
