// Package journey encodes the page-sequencing policy for the payment-link
// journey: given a product's configuration and the payer's session state,
// which step comes next, where back links point, and which steps are
// forbidden outright. Everything here is a pure function so the policy can
// be tested without HTTP plumbing.
package journey

import (
	"productsui/internal/product"
	"productsui/internal/session"
)

// Step identifies a page in the journey.
type Step string

const (
	StepStart            Step = "start"
	StepReference        Step = "reference"
	StepReferenceConfirm Step = "reference-confirm"
	StepAmount           Step = "amount"
	StepConfirm          Step = "confirm"
)

// NextFromStart decides where the landing page's continue link points.
// Steps already satisfied by query-parameter-provided values are skipped;
// products outside the payment-link journey go straight to confirm.
func NextFromStart(p *product.Product, st session.PaymentLinkSession) Step {
	if !p.IsPaymentLinkJourney() {
		return StepConfirm
	}
	if p.ReferenceEnabled && !(st.HasReference() && st.ReferenceProvidedByQueryParams) {
		return StepReference
	}
	if !p.FixedPrice() && !(st.HasAmount() && st.AmountProvidedByQueryParams) {
		return StepAmount
	}
	return StepConfirm
}

// ReferenceAvailable reports whether the reference step exists for this
// product. Visiting it otherwise is a not-found condition, never a silent
// redirect.
func ReferenceAvailable(p *product.Product) bool {
	return p.IsPaymentLinkJourney() && p.ReferenceEnabled
}

// AmountAvailable reports whether the amount step exists for this product.
// A fixed-price product has no amount page.
func AmountAvailable(p *product.Product) bool {
	return p.IsPaymentLinkJourney() && !p.FixedPrice()
}

// SkipReference reports whether forward navigation should pass over the
// reference step: the value arrived via query parameter and the request does
// not carry an explicit change flag.
func SkipReference(st session.PaymentLinkSession, change bool) bool {
	return st.HasReference() && st.ReferenceProvidedByQueryParams && !change
}

// SkipAmount is the amount-step counterpart of SkipReference.
func SkipAmount(st session.PaymentLinkSession, change bool) bool {
	return st.HasAmount() && st.AmountProvidedByQueryParams && !change
}

// ReferenceBack is the reference page's back-link target.
func ReferenceBack(change bool) Step {
	if change {
		return StepConfirm
	}
	return StepStart
}

// AmountBack is the amount page's back-link target. Without a change flag it
// points at the reference page when one has been filled in, else the landing
// page.
func AmountBack(p *product.Product, st session.PaymentLinkSession, change bool) Step {
	if change {
		return StepConfirm
	}
	if p.ReferenceEnabled && st.HasReference() {
		return StepReference
	}
	return StepStart
}

// AfterReference decides where a successfully submitted reference leads:
// the amount page when the product still needs one, else confirm.
func AfterReference(p *product.Product, st session.PaymentLinkSession) Step {
	if !p.FixedPrice() && !st.HasAmount() {
		return StepAmount
	}
	return StepConfirm
}

// AfterAmount decides where a successfully submitted amount leads.
func AfterAmount() Step {
	return StepConfirm
}

// ConfirmReady reports whether the confirm page can render: every field the
// product collects must be present in the session. When it is not ready the
// payer is sent back to the landing page.
func ConfirmReady(p *product.Product, st session.PaymentLinkSession) bool {
	if !p.IsPaymentLinkJourney() {
		return true
	}
	if p.ReferenceEnabled && !st.HasReference() {
		return false
	}
	if !p.FixedPrice() && !st.HasAmount() {
		return false
	}
	return true
}

// CanChangeReference reports whether the confirm page offers a change link
// for the reference. Query-parameter-provided values are locked.
func CanChangeReference(p *product.Product, st session.PaymentLinkSession) bool {
	return p.ReferenceEnabled && !st.ReferenceProvidedByQueryParams
}

// CanChangeAmount reports whether the confirm page offers a change link for
// the amount.
func CanChangeAmount(p *product.Product, st session.PaymentLinkSession) bool {
	return !p.FixedPrice() && !st.AmountProvidedByQueryParams
}

// AmountForPayment is the amount the payment will be created with: the
// configured price for fixed-price products, otherwise the payer's entry.
func AmountForPayment(p *product.Product, st session.PaymentLinkSession) int64 {
	if p.FixedPrice() {
		return p.Price
	}
	return st.AmountPence
}
