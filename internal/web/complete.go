package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "productsui/internal/common/errors"
)

// PaymentComplete is the platform's return point: it looks the payment up
// and forwards the browser to wherever the payment's next link points.
func (h *Handlers) PaymentComplete(w http.ResponseWriter, r *http.Request) {
	externalID := chi.URLParam(r, "paymentExternalId")

	payment, err := h.products.GetPaymentByExternalID(r.Context(), externalID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	next := payment.NextURL()
	if next == "" {
		h.renderError(w, r, http.StatusInternalServerError, "Sorry, we are experiencing technical problems")
		return
	}
	http.Redirect(w, r, next, http.StatusFound)
}

// FriendlyURL resolves a human-readable service/product path to the
// canonical pay URL, preserving any query parameters. Unresolvable paths go
// to the public not-found page.
func (h *Handlers) FriendlyURL(w http.ResponseWriter, r *http.Request) {
	serviceNamePath := chi.URLParam(r, "serviceNamePath")
	productNamePath := chi.URLParam(r, "productNamePath")

	p, err := h.products.GetByPath(r.Context(), serviceNamePath, productNamePath)
	if err != nil {
		if apperrors.IsNotFound(err) {
			http.Redirect(w, r, "/not-found", http.StatusFound)
			return
		}
		h.handleError(w, r, err)
		return
	}

	target := payURL(p.ExternalID)
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusFound)
}
