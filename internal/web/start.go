package web

import (
	"net/http"

	"productsui/internal/common/currency"
	apperrors "productsui/internal/common/errors"
	"productsui/internal/journey"
	"productsui/internal/product"
	"productsui/internal/validation"
)

// startData is the landing page payload.
type startData struct {
	page
	ProductName        string
	ProductDescription string
	FixedPrice         string
	ContinueURL        string
}

// StartPage renders the landing page. Reference and amount query parameters
// may pre-seed the journey; invalid prefills are rejected with a typed error
// rather than silently dropped.
func (h *Handlers) StartPage(w http.ResponseWriter, r *http.Request) {
	p := productFromContext(r.Context())

	if p.IsPaymentLinkJourney() {
		if err := h.seedFromQuery(w, r, p); err != nil {
			h.handleError(w, r, err)
			return
		}
	}

	st := h.sessions.Get(r, p.ExternalID)
	next := journey.NextFromStart(p, st)

	data := startData{
		page:               page{Title: p.Name, ServiceName: serviceName(r.Context())},
		ProductName:        p.Name,
		ProductDescription: p.Description,
		ContinueURL:        stepURL(next, p.ExternalID, false),
	}
	if p.FixedPrice() {
		data.FixedPrice = currency.FormatPence(p.Price)
	}

	_ = h.render.HTML(w, http.StatusOK, "start", data)
}

// seedFromQuery stores valid reference/amount query parameters into the
// session with the query-parameter provenance flag set.
func (h *Handlers) seedFromQuery(w http.ResponseWriter, r *http.Request, p *product.Product) error {
	q := r.URL.Query()

	if ref := q.Get("reference"); ref != "" && p.ReferenceEnabled {
		res := validation.ValidateReference(ref, referenceLabel(p), validation.MaxReferenceLength)
		if !res.Valid {
			return &apperrors.InvalidPrefilledReferenceError{Reason: res.Message}
		}
		// A card-number-like prefill would lock an unconfirmable value
		// into the journey, so it is rejected outright.
		if validation.IsPotentialPAN(ref) {
			return &apperrors.InvalidPrefilledReferenceError{Reason: "reference resembles a card number"}
		}
		if err := h.sessions.SetReference(w, r, p.ExternalID, ref, true); err != nil {
			return err
		}
	}

	if amount := q.Get("amount"); amount != "" && !p.FixedPrice() {
		res := validation.ValidateAmount(amount, validation.MaxAmountPounds, false)
		if !res.Valid {
			return &apperrors.InvalidPrefilledAmountError{Reason: res.Message}
		}
		pence, err := currency.PoundsToPence(amount)
		if err != nil {
			return &apperrors.InvalidPrefilledAmountError{Reason: err.Error()}
		}
		if err := h.sessions.SetAmount(w, r, p.ExternalID, pence, true); err != nil {
			return err
		}
	}

	return nil
}

// referenceLabel returns the product's reference label, falling back to a
// generic one.
func referenceLabel(p *product.Product) string {
	if p.ReferenceLabel != "" {
		return p.ReferenceLabel
	}
	return "payment reference"
}
