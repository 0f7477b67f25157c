package web

import (
	"net/http"

	"productsui/internal/common/currency"
	apperrors "productsui/internal/common/errors"
	"productsui/internal/journey"
	"productsui/internal/product"
	"productsui/internal/session"
	"productsui/internal/validation"
)

// amountData is the amount entry page payload.
type amountData struct {
	page
	Value     string
	Error     string
	BackURL   string
	ActionURL string
}

// AmountPage renders the amount entry step. A fixed-price product has no
// amount page, so visiting it is a not-found condition regardless of session
// state.
func (h *Handlers) AmountPage(w http.ResponseWriter, r *http.Request) {
	p := productFromContext(r.Context())
	if !journey.AmountAvailable(p) {
		h.handleError(w, r, apperrors.NewNotFound("amount page"))
		return
	}

	change := hasChangeFlag(r.URL.Query())
	st := h.sessions.Get(r, p.ExternalID)
	if journey.SkipAmount(st, change) {
		http.Redirect(w, r, stepURL(journey.AfterAmount(), p.ExternalID, false), http.StatusFound)
		return
	}

	value := ""
	if st.HasAmount() {
		value = currency.PenceToPounds(st.AmountPence)
	}
	h.renderAmount(w, r, p, st, value, "", change)
}

// SubmitAmount validates the entered amount, stores it as integer pence and
// advances to confirm.
func (h *Handlers) SubmitAmount(w http.ResponseWriter, r *http.Request) {
	p := productFromContext(r.Context())
	if !journey.AmountAvailable(p) {
		h.handleError(w, r, apperrors.NewNotFound("amount page"))
		return
	}

	change := hasChangeFlag(r.URL.Query())
	st := h.sessions.Get(r, p.ExternalID)
	value := r.PostFormValue("amount")

	res := validation.ValidateAmount(value, validation.MaxAmountPounds, false)
	if !res.Valid {
		h.renderAmount(w, r, p, st, value, res.Message, change)
		return
	}

	pence, err := currency.PoundsToPence(value)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.sessions.SetAmount(w, r, p.ExternalID, pence, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	http.Redirect(w, r, stepURL(journey.AfterAmount(), p.ExternalID, false), http.StatusFound)
}

func (h *Handlers) renderAmount(w http.ResponseWriter, r *http.Request, p *product.Product, st session.PaymentLinkSession, value, errMsg string, change bool) {
	_ = h.render.HTML(w, http.StatusOK, "amount", amountData{
		page:      page{Title: "Enter the amount", ServiceName: serviceName(r.Context())},
		Value:     value,
		Error:     errMsg,
		BackURL:   stepURL(journey.AmountBack(p, st, change), p.ExternalID, false),
		ActionURL: stepURL(journey.StepAmount, p.ExternalID, change),
	})
}
