package web

import (
	"net/http"

	apperrors "productsui/internal/common/errors"
	"productsui/internal/journey"
	"productsui/internal/product"
	"productsui/internal/validation"
)

// referenceData is the reference entry page payload.
type referenceData struct {
	page
	Label     string
	Hint      string
	Value     string
	Error     string
	BackURL   string
	ActionURL string
}

// referenceConfirmData is the card-number interstitial payload.
type referenceConfirmData struct {
	page
	Label     string
	Reference string
	Error     string
	BackURL   string
	ActionURL string
}

// ReferencePage renders the reference entry step.
func (h *Handlers) ReferencePage(w http.ResponseWriter, r *http.Request) {
	p := productFromContext(r.Context())
	if !journey.ReferenceAvailable(p) {
		h.handleError(w, r, apperrors.NewNotFound("reference page"))
		return
	}

	change := hasChangeFlag(r.URL.Query())
	st := h.sessions.Get(r, p.ExternalID)
	if journey.SkipReference(st, change) {
		http.Redirect(w, r, stepURL(journey.NextFromStart(p, st), p.ExternalID, false), http.StatusFound)
		return
	}

	errCode, err := h.sessions.ConsumeError(w, r, p.ExternalID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.renderReference(w, r, p, st.Reference, sessionErrorMessage(errCode), change)
}

// SubmitReference validates the entered reference. Valid references advance
// per the sequencing policy, except values resembling a card number, which
// are routed to an explicit confirmation step.
func (h *Handlers) SubmitReference(w http.ResponseWriter, r *http.Request) {
	p := productFromContext(r.Context())
	if !journey.ReferenceAvailable(p) {
		h.handleError(w, r, apperrors.NewNotFound("reference page"))
		return
	}

	change := hasChangeFlag(r.URL.Query())
	value := r.PostFormValue("reference")

	res := validation.ValidateReference(value, referenceLabel(p), validation.MaxReferenceLength)
	if !res.Valid {
		h.renderReference(w, r, p, value, res.Message, change)
		return
	}

	if err := h.sessions.SetReference(w, r, p.ExternalID, value, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	if validation.IsPotentialPAN(value) {
		http.Redirect(w, r, stepURL(journey.StepReferenceConfirm, p.ExternalID, change), http.StatusFound)
		return
	}

	st := h.sessions.Get(r, p.ExternalID)
	http.Redirect(w, r, stepURL(journey.AfterReference(p, st), p.ExternalID, false), http.StatusFound)
}

// ReferenceConfirmPage shows the entered reference with an explicit yes/no
// choice when it resembles a card number.
func (h *Handlers) ReferenceConfirmPage(w http.ResponseWriter, r *http.Request) {
	p := productFromContext(r.Context())
	if !journey.ReferenceAvailable(p) {
		h.handleError(w, r, apperrors.NewNotFound("reference confirmation page"))
		return
	}

	st := h.sessions.Get(r, p.ExternalID)
	if !st.HasReference() {
		http.Redirect(w, r, payURL(p.ExternalID), http.StatusFound)
		return
	}

	h.renderReferenceConfirm(w, r, p, st.Reference, "", hasChangeFlag(r.URL.Query()))
}

// SubmitReferenceConfirm handles the yes/no choice: no returns to the
// reference step with the value retained for editing, yes advances per the
// sequencing policy.
func (h *Handlers) SubmitReferenceConfirm(w http.ResponseWriter, r *http.Request) {
	p := productFromContext(r.Context())
	if !journey.ReferenceAvailable(p) {
		h.handleError(w, r, apperrors.NewNotFound("reference confirmation page"))
		return
	}

	change := hasChangeFlag(r.URL.Query())
	st := h.sessions.Get(r, p.ExternalID)
	if !st.HasReference() {
		http.Redirect(w, r, payURL(p.ExternalID), http.StatusFound)
		return
	}

	switch r.PostFormValue("confirm") {
	case "yes":
		http.Redirect(w, r, stepURL(journey.AfterReference(p, st), p.ExternalID, false), http.StatusFound)
	case "no":
		http.Redirect(w, r, stepURL(journey.StepReference, p.ExternalID, change), http.StatusFound)
	default:
		h.renderReferenceConfirm(w, r, p, st.Reference,
			"Select yes if your "+referenceLabel(p)+" is correct", change)
	}
}

func (h *Handlers) renderReference(w http.ResponseWriter, r *http.Request, p *product.Product, value, errMsg string, change bool) {
	_ = h.render.HTML(w, http.StatusOK, "reference", referenceData{
		page:      page{Title: "Enter your " + referenceLabel(p), ServiceName: serviceName(r.Context())},
		Label:     referenceLabel(p),
		Hint:      p.ReferenceHint,
		Value:     value,
		Error:     errMsg,
		BackURL:   stepURL(journey.ReferenceBack(change), p.ExternalID, false),
		ActionURL: stepURL(journey.StepReference, p.ExternalID, change),
	})
}

func (h *Handlers) renderReferenceConfirm(w http.ResponseWriter, r *http.Request, p *product.Product, reference, errMsg string, change bool) {
	_ = h.render.HTML(w, http.StatusOK, "reference_confirm", referenceConfirmData{
		page:      page{Title: "Confirm your " + referenceLabel(p), ServiceName: serviceName(r.Context())},
		Label:     referenceLabel(p),
		Reference: reference,
		Error:     errMsg,
		BackURL:   stepURL(journey.StepReference, p.ExternalID, change),
		ActionURL: stepURL(journey.StepReferenceConfirm, p.ExternalID, change),
	})
}

// sessionErrorMessage maps a stored one-shot error code to its display
// message.
func sessionErrorMessage(code string) string {
	switch code {
	case product.IdentifierCardNumberInReference:
		return "Your payment reference cannot be a card number"
	case "":
		return ""
	default:
		return "There was a problem with your payment reference"
	}
}
