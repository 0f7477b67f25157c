package web

import (
	"net/http"
	"strconv"

	"productsui/internal/common/currency"
	apperrors "productsui/internal/common/errors"
	"productsui/internal/journey"
	"productsui/internal/product"
)

// SummaryRow is one line of the confirm page: a collected field, its display
// value and, when the payer may still edit it, a change link.
type SummaryRow struct {
	Label     string
	Value     string
	ChangeURL string
}

// confirmData is the confirm page payload. The hidden reference/amount pair
// lets the POST resubmit exactly what the payer saw, so a concurrent tab
// overwriting the session cannot change what this tab pays.
type confirmData struct {
	page
	Rows            []SummaryRow
	HiddenReference string
	HiddenAmount    string
	ActionURL       string
	CaptchaRequired bool
	CaptchaSiteKey  string
	Error           string
}

// ConfirmPage renders the payment summary. It is only reachable once every
// field the product collects is present in the session.
func (h *Handlers) ConfirmPage(w http.ResponseWriter, r *http.Request) {
	p := productFromContext(r.Context())
	st := h.sessions.Get(r, p.ExternalID)

	if !journey.ConfirmReady(p, st) {
		http.Redirect(w, r, payURL(p.ExternalID), http.StatusFound)
		return
	}

	amount := journey.AmountForPayment(p, st)
	data := confirmData{
		page:            page{Title: "Check the details of your payment", ServiceName: serviceName(r.Context())},
		Rows:            h.summaryRows(p, st.Reference, amount, journey.CanChangeReference(p, st), journey.CanChangeAmount(p, st)),
		HiddenReference: st.Reference,
		HiddenAmount:    strconv.FormatInt(amount, 10),
		ActionURL:       stepURL(journey.StepConfirm, p.ExternalID, false),
		CaptchaRequired: p.RequireCaptcha,
		CaptchaSiteKey:  h.captchaSiteKey,
	}
	_ = h.render.HTML(w, http.StatusOK, "confirm", data)
}

// SubmitConfirm creates the payment and sends the browser to the payments
// platform. The payload comes from the hidden form fields, not the session,
// and the session sub-state is deleted only after the payment exists.
func (h *Handlers) SubmitConfirm(w http.ResponseWriter, r *http.Request) {
	p := productFromContext(r.Context())

	reference := r.PostFormValue("reference")
	amountStr := r.PostFormValue("amount")
	amount, err := strconv.ParseInt(amountStr, 10, 64)
	if err != nil || amount < 0 {
		h.renderError(w, r, http.StatusBadRequest, "There was a problem with your payment")
		return
	}
	if p.IsPaymentLinkJourney() && p.ReferenceEnabled && reference == "" {
		http.Redirect(w, r, payURL(p.ExternalID), http.StatusFound)
		return
	}

	if p.RequireCaptcha {
		ok, err := h.captcha.Verify(r.Context(), r.PostFormValue("g-recaptcha-response"))
		if err != nil || !ok {
			if err != nil {
				h.logger.Error("captcha verification errored", "error", err)
			}
			// Re-render from the submitted values so the payer does not
			// lose data by failing the challenge. The session is left
			// untouched.
			h.renderConfirmWithError(w, r, p, reference, amount,
				"You must confirm you are not a robot to continue")
			return
		}
	}

	createAmount := amount
	if p.FixedPrice() {
		// The products API applies the configured price itself.
		createAmount = 0
	}

	payment, err := h.products.CreatePayment(r.Context(), p.ExternalID, createAmount, reference)
	if err != nil {
		h.handleCreatePaymentError(w, r, p, err)
		return
	}

	if err := h.sessions.Delete(w, r, p.ExternalID); err != nil {
		h.logger.Error("deleting payment link session", "error", err)
	}

	next := payment.NextURL()
	if next == "" {
		h.renderError(w, r, http.StatusInternalServerError, "Sorry, we are experiencing technical problems")
		return
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// handleCreatePaymentError maps payment-creation failures: a card number
// detected upstream sends the payer back to the reference step with a
// one-shot error, a forbidden response means the account cannot take
// payments, anything else goes to the generic handler.
func (h *Handlers) handleCreatePaymentError(w http.ResponseWriter, r *http.Request, p *product.Product, err error) {
	if apperrors.UpstreamIdentifier(err) == product.IdentifierCardNumberInReference {
		if serr := h.sessions.SetError(w, r, p.ExternalID, product.IdentifierCardNumberInReference); serr != nil {
			h.handleError(w, r, serr)
			return
		}
		http.Redirect(w, r, stepURL(journey.StepReference, p.ExternalID, false), http.StatusFound)
		return
	}
	if apperrors.StatusCode(err) == http.StatusForbidden {
		h.handleError(w, r, &apperrors.AccountCannotTakePaymentsError{})
		return
	}
	h.handleError(w, r, err)
}

// renderConfirmWithError rebuilds the confirm page from submitted values.
func (h *Handlers) renderConfirmWithError(w http.ResponseWriter, r *http.Request, p *product.Product, reference string, amount int64, errMsg string) {
	st := h.sessions.Get(r, p.ExternalID)
	data := confirmData{
		page:            page{Title: "Check the details of your payment", ServiceName: serviceName(r.Context())},
		Rows:            h.summaryRows(p, reference, amount, journey.CanChangeReference(p, st), journey.CanChangeAmount(p, st)),
		HiddenReference: reference,
		HiddenAmount:    strconv.FormatInt(amount, 10),
		ActionURL:       stepURL(journey.StepConfirm, p.ExternalID, false),
		CaptchaRequired: p.RequireCaptcha,
		CaptchaSiteKey:  h.captchaSiteKey,
		Error:           errMsg,
	}
	_ = h.render.HTML(w, http.StatusOK, "confirm", data)
}

func (h *Handlers) summaryRows(p *product.Product, reference string, amount int64, canChangeRef, canChangeAmount bool) []SummaryRow {
	var rows []SummaryRow
	if p.ReferenceEnabled && p.IsPaymentLinkJourney() {
		row := SummaryRow{Label: referenceLabel(p), Value: reference}
		if canChangeRef {
			row.ChangeURL = stepURL(journey.StepReference, p.ExternalID, true)
		}
		rows = append(rows, row)
	}
	amountRow := SummaryRow{Label: "Total to pay", Value: currency.FormatPence(amount)}
	if p.IsPaymentLinkJourney() && canChangeAmount {
		amountRow.ChangeURL = stepURL(journey.StepAmount, p.ExternalID, true)
	}
	rows = append(rows, amountRow)
	return rows
}
