package web

import (
	"errors"
	"net/http"

	apperrors "productsui/internal/common/errors"
)

// errorData is the generic error page payload.
type errorData struct {
	page
	Message string
}

// handleError is the central mapping from the error taxonomy to pages. Step
// controllers call it for anything that is not expected bad user input.
func (h *Handlers) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var cannotTake *apperrors.AccountCannotTakePaymentsError
	if errors.As(err, &cannotTake) {
		h.logger.Warn("account cannot take payments", "path", r.URL.Path)
		_ = h.render.HTML(w, http.StatusBadRequest, "account_unavailable", errorData{
			page: page{Title: "This service is unavailable", ServiceName: serviceName(r.Context())},
		})
		return
	}

	var badRef *apperrors.InvalidPrefilledReferenceError
	if errors.As(err, &badRef) {
		h.logger.Info("rejected prefilled reference", "reason", badRef.Reason)
		h.renderError(w, r, http.StatusBadRequest, "There was a problem with the pre-filled reference for this payment link")
		return
	}

	var badAmount *apperrors.InvalidPrefilledAmountError
	if errors.As(err, &badAmount) {
		h.logger.Info("rejected prefilled amount", "reason", badAmount.Reason)
		h.renderError(w, r, http.StatusBadRequest, "There was a problem with the pre-filled amount for this payment link")
		return
	}

	var nf *apperrors.NotFoundError
	if errors.As(err, &nf) {
		h.notFound(w, r)
		return
	}

	status := apperrors.StatusCode(err)
	h.logger.Error("request failed", "path", r.URL.Path, "status", status, "error", err)
	if status == http.StatusNotFound {
		h.notFound(w, r)
		return
	}
	h.renderError(w, r, status, "Sorry, we are experiencing technical problems")
}

func (h *Handlers) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	_ = h.render.HTML(w, status, "error", errorData{
		page:    page{Title: "An error occurred", ServiceName: serviceName(r.Context())},
		Message: message,
	})
}

func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request) {
	_ = h.render.HTML(w, http.StatusNotFound, "not_found", errorData{
		page: page{Title: "Page not found", ServiceName: serviceName(r.Context())},
	})
}

// NotFoundPage renders the public not-found page.
func (h *Handlers) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}
