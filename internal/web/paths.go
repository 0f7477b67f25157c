package web

import (
	"net/url"

	"productsui/internal/journey"
)

// payURL builds the landing-page URL for a product.
func payURL(productExternalID string) string {
	return "/pay/" + url.PathEscape(productExternalID)
}

// stepURL builds the URL for a journey step, carrying the change flag when a
// payer is explicitly re-opening an otherwise-skipped step.
func stepURL(step journey.Step, productExternalID string, change bool) string {
	base := payURL(productExternalID)
	switch step {
	case journey.StepReference:
		base += "/reference"
	case journey.StepReferenceConfirm:
		base += "/reference/confirm"
	case journey.StepAmount:
		base += "/amount"
	case journey.StepConfirm:
		base += "/confirm"
	}
	if change && step != journey.StepStart && step != journey.StepConfirm {
		base += "?change=true"
	}
	return base
}

// hasChangeFlag reports whether the request carries the change=true query
// flag.
func hasChangeFlag(q url.Values) bool {
	return q.Get("change") == "true"
}
