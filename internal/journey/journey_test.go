package journey

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"productsui/internal/product"
	"productsui/internal/session"
)

func adhoc(referenceEnabled bool, price int64) *product.Product {
	return &product.Product{
		ExternalID:       "prod-1",
		GatewayAccountID: 42,
		Type:             product.TypeAdhoc,
		ReferenceEnabled: referenceEnabled,
		Price:            price,
	}
}

func TestNextFromStartDecisionTable(t *testing.T) {
	tests := []struct {
		name string
		p    *product.Product
		st   session.PaymentLinkSession
		want Step
	}{
		{"reference enabled, variable price", adhoc(true, 0), session.PaymentLinkSession{}, StepReference},
		{"reference enabled, fixed price", adhoc(true, 1000), session.PaymentLinkSession{}, StepReference},
		{"reference disabled, variable price", adhoc(false, 0), session.PaymentLinkSession{}, StepAmount},
		{"reference disabled, fixed price", adhoc(false, 1000), session.PaymentLinkSession{}, StepConfirm},
		{
			"query-provided reference is skipped",
			adhoc(true, 0),
			session.PaymentLinkSession{Reference: "REF1", ReferenceProvidedByQueryParams: true},
			StepAmount,
		},
		{
			"query-provided reference and amount skip to confirm",
			adhoc(true, 0),
			session.PaymentLinkSession{
				Reference: "REF1", ReferenceProvidedByQueryParams: true,
				AmountPence: 2000, AmountProvidedByQueryParams: true,
			},
			StepConfirm,
		},
		{
			"user-entered reference is not skipped",
			adhoc(true, 0),
			session.PaymentLinkSession{Reference: "REF1"},
			StepReference,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextFromStart(tt.p, tt.st))
		})
	}
}

func TestNextFromStartNonJourneyProduct(t *testing.T) {
	demo := &product.Product{ExternalID: "p", Type: product.TypeDemo, Price: 500}
	assert.Equal(t, StepConfirm, NextFromStart(demo, session.PaymentLinkSession{}))
}

func TestStepAvailability(t *testing.T) {
	assert.True(t, ReferenceAvailable(adhoc(true, 0)))
	assert.False(t, ReferenceAvailable(adhoc(false, 0)))
	assert.True(t, AmountAvailable(adhoc(true, 0)))
	// A fixed price means the amount page never exists, whatever the
	// session holds.
	assert.False(t, AmountAvailable(adhoc(true, 1000)))
	assert.False(t, AmountAvailable(&product.Product{Type: product.TypeDemo}))
}

func TestSkipRules(t *testing.T) {
	fromQuery := session.PaymentLinkSession{Reference: "R", ReferenceProvidedByQueryParams: true}
	assert.True(t, SkipReference(fromQuery, false))
	assert.False(t, SkipReference(fromQuery, true)) // change=true re-opens the step
	assert.False(t, SkipReference(session.PaymentLinkSession{Reference: "R"}, false))

	amtFromQuery := session.PaymentLinkSession{AmountPence: 500, AmountProvidedByQueryParams: true}
	assert.True(t, SkipAmount(amtFromQuery, false))
	assert.False(t, SkipAmount(amtFromQuery, true))
}

func TestBackLinks(t *testing.T) {
	assert.Equal(t, StepStart, ReferenceBack(false))
	assert.Equal(t, StepConfirm, ReferenceBack(true))

	p := adhoc(true, 0)
	withRef := session.PaymentLinkSession{Reference: "R"}
	assert.Equal(t, StepReference, AmountBack(p, withRef, false))
	assert.Equal(t, StepStart, AmountBack(p, session.PaymentLinkSession{}, false))
	assert.Equal(t, StepStart, AmountBack(adhoc(false, 0), session.PaymentLinkSession{}, false))
	assert.Equal(t, StepConfirm, AmountBack(p, withRef, true))
}

func TestAfterReference(t *testing.T) {
	variable := adhoc(true, 0)
	assert.Equal(t, StepAmount, AfterReference(variable, session.PaymentLinkSession{Reference: "R"}))
	assert.Equal(t, StepConfirm, AfterReference(variable, session.PaymentLinkSession{Reference: "R", AmountPence: 2000}))
	assert.Equal(t, StepConfirm, AfterReference(adhoc(true, 1000), session.PaymentLinkSession{Reference: "R"}))
}

func TestConfirmReady(t *testing.T) {
	p := adhoc(true, 0)
	assert.False(t, ConfirmReady(p, session.PaymentLinkSession{}))
	// Reference alone is not enough while the amount is still missing.
	assert.False(t, ConfirmReady(p, session.PaymentLinkSession{Reference: "R"}))
	assert.True(t, ConfirmReady(p, session.PaymentLinkSession{Reference: "R", AmountPence: 2000}))

	assert.True(t, ConfirmReady(adhoc(true, 1000), session.PaymentLinkSession{Reference: "R"}))
	assert.True(t, ConfirmReady(adhoc(false, 0), session.PaymentLinkSession{AmountPence: 2000}))
	assert.True(t, ConfirmReady(adhoc(false, 1000), session.PaymentLinkSession{}))
	assert.True(t, ConfirmReady(&product.Product{Type: product.TypeDemo, Price: 500}, session.PaymentLinkSession{}))
}

func TestChangeLinks(t *testing.T) {
	p := adhoc(true, 0)
	typed := session.PaymentLinkSession{Reference: "R", AmountPence: 2000}
	assert.True(t, CanChangeReference(p, typed))
	assert.True(t, CanChangeAmount(p, typed))

	seeded := session.PaymentLinkSession{
		Reference: "R", ReferenceProvidedByQueryParams: true,
		AmountPence: 2000, AmountProvidedByQueryParams: true,
	}
	assert.False(t, CanChangeReference(p, seeded))
	assert.False(t, CanChangeAmount(p, seeded))

	assert.False(t, CanChangeReference(adhoc(false, 0), typed))
	assert.False(t, CanChangeAmount(adhoc(true, 1000), typed))
}

func TestAmountForPayment(t *testing.T) {
	assert.Equal(t, int64(1000), AmountForPayment(adhoc(true, 1000), session.PaymentLinkSession{AmountPence: 2000}))
	assert.Equal(t, int64(2000), AmountForPayment(adhoc(true, 0), session.PaymentLinkSession{AmountPence: 2000}))
}
