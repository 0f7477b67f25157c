// Package web contains the browser-facing step controllers for the
// payment-link journey, the product resolver middleware and the central
// error mapping.
package web

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"productsui/internal/adminusers"
	"productsui/internal/product"
	"productsui/internal/session"
)

// ProductsClient is the slice of the products API the web layer consumes.
type ProductsClient interface {
	GetByExternalID(ctx context.Context, externalID string) (*product.Product, error)
	GetByPath(ctx context.Context, serviceNamePath, productNamePath string) (*product.Product, error)
	CreatePayment(ctx context.Context, productExternalID string, amountPence int64, reference string) (*product.Payment, error)
	GetPaymentByExternalID(ctx context.Context, externalID string) (*product.Payment, error)
}

// ServiceClient resolves the service owning a gateway account.
type ServiceClient interface {
	GetServiceByGatewayAccountID(ctx context.Context, gatewayAccountID int64) (*adminusers.Service, error)
}

// CaptchaVerifier checks challenge tokens.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// Handlers holds the step controllers and their collaborators.
type Handlers struct {
	products       ProductsClient
	services       ServiceClient
	captcha        CaptchaVerifier
	sessions       *session.Store
	render         *render.Render
	captchaSiteKey string
	logger         *slog.Logger
}

// NewHandlers creates the web handlers.
func NewHandlers(products ProductsClient, services ServiceClient, captcha CaptchaVerifier, sessions *session.Store, captchaSiteKey string, logger *slog.Logger) *Handlers {
	return &Handlers{
		products:       products,
		services:       services,
		captcha:        captcha,
		sessions:       sessions,
		render:         newRenderer(),
		captchaSiteKey: captchaSiteKey,
		logger:         logger,
	}
}

// Routes returns the browser-facing routes.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/not-found", h.NotFoundPage)
	r.Get("/payment-complete/{paymentExternalId}", h.PaymentComplete)
	r.Get("/redirect/{serviceNamePath}/{productNamePath}", h.FriendlyURL)

	r.Route("/pay/{productExternalId}", func(r chi.Router) {
		r.Use(h.ResolveProduct)
		r.Get("/", h.StartPage)
		r.Get("/reference", h.ReferencePage)
		r.Post("/reference", h.SubmitReference)
		r.Get("/reference/confirm", h.ReferenceConfirmPage)
		r.Post("/reference/confirm", h.SubmitReferenceConfirm)
		r.Get("/amount", h.AmountPage)
		r.Post("/amount", h.SubmitAmount)
		r.Get("/confirm", h.ConfirmPage)
		r.Post("/confirm", h.SubmitConfirm)
	})

	return r
}
