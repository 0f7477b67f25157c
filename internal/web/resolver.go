package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"productsui/internal/adminusers"
	apperrors "productsui/internal/common/errors"
	"productsui/internal/product"
)

type resolvedKey string

const (
	productKey resolvedKey = "product"
	serviceKey resolvedKey = "service"
)

// ResolveProduct loads the product named in the URL and its owning service,
// making both available to the step controllers. An unresolvable product
// sends the browser to the public not-found page.
func (h *Handlers) ResolveProduct(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		externalID := chi.URLParam(r, "productExternalId")

		p, err := h.products.GetByExternalID(r.Context(), externalID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				http.Redirect(w, r, "/not-found", http.StatusFound)
				return
			}
			h.handleError(w, r, err)
			return
		}

		svc, err := h.services.GetServiceByGatewayAccountID(r.Context(), p.GatewayAccountID)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), productKey, p)
		ctx = context.WithValue(ctx, serviceKey, svc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func productFromContext(ctx context.Context) *product.Product {
	p, _ := ctx.Value(productKey).(*product.Product)
	return p
}

func serviceFromContext(ctx context.Context) *adminusers.Service {
	s, _ := ctx.Value(serviceKey).(*adminusers.Service)
	return s
}

// serviceName returns the display name for page branding.
func serviceName(ctx context.Context) string {
	if s := serviceFromContext(ctx); s != nil && s.Name != "" {
		return s.Name
	}
	return "GOV.UK Pay"
}
