// Package product provides the typed product and payment records exposed by
// the products API, and the HTTP client that fetches them.
package product

// Type classifies a product.
type Type string

const (
	TypeAdhoc              Type = "ADHOC"
	TypeDemo               Type = "DEMO"
	TypePrototype          Type = "PROTOTYPE"
	TypeAgentInitiatedMOTO Type = "AGENT_INITIATED_MOTO"
)

// Product is a configured payment link or ad-hoc charge. It is constructed
// once at the API boundary; the rest of the service depends only on this
// shape, never on raw upstream field names.
type Product struct {
	ExternalID       string `json:"external_id" validate:"required"`
	GatewayAccountID int64  `json:"gateway_account_id" validate:"required"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Type             Type   `json:"type" validate:"required"`
	// Price is in pence. Zero means the payer enters the amount; a
	// configured fixed price is always positive.
	Price            int64  `json:"price,omitempty"`
	ReferenceEnabled bool   `json:"reference_enabled"`
	ReferenceLabel   string `json:"reference_label,omitempty"`
	ReferenceHint    string `json:"reference_hint,omitempty"`
	RequireCaptcha   bool   `json:"require_captcha"`
	Language         string `json:"language,omitempty"`
	ReturnURL        string `json:"return_url,omitempty"`
	Links            []Link `json:"_links,omitempty"`
}

// FixedPrice reports whether the product carries a configured price, in
// which case the payer never enters an amount.
func (p *Product) FixedPrice() bool {
	return p.Price > 0
}

// IsPaymentLinkJourney reports whether the product walks the payer through
// the reference/amount journey. Other product types go straight to payment
// creation from the landing page.
func (p *Product) IsPaymentLinkJourney() bool {
	return p.Type == TypeAdhoc || p.Type == TypeAgentInitiatedMOTO
}

// Payment is a payment created from a product.
type Payment struct {
	ExternalID        string `json:"external_id" validate:"required"`
	ProductExternalID string `json:"product_external_id"`
	Status            string `json:"status"`
	Amount            int64  `json:"amount"`
	ReferenceNumber   string `json:"reference_number,omitempty"`
	GovukStatus       string `json:"govuk_status,omitempty"`
	Links             []Link `json:"_links,omitempty"`
}

// Link is a HAL-style link attached to an upstream record.
type Link struct {
	Href   string `json:"href"`
	Method string `json:"method"`
	Rel    string `json:"rel"`
}

// NextURL returns the "next" link, which points at the payments platform
// page the browser should be sent to. Empty when absent.
func (p *Payment) NextURL() string {
	for _, l := range p.Links {
		if l.Rel == "next" {
			return l.Href
		}
	}
	return ""
}
