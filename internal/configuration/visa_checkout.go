package configuration

import "strings"

// Visa Checkout card brand identifiers.
const (
	VisaCheckoutBrandVisa       = "VISA"
	VisaCheckoutBrandMastercard = "MASTERCARD"
	VisaCheckoutBrandDiscover   = "DISCOVER"
	VisaCheckoutBrandAmex       = "AMEX"
)

// VisaCheckoutConfig holds Visa Checkout settings from the "visaCheckout" section.
type VisaCheckoutConfig struct {
	apiKey             string
	externalClientID   string
	acceptedCardBrands []string
}

// ParseVisaCheckout builds Visa Checkout settings. Gateway card type names
// are mapped to Visa Checkout brands; unknown types are dropped.
func ParseVisaCheckout(section map[string]any) VisaCheckoutConfig {
	o := object(section)
	return VisaCheckoutConfig{
		apiKey:             o.optString("apikey", ""),
		externalClientID:   o.optString("externalClientId", ""),
		acceptedCardBrands: visaCheckoutBrands(o.optStrings("supportedCardTypes")),
	}
}

func (c VisaCheckoutConfig) APIKey() string { return c.apiKey }
func (c VisaCheckoutConfig) ExternalClientID() string { return c.externalClientID }

// IsEnabled is true when an API key is configured in the control panel.
func (c VisaCheckoutConfig) IsEnabled() bool { return c.apiKey != "" }

// AcceptedCardBrands returns a copy of the mapped brands.
func (c VisaCheckoutConfig) AcceptedCardBrands() []string {
	return cloneStrings(c.acceptedCardBrands)
}

func visaCheckoutBrands(cardTypes []string) []string {
	brands := make([]string, 0, len(cardTypes))
	for _, t := range cardTypes {
		switch strings.ToLower(t) {
		case "visa":
			brands = append(brands, VisaCheckoutBrandVisa)
		case "mastercard":
			brands = append(brands, VisaCheckoutBrandMastercard)
		case "discover":
			brands = append(brands, VisaCheckoutBrandDiscover)
		case "american express":
			brands = append(brands, VisaCheckoutBrandAmex)
		}
	}
	return brands
}
