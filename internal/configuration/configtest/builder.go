// Package configtest provides helpers for tests that need gateway
// configurations: a fluent Builder producing real documents and a Fake
// implementing the configuration interfaces.
package configtest

import (
	"encoding/json"
	"testing"

	"gateway-config/internal/configuration"
)

// Default values for the mandatory keys.
const (
	DefaultEnvironment  = "test"
	DefaultMerchantID   = "integration_merchant_id"
	DefaultClientAPIURL = "https://api.example.com/merchants/integration_merchant_id/client_api"
)

// Builder assembles a configuration document key by key.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	doc map[string]any
}

// NewBuilder returns a builder pre-populated with the mandatory keys.
func NewBuilder() *Builder {
	return &Builder{doc: map[string]any{
		"environment":  DefaultEnvironment,
		"merchantId":   DefaultMerchantID,
		"clientApiUrl": DefaultClientAPIURL,
	}}
}

// Set stores an arbitrary top-level key. A nil value removes the key.
func (b *Builder) Set(key string, value any) *Builder {
	if value == nil {
		delete(b.doc, key)
		return b
	}
	b.doc[key] = value
	return b
}

func (b *Builder) Environment(env string) *Builder { return b.Set("environment", env) }
func (b *Builder) MerchantID(id string) *Builder { return b.Set("merchantId", id) }
func (b *Builder) ClientAPIURL(u string) *Builder { return b.Set("clientApiUrl", u) }
func (b *Builder) AssetsURL(u string) *Builder { return b.Set("assetsUrl", u) }
func (b *Builder) MerchantAccountID(id string) *Builder { return b.Set("merchantAccountId", id) }
func (b *Builder) PayPalEnabled(on bool) *Builder { return b.Set("paypalEnabled", on) }
func (b *Builder) ThreeDSecureEnabled(on bool) *Builder { return b.Set("threeDSecureEnabled", on) }

func (b *Builder) CardinalAuthenticationJWT(jwt string) *Builder {
	return b.Set("cardinalAuthenticationJWT", jwt)
}

// Challenges sets the "challenges" array.
func (b *Builder) Challenges(challenges ...string) *Builder {
	return b.Set("challenges", challenges)
}

// Without removes keys, e.g. to drop a mandatory field.
func (b *Builder) Without(keys ...string) *Builder {
	for _, k := range keys {
		delete(b.doc, k)
	}
	return b
}

// PayPal sets the "paypal" section and turns on paypalEnabled.
func (b *Builder) PayPal(section map[string]any) *Builder {
	b.Set("paypalEnabled", true)
	return b.Set("paypal", section)
}

// Venmo sets a "payWithVenmo" section with the given credentials.
func (b *Builder) Venmo(accessToken, merchantID, environment string) *Builder {
	return b.Set("payWithVenmo", map[string]any{
		"accessToken": accessToken,
		"merchantId":  merchantID,
		"environment": environment,
	})
}

// GraphQL sets a "graphQL" section with the endpoint and enabled features.
func (b *Builder) GraphQL(url string, features ...string) *Builder {
	if features == nil {
		features = []string{}
	}
	return b.Set("graphQL", map[string]any{
		"url":      url,
		"features": features,
	})
}

// GooglePay sets an "androidPay" section.
func (b *Builder) GooglePay(section map[string]any) *Builder { return b.Set("androidPay", section) }

// SamsungPay sets a "samsungPay" section.
func (b *Builder) SamsungPay(section map[string]any) *Builder { return b.Set("samsungPay", section) }

// VisaCheckout sets a "visaCheckout" section.
func (b *Builder) VisaCheckout(section map[string]any) *Builder {
	return b.Set("visaCheckout", section)
}

// Kount sets a "kount" section for the given Kount merchant.
func (b *Builder) Kount(merchantID string) *Builder {
	return b.Set("kount", map[string]any{"kountMerchantId": merchantID})
}

// UnionPay sets a "unionPay" section.
func (b *Builder) UnionPay(enabled bool) *Builder {
	return b.Set("unionPay", map[string]any{"enabled": enabled})
}

// Analytics sets an "analytics" section.
func (b *Builder) Analytics(url string) *Builder {
	return b.Set("analytics", map[string]any{"url": url})
}

// BraintreeAPI sets a "braintreeApi" section.
func (b *Builder) BraintreeAPI(accessToken, url string) *Builder {
	return b.Set("braintreeApi", map[string]any{"accessToken": accessToken, "url": url})
}

// CreditCards sets a "creditCards" section.
func (b *Builder) CreditCards(collectDeviceData bool, supportedCardTypes ...string) *Builder {
	if supportedCardTypes == nil {
		supportedCardTypes = []string{}
	}
	return b.Set("creditCards", map[string]any{
		"collectDeviceData":  collectDeviceData,
		"supportedCardTypes": supportedCardTypes,
	})
}

// BuildJSON encodes the document. Map keys are emitted in sorted order.
func (b *Builder) BuildJSON() string {
	data, err := json.Marshal(b.doc)
	if err != nil {
		// doc only holds JSON-safe values set through the builder
		panic("configtest: encode document: " + err.Error())
	}
	return string(data)
}

// Build encodes and parses the document.
func (b *Builder) Build() (*configuration.Configuration, error) {
	return configuration.FromJSON(b.BuildJSON())
}

// MustBuild is Build for tests; it fails tb on a parse error.
func (b *Builder) MustBuild(tb testing.TB) *configuration.Configuration {
	tb.Helper()
	cfg, err := b.Build()
	if err != nil {
		tb.Fatalf("configtest: build configuration: %v", err)
	}
	return cfg
}
