package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureParsers_NilSectionIsDisabled(t *testing.T) {
	assert.False(t, ParseAnalytics(nil).IsEnabled())
	assert.False(t, ParseBraintreeAPI(nil).IsEnabled())
	assert.False(t, ParseCard(nil).IsFraudDataCollectionEnabled())
	assert.Empty(t, ParseCard(nil).SupportedCardTypes())
	assert.False(t, ParseGooglePay(nil).IsEnabled())
	assert.False(t, ParseGraphQL(nil).IsEnabled())
	assert.False(t, ParseGraphQL(nil).IsFeatureEnabled(FeatureTokenizeCreditCards))
	assert.False(t, ParseKount(nil).IsEnabled())
	assert.True(t, ParsePayPal(nil).IsTouchDisabled())
	assert.Equal(t, "", ParsePayPal(nil).ClientID())
	assert.False(t, ParseSamsungPay(nil).IsEnabled())
	assert.Empty(t, ParseSamsungPay(nil).SupportedCardBrands())
	assert.False(t, ParseUnionPay(nil).IsEnabled())
	assert.False(t, ParseVenmo(nil).IsAccessTokenValid())
	assert.False(t, ParseVisaCheckout(nil).IsEnabled())
	assert.Empty(t, ParseVisaCheckout(nil).AcceptedCardBrands())
}

func TestFeatureParsers_EnabledRules(t *testing.T) {
	tests := []struct {
		name    string
		enabled func(map[string]any) bool
		on      map[string]any
		off     map[string]any
	}{
		{
			name:    "analytics needs url",
			enabled: func(s map[string]any) bool { return ParseAnalytics(s).IsEnabled() },
			on:      map[string]any{"url": "https://a"},
			off:     map[string]any{"url": ""},
		},
		{
			name:    "braintree api needs access token",
			enabled: func(s map[string]any) bool { return ParseBraintreeAPI(s).IsEnabled() },
			on:      map[string]any{"accessToken": "t"},
			off:     map[string]any{"url": "https://api"},
		},
		{
			name:    "google pay follows enabled flag",
			enabled: func(s map[string]any) bool { return ParseGooglePay(s).IsEnabled() },
			on:      map[string]any{"enabled": true},
			off:     map[string]any{"enabled": false, "googleAuthorizationFingerprint": "fp"},
		},
		{
			name:    "graphql needs url",
			enabled: func(s map[string]any) bool { return ParseGraphQL(s).IsEnabled() },
			on:      map[string]any{"url": "https://g"},
			off:     map[string]any{"features": []any{"tokenize_credit_cards"}},
		},
		{
			name:    "kount needs merchant id",
			enabled: func(s map[string]any) bool { return ParseKount(s).IsEnabled() },
			on:      map[string]any{"kountMerchantId": "600000"},
			off:     map[string]any{"kountMerchantId": ""},
		},
		{
			name:    "samsung pay needs authorization",
			enabled: func(s map[string]any) bool { return ParseSamsungPay(s).IsEnabled() },
			on:      map[string]any{"samsungAuthorization": "auth"},
			off:     map[string]any{"serviceId": "svc"},
		},
		{
			name:    "union pay follows enabled flag",
			enabled: func(s map[string]any) bool { return ParseUnionPay(s).IsEnabled() },
			on:      map[string]any{"enabled": true},
			off:     map[string]any{},
		},
		{
			name:    "venmo needs access token",
			enabled: func(s map[string]any) bool { return ParseVenmo(s).IsAccessTokenValid() },
			on:      map[string]any{"accessToken": "t"},
			off:     map[string]any{"merchantId": "venmo-merchant"},
		},
		{
			name:    "visa checkout needs api key",
			enabled: func(s map[string]any) bool { return ParseVisaCheckout(s).IsEnabled() },
			on:      map[string]any{"apikey": "k"},
			off:     map[string]any{"externalClientId": "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.enabled(tt.on))
			assert.False(t, tt.enabled(tt.off))
		})
	}
}

func TestParseVisaCheckout_BrandMapping(t *testing.T) {
	cfg := ParseVisaCheckout(map[string]any{
		"supportedCardTypes": []any{"visa", "MasterCard", "DISCOVER", "American Express", "Maestro", 7},
	})

	assert.Equal(t, []string{
		VisaCheckoutBrandVisa,
		VisaCheckoutBrandMastercard,
		VisaCheckoutBrandDiscover,
		VisaCheckoutBrandAmex,
	}, cfg.AcceptedCardBrands())
}

func TestParseCard_NonStringEntries(t *testing.T) {
	cfg := ParseCard(map[string]any{
		"supportedCardTypes": []any{"Visa", 1, nil},
	})
	assert.Equal(t, []string{"Visa", "", ""}, cfg.SupportedCardTypes())
}
