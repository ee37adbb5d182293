// Package configuration parses a merchant's remote gateway configuration
// document into an immutable record of enabled payment methods, features,
// endpoints and credentials.
//
// Parsing is a one-shot pure transformation: no I/O, no logging, no retries.
// A *Configuration is never mutated after Parse returns and can be shared
// freely between goroutines.
package configuration

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Top-level keys of the gateway configuration document.
const (
	keyAssetsURL                 = "assetsUrl"
	keyClientAPIURL              = "clientApiUrl"
	keyChallenges                = "challenges"
	keyEnvironment               = "environment"
	keyMerchantID                = "merchantId"
	keyMerchantAccountID         = "merchantAccountId"
	keyAnalytics                 = "analytics"
	keyBraintreeAPI              = "braintreeApi"
	keyPayPalEnabled             = "paypalEnabled"
	keyPayPal                    = "paypal"
	keyKount                     = "kount"
	keyGooglePay                 = "androidPay"
	keyThreeDSecureEnabled       = "threeDSecureEnabled"
	keyVenmo                     = "payWithVenmo"
	keyUnionPay                  = "unionPay"
	keyCard                      = "creditCards"
	keyVisaCheckout              = "visaCheckout"
	keyGraphQL                   = "graphQL"
	keySamsungPay                = "samsungPay"
	keyCardinalAuthenticationJWT = "cardinalAuthenticationJWT"
)

// Challenge tokens that may appear in the "challenges" array.
const (
	ChallengeCVV        = "cvv"
	ChallengePostalCode = "postal_code"
)

// Configuration is the parsed remote configuration for one merchant.
// Optional strings the gateway omits are exposed as "".
type Configuration struct {
	raw string

	assetsURL                 string
	clientAPIURL              string
	environment               string
	merchantID                string
	merchantAccountID         string
	cardinalAuthenticationJWT string
	payPalEnabled             bool
	threeDSecureEnabled       bool
	challenges                map[string]struct{}

	cvvChallengePresent        bool
	postalCodeChallengePresent bool

	analytics    AnalyticsConfig
	braintreeAPI BraintreeAPIConfig
	card         CardConfig
	googlePay    GooglePayConfig
	graphQL      GraphQLConfig
	kount        KountConfig
	payPal       PayPalConfig
	samsungPay   SamsungPayConfig
	unionPay     UnionPayConfig
	venmo        VenmoConfig
	visaCheckout VisaCheckoutConfig
}

// FromJSON parses a configuration document held in a string.
func FromJSON(s string) (*Configuration, error) {
	return parse(s)
}

// Parse parses a configuration document.
// Returns a *ParseError when data is empty, is not a JSON object, or lacks
// one of environment, merchantId, clientApiUrl. Every other key is optional.
func Parse(data []byte) (*Configuration, error) {
	return parse(string(data))
}

func parse(raw string) (*Configuration, error) {
	if raw == "" {
		return nil, &ParseError{Err: ErrEmptyConfiguration}
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ParseError{Err: fmt.Errorf("%w: got %s", ErrNotObject, typeErr.Value)}
		}
		return nil, &ParseError{Err: err}
	}
	// "null" decodes without error into a nil map
	if fields == nil {
		return nil, &ParseError{Err: fmt.Errorf("%w: got null", ErrNotObject)}
	}
	doc := object(fields)

	clientAPIURL, err := doc.requireString(keyClientAPIURL)
	if err != nil {
		return nil, err
	}
	environment, err := doc.requireString(keyEnvironment)
	if err != nil {
		return nil, err
	}
	merchantID, err := doc.requireString(keyMerchantID)
	if err != nil {
		return nil, err
	}

	c := &Configuration{
		raw:                       raw,
		assetsURL:                 doc.optString(keyAssetsURL, ""),
		clientAPIURL:              clientAPIURL,
		environment:               environment,
		merchantID:                merchantID,
		merchantAccountID:         doc.optString(keyMerchantAccountID, ""),
		cardinalAuthenticationJWT: doc.optString(keyCardinalAuthenticationJWT, ""),
		payPalEnabled:             doc.optBool(keyPayPalEnabled, false),
		threeDSecureEnabled:       doc.optBool(keyThreeDSecureEnabled, false),
		challenges:                stringSet(doc.optStrings(keyChallenges)),

		analytics:    ParseAnalytics(doc.optObject(keyAnalytics)),
		braintreeAPI: ParseBraintreeAPI(doc.optObject(keyBraintreeAPI)),
		card:         ParseCard(doc.optObject(keyCard)),
		googlePay:    ParseGooglePay(doc.optObject(keyGooglePay)),
		graphQL:      ParseGraphQL(doc.optObject(keyGraphQL)),
		kount:        ParseKount(doc.optObject(keyKount)),
		payPal:       ParsePayPal(doc.optObject(keyPayPal)),
		samsungPay:   ParseSamsungPay(doc.optObject(keySamsungPay)),
		unionPay:     ParseUnionPay(doc.optObject(keyUnionPay)),
		venmo:        ParseVenmo(doc.optObject(keyVenmo)),
		visaCheckout: ParseVisaCheckout(doc.optObject(keyVisaCheckout)),
	}

	_, c.cvvChallengePresent = c.challenges[ChallengeCVV]
	_, c.postalCodeChallengePresent = c.challenges[ChallengePostalCode]

	return c, nil
}

// ToJSON returns the document exactly as it was passed to Parse.
func (c *Configuration) ToJSON() string { return c.raw }

// === Public accessors ===

func (c *Configuration) AssetsURL() string { return c.assetsURL }

// ClientAPIURL is the client API base URL of the current environment.
func (c *Configuration) ClientAPIURL() string { return c.clientAPIURL }
func (c *Configuration) Environment() string { return c.environment }
func (c *Configuration) MerchantID() string { return c.merchantID }

// MerchantAccountID is "" when the gateway does not name an account.
func (c *Configuration) MerchantAccountID() string { return c.merchantAccountID }

// CardinalAuthenticationJWT is the JWT used to initialize 3D Secure lookups.
func (c *Configuration) CardinalAuthenticationJWT() string { return c.cardinalAuthenticationJWT }

func (c *Configuration) IsPayPalEnabled() bool { return c.payPalEnabled }
func (c *Configuration) IsThreeDSecureEnabled() bool { return c.threeDSecureEnabled }

// IsLocalPaymentEnabled mirrors IsPayPalEnabled: local payments ride on PayPal.
func (c *Configuration) IsLocalPaymentEnabled() bool { return c.payPalEnabled }

func (c *Configuration) IsCvvChallengePresent() bool { return c.cvvChallengePresent }
func (c *Configuration) IsPostalCodeChallengePresent() bool { return c.postalCodeChallengePresent }

// IsVenmoEnabled is true when the gateway issued a valid Venmo access token.
func (c *Configuration) IsVenmoEnabled() bool { return c.venmo.IsAccessTokenValid() }
func (c *Configuration) IsUnionPayEnabled() bool { return c.unionPay.IsEnabled() }
func (c *Configuration) IsGooglePayEnabled() bool { return c.googlePay.IsEnabled() }
func (c *Configuration) IsVisaCheckoutEnabled() bool { return c.visaCheckout.IsEnabled() }
func (c *Configuration) IsSamsungPayEnabled() bool { return c.samsungPay.IsEnabled() }

func (c *Configuration) PayPalPrivacyURL() string { return c.payPal.PrivacyURL() }
func (c *Configuration) PayPalUserAgreementURL() string { return c.payPal.UserAgreementURL() }
func (c *Configuration) PayPalDirectBaseURL() string { return c.payPal.DirectBaseURL() }

// === SDK-internal accessors ===

func (c *Configuration) IsFraudDataCollectionEnabled() bool {
	return c.card.IsFraudDataCollectionEnabled()
}

// SupportedCardTypes returns a copy of the card types the merchant accepts.
func (c *Configuration) SupportedCardTypes() []string { return c.card.SupportedCardTypes() }

func (c *Configuration) VenmoAccessToken() string { return c.venmo.AccessToken() }
func (c *Configuration) VenmoMerchantID() string { return c.venmo.MerchantID() }
func (c *Configuration) VenmoEnvironment() string { return c.venmo.Environment() }

func (c *Configuration) IsGraphQLEnabled() bool { return c.graphQL.IsEnabled() }
func (c *Configuration) GraphQLURL() string { return c.graphQL.URL() }

// IsGraphQLFeatureEnabled reports whether GraphQL is enabled and lists feature.
func (c *Configuration) IsGraphQLFeatureEnabled(feature string) bool {
	return c.graphQL.IsFeatureEnabled(feature)
}

func (c *Configuration) IsKountEnabled() bool { return c.kount.IsEnabled() }
func (c *Configuration) KountMerchantID() string { return c.kount.MerchantID() }

func (c *Configuration) PayPalDisplayName() string { return c.payPal.DisplayName() }
func (c *Configuration) PayPalClientID() string { return c.payPal.ClientID() }
func (c *Configuration) PayPalEnvironment() string { return c.payPal.Environment() }
func (c *Configuration) IsPayPalTouchDisabled() bool { return c.payPal.IsTouchDisabled() }
func (c *Configuration) PayPalCurrencyISOCode() string { return c.payPal.CurrencyISOCode() }

func (c *Configuration) GooglePayAuthorizationFingerprint() string {
	return c.googlePay.AuthorizationFingerprint()
}
func (c *Configuration) GooglePayEnvironment() string { return c.googlePay.Environment() }
func (c *Configuration) GooglePayDisplayName() string { return c.googlePay.DisplayName() }
func (c *Configuration) GooglePaySupportedNetworks() []string { return c.googlePay.SupportedNetworks() }
func (c *Configuration) GooglePayPayPalClientID() string { return c.googlePay.PayPalClientID() }

func (c *Configuration) AnalyticsURL() string { return c.analytics.URL() }
func (c *Configuration) IsAnalyticsEnabled() bool { return c.analytics.IsEnabled() }

// VisaCheckoutSupportedNetworks returns the merchant's card types mapped to
// Visa Checkout brand names.
func (c *Configuration) VisaCheckoutSupportedNetworks() []string {
	return c.visaCheckout.AcceptedCardBrands()
}
func (c *Configuration) VisaCheckoutAPIKey() string { return c.visaCheckout.APIKey() }
func (c *Configuration) VisaCheckoutExternalClientID() string {
	return c.visaCheckout.ExternalClientID()
}

func (c *Configuration) SamsungPayMerchantDisplayName() string {
	return c.samsungPay.MerchantDisplayName()
}
func (c *Configuration) SamsungPayServiceID() string { return c.samsungPay.ServiceID() }
func (c *Configuration) SamsungPaySupportedCardBrands() []string {
	return c.samsungPay.SupportedCardBrands()
}
func (c *Configuration) SamsungPayAuthorization() string { return c.samsungPay.Authorization() }
func (c *Configuration) SamsungPayEnvironment() string { return c.samsungPay.Environment() }

func (c *Configuration) BraintreeAPIAccessToken() string { return c.braintreeAPI.AccessToken() }
func (c *Configuration) BraintreeAPIURL() string { return c.braintreeAPI.URL() }
func (c *Configuration) IsBraintreeAPIEnabled() bool { return c.braintreeAPI.IsEnabled() }
