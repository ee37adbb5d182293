package model

import "gateway-config/internal/configuration"

// Summary is the inspection view of a parsed configuration.
// Credentials are reported as present/absent and never echoed back.
type Summary struct {
	MerchantID        string `json:"merchant_id"`
	MerchantAccountID string `json:"merchant_account_id,omitempty"`
	Environment       string `json:"environment"`
	ClientAPIURL      string `json:"client_api_url"`
	AssetsURL         string `json:"assets_url,omitempty"`

	Challenges   ChallengeSummary    `json:"challenges"`
	ThreeDSecure ThreeDSecureSummary `json:"three_d_secure"`
	Cards        CardSummary         `json:"cards"`
	PayPal       PayPalSummary       `json:"paypal"`
	Venmo        VenmoSummary        `json:"venmo"`
	GooglePay    GooglePaySummary    `json:"google_pay"`
	SamsungPay   SamsungPaySummary   `json:"samsung_pay"`
	VisaCheckout VisaCheckoutSummary `json:"visa_checkout"`
	UnionPay     ToggleSummary       `json:"union_pay"`
	Kount        KountSummary        `json:"kount"`
	GraphQL      GraphQLSummary      `json:"graphql"`
	Analytics    EndpointSummary     `json:"analytics"`
	BraintreeAPI BraintreeAPISummary `json:"braintree_api"`
}

type ChallengeSummary struct {
	CVV        bool `json:"cvv"`
	PostalCode bool `json:"postal_code"`
}

type ThreeDSecureSummary struct {
	Enabled          bool `json:"enabled"`
	HasCardinalToken bool `json:"has_cardinal_token"`
}

type CardSummary struct {
	SupportedCardTypes  []string `json:"supported_card_types"`
	FraudDataCollection bool     `json:"fraud_data_collection"`
}

type PayPalSummary struct {
	Enabled              bool   `json:"enabled"`
	LocalPaymentsEnabled bool   `json:"local_payments_enabled"`
	DisplayName          string `json:"display_name,omitempty"`
	ClientID             string `json:"client_id,omitempty"`
	Environment          string `json:"environment,omitempty"`
	PrivacyURL           string `json:"privacy_url,omitempty"`
	UserAgreementURL     string `json:"user_agreement_url,omitempty"`
	DirectBaseURL        string `json:"direct_base_url,omitempty"`
	TouchDisabled        bool   `json:"touch_disabled"`
	CurrencyISOCode      string `json:"currency_iso_code,omitempty"`
}

type VenmoSummary struct {
	Enabled     bool   `json:"enabled"`
	MerchantID  string `json:"merchant_id,omitempty"`
	Environment string `json:"environment,omitempty"`
}

type GooglePaySummary struct {
	Enabled                     bool     `json:"enabled"`
	Environment                 string   `json:"environment,omitempty"`
	DisplayName                 string   `json:"display_name,omitempty"`
	SupportedNetworks           []string `json:"supported_networks"`
	PayPalClientID              string   `json:"paypal_client_id,omitempty"`
	HasAuthorizationFingerprint bool     `json:"has_authorization_fingerprint"`
}

type SamsungPaySummary struct {
	Enabled             bool     `json:"enabled"`
	MerchantDisplayName string   `json:"merchant_display_name,omitempty"`
	ServiceID           string   `json:"service_id,omitempty"`
	SupportedCardBrands []string `json:"supported_card_brands"`
	Environment         string   `json:"environment,omitempty"`
}

type VisaCheckoutSummary struct {
	Enabled           bool     `json:"enabled"`
	ExternalClientID  string   `json:"external_client_id,omitempty"`
	SupportedNetworks []string `json:"supported_networks"`
}

type ToggleSummary struct {
	Enabled bool `json:"enabled"`
}

type KountSummary struct {
	Enabled    bool   `json:"enabled"`
	MerchantID string `json:"merchant_id,omitempty"`
}

// GraphQLSummary.Features holds only the features the caller asked about.
type GraphQLSummary struct {
	Enabled  bool            `json:"enabled"`
	URL      string          `json:"url,omitempty"`
	Features map[string]bool `json:"features,omitempty"`
}

type EndpointSummary struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url,omitempty"`
}

type BraintreeAPISummary struct {
	Enabled        bool   `json:"enabled"`
	URL            string `json:"url,omitempty"`
	HasAccessToken bool   `json:"has_access_token"`
}

// NewSummary builds a Summary from any configuration reader.
// features are checked with IsGraphQLFeatureEnabled and reported under
// GraphQL.Features; duplicates collapse.
func NewSummary(cfg configuration.InternalReader, features ...string) *Summary {
	s := &Summary{
		MerchantID:        cfg.MerchantID(),
		MerchantAccountID: cfg.MerchantAccountID(),
		Environment:       cfg.Environment(),
		ClientAPIURL:      cfg.ClientAPIURL(),
		AssetsURL:         cfg.AssetsURL(),
		Challenges: ChallengeSummary{
			CVV:        cfg.IsCvvChallengePresent(),
			PostalCode: cfg.IsPostalCodeChallengePresent(),
		},
		ThreeDSecure: ThreeDSecureSummary{
			Enabled:          cfg.IsThreeDSecureEnabled(),
			HasCardinalToken: cfg.CardinalAuthenticationJWT() != "",
		},
		Cards: CardSummary{
			SupportedCardTypes:  nonNil(cfg.SupportedCardTypes()),
			FraudDataCollection: cfg.IsFraudDataCollectionEnabled(),
		},
		PayPal: PayPalSummary{
			Enabled:              cfg.IsPayPalEnabled(),
			LocalPaymentsEnabled: cfg.IsLocalPaymentEnabled(),
			DisplayName:          cfg.PayPalDisplayName(),
			ClientID:             cfg.PayPalClientID(),
			Environment:          cfg.PayPalEnvironment(),
			PrivacyURL:           cfg.PayPalPrivacyURL(),
			UserAgreementURL:     cfg.PayPalUserAgreementURL(),
			DirectBaseURL:        cfg.PayPalDirectBaseURL(),
			TouchDisabled:        cfg.IsPayPalTouchDisabled(),
			CurrencyISOCode:      cfg.PayPalCurrencyISOCode(),
		},
		Venmo: VenmoSummary{
			Enabled:     cfg.IsVenmoEnabled(),
			MerchantID:  cfg.VenmoMerchantID(),
			Environment: cfg.VenmoEnvironment(),
		},
		GooglePay: GooglePaySummary{
			Enabled:                     cfg.IsGooglePayEnabled(),
			Environment:                 cfg.GooglePayEnvironment(),
			DisplayName:                 cfg.GooglePayDisplayName(),
			SupportedNetworks:           nonNil(cfg.GooglePaySupportedNetworks()),
			PayPalClientID:              cfg.GooglePayPayPalClientID(),
			HasAuthorizationFingerprint: cfg.GooglePayAuthorizationFingerprint() != "",
		},
		SamsungPay: SamsungPaySummary{
			Enabled:             cfg.IsSamsungPayEnabled(),
			MerchantDisplayName: cfg.SamsungPayMerchantDisplayName(),
			ServiceID:           cfg.SamsungPayServiceID(),
			SupportedCardBrands: nonNil(cfg.SamsungPaySupportedCardBrands()),
			Environment:         cfg.SamsungPayEnvironment(),
		},
		VisaCheckout: VisaCheckoutSummary{
			Enabled:           cfg.IsVisaCheckoutEnabled(),
			ExternalClientID:  cfg.VisaCheckoutExternalClientID(),
			SupportedNetworks: nonNil(cfg.VisaCheckoutSupportedNetworks()),
		},
		UnionPay: ToggleSummary{Enabled: cfg.IsUnionPayEnabled()},
		Kount: KountSummary{
			Enabled:    cfg.IsKountEnabled(),
			MerchantID: cfg.KountMerchantID(),
		},
		GraphQL: GraphQLSummary{
			Enabled: cfg.IsGraphQLEnabled(),
			URL:     cfg.GraphQLURL(),
		},
		Analytics: EndpointSummary{
			Enabled: cfg.IsAnalyticsEnabled(),
			URL:     cfg.AnalyticsURL(),
		},
		BraintreeAPI: BraintreeAPISummary{
			Enabled:        cfg.IsBraintreeAPIEnabled(),
			URL:            cfg.BraintreeAPIURL(),
			HasAccessToken: cfg.BraintreeAPIAccessToken() != "",
		},
	}

	if len(features) > 0 {
		s.GraphQL.Features = make(map[string]bool, len(features))
		for _, f := range features {
			s.GraphQL.Features[f] = cfg.IsGraphQLFeatureEnabled(f)
		}
	}
	return s
}

// nonNil keeps empty lists serialized as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
