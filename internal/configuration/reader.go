package configuration

// Compile-time interface checks
var (
	_ Reader         = (*Configuration)(nil)
	_ InternalReader = (*Configuration)(nil)
)

// Reader is the consumer-facing view of a configuration.
// Interface allows substituting a fake in tests.
type Reader interface {
	AssetsURL() string
	ClientAPIURL() string
	Environment() string
	MerchantID() string
	MerchantAccountID() string
	CardinalAuthenticationJWT() string

	IsPayPalEnabled() bool
	IsThreeDSecureEnabled() bool
	IsLocalPaymentEnabled() bool
	IsCvvChallengePresent() bool
	IsPostalCodeChallengePresent() bool
	IsVenmoEnabled() bool
	IsUnionPayEnabled() bool
	IsGooglePayEnabled() bool
	IsVisaCheckoutEnabled() bool
	IsSamsungPayEnabled() bool

	PayPalPrivacyURL() string
	PayPalUserAgreementURL() string
	PayPalDirectBaseURL() string

	ToJSON() string
}

// InternalReader adds the credentials and per-feature settings that only
// payment-method integrations inside this module should read.
type InternalReader interface {
	Reader

	IsFraudDataCollectionEnabled() bool
	SupportedCardTypes() []string

	VenmoAccessToken() string
	VenmoMerchantID() string
	VenmoEnvironment() string

	IsGraphQLEnabled() bool
	GraphQLURL() string
	IsGraphQLFeatureEnabled(feature string) bool

	IsKountEnabled() bool
	KountMerchantID() string

	PayPalDisplayName() string
	PayPalClientID() string
	PayPalEnvironment() string
	IsPayPalTouchDisabled() bool
	PayPalCurrencyISOCode() string

	GooglePayAuthorizationFingerprint() string
	GooglePayEnvironment() string
	GooglePayDisplayName() string
	GooglePaySupportedNetworks() []string
	GooglePayPayPalClientID() string

	AnalyticsURL() string
	IsAnalyticsEnabled() bool

	VisaCheckoutSupportedNetworks() []string
	VisaCheckoutAPIKey() string
	VisaCheckoutExternalClientID() string

	SamsungPayMerchantDisplayName() string
	SamsungPayServiceID() string
	SamsungPaySupportedCardBrands() []string
	SamsungPayAuthorization() string
	SamsungPayEnvironment() string

	BraintreeAPIAccessToken() string
	BraintreeAPIURL() string
	IsBraintreeAPIEnabled() bool
}
