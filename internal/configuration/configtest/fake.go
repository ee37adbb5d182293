package configtest

import "gateway-config/internal/configuration"

var _ configuration.InternalReader = (*Fake)(nil)

// Fake implements configuration.InternalReader over plain Values.
// The zero value is a fully disabled configuration.
type Fake struct {
	Values Values
}

// Values holds what each Fake accessor returns. GraphQLFeatures lists the
// features IsGraphQLFeatureEnabled reports when IsGraphQLEnabled is set.
type Values struct {
	AssetsURL                         string
	ClientAPIURL                      string
	Environment                       string
	MerchantID                        string
	MerchantAccountID                 string
	CardinalAuthenticationJWT         string
	IsPayPalEnabled                   bool
	IsThreeDSecureEnabled             bool
	IsLocalPaymentEnabled             bool
	IsCvvChallengePresent             bool
	IsPostalCodeChallengePresent      bool
	IsVenmoEnabled                    bool
	IsUnionPayEnabled                 bool
	IsGooglePayEnabled                bool
	IsVisaCheckoutEnabled             bool
	IsSamsungPayEnabled               bool
	PayPalPrivacyURL                  string
	PayPalUserAgreementURL            string
	PayPalDirectBaseURL               string
	IsFraudDataCollectionEnabled      bool
	SupportedCardTypes                []string
	VenmoAccessToken                  string
	VenmoMerchantID                   string
	VenmoEnvironment                  string
	IsGraphQLEnabled                  bool
	GraphQLURL                        string
	IsKountEnabled                    bool
	KountMerchantID                   string
	PayPalDisplayName                 string
	PayPalClientID                    string
	PayPalEnvironment                 string
	IsPayPalTouchDisabled             bool
	PayPalCurrencyISOCode             string
	GooglePayAuthorizationFingerprint string
	GooglePayEnvironment              string
	GooglePayDisplayName              string
	GooglePaySupportedNetworks        []string
	GooglePayPayPalClientID           string
	AnalyticsURL                      string
	IsAnalyticsEnabled                bool
	VisaCheckoutSupportedNetworks     []string
	VisaCheckoutAPIKey                string
	VisaCheckoutExternalClientID      string
	SamsungPayMerchantDisplayName     string
	SamsungPayServiceID               string
	SamsungPaySupportedCardBrands     []string
	SamsungPayAuthorization           string
	SamsungPayEnvironment             string
	BraintreeAPIAccessToken           string
	BraintreeAPIURL                   string
	IsBraintreeAPIEnabled             bool
	GraphQLFeatures                   []string
	JSON                              string
}

func (f *Fake) AssetsURL() string { return f.Values.AssetsURL }
func (f *Fake) ClientAPIURL() string { return f.Values.ClientAPIURL }
func (f *Fake) Environment() string { return f.Values.Environment }
func (f *Fake) MerchantID() string { return f.Values.MerchantID }
func (f *Fake) MerchantAccountID() string { return f.Values.MerchantAccountID }
func (f *Fake) CardinalAuthenticationJWT() string { return f.Values.CardinalAuthenticationJWT }
func (f *Fake) IsPayPalEnabled() bool { return f.Values.IsPayPalEnabled }
func (f *Fake) IsThreeDSecureEnabled() bool { return f.Values.IsThreeDSecureEnabled }
func (f *Fake) IsLocalPaymentEnabled() bool { return f.Values.IsLocalPaymentEnabled }
func (f *Fake) IsCvvChallengePresent() bool { return f.Values.IsCvvChallengePresent }
func (f *Fake) IsPostalCodeChallengePresent() bool { return f.Values.IsPostalCodeChallengePresent }
func (f *Fake) IsVenmoEnabled() bool { return f.Values.IsVenmoEnabled }
func (f *Fake) IsUnionPayEnabled() bool { return f.Values.IsUnionPayEnabled }
func (f *Fake) IsGooglePayEnabled() bool { return f.Values.IsGooglePayEnabled }
func (f *Fake) IsVisaCheckoutEnabled() bool { return f.Values.IsVisaCheckoutEnabled }
func (f *Fake) IsSamsungPayEnabled() bool { return f.Values.IsSamsungPayEnabled }
func (f *Fake) PayPalPrivacyURL() string { return f.Values.PayPalPrivacyURL }
func (f *Fake) PayPalUserAgreementURL() string { return f.Values.PayPalUserAgreementURL }
func (f *Fake) PayPalDirectBaseURL() string { return f.Values.PayPalDirectBaseURL }
func (f *Fake) IsFraudDataCollectionEnabled() bool { return f.Values.IsFraudDataCollectionEnabled }
func (f *Fake) SupportedCardTypes() []string { return append([]string(nil), f.Values.SupportedCardTypes...) }
func (f *Fake) VenmoAccessToken() string { return f.Values.VenmoAccessToken }
func (f *Fake) VenmoMerchantID() string { return f.Values.VenmoMerchantID }
func (f *Fake) VenmoEnvironment() string { return f.Values.VenmoEnvironment }
func (f *Fake) IsGraphQLEnabled() bool { return f.Values.IsGraphQLEnabled }
func (f *Fake) GraphQLURL() string { return f.Values.GraphQLURL }
func (f *Fake) IsKountEnabled() bool { return f.Values.IsKountEnabled }
func (f *Fake) KountMerchantID() string { return f.Values.KountMerchantID }
func (f *Fake) PayPalDisplayName() string { return f.Values.PayPalDisplayName }
func (f *Fake) PayPalClientID() string { return f.Values.PayPalClientID }
func (f *Fake) PayPalEnvironment() string { return f.Values.PayPalEnvironment }
func (f *Fake) IsPayPalTouchDisabled() bool { return f.Values.IsPayPalTouchDisabled }
func (f *Fake) PayPalCurrencyISOCode() string { return f.Values.PayPalCurrencyISOCode }
func (f *Fake) GooglePayAuthorizationFingerprint() string { return f.Values.GooglePayAuthorizationFingerprint }
func (f *Fake) GooglePayEnvironment() string { return f.Values.GooglePayEnvironment }
func (f *Fake) GooglePayDisplayName() string { return f.Values.GooglePayDisplayName }
func (f *Fake) GooglePaySupportedNetworks() []string { return append([]string(nil), f.Values.GooglePaySupportedNetworks...) }
func (f *Fake) GooglePayPayPalClientID() string { return f.Values.GooglePayPayPalClientID }
func (f *Fake) AnalyticsURL() string { return f.Values.AnalyticsURL }
func (f *Fake) IsAnalyticsEnabled() bool { return f.Values.IsAnalyticsEnabled }
func (f *Fake) VisaCheckoutSupportedNetworks() []string { return append([]string(nil), f.Values.VisaCheckoutSupportedNetworks...) }
func (f *Fake) VisaCheckoutAPIKey() string { return f.Values.VisaCheckoutAPIKey }
func (f *Fake) VisaCheckoutExternalClientID() string { return f.Values.VisaCheckoutExternalClientID }
func (f *Fake) SamsungPayMerchantDisplayName() string { return f.Values.SamsungPayMerchantDisplayName }
func (f *Fake) SamsungPayServiceID() string { return f.Values.SamsungPayServiceID }
func (f *Fake) SamsungPaySupportedCardBrands() []string { return append([]string(nil), f.Values.SamsungPaySupportedCardBrands...) }
func (f *Fake) SamsungPayAuthorization() string { return f.Values.SamsungPayAuthorization }
func (f *Fake) SamsungPayEnvironment() string { return f.Values.SamsungPayEnvironment }
func (f *Fake) BraintreeAPIAccessToken() string { return f.Values.BraintreeAPIAccessToken }
func (f *Fake) BraintreeAPIURL() string { return f.Values.BraintreeAPIURL }
func (f *Fake) IsBraintreeAPIEnabled() bool { return f.Values.IsBraintreeAPIEnabled }

// ToJSON returns the JSON field verbatim.
func (f *Fake) ToJSON() string { return f.Values.JSON }

func (f *Fake) IsGraphQLFeatureEnabled(feature string) bool {
	if !f.Values.IsGraphQLEnabled {
		return false
	}
	for _, enabled := range f.Values.GraphQLFeatures {
		if enabled == feature {
			return true
		}
	}
	return false
}
