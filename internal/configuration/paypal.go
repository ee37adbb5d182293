package configuration

// PayPalConfig holds PayPal app settings from the "paypal" section.
// Whether PayPal is enabled is decided by the top-level "paypalEnabled" flag,
// not by this section.
type PayPalConfig struct {
	displayName      string
	clientID         string
	privacyURL       string
	userAgreementURL string
	directBaseURL    string
	environment      string
	touchDisabled    bool
	currencyISOCode  string
}

// ParsePayPal builds PayPal settings. Touch is disabled unless the section
// says otherwise.
func ParsePayPal(section map[string]any) PayPalConfig {
	o := object(section)
	return PayPalConfig{
		displayName:      o.optString("displayName", ""),
		clientID:         o.optString("clientId", ""),
		privacyURL:       o.optString("privacyUrl", ""),
		userAgreementURL: o.optString("userAgreementUrl", ""),
		directBaseURL:    o.optString("directBaseUrl", ""),
		environment:      o.optString("environment", ""),
		touchDisabled:    o.optBool("touchDisabled", true),
		currencyISOCode:  o.optString("currencyIsoCode", ""),
	}
}

func (c PayPalConfig) DisplayName() string { return c.displayName }
func (c PayPalConfig) ClientID() string { return c.clientID }
func (c PayPalConfig) PrivacyURL() string { return c.privacyURL }
func (c PayPalConfig) UserAgreementURL() string { return c.userAgreementURL }

// DirectBaseURL is set for custom PayPal environments only.
func (c PayPalConfig) DirectBaseURL() string { return c.directBaseURL }
func (c PayPalConfig) Environment() string { return c.environment }
func (c PayPalConfig) IsTouchDisabled() bool { return c.touchDisabled }
func (c PayPalConfig) CurrencyISOCode() string { return c.currencyISOCode }
