package configuration

// GooglePayConfig holds Google Pay settings from the "androidPay" section.
type GooglePayConfig struct {
	enabled                  bool
	authorizationFingerprint string
	environment              string
	displayName              string
	supportedNetworks        []string
	payPalClientID           string
}

// ParseGooglePay builds Google Pay settings; nil yields a disabled config.
func ParseGooglePay(section map[string]any) GooglePayConfig {
	o := object(section)
	return GooglePayConfig{
		enabled:                  o.optBool("enabled", false),
		authorizationFingerprint: o.optString("googleAuthorizationFingerprint", ""),
		environment:              o.optString("environment", ""),
		displayName:              o.optString("displayName", ""),
		supportedNetworks:        cloneStrings(o.optStrings("supportedNetworks")),
		payPalClientID:           o.optString("paypalClientId", ""),
	}
}

func (c GooglePayConfig) IsEnabled() bool { return c.enabled }

// AuthorizationFingerprint only allows tokenizing Google Pay cards.
func (c GooglePayConfig) AuthorizationFingerprint() string { return c.authorizationFingerprint }
func (c GooglePayConfig) Environment() string { return c.environment }
func (c GooglePayConfig) DisplayName() string { return c.displayName }
func (c GooglePayConfig) PayPalClientID() string { return c.payPalClientID }

// SupportedNetworks returns a copy of the card networks accepted through Google Pay.
func (c GooglePayConfig) SupportedNetworks() []string { return cloneStrings(c.supportedNetworks) }
