package configuration

// VenmoConfig holds the credentials the Venmo app uses to tokenize on behalf
// of the merchant.
type VenmoConfig struct {
	accessToken string
	environment string
	merchantID  string
}

// ParseVenmo builds Venmo settings from the "payWithVenmo" section.
func ParseVenmo(section map[string]any) VenmoConfig {
	o := object(section)
	return VenmoConfig{
		accessToken: o.optString("accessToken", ""),
		environment: o.optString("environment", ""),
		merchantID:  o.optString("merchantId", ""),
	}
}

func (c VenmoConfig) AccessToken() string { return c.accessToken }
func (c VenmoConfig) Environment() string { return c.environment }
func (c VenmoConfig) MerchantID() string { return c.merchantID }

// IsAccessTokenValid reports whether an access token is present.
func (c VenmoConfig) IsAccessTokenValid() bool { return c.accessToken != "" }
