package configuration

// BraintreeAPIConfig holds the credentials for the Braintree API.
type BraintreeAPIConfig struct {
	accessToken string
	url         string
}

// ParseBraintreeAPI builds the settings from the "braintreeApi" section.
func ParseBraintreeAPI(section map[string]any) BraintreeAPIConfig {
	o := object(section)
	return BraintreeAPIConfig{
		accessToken: o.optString("accessToken", ""),
		url:         o.optString("url", ""),
	}
}

func (c BraintreeAPIConfig) AccessToken() string { return c.accessToken }
func (c BraintreeAPIConfig) URL() string { return c.url }

// IsEnabled is true when an access token was issued.
func (c BraintreeAPIConfig) IsEnabled() bool { return c.accessToken != "" }
