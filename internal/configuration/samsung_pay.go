package configuration

// SamsungPayConfig holds Samsung Pay settings from the "samsungPay" section.
type SamsungPayConfig struct {
	merchantDisplayName string
	serviceID           string
	supportedCardBrands []string
	authorization       string
	environment         string
}

// ParseSamsungPay builds Samsung Pay settings; nil yields a disabled config.
func ParseSamsungPay(section map[string]any) SamsungPayConfig {
	o := object(section)
	return SamsungPayConfig{
		merchantDisplayName: o.optString("displayName", ""),
		serviceID:           o.optString("serviceId", ""),
		supportedCardBrands: uniqueStrings(o.optStrings("supportedCardBrands")),
		authorization:       o.optString("samsungAuthorization", ""),
		environment:         o.optString("environment", ""),
	}
}

func (c SamsungPayConfig) MerchantDisplayName() string { return c.merchantDisplayName }
func (c SamsungPayConfig) ServiceID() string { return c.serviceID }
func (c SamsungPayConfig) Authorization() string { return c.authorization }
func (c SamsungPayConfig) Environment() string { return c.environment }

// SupportedCardBrands returns a copy of the brands, deduplicated in first-seen order.
func (c SamsungPayConfig) SupportedCardBrands() []string {
	return cloneStrings(c.supportedCardBrands)
}

// IsEnabled is true when the gateway issued a Samsung Pay authorization.
func (c SamsungPayConfig) IsEnabled() bool { return c.authorization != "" }

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
