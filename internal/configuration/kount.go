package configuration

// KountConfig holds the Kount fraud-protection merchant id.
type KountConfig struct {
	merchantID string
}

// ParseKount builds Kount settings from the "kount" section.
func ParseKount(section map[string]any) KountConfig {
	return KountConfig{merchantID: object(section).optString("kountMerchantId", "")}
}

func (c KountConfig) MerchantID() string { return c.merchantID }
func (c KountConfig) IsEnabled() bool { return c.merchantID != "" }
