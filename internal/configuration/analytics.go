package configuration

// AnalyticsConfig holds the analytics service settings.
type AnalyticsConfig struct {
	url string
}

// ParseAnalytics builds the analytics settings from the "analytics" section.
// A nil section yields a disabled config.
func ParseAnalytics(section map[string]any) AnalyticsConfig {
	return AnalyticsConfig{url: object(section).optString("url", "")}
}

// URL is the analytics endpoint.
func (c AnalyticsConfig) URL() string { return c.url }

// IsEnabled reports whether an analytics endpoint is configured.
func (c AnalyticsConfig) IsEnabled() bool { return c.url != "" }
