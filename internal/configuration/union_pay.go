package configuration

// UnionPayConfig holds the UnionPay switch.
type UnionPayConfig struct {
	enabled bool
}

// ParseUnionPay builds UnionPay settings from the "unionPay" section.
func ParseUnionPay(section map[string]any) UnionPayConfig {
	return UnionPayConfig{enabled: object(section).optBool("enabled", false)}
}

func (c UnionPayConfig) IsEnabled() bool { return c.enabled }
