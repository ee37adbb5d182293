package configuration

// CardConfig holds card processing settings from the "creditCards" section.
type CardConfig struct {
	supportedCardTypes         []string
	fraudDataCollectionEnabled bool
}

// ParseCard builds card settings. Missing keys default to no supported
// types and fraud data collection disabled.
func ParseCard(section map[string]any) CardConfig {
	o := object(section)
	return CardConfig{
		supportedCardTypes:         cloneStrings(o.optStrings("supportedCardTypes")),
		fraudDataCollectionEnabled: o.optBool("collectDeviceData", false),
	}
}

// SupportedCardTypes returns a copy of the card types the merchant accepts.
func (c CardConfig) SupportedCardTypes() []string { return cloneStrings(c.supportedCardTypes) }

// IsFraudDataCollectionEnabled reports whether device data should be collected.
func (c CardConfig) IsFraudDataCollectionEnabled() bool { return c.fraudDataCollectionEnabled }
