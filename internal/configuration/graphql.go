package configuration

// GraphQL feature names reported by the gateway.
const (
	FeatureTokenizeCreditCards = "tokenize_credit_cards"
)

// GraphQLConfig holds the GraphQL endpoint and its enabled feature set.
type GraphQLConfig struct {
	url      string
	features map[string]struct{}
}

// ParseGraphQL builds GraphQL settings from the "graphQL" section.
func ParseGraphQL(section map[string]any) GraphQLConfig {
	o := object(section)
	return GraphQLConfig{
		url:      o.optString("url", ""),
		features: stringSet(o.optStrings("features")),
	}
}

func (c GraphQLConfig) URL() string { return c.url }

// IsEnabled is true when a GraphQL endpoint is configured.
func (c GraphQLConfig) IsEnabled() bool { return c.url != "" }

// IsFeatureEnabled returns true only if GraphQL is enabled and the feature
// is in the enabled set.
func (c GraphQLConfig) IsFeatureEnabled(feature string) bool {
	if !c.IsEnabled() {
		return false
	}
	_, ok := c.features[feature]
	return ok
}
