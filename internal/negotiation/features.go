package negotiation

import "gateway-config/internal/configuration"

// FeatureChecker is the slice of a configuration that feature intersection
// needs. Satisfied by configuration.InternalReader.
type FeatureChecker interface {
	IsGraphQLFeatureEnabled(feature string) bool
}

var _ FeatureChecker = (configuration.InternalReader)(nil)

// IntersectFeatures returns the requested features the merchant's GraphQL
// endpoint supports, in request order. Never nil.
func IntersectFeatures(cfg FeatureChecker, requested []string) []string {
	out := make([]string, 0, len(requested))
	for _, f := range requested {
		if cfg.IsGraphQLFeatureEnabled(f) {
			out = append(out, f)
		}
	}
	return out
}
