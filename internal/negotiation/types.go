// Package negotiation identifies the SDK calling the inspector.
// REST requests carry an SDK-Client header (RFC 8941 Dictionary) naming the
// SDK version and platform, and may carry a GraphQL-Features header (RFC 8941
// List) naming the GraphQL features the caller wants checked.
// MCP requests are exempt: tool inputs carry what they need.
package negotiation

// ClientContext describes the calling SDK.
// Stored in http.Request context by Middleware.
type ClientContext struct {
	// Version is the SDK version as sent, e.g. "4.39.0"
	Version string

	// Platform is the SDK platform ("android", "ios", ...), "" if not sent
	Platform string

	// GraphQLFeatures lists features named in GraphQL-Features, in request order
	GraphQLFeatures []string
}

// contextKey is the type for context values to avoid collisions
type contextKey string

// ClientContextKey is the context key for storing ClientContext
const ClientContextKey contextKey = "gateway.client"

// SDKClientRequired is the error code when SDK-Client is missing or malformed
const SDKClientRequired = "sdk_client_required"

// SDKVersionUnsupported is the error code when the SDK is older than the minimum
const SDKVersionUnsupported = "sdk_version_unsupported"

// InvalidGraphQLFeatures is the error code when GraphQL-Features is malformed
const InvalidGraphQLFeatures = "invalid_graphql_features"
