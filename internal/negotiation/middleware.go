package negotiation

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// Middleware creates HTTP middleware that identifies the calling SDK.
// Parses SDK-Client and GraphQL-Features, applies the version gate and
// stores a ClientContext in the request context for handlers.
//
// SDK-Client is REQUIRED on all non-exempt requests.
// Requests without it are rejected with 400 Bad Request; clients below the
// minimum version get 426 Upgrade Required.
func Middleware(negotiator *Negotiator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExemptPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get(SDKClientHeader)
			if header == "" {
				writeNegotiationError(w, http.StatusBadRequest, SDKClientRequired,
					"SDK-Client header is required for all requests")
				return
			}

			client, err := ParseSDKClientHeader(header)
			if err != nil {
				logger.Warn("invalid SDK-Client header",
					slog.String("header", header),
					slog.String("error", err.Error()))
				writeNegotiationError(w, http.StatusBadRequest, SDKClientRequired,
					"Invalid SDK-Client header: "+err.Error())
				return
			}

			if err := negotiator.Check(client); err != nil {
				var verErr *VersionError
				if errors.As(err, &verErr) && verErr.Code == SDKVersionUnsupported {
					logger.Info("rejected outdated SDK",
						slog.String("version", client.Version),
						slog.String("platform", client.Platform),
						slog.String("min_version", verErr.MinVersion))
					writeNegotiationError(w, http.StatusUpgradeRequired, verErr.Code, verErr.Message)
					return
				}
				writeNegotiationError(w, http.StatusBadRequest, SDKClientRequired, err.Error())
				return
			}

			features, err := ParseGraphQLFeaturesHeader(r.Header.Get(GraphQLFeaturesHeader))
			if err != nil {
				writeNegotiationError(w, http.StatusBadRequest, InvalidGraphQLFeatures, err.Error())
				return
			}
			client.GraphQLFeatures = features

			reqCtx := context.WithValue(r.Context(), ClientContextKey, client)
			next.ServeHTTP(w, r.WithContext(reqCtx))
		})
	}
}

// isExemptPath returns true for paths that don't require SDK-Client.
// Health checks are infrastructure; MCP tools carry their own inputs.
func isExemptPath(path string) bool {
	switch {
	case path == "/health" || path == "/healthz":
		return true
	case path == "/mcp" || strings.HasPrefix(path, "/mcp/"):
		return true
	default:
		return false
	}
}

// writeNegotiationError writes an error in the standard envelope format.
func writeNegotiationError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}{}
	resp.Error.Code = code
	resp.Error.Message = message

	json.NewEncoder(w).Encode(resp)
}

// GetClientContext retrieves the client context from request context.
// Returns nil if the path was exempt or the middleware did not run.
func GetClientContext(ctx context.Context) *ClientContext {
	v, _ := ctx.Value(ClientContextKey).(*ClientContext)
	return v
}
