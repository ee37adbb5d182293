// MCP transport handler for the configuration inspector using the official
// MCP Go SDK. Exposes parsing and merchant lookups as MCP tools.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"gateway-config/internal/configuration"
	"gateway-config/internal/model"
	"gateway-config/internal/negotiation"
)

// === MCP Meta Types ===
// meta carries what REST sends in headers:
// - SDK-Client header → meta["sdk-client"]

// MCPMeta represents request metadata in MCP requests.
type MCPMeta struct {
	SDKClient *SDKClientMeta `json:"sdk-client,omitempty" jsonschema:"calling SDK; required when the server enforces a minimum SDK version"`
}

// SDKClientMeta identifies the calling SDK.
type SDKClientMeta struct {
	Version  string `json:"version" jsonschema:"SDK semantic version, e.g. 4.39.0"`
	Platform string `json:"platform,omitempty" jsonschema:"SDK platform, e.g. android"`
}

// === MCP Tool Input/Output Types ===

// ParseConfigurationInput is the input schema for parse_configuration tool.
type ParseConfigurationInput struct {
	Meta     MCPMeta  `json:"meta,omitempty" jsonschema:"request metadata"`
	Document string   `json:"document" jsonschema:"gateway configuration JSON document"`
	Features []string `json:"features,omitempty" jsonschema:"GraphQL features to check"`
}

// ParseConfigurationOutput reports whether a document parsed.
// Invalid documents are a normal result, not a tool error.
type ParseConfigurationOutput struct {
	Valid   bool           `json:"valid"`
	Error   string         `json:"error,omitempty"`
	Summary *model.Summary `json:"summary,omitempty"`
}

// GetMerchantSummaryInput is the input schema for get_merchant_summary tool.
type GetMerchantSummaryInput struct {
	Meta       MCPMeta  `json:"meta,omitempty" jsonschema:"request metadata"`
	MerchantID string   `json:"merchant_id" jsonschema:"merchant ID of an installed snapshot"`
	Features   []string `json:"features,omitempty" jsonschema:"GraphQL features to check"`
}

// ListMerchantsInput is the input schema for list_merchants tool.
type ListMerchantsInput struct {
	Meta MCPMeta `json:"meta,omitempty" jsonschema:"request metadata"`
}

// GraphQLFeatureInput is the input schema for graphql_feature_enabled tool.
// Exactly one of MerchantID and Document must be set.
type GraphQLFeatureInput struct {
	Meta       MCPMeta `json:"meta,omitempty" jsonschema:"request metadata"`
	MerchantID string  `json:"merchant_id,omitempty" jsonschema:"merchant ID of an installed snapshot"`
	Document   string  `json:"document,omitempty" jsonschema:"gateway configuration JSON document"`
	Feature    string  `json:"feature" jsonschema:"GraphQL feature name, e.g. tokenize_credit_cards"`
}

// GraphQLFeatureOutput is the result of graphql_feature_enabled.
type GraphQLFeatureOutput struct {
	MerchantID     string `json:"merchant_id"`
	Feature        string `json:"feature"`
	GraphQLEnabled bool   `json:"graphql_enabled"`
	Enabled        bool   `json:"enabled"`
}

// NewMCPServer creates an MCP server with inspector tools registered.
// The server exposes the same operations as the REST API but via MCP protocol.
func (h *Handler) NewMCPServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gateway-config",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			Instructions: "Gateway configuration inspector. " +
				"Use these tools to validate configuration documents and query which payment features a merchant has enabled.",
		},
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_configuration",
		Description: "Parse a gateway configuration document and summarize the features it enables.",
	}, h.mcpParseConfiguration)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_merchants",
		Description: "List merchants with an installed configuration snapshot.",
	}, h.mcpListMerchants)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_merchant_summary",
		Description: "Summarize the configuration installed for a merchant.",
	}, h.mcpGetMerchantSummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "graphql_feature_enabled",
		Description: "Check whether a GraphQL feature is enabled, for an installed merchant or a given document.",
	}, h.mcpGraphQLFeatureEnabled)

	return server
}

// NewMCPHandler returns an HTTP handler for the MCP endpoint.
// Mount this at /mcp on your mux.
func (h *Handler) NewMCPHandler() http.Handler {
	server := h.NewMCPServer()
	return mcp.NewStreamableHTTPHandler(
		func(r *http.Request) *mcp.Server { return server },
		&mcp.StreamableHTTPOptions{Logger: h.logger},
	)
}

// === Tool Handlers ===

func (h *Handler) mcpParseConfiguration(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input ParseConfigurationInput,
) (*mcp.CallToolResult, *ParseConfigurationOutput, error) {
	if err := h.mcpNegotiate(&input.Meta); err != nil {
		return nil, nil, err
	}

	cfg, err := configuration.FromJSON(input.Document)
	if err != nil {
		return nil, &ParseConfigurationOutput{Valid: false, Error: err.Error()}, nil
	}

	return nil, &ParseConfigurationOutput{
		Valid:   true,
		Summary: model.NewSummary(cfg, input.Features...),
	}, nil
}

func (h *Handler) mcpListMerchants(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input ListMerchantsInput,
) (*mcp.CallToolResult, *merchantList, error) {
	if err := h.mcpNegotiate(&input.Meta); err != nil {
		return nil, nil, err
	}

	return nil, &merchantList{Merchants: h.store.List(ctx)}, nil
}

func (h *Handler) mcpGetMerchantSummary(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input GetMerchantSummaryInput,
) (*mcp.CallToolResult, *model.Summary, error) {
	if err := h.mcpNegotiate(&input.Meta); err != nil {
		return nil, nil, err
	}

	if input.MerchantID == "" {
		return nil, nil, fmt.Errorf("merchant_id is required")
	}

	cfg, err := h.store.Get(ctx, input.MerchantID)
	if err != nil {
		return nil, nil, h.mcpError(err)
	}

	return nil, model.NewSummary(cfg, input.Features...), nil
}

func (h *Handler) mcpGraphQLFeatureEnabled(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input GraphQLFeatureInput,
) (*mcp.CallToolResult, *GraphQLFeatureOutput, error) {
	if err := h.mcpNegotiate(&input.Meta); err != nil {
		return nil, nil, err
	}

	if input.Feature == "" {
		return nil, nil, fmt.Errorf("feature is required")
	}

	var (
		cfg *configuration.Configuration
		err error
	)
	switch {
	case input.MerchantID != "" && input.Document != "":
		return nil, nil, fmt.Errorf("provide merchant_id or document, not both")
	case input.MerchantID != "":
		cfg, err = h.store.Get(ctx, input.MerchantID)
	case input.Document != "":
		cfg, err = configuration.FromJSON(input.Document)
		if err != nil {
			err = model.NewParseError(err)
		}
	default:
		return nil, nil, fmt.Errorf("merchant_id or document is required")
	}
	if err != nil {
		return nil, nil, h.mcpError(err)
	}

	return nil, &GraphQLFeatureOutput{
		MerchantID:     cfg.MerchantID(),
		Feature:        input.Feature,
		GraphQLEnabled: cfg.IsGraphQLEnabled(),
		Enabled:        cfg.IsGraphQLFeatureEnabled(input.Feature),
	}, nil
}

// mcpError converts store and parser errors to MCP-friendly errors.
func (h *Handler) mcpError(err error) error {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %s", apiErr.Code, apiErr.Message)
	}
	// Don't leak internal error details
	h.logger.Error("mcp internal error", slog.String("error", err.Error()))
	return fmt.Errorf("internal error")
}

// mcpNegotiate applies the SDK version gate to meta.sdk-client.
// Skipped when no negotiator is configured.
func (h *Handler) mcpNegotiate(meta *MCPMeta) error {
	if h.negotiator == nil {
		return nil
	}

	if meta == nil || meta.SDKClient == nil || meta.SDKClient.Version == "" {
		return fmt.Errorf("%s: meta.sdk-client.version is required in MCP requests", negotiation.SDKClientRequired)
	}

	err := h.negotiator.Check(&negotiation.ClientContext{
		Version:  meta.SDKClient.Version,
		Platform: meta.SDKClient.Platform,
	})
	if err != nil {
		var verErr *negotiation.VersionError
		if errors.As(err, &verErr) {
			return fmt.Errorf("%s: %s", verErr.Code, verErr.Message)
		}
		return err
	}
	return nil
}
