// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcpserver exposes the knowledge store over the Model Context
// Protocol: five lookup tools and three read-only JSON resources.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pdiddy/lenny-knowledge/internal/knowledge"
	"github.com/pdiddy/lenny-knowledge/internal/query"
)

// Name is the server name announced during the MCP handshake.
const Name = "lenny-knowledge-mcp"

const resourceMIMEType = "application/json"

// Resource URIs.
const (
	URIFrameworks    = "lenny://knowledge/frameworks"
	URIBestPractices = "lenny://knowledge/best-practices"
	URIMethodologies = "lenny://knowledge/methodologies"
)

// Handler adapts the dispatcher and store to MCP tool and resource calls.
type Handler struct {
	store      *knowledge.Store
	dispatcher *query.Dispatcher
	logger     *slog.Logger
}

// NewHandler creates a Handler. A nil logger discards log output.
func NewHandler(store *knowledge.Store, dispatcher *query.Dispatcher, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{store: store, dispatcher: dispatcher, logger: logger}
}

// New creates the MCP server with every tool and resource registered.
func New(h *Handler, version string) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
	)

	for _, tool := range Tools() {
		s.AddTool(tool, h.HandleTool)
	}
	for _, res := range Resources() {
		s.AddResource(res, h.HandleResource)
	}
	return s
}

// Serve runs s over stdin and stdout until the client disconnects.
func Serve(s *server.MCPServer) error {
	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("serving stdio: %w", err)
	}
	return nil
}

// Tools returns the tool definitions in catalog order.
func Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(string(query.OpGetFramework),
			mcp.WithDescription("Get detailed information about a product management framework (RICE, JTBD, North Star, etc.) including steps and examples"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description(`Framework name or keyword (e.g., "RICE", "jobs to be done", "prioritization")`),
			),
		),
		mcp.NewTool(string(query.OpGetBestPractices),
			mcp.WithDescription("Get best practices and actionable advice for a specific PM topic"),
			mcp.WithString("topic",
				mcp.Required(),
				mcp.Description(`Topic (e.g., "user-research", "product-market-fit", "prioritization", "growth")`),
			),
		),
		mcp.NewTool(string(query.OpGetMethodology),
			mcp.WithDescription("Get detailed methodologies that product experts use (e.g., Continuous Discovery, Dual-Track Agile)"),
			mcp.WithString("query",
				mcp.Description("Methodology name or keyword"),
			),
		),
		mcp.NewTool(string(query.OpGetExpertAdvice),
			mcp.WithDescription("Get expert advice for a specific product situation or challenge"),
			mcp.WithString("situation",
				mcp.Required(),
				mcp.Description(`Describe your situation or challenge (e.g., "We need to decide on pricing", "How to hire first PM")`),
			),
		),
		mcp.NewTool(string(query.OpListTopics),
			mcp.WithDescription("List all available knowledge topics"),
		),
	}
}

// Resources returns the resource definitions.
func Resources() []mcp.Resource {
	return []mcp.Resource{
		mcp.NewResource(URIFrameworks, "Product Management Frameworks",
			mcp.WithResourceDescription("Collection of PM frameworks from Lenny's Podcast"),
			mcp.WithMIMEType(resourceMIMEType),
		),
		mcp.NewResource(URIBestPractices, "Best Practices by Topic",
			mcp.WithResourceDescription("Curated best practices from product leaders"),
			mcp.WithMIMEType(resourceMIMEType),
		),
		mcp.NewResource(URIMethodologies, "Product Methodologies",
			mcp.WithResourceDescription("Proven methodologies used by successful teams"),
			mcp.WithMIMEType(resourceMIMEType),
		),
	}
}

// HandleTool answers a tool call. Failures are returned as error results so
// the client sees them; the protocol-level error is always nil.
func (h *Handler) HandleTool(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := h.dispatcher.Call(req.Params.Name, req.GetArguments())
	if res.IsError {
		return mcp.NewToolResultError(res.Text), nil
	}
	return mcp.NewToolResultText(res.Text), nil
}

// HandleResource returns a collection as JSON.
func (h *Handler) HandleResource(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI

	var c knowledge.Collection
	switch uri {
	case URIFrameworks:
		c = knowledge.CollectionFrameworks
	case URIBestPractices:
		c = knowledge.CollectionBestPractices
	case URIMethodologies:
		c = knowledge.CollectionMethodologies
	default:
		h.logger.Warn("unknown resource", "uri", uri)
		return nil, fmt.Errorf("unknown resource: %s", uri)
	}

	data, err := h.store.MarshalCollectionJSON(c)
	if err != nil {
		return nil, fmt.Errorf("reading resource %s: %w", uri, err)
	}
	h.logger.Debug("read resource", "uri", uri, "bytes", len(data))

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: resourceMIMEType,
			Text:     string(data),
		},
	}, nil
}
