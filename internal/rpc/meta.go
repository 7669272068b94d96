package rpc

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/vector-ai/vector-mcp-server/internal/dispatch"
	"github.com/vector-ai/vector-mcp-server/internal/vectorapi"
)

// remoteCaller is the slice of the Vector API client the informational
// endpoints need.
type remoteCaller interface {
	Call(ctx context.Context, method, path string, body any, query url.Values) any
	BaseURL() string
}

// Meta serves the informational endpoints next to the JSON-RPC one.
type Meta struct {
	engine  *dispatch.Engine
	client  remoteCaller
	rpcPath string
	logger  *slog.Logger
}

// NewMeta builds the informational endpoints handler set.
func NewMeta(engine *dispatch.Engine, client remoteCaller, rpcPath string, logger *slog.Logger) *Meta {
	return &Meta{engine: engine, client: client, rpcPath: rpcPath, logger: logger}
}

// Root reports the server banner.
func (m *Meta) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	info := m.engine.ServerInfo()
	writeJSON(w, m.logger, map[string]any{
		"message":        "Vector AI MCP Server está rodando",
		"version":        info.Version,
		"mcp_endpoint":   m.rpcPath,
		"tools_count":    m.engine.Registry().Len(),
		"vector_api_url": m.client.BaseURL(),
		"status":         "online",
	})
}

// Health reports server health including remote API reachability.
func (m *Meta) Health(w http.ResponseWriter, r *http.Request) {
	apiStatus := "ok"
	if vectorapi.IsFailure(m.client.Call(r.Context(), http.MethodGet, "/health", nil, nil)) {
		apiStatus = "error"
	}
	writeJSON(w, m.logger, map[string]any{
		"status":          "healthy",
		"mcp_server":      "ready",
		"vector_api":      apiStatus,
		"tools_available": m.engine.Registry().Len(),
	})
}

// Tools lists the registered tool names.
func (m *Meta) Tools(w http.ResponseWriter, _ *http.Request) {
	names := m.engine.Registry().Names()
	writeJSON(w, m.logger, map[string]any{
		"tools": names,
		"total": len(names),
	})
}

// Routes returns the informational endpoints keyed by path.
func (m *Meta) Routes() map[string]http.Handler {
	return map[string]http.Handler{
		"/":       http.HandlerFunc(m.Root),
		"/health": http.HandlerFunc(m.Health),
		"/tools":  http.HandlerFunc(m.Tools),
	}
}
