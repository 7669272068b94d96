// Package rpc exposes the dispatch engine over HTTP: the JSON-RPC
// endpoint itself plus the small informational endpoints (/, /health,
// /tools) the server has always shipped with.
package rpc

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vector-ai/vector-mcp-server/internal/dispatch"
	"github.com/vector-ai/vector-mcp-server/internal/protocol"
)

// maxRequestBytes bounds the accepted request body size.
const maxRequestBytes = 1 << 20

// Handler serves JSON-RPC requests over HTTP POST.
type Handler struct {
	engine *dispatch.Engine
	logger *slog.Logger
}

// NewHandler wraps the engine as an http.Handler.
func NewHandler(engine *dispatch.Engine, logger *slog.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

// ServeHTTP decodes one JSON-RPC request, dispatches it and writes the
// response envelope. Malformed JSON yields a parse error response.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req protocol.Request
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		if h.logger != nil {
			h.logger.Warn("malformed json-rpc request", "error", err)
		}
		writeJSON(w, h.logger, protocol.Response{
			Error: &protocol.Error{
				Code:    protocol.CodeParseError,
				Message: "parse error: " + err.Error(),
			},
		})
		return
	}

	writeJSON(w, h.logger, h.engine.Handle(r.Context(), req))
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, value any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil && logger != nil {
		logger.Error("write response failed", "error", err)
	}
}
