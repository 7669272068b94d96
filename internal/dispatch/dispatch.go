// Package dispatch turns one JSON-RPC request into one response. It
// owns the method routing, the registry lookup and the envelope
// invariants; tool execution side effects belong to the handlers.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vector-ai/vector-mcp-server/internal/audit"
	"github.com/vector-ai/vector-mcp-server/internal/messages"
	"github.com/vector-ai/vector-mcp-server/internal/protocol"
	"github.com/vector-ai/vector-mcp-server/internal/registry"
	"github.com/vector-ai/vector-mcp-server/internal/security"
	"github.com/vector-ai/vector-mcp-server/internal/vectorapi"
)

// Engine routes requests against an immutable registry. It keeps no
// state between requests and is safe for concurrent use.
type Engine struct {
	registry *registry.Registry
	info     protocol.ServerInfo
	logger   *slog.Logger
	audit    audit.Logger
	messages messages.Renderer
}

// New builds an Engine over the given registry.
func New(reg *registry.Registry, info protocol.ServerInfo, logger *slog.Logger, auditLog audit.Logger, msgs messages.Renderer) *Engine {
	return &Engine{
		registry: reg,
		info:     info,
		logger:   logger,
		audit:    auditLog,
		messages: msgs,
	}
}

// Registry exposes the catalog for auxiliary endpoints.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// ServerInfo returns the announced server identity.
func (e *Engine) ServerInfo() protocol.ServerInfo {
	return e.info
}

// Handle processes one request and always produces a response with the
// request ID echoed and exactly one of result or error set.
func (e *Engine) Handle(ctx context.Context, req protocol.Request) protocol.Response {
	switch req.Method {
	case protocol.MethodInitialize:
		return e.result(req.ID, protocol.InitializeResult{
			ProtocolVersion: protocol.Version,
			Capabilities: protocol.Capabilities{
				Tools: protocol.ToolsCapability{ListChanged: false},
			},
			ServerInfo: e.info,
		})
	case protocol.MethodToolsList:
		return e.result(req.ID, protocol.ToolList{Tools: e.registry.Summaries()})
	case protocol.MethodToolsCall:
		return e.callTool(ctx, req)
	default:
		return e.methodNotFound(req.ID, e.render(messages.KeyUnknownMethod, map[string]string{"Method": req.Method}))
	}
}

func (e *Engine) callTool(ctx context.Context, req protocol.Request) protocol.Response {
	name := ""
	var args map[string]any
	if req.Params != nil {
		name = req.Params.Name
		args = req.Params.Arguments
	}
	if args == nil {
		args = map[string]any{}
	}

	tool, ok := e.registry.Lookup(name)
	if !ok {
		return e.methodNotFound(req.ID, e.render(messages.KeyToolNotFound, nil))
	}

	correlationID := uuid.NewString()
	if e.logger != nil {
		e.logger.Info("tool call",
			"tool", tool.Name,
			"correlation_id", correlationID,
			"args", security.RedactArguments(args),
		)
	}
	e.record(ctx, audit.Event{Type: audit.TypeToolCall, Tool: tool.Name, CorrelationID: correlationID})

	outcome, panicked := e.execute(ctx, tool, args)
	if panicked {
		e.record(ctx, audit.Event{Type: audit.TypeToolPanic, Tool: tool.Name, CorrelationID: correlationID, Detail: fmt.Sprint(outcome)})
		return protocol.Response{
			ID: req.ID,
			Error: &protocol.Error{
				Code:    protocol.CodeInternalError,
				Message: e.render(messages.KeyInternalError, nil),
			},
		}
	}

	// Remote failures surface as the call's result, never as a
	// protocol error. Callers distinguish them by shape.
	if vectorapi.IsFailure(outcome) {
		e.record(ctx, audit.Event{
			Type:          audit.TypeToolRemoteError,
			Tool:          tool.Name,
			CorrelationID: correlationID,
			RemoteStatus:  remoteStatus(outcome),
		})
	} else {
		e.record(ctx, audit.Event{Type: audit.TypeToolOK, Tool: tool.Name, CorrelationID: correlationID})
	}
	return e.result(req.ID, outcome)
}

// execute invokes the handler and converts a panic into a reported
// outcome so the dispatch loop never dies mid-request.
func (e *Engine) execute(ctx context.Context, tool *registry.Tool, args map[string]any) (outcome any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			if e.logger != nil {
				e.logger.Error("tool handler panic", "tool", tool.Name, "panic", r)
			}
			outcome = r
			panicked = true
		}
	}()
	return tool.Handler(ctx, args), false
}

func (e *Engine) result(id, value any) protocol.Response {
	return protocol.Response{ID: id, Result: value}
}

func (e *Engine) methodNotFound(id any, message string) protocol.Response {
	return protocol.Response{
		ID: id,
		Error: &protocol.Error{
			Code:    protocol.CodeMethodNotFound,
			Message: message,
		},
	}
}

func (e *Engine) render(key string, data any) string {
	if e.messages == nil {
		return key
	}
	rendered, err := e.messages.Render(key, data)
	if err != nil {
		return key
	}
	return rendered
}

func (e *Engine) record(ctx context.Context, event audit.Event) {
	if e.audit != nil {
		e.audit.Record(ctx, event)
	}
}

func remoteStatus(outcome any) int {
	failure, ok := outcome.(map[string]any)
	if !ok {
		return 0
	}
	switch code := failure["codigo"].(type) {
	case int:
		return code
	case float64:
		return int(code)
	default:
		return 0
	}
}
