package registry

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/vector-ai/vector-mcp-server/internal/protocol"
)

// Handler executes one tool call. It returns the outcome as a plain
// value; remote failures are values too, never errors (the dispatch
// layer forwards whatever comes back as the JSON-RPC result).
type Handler func(ctx context.Context, args map[string]any) any

// Tool is one invokable operation in the catalog.
type Tool struct {
	// Name uniquely identifies the tool within the registry.
	Name string
	// Description explains the tool for the caller.
	Description string
	// InputSchema declares the accepted argument shape as a JSON
	// Schema document. It is self-description only; handlers access
	// arguments directly.
	InputSchema map[string]any
	// Handler performs the remote call(s).
	Handler Handler
}

// Registry is the immutable, ordered tool catalog. It is built once at
// process start and is safe for unsynchronized concurrent reads.
type Registry struct {
	order  []*Tool
	byName map[string]*Tool
}

// New builds a registry from the given tools. Duplicate or empty names
// and nil handlers are rejected so the process fails before serving.
func New(tools ...*Tool) (*Registry, error) {
	reg := &Registry{
		order:  make([]*Tool, 0, len(tools)),
		byName: make(map[string]*Tool, len(tools)),
	}
	for i, tool := range tools {
		if tool == nil {
			return nil, fmt.Errorf("tool %d is nil", i)
		}
		if strings.TrimSpace(tool.Name) == "" {
			return nil, fmt.Errorf("tool %d has no name", i)
		}
		if tool.Handler == nil {
			return nil, fmt.Errorf("tool %s has no handler", tool.Name)
		}
		if _, exists := reg.byName[tool.Name]; exists {
			return nil, fmt.Errorf("duplicate tool name: %s", tool.Name)
		}
		reg.order = append(reg.order, tool)
		reg.byName[tool.Name] = tool
	}
	return reg, nil
}

// Lookup returns the tool with the given name.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	tool, ok := r.byName[name]
	return tool, ok
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}

// All iterates over the tools in registration order. The sequence is
// restartable and its order is stable for the process lifetime.
func (r *Registry) All() iter.Seq[*Tool] {
	return func(yield func(*Tool) bool) {
		for _, tool := range r.order {
			if !yield(tool) {
				return
			}
		}
	}
}

// Summaries projects the catalog into listing entries, in registration order.
func (r *Registry) Summaries() []protocol.ToolSummary {
	summaries := make([]protocol.ToolSummary, 0, len(r.order))
	for tool := range r.All() {
		summaries = append(summaries, protocol.ToolSummary{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
		})
	}
	return summaries
}

// Names returns the tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order))
	for tool := range r.All() {
		names = append(names, tool.Name)
	}
	return names
}
