package protocol

// Version is the protocol revision announced during capability negotiation.
const Version = "2024-11-05"

// Recognized request methods.
const (
	MethodInitialize = "initialize"
	MethodToolsList  = "tools/list"
	MethodToolsCall  = "tools/call"
)

// JSON-RPC error codes.
const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
)

// Request is one inbound JSON-RPC call.
type Request struct {
	// JSONRPC is the protocol marker, ignored on input.
	JSONRPC string `json:"jsonrpc,omitempty"`
	// ID is the caller correlation token, echoed back unchanged.
	ID any `json:"id"`
	// Method selects the operation kind.
	Method string `json:"method"`
	// Params carries tool name and arguments for tools/call.
	Params *CallParams `json:"params,omitempty"`
}

// CallParams identifies the tool and its arguments.
type CallParams struct {
	// Name is the tool name.
	Name string `json:"name"`
	// Arguments maps parameter names to values.
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Response is the uniform outcome envelope. Exactly one of Result or
// Error is populated.
type Response struct {
	// JSONRPC is the protocol marker.
	JSONRPC string `json:"jsonrpc,omitempty"`
	// ID is copied from the originating request.
	ID any `json:"id"`
	// Result holds the operation outcome, including remote failure
	// values returned by tool handlers.
	Result any `json:"result,omitempty"`
	// Error reports protocol-level failures only.
	Error *Error `json:"error,omitempty"`
}

// Error is a protocol-level error descriptor.
type Error struct {
	// Code is the JSON-RPC error code.
	Code int `json:"code"`
	// Message is a human-readable description.
	Message string `json:"message"`
}

// ToolSummary describes one catalog entry for listing responses.
type ToolSummary struct {
	// Name is the tool name.
	Name string `json:"name"`
	// Description explains the tool for the caller.
	Description string `json:"description"`
	// InputSchema declares the accepted argument shape as a JSON
	// Schema document.
	InputSchema map[string]any `json:"inputSchema"`
}

// ToolList is the tools/list result.
type ToolList struct {
	// Tools lists all registered tools in registration order.
	Tools []ToolSummary `json:"tools"`
}

// InitializeResult is the capability-negotiation result.
type InitializeResult struct {
	// ProtocolVersion is the announced protocol revision.
	ProtocolVersion string `json:"protocolVersion"`
	// Capabilities lists supported feature flags.
	Capabilities Capabilities `json:"capabilities"`
	// ServerInfo identifies the server.
	ServerInfo ServerInfo `json:"serverInfo"`
}

// Capabilities lists supported capability flags.
type Capabilities struct {
	// Tools describes tool-related capabilities.
	Tools ToolsCapability `json:"tools"`
}

// ToolsCapability describes tool catalog capabilities.
type ToolsCapability struct {
	// ListChanged reports whether the catalog can change at runtime.
	ListChanged bool `json:"listChanged"`
}

// ServerInfo identifies the server during capability negotiation.
type ServerInfo struct {
	// Name is the server name.
	Name string `json:"name"`
	// Version is the server version.
	Version string `json:"version"`
}
