package startup

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/vector-ai/vector-mcp-server/internal/vectorapi"
)

// caller is the remote call slice the probe needs.
type caller interface {
	Call(ctx context.Context, method, path string, body any, query url.Values) any
	BaseURL() string
}

// Probe checks Vector API reachability once at boot. The result is
// logged only; an unreachable remote must not keep the server from
// starting, tools will report failures per call.
func Probe(ctx context.Context, client caller, timeout time.Duration, logger *slog.Logger) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	outcome := client.Call(probeCtx, http.MethodGet, "/health", nil, nil)
	if vectorapi.IsFailure(outcome) {
		if logger != nil {
			logger.Warn("vector api unreachable at startup", "base_url", client.BaseURL(), "outcome", outcome)
		}
		return
	}
	if logger != nil {
		logger.Info("vector api reachable", "base_url", client.BaseURL())
	}
}
