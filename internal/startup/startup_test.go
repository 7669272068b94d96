package startup

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/vector-ai/vector-mcp-server/internal/vectorapi"
)

type probeCaller struct {
	outcome any
	calls   int
}

func (p *probeCaller) Call(_ context.Context, _, path string, _ any, _ url.Values) any {
	if path != "/health" {
		panic("probe must hit /health, got " + path)
	}
	p.calls++
	return p.outcome
}

func (p *probeCaller) BaseURL() string {
	return "https://vectorapi.up.railway.app/v1"
}

func TestProbeIsNonFatal(t *testing.T) {
	t.Parallel()

	for _, outcome := range []any{
		map[string]any{"status": "ok"},
		vectorapi.Failure(0, "down"),
	} {
		caller := &probeCaller{outcome: outcome}
		Probe(context.Background(), caller, time.Second, nil)
		if caller.calls != 1 {
			t.Fatalf("calls = %d", caller.calls)
		}
	}
}
