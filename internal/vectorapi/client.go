package vectorapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxResponseBytes bounds how much of a remote response is read.
const maxResponseBytes = 1 << 20

// Client calls the Vector API data service. Call never returns an
// error: every failure is normalized into a failure outcome so tool
// handlers can hand it back as a plain value.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New returns a Client for the given base URL. A trailing slash on the
// base URL is trimmed so paths can always start with "/".
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// BaseURL returns the configured remote base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call issues one HTTP request against the remote service and returns
// either the decoded JSON payload or a failure outcome.
func (c *Client) Call(ctx context.Context, method, path string, body any, query url.Values) any {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Failure(0, "falha ao codificar o corpo da requisição: "+err.Error())
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return Failure(0, "falha ao montar a requisição: "+err.Error())
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")

	if c.logger != nil {
		c.logger.Info("vector api call", "method", method, "url", target)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("vector api request failed", "method", method, "url", target, "error", err)
		}
		return Failure(0, err.Error())
	}
	defer response.Body.Close()

	data, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return Failure(0, "falha ao ler a resposta: "+err.Error())
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		detail := decodeDetail(data)
		if c.logger != nil {
			c.logger.Error("vector api http error", "status", response.StatusCode, "detail", detail)
		}
		return Failure(response.StatusCode, detail)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return Failure(0, "resposta não é JSON válido: "+err.Error())
	}
	return payload
}

// decodeDetail prefers the remote JSON error payload, falling back to
// the raw body text.
func decodeDetail(data []byte) any {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ""
	}
	var detail any
	if err := json.Unmarshal(trimmed, &detail); err == nil {
		return detail
	}
	return string(trimmed)
}
