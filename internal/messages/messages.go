package messages

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

//go:embed data/*.json
var files embed.FS

// Message keys used across the server.
const (
	KeyToolNotFound    = "tool_not_found"
	KeyUnknownMethod   = "unknown_method"
	KeyAthleteNotFound = "athlete_not_found"
	KeyParseError      = "parse_error"
	KeyInternalError   = "internal_error"
)

// Renderer renders localized messages by key.
type Renderer interface {
	// Render returns a localized message by key.
	Render(key string, data any) (string, error)
}

// Bundle holds parsed message templates for a selected language.
type Bundle struct {
	lang      string
	templates map[string]*template.Template
}

// Load loads localized messages for the specified language. Portuguese
// is the default, matching the remote service's own message language.
func Load(lang string) (*Bundle, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang != "pt" && lang != "en" {
		lang = "pt"
	}

	raw, err := files.ReadFile(fmt.Sprintf("data/%s.json", lang))
	if err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}

	var entries map[string]string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse messages: %w", err)
	}

	parsed := make(map[string]*template.Template, len(entries))
	for key, value := range entries {
		tmpl, err := template.New(key).Parse(value)
		if err != nil {
			return nil, fmt.Errorf("parse message %s: %w", key, err)
		}
		parsed[key] = tmpl
	}

	return &Bundle{lang: lang, templates: parsed}, nil
}

// Lang returns the selected language.
func (b *Bundle) Lang() string {
	if b == nil {
		return ""
	}
	return b.lang
}

// Render renders a message by key with the supplied data.
func (b *Bundle) Render(key string, data any) (string, error) {
	if b == nil {
		return "", fmt.Errorf("messages bundle is nil")
	}
	tmpl, ok := b.templates[key]
	if !ok {
		return "", fmt.Errorf("message not found: %s", key)
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render message %s: %w", key, err)
	}
	return out.String(), nil
}
