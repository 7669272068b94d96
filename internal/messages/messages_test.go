package messages

import (
	"strings"
	"testing"
)

func TestLoadDefaultsToPortuguese(t *testing.T) {
	t.Parallel()

	for _, lang := range []string{"", "pt", "xx", "PT "} {
		bundle, err := Load(lang)
		if err != nil {
			t.Fatalf("Load(%q): %v", lang, err)
		}
		if bundle.Lang() != "pt" {
			t.Fatalf("Load(%q).Lang() = %s", lang, bundle.Lang())
		}
	}
}

func TestRenderPortugueseMessages(t *testing.T) {
	t.Parallel()

	bundle, err := Load("pt")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, err := bundle.Render(KeyToolNotFound, nil)
	if err != nil || got != "Tool não encontrada" {
		t.Fatalf("tool_not_found = %q, err %v", got, err)
	}

	got, err = bundle.Render(KeyUnknownMethod, map[string]string{"Method": "foo/bar"})
	if err != nil || !strings.Contains(got, "foo/bar") {
		t.Fatalf("unknown_method = %q, err %v", got, err)
	}

	got, err = bundle.Render(KeyAthleteNotFound, nil)
	if err != nil || !strings.Contains(got, "Atleta não encontrado") {
		t.Fatalf("athlete_not_found = %q, err %v", got, err)
	}
}

func TestRenderEnglishBundle(t *testing.T) {
	t.Parallel()

	bundle, err := Load("en")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := bundle.Render(KeyToolNotFound, nil)
	if err != nil || got != "Tool not found" {
		t.Fatalf("tool_not_found = %q, err %v", got, err)
	}
}

func TestRenderUnknownKey(t *testing.T) {
	t.Parallel()

	bundle, err := Load("pt")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := bundle.Render("nope", nil); err == nil {
		t.Fatal("expected error for unknown key")
	}
}
