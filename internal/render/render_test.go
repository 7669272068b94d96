package render

import (
	"strings"
	"testing"
)

func TestRenderBytesEnvOr(t *testing.T) {
	out, err := RenderBytes("test", []byte(`base_url: {{ envOr "RENDER_TEST_UNSET" "https://fallback.example/v1" }}`))
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}
	if !strings.Contains(string(out), "https://fallback.example/v1") {
		t.Fatalf("out = %s", out)
	}
}

func TestRenderBytesEnvOverride(t *testing.T) {
	t.Setenv("RENDER_TEST_SET", "https://override.example/v1")

	out, err := RenderBytes("test", []byte(`base_url: {{ envOr "RENDER_TEST_SET" "https://fallback.example/v1" }}`))
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}
	if !strings.Contains(string(out), "https://override.example/v1") {
		t.Fatalf("out = %s", out)
	}
}

func TestRenderBytesMissingEnvFails(t *testing.T) {
	_, err := RenderBytes("test", []byte(`value: {{ env "RENDER_TEST_MISSING" }}`))
	if err == nil || !strings.Contains(err.Error(), "RENDER_TEST_MISSING") {
		t.Fatalf("err = %v", err)
	}
}

func TestRenderBytesBadTemplate(t *testing.T) {
	if _, err := RenderBytes("test", []byte(`value: {{ envOr }}`)); err == nil {
		t.Fatal("expected template error")
	}
}
