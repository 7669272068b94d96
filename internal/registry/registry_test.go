package registry

import (
	"context"
	"testing"
)

func noopHandler(_ context.Context, _ map[string]any) any {
	return nil
}

func testTool(name string) *Tool {
	return &Tool{
		Name:        name,
		Description: "tool " + name,
		InputSchema: map[string]any{"type": "object"},
		Handler:     noopHandler,
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	t.Parallel()

	_, err := New(testTool("a"), testTool("b"), testTool("a"))
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
}

func TestNewRejectsMissingHandler(t *testing.T) {
	t.Parallel()

	_, err := New(&Tool{Name: "broken"})
	if err == nil {
		t.Fatal("expected missing handler error")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	reg, err := New(testTool("a"), testTool("b"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tool, ok := reg.Lookup("b")
	if !ok || tool.Name != "b" {
		t.Fatalf("Lookup(b) = %v, %v", tool, ok)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Fatal("Lookup(missing) should report not found")
	}
}

func TestAllIsStableAndRestartable(t *testing.T) {
	t.Parallel()

	reg, err := New(testTool("c"), testTool("a"), testTool("b"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []string{"c", "a", "b"}
	for round := 0; round < 2; round++ {
		var got []string
		for tool := range reg.All() {
			got = append(got, tool.Name)
		}
		if len(got) != len(want) {
			t.Fatalf("round %d: got %d tools, want %d", round, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("round %d: order %v, want %v", round, got, want)
			}
		}
	}
}

func TestSummaries(t *testing.T) {
	t.Parallel()

	reg, err := New(testTool("a"), testTool("b"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	summaries := reg.Summaries()
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	for _, s := range summaries {
		if s.Name == "" || s.InputSchema == nil {
			t.Fatalf("summary missing name or schema: %+v", s)
		}
	}
}
