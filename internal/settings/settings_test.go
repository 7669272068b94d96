package settings

import (
	"strings"
	"testing"
)

const validYAML = `
server:
  name: vector-ai-sports
  version: 1.0.0
  http:
    listen: ":9090"
vector_api:
  base_url: https://vectorapi.up.railway.app/v1
`

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load([]byte(validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Lang != "pt" {
		t.Fatalf("lang = %s", cfg.Server.Lang)
	}
	if cfg.Server.HTTP.Path != "/mcp" {
		t.Fatalf("path = %s", cfg.Server.HTTP.Path)
	}
	if cfg.Server.HTTP.Listen != ":9090" {
		t.Fatalf("listen = %s", cfg.Server.HTTP.Listen)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := Load([]byte(validYAML + "\nbogus: true\n"))
	if err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing server name",
			yaml: "server:\n  version: 1.0.0\nvector_api:\n  base_url: https://x.example/v1\n",
			want: "server.name",
		},
		{
			name: "missing base url",
			yaml: "server:\n  name: x\n  version: 1.0.0\n",
			want: "vector_api.base_url",
		},
		{
			name: "relative base url",
			yaml: "server:\n  name: x\n  version: 1.0.0\nvector_api:\n  base_url: /v1\n",
			want: "vector_api.base_url",
		},
		{
			name: "bad lang",
			yaml: "server:\n  name: x\n  version: 1.0.0\n  lang: fr\nvector_api:\n  base_url: https://x.example/v1\n",
			want: "server.lang",
		},
		{
			name: "bad timeout",
			yaml: "server:\n  name: x\n  version: 1.0.0\nvector_api:\n  base_url: https://x.example/v1\n  timeout: soon\n",
			want: "vector_api.timeout",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load([]byte(tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want mention of %s", err, tc.want)
			}
		})
	}
}
