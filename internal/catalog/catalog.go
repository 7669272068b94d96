// Package catalog declares the static tool catalog of the Vector AI
// sports platform: athlete management, training logs, wellness logs,
// planning and reporting. Each tool maps 1:1 onto a Vector API
// endpoint; deletar_atleta is the one compound tool (name resolution
// followed by deletion).
package catalog

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vector-ai/vector-mcp-server/internal/messages"
	"github.com/vector-ai/vector-mcp-server/internal/registry"
	"github.com/vector-ai/vector-mcp-server/internal/vectorapi"
)

// Caller is the remote call contract the catalog depends on.
type Caller interface {
	// Call issues one remote invocation and returns its outcome value.
	Call(ctx context.Context, method, path string, body any, query url.Values) any
}

// Build constructs the immutable registry of all eleven tools.
func Build(client Caller, msgs messages.Renderer) (*registry.Registry, error) {
	return registry.New(
		addAthlete(client),
		listAthletes(client),
		findAthleteByName(client),
		deleteAthlete(client, msgs),
		logWorkout(client),
		logAssessment(client),
		logWellness(client),
		generateMesocycle(client),
		athleteReport(client),
		teamReport(client),
		performanceChart(client),
	)
}

func addAthlete(client Caller) *registry.Tool {
	return &registry.Tool{
		Name:        "adicionar_atleta",
		Description: "Cadastra um novo atleta no sistema.",
		InputSchema: objectSchema([]string{"name", "birth_date", "sport"}, map[string]any{
			"name":       stringProp("Nome completo do atleta."),
			"birth_date": stringProp("Data de nascimento (YYYY-MM-DD)."),
			"sport":      stringProp("Modalidade esportiva."),
			"details":    objectProp("Dados adicionais do atleta."),
		}),
		Handler: func(ctx context.Context, args map[string]any) any {
			details := args["details"]
			if details == nil {
				details = map[string]any{}
			}
			payload := map[string]any{
				"name":       args["name"],
				"birth_date": args["birth_date"],
				"sport":      args["sport"],
				"details":    details,
			}
			return client.Call(ctx, http.MethodPost, "/athletes/", payload, nil)
		},
	}
}

func listAthletes(client Caller) *registry.Tool {
	return &registry.Tool{
		Name:        "listar_atletas",
		Description: "Retorna uma lista de todos os atletas cadastrados.",
		InputSchema: objectSchema(nil, map[string]any{}),
		Handler: func(ctx context.Context, _ map[string]any) any {
			return client.Call(ctx, http.MethodGet, "/athletes/", nil, nil)
		},
	}
}

func findAthleteByName(client Caller) *registry.Tool {
	return &registry.Tool{
		Name:        "buscar_atleta_pelo_nome",
		Description: "Busca os detalhes de um atleta específico pelo nome.",
		InputSchema: objectSchema([]string{"nome"}, map[string]any{
			"nome": stringProp("Nome do atleta."),
		}),
		Handler: func(ctx context.Context, args map[string]any) any {
			nome := stringArg(args, "nome", "")
			return client.Call(ctx, http.MethodGet, "/athletes/"+url.PathEscape(nome), nil, nil)
		},
	}
}

// deleteAthlete resolves the athlete name first and only then issues
// the deletion. A resolution payload without a usable id short-circuits
// with a local not-found outcome; the delete call is never sent.
func deleteAthlete(client Caller, msgs messages.Renderer) *registry.Tool {
	return &registry.Tool{
		Name:        "deletar_atleta",
		Description: "Deleta um atleta do sistema pelo nome (faz lookup para obter o ID).",
		InputSchema: objectSchema([]string{"nome"}, map[string]any{
			"nome": stringProp("Nome do atleta a remover."),
		}),
		Handler: func(ctx context.Context, args map[string]any) any {
			nome := stringArg(args, "nome", "")
			resolved := client.Call(ctx, http.MethodGet, "/athletes/"+url.PathEscape(nome), nil, nil)
			if vectorapi.IsFailure(resolved) {
				return resolved
			}
			record, ok := resolved.(map[string]any)
			if !ok || !hasID(record["id"]) {
				return vectorapi.Failure(0, renderMessage(msgs, messages.KeyAthleteNotFound, nil))
			}
			return client.Call(ctx, http.MethodDelete, "/athletes/"+url.PathEscape(formatValue(record["id"])), nil, nil)
		},
	}
}

func logWorkout(client Caller) *registry.Tool {
	return &registry.Tool{
		Name:        "registrar_treino",
		Description: "Registra uma nova sessão de treino para um atleta.",
		InputSchema: objectSchema([]string{"athlete_id", "details", "rpe", "duration_minutes"}, map[string]any{
			"athlete_id":       integerProp("ID do atleta."),
			"details":          stringProp("Descrição da sessão de treino."),
			"rpe":              integerProp("Percepção subjetiva de esforço (1-10).", 1, 10),
			"duration_minutes": integerProp("Duração da sessão em minutos.", 1),
		}),
		Handler: func(ctx context.Context, args map[string]any) any {
			payload := map[string]any{
				"athlete_id":       args["athlete_id"],
				"details":          args["details"],
				"rpe":              args["rpe"],
				"duration_minutes": args["duration_minutes"],
			}
			return client.Call(ctx, http.MethodPost, "/workouts/register", payload, nil)
		},
	}
}

func logAssessment(client Caller) *registry.Tool {
	return &registry.Tool{
		Name:        "registrar_avaliacao",
		Description: "Registra os resultados de uma avaliação de performance.",
		InputSchema: objectSchema([]string{"athlete_id", "assessment_type", "results"}, map[string]any{
			"athlete_id":      integerProp("ID do atleta."),
			"assessment_type": stringProp("Tipo da avaliação (ex: salto vertical)."),
			"results":         objectProp("Resultados medidos, por métrica."),
		}),
		Handler: func(ctx context.Context, args map[string]any) any {
			payload := map[string]any{
				"athlete_id":      args["athlete_id"],
				"assessment_type": args["assessment_type"],
				"results":         args["results"],
			}
			return client.Call(ctx, http.MethodPost, "/assessments/", payload, nil)
		},
	}
}

func logWellness(client Caller) *registry.Tool {
	soreness := stringProp("Dores musculares relatadas.")
	soreness["default"] = "Nenhuma"
	return &registry.Tool{
		Name:        "registrar_bem_estar",
		Description: "Registra o estado de bem-estar diário de um atleta.",
		InputSchema: objectSchema([]string{"athlete_id", "qualidade_sono", "nivel_estresse", "nivel_fadiga"}, map[string]any{
			"athlete_id":       integerProp("ID do atleta."),
			"qualidade_sono":   integerProp("Qualidade do sono (1-10).", 1, 10),
			"nivel_estresse":   integerProp("Nível de estresse (1-10).", 1, 10),
			"nivel_fadiga":     integerProp("Nível de fadiga (1-10).", 1, 10),
			"dores_musculares": soreness,
		}),
		Handler: func(ctx context.Context, args map[string]any) any {
			payload := map[string]any{
				"athlete_id":       args["athlete_id"],
				"qualidade_sono":   args["qualidade_sono"],
				"nivel_estresse":   args["nivel_estresse"],
				"nivel_fadiga":     args["nivel_fadiga"],
				"dores_musculares": stringArg(args, "dores_musculares", "Nenhuma"),
			}
			return client.Call(ctx, http.MethodPost, "/wellness/log", payload, nil)
		},
	}
}

func generateMesocycle(client Caller) *registry.Tool {
	return &registry.Tool{
		Name:        "gerar_mesociclo",
		Description: "Cria um plano de treino estruturado (mesociclo) para um atleta.",
		InputSchema: objectSchema([]string{"athlete_id", "objective", "duration_weeks", "sessions_per_week", "progression_model"}, map[string]any{
			"athlete_id":        integerProp("ID do atleta."),
			"objective":         stringProp("Objetivo do ciclo (ex: hipertrofia)."),
			"duration_weeks":    integerProp("Duração em semanas.", 1),
			"sessions_per_week": integerProp("Sessões por semana.", 1),
			"progression_model": stringProp("Modelo de progressão (ex: linear)."),
		}),
		Handler: func(ctx context.Context, args map[string]any) any {
			payload := map[string]any{
				"athlete_id":        args["athlete_id"],
				"objective":         args["objective"],
				"duration_weeks":    args["duration_weeks"],
				"sessions_per_week": args["sessions_per_week"],
				"progression_model": args["progression_model"],
			}
			return client.Call(ctx, http.MethodPost, "/planning/generate-mesocycle", payload, nil)
		},
	}
}

func athleteReport(client Caller) *registry.Tool {
	return &registry.Tool{
		Name:        "gerar_relatorio_atleta",
		Description: "Gera um relatório de performance completo para um atleta específico.",
		InputSchema: objectSchema([]string{"athlete_id"}, map[string]any{
			"athlete_id": integerProp("ID do atleta."),
		}),
		Handler: func(ctx context.Context, args map[string]any) any {
			id := formatValue(args["athlete_id"])
			return client.Call(ctx, http.MethodGet, "/reports/athlete-report/"+url.PathEscape(id), nil, nil)
		},
	}
}

func teamReport(client Caller) *registry.Tool {
	return &registry.Tool{
		Name:        "gerar_relatorio_equipe",
		Description: "Gera um relatório resumido com o status de todos os atletas da equipe.",
		InputSchema: objectSchema(nil, map[string]any{}),
		Handler: func(ctx context.Context, _ map[string]any) any {
			return client.Call(ctx, http.MethodGet, "/reports/team-report", nil, nil)
		},
	}
}

func performanceChart(client Caller) *registry.Tool {
	return &registry.Tool{
		Name:        "gerar_grafico_performance",
		Description: "Gera um link para uma imagem de gráfico de performance de um atleta para uma métrica.",
		InputSchema: objectSchema([]string{"athlete_id", "metric_name"}, map[string]any{
			"athlete_id":  integerProp("ID do atleta."),
			"metric_name": stringProp("Nome da métrica (ex: rpe)."),
		}),
		Handler: func(ctx context.Context, args map[string]any) any {
			query := url.Values{}
			query.Set("athlete_id", formatValue(args["athlete_id"]))
			query.Set("metric_name", stringArg(args, "metric_name", ""))
			return client.Call(ctx, http.MethodGet, "/charts/performance-chart", nil, query)
		},
	}
}

// renderMessage falls back to the key when rendering fails so a
// handler never loses its outcome to a template problem.
func renderMessage(msgs messages.Renderer, key string, data any) string {
	if msgs == nil {
		return key
	}
	rendered, err := msgs.Render(key, data)
	if err != nil {
		return key
	}
	return rendered
}
