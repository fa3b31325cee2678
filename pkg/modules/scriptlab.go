package modules

import (
	"github.com/nsfeld/salescoach/pkg/domain"
)

// ScriptLab is a one-shot script review: the manager submits a draft
// script, gets a breakdown, and the session closes.
func ScriptLab() *Module {
	graph := domain.MustStageGraph(
		domain.Stage{
			Name:        "draft",
			Description: "Черновик скрипта",
			Hint:        "Проверь структуру: приветствие, суть, выгода, мягкий призыв к действию.",
			Next:        []string{"reviewed"},
		},
		domain.Stage{
			Name:        "reviewed",
			Description: "Разбор готов",
			Terminal:    true,
		},
	)

	return &Module{
		ID:    "script_lab",
		Title: "Лаборатория скриптов",
		Graph: graph,
		Metrics: []string{
			domain.MetricStructure,
			domain.MetricClarity,
			domain.MetricNoPressure,
		},
		Ready: func(_ domain.ScoreVector, _ float64, _, _ int) bool {
			return true
		},
		ClientProfile: "Ты читаешь готовый скрипт продаж и реагируешь как обычный клиент, которому его прислали.",
		Intro: func(map[string]string) string {
			return "🧪 **Лаборатория скриптов**\n\n" +
				"Пришли свой скрипт продаж одним сообщением — я разберу структуру, " +
				"ясность и мягкость подачи, и подскажу, что улучшить."
		},
	}
}
