package modules

import (
	"fmt"

	"github.com/nsfeld/salescoach/pkg/domain"
)

type examScenario struct {
	name        string
	description string
}

var examScenarioIDs = []string{"master_path_short", "objection_handling", "upsell_combo", "mixed_arena"}

var examScenarios = map[string]examScenario{
	"master_path_short":  {"Быстрый цикл сделки", "Пройди основные этапы: приветствие, история, оплата"},
	"objection_handling": {"Комплексные возражения", "Отработай 3 разных возражения подряд"},
	"upsell_combo":       {"Связка допродаж", "Сделай 2 допродажи в одном диалоге"},
	"mixed_arena":        {"Смешанная арена", "Работа с разными типами клиентов"},
}

// Exam runs a fixed five-round assessment. Every turn advances the stage,
// so the session always completes after five turns regardless of quality.
func Exam() *Module {
	graph := domain.MustStageGraph(
		domain.Stage{Name: "round_1", Description: "Раунд 1", Next: []string{"round_2"}},
		domain.Stage{Name: "round_2", Description: "Раунд 2", Next: []string{"round_3"}},
		domain.Stage{Name: "round_3", Description: "Раунд 3", Next: []string{"round_4"}},
		domain.Stage{Name: "round_4", Description: "Раунд 4", Next: []string{"round_5"}},
		domain.Stage{Name: "round_5", Description: "Раунд 5", Next: []string{"verdict"}},
		domain.Stage{Name: "verdict", Description: "Вердикт", Terminal: true},
	)

	return &Module{
		ID:    "exam",
		Title: "Экзамен",
		Graph: graph,
		Metrics: []string{
			domain.MetricWarmth,
			domain.MetricQuestions,
			domain.MetricStructure,
			domain.MetricNoPressure,
			domain.MetricActiveListening,
		},
		Ready: func(_ domain.ScoreVector, _ float64, _, _ int) bool {
			return true
		},
		ClientProfile: "Ты требовательный клиент на финальной проверке менеджера. Не подыгрывай.",
		Intro: func(params map[string]string) string {
			s := examScenarios[params["scenario"]]
			return fmt.Sprintf("📝 **ЭКЗАМЕН**\n\n"+
				"Сценарий: **%s**\n%s\n\nРаундов: 5\n\n"+
				"Это финальная проверка твоих навыков. Я буду оценивать:\n"+
				"✓ Эмпатию и тепло\n✓ Структуру диалога\n✓ Работу с возражениями\n✓ Естественность общения\n\n"+
				"В конце получишь балл 0-100 и вердикт.\n\n"+
				"Начинаем! Твой первый ход — приветствие клиенту.", s.name, s.description)
		},
		ResolveParams: func(params map[string]string) map[string]string {
			return resolve(params, "scenario", examScenarioIDs)
		},
	}
}
