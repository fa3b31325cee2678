package modules

import (
	"fmt"

	"github.com/nsfeld/salescoach/pkg/domain"
)

type arenaClient struct {
	name        string
	description string
}

var arenaClientIDs = []string{"calm", "doubtful", "price_focused", "enthusiastic", "busy"}

var arenaClients = map[string]arenaClient{
	"calm":          {"Спокойный", "Вдумчивый клиент, задаёт много вопросов, принимает решения медленно"},
	"doubtful":      {"Сомневающийся", "Клиент с множеством сомнений, нужно много эмпатии и терпения"},
	"price_focused": {"Ценовой", "Клиент очень чувствителен к цене, ищет скидки и выгоду"},
	"enthusiastic":  {"Восторженный", "Клиент в восторге от идеи, но может потерять интерес если затянуть"},
	"busy":          {"Занятой", "Клиент торопится, хочет быстрых ответов и конкретики"},
}

// Arena is free-form practice against a randomized client temperament.
// The practice stage runs a fixed number of turns before the debrief.
func Arena() *Module {
	graph := domain.MustStageGraph(
		domain.Stage{
			Name:        "practice",
			Description: "Свободный диалог",
			Hint:        "Адаптируйся под тип клиента. Следи за темпом и теплотой.",
			Next:        []string{"debrief"},
		},
		domain.Stage{
			Name:        "debrief",
			Description: "Разбор диалога",
			Terminal:    true,
		},
	)

	return &Module{
		ID:      "arena",
		Title:   "Арена свободных диалогов",
		Graph:   graph,
		Metrics: domain.AllMetrics,
		Ready: func(_ domain.ScoreVector, _ float64, turn, _ int) bool {
			return turn >= 8
		},
		ClientProfile: "Веди себя согласно своему типу характера, оставайся естественным.",
		Intro: func(params map[string]string) string {
			c := arenaClients[params["client_type"]]
			return fmt.Sprintf("🎪 **Арена свободных диалогов**\n\n"+
				"Тип клиента: **%s**\n%s\n\n"+
				"Это свободная практика. Веди диалог естественно, адаптируйся под клиента.\n\n"+
				"Я буду давать короткий анализ после каждого твоего сообщения.\n\n"+
				"Начинай диалог с приветствия!", c.name, c.description)
		},
		ResolveParams: func(params map[string]string) map[string]string {
			return resolve(params, "client_type", arenaClientIDs)
		},
	}
}
