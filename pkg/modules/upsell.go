package modules

import (
	"fmt"

	"github.com/nsfeld/salescoach/pkg/domain"
)

type upsellScenario struct {
	name    string
	context string
	opening string
	goal    string
}

var upsellScenarioIDs = []string{"texts_warmup", "both_demos", "ladder_2_to_4", "additional_version"}

var upsellScenarios = map[string]upsellScenario{
	"texts_warmup": {
		name:    "Подогрев перед текстами",
		context: "Клиент заказал песню, сейчас этап подготовки текстов",
		opening: "Хорошо, жду ваши варианты текстов. Когда будут готовы?",
		goal:    "Мягко упомянуть, что будет 2 варианта текста, создавая ожидание ценности",
	},
	"both_demos": {
		name:    "Оба демо",
		context: "Клиент прослушал два демо и выбирает",
		opening: "Оба варианта классные! Сложно выбрать... Наверное, возьму первый.",
		goal:    "Предложить взять оба демо в разных жанрах — больше вариантов для подарков",
	},
	"ladder_2_to_4": {
		name:    "Лестница 2→4 песни",
		context: "Клиент уже взял 2 песни",
		opening: "Спасибо! Мне очень нравится, как вы работаете. Эти две песни будут отличным подарком.",
		goal:    "Предложить: при заказе третьей песни — четвёртая в подарок",
	},
	"additional_version": {
		name:    "Дополнительная версия",
		context: "Клиент доволен финальной песней",
		opening: "Песня получилась потрясающей! Спасибо вам большое!",
		goal:    "Предложить дополнительную версию (акустика, ремикс)",
	},
}

// Upsell trains soft upselling on a satisfied client. Advancement rule:
// overall >= 7 after at least two turns; the pitch landed without pressure.
func Upsell() *Module {
	graph := domain.MustStageGraph(
		domain.Stage{
			Name:        "pitch",
			Description: "Допродажа",
			Hint:        "Не дави — подсвети выгоду и удобство. Дай клиенту самому захотеть больше.",
			Next:        []string{"closed"},
		},
		domain.Stage{
			Name:        "closed",
			Description: "Допродажа сделана",
			Terminal:    true,
		},
	)

	return &Module{
		ID:    "upsell",
		Title: "Допродажи",
		Graph: graph,
		Metrics: []string{
			domain.MetricWarmth,
			domain.MetricClarity,
			domain.MetricNoPressure,
		},
		Ready: func(_ domain.ScoreVector, overall float64, turn, _ int) bool {
			return overall >= 7 && turn >= 2
		},
		ClientProfile: "Ты доволен услугой и настроен дружелюбно, но лишние траты тебя настораживают.",
		Intro: func(params map[string]string) string {
			s := upsellScenarios[params["scenario"]]
			return fmt.Sprintf("💎 **Тренировка: Допродажи**\n\n"+
				"Сценарий: **%s**\n\nКонтекст: %s\n\nТвоя задача: %s\n\n"+
				"Клиент сейчас напишет, а ты попробуй сделать допродажу мягко и естественно.",
				s.name, s.context, s.goal)
		},
		OpeningClient: func(params map[string]string) string {
			return upsellScenarios[params["scenario"]].opening
		},
		ResolveParams: func(params map[string]string) map[string]string {
			return resolve(params, "scenario", upsellScenarioIDs)
		},
	}
}
