package modules

import "github.com/nsfeld/salescoach/pkg/domain"

// MasterPath is the full sales cycle: first contact through the final
// deliverable. Advancement rule: overall turn score >= 6.5 and an utterance
// of at least 15 words; one strong message per stage moves the deal forward.
func MasterPath() *Module {
	graph := domain.MustStageGraph(
		domain.Stage{
			Name:        "greeting",
			Description: "Первое касание с клиентом",
			Hint:        "Создай тёплую атмосферу: представься, кратко расскажи о проекте и задай открытый вопрос про получателя подарка.",
			Next:        []string{"story"},
		},
		domain.Stage{
			Name:        "story",
			Description: "Сбор истории клиента",
			Hint:        "Собери детали истории: имена, важные даты, как познакомились. Задавай открытые вопросы.",
			Next:        []string{"texts"},
		},
		domain.Stage{
			Name:        "texts",
			Description: "Подготовка вариантов текста песни",
			Hint:        "Объясни, что подготовишь два варианта текста по их истории, уточни детали и озвучь сроки.",
			Next:        []string{"genre"},
		},
		domain.Stage{
			Name:        "genre",
			Description: "Выбор жанра и исполнителя",
			Hint:        "Предложи несколько жанров и спроси, какие исполнители нравятся клиенту.",
			Next:        []string{"payment"},
		},
		domain.Stage{
			Name:        "payment",
			Description: "Объяснение оплаты",
			Hint:        "Объясни предоплату честно и прозрачно: всё создаётся с нуля по их истории. Без извинений и давления.",
			Next:        []string{"demo"},
		},
		domain.Stage{
			Name:        "demo",
			Description: "Отправка демо-версий",
			Hint:        "Отправь два демо и предложи выбрать сердцем — или объединить лучшее из обоих.",
			Next:        []string{"final"},
		},
		domain.Stage{
			Name:        "final",
			Description: "Финальная версия и завершение",
			Hint:        "Зафиксируй выбор, озвучь сроки финальной версии и тепло поблагодари за доверие.",
			Terminal:    true,
		},
	)

	return &Module{
		ID:    "master_path",
		Title: "Полный цикл сделки",
		Graph: graph,
		Metrics: []string{
			domain.MetricWarmth,
			domain.MetricQuestions,
			domain.MetricStructure,
			domain.MetricClarity,
			domain.MetricNoPressure,
		},
		Ready: func(_ domain.ScoreVector, overall float64, _, words int) bool {
			return overall >= 6.5 && words >= 15
		},
		ClientProfile: "Ты впервые слышишь об услуге персональной песни. Тебе любопытно, но решение о деньгах даётся непросто.",
		Intro: func(map[string]string) string {
			return "Привет! 👋\n\n" +
				"Это тренировка полного цикла сделки. Ты пройдёшь все этапы: от первого касания до финальной песни.\n\n" +
				"Я буду в роли твоего коуча — подскажу, что можно улучшить. «Клиент» будет отвечать как живой человек.\n\n" +
				"**Твоя первая задача:** напиши тёплое приветствие клиенту. Представься, кратко расскажи о проекте и задай вопрос про получателя подарка."
		},
		OpeningClient: func(map[string]string) string { return "" },
		ResolveParams: func(params map[string]string) map[string]string {
			out := make(map[string]string, len(params))
			for k, v := range params {
				out[k] = v
			}
			return out
		},
	}
}
