package modules

import (
	"fmt"

	"github.com/nsfeld/salescoach/pkg/domain"
)

// objection describes one client objection scenario.
type objection struct {
	name    string
	opening string
	context string
}

var objectionTypes = []string{"price", "distrust", "think", "later", "not_needed"}

var objections = map[string]objection{
	"price": {
		name:    "Дорого",
		opening: "Звучит интересно, но... это довольно дорого. Я не уверен, что готов столько платить.",
		context: "Клиент считает цену высокой",
	},
	"distrust": {
		name:    "Недоверие",
		opening: "Хм, я раньше не слышал о таком. Как я могу быть уверен, что это не обман?",
		context: "Клиент не доверяет услуге",
	},
	"think": {
		name:    "Подумать",
		opening: "Интересно, но мне нужно подумать. Можно я вам позже напишу?",
		context: "Клиент хочет отложить решение",
	},
	"later": {
		name:    "Позже",
		opening: "Сейчас не очень удобно. Может, через месяц-другой...",
		context: "Клиент откладывает на потом",
	},
	"not_needed": {
		name:    "Не нужно",
		opening: "Я подумал... наверное, это не для меня. Не уверен, что нам нужна песня.",
		context: "Клиент сомневается в необходимости",
	},
}

// Objections trains handling one client objection, selected via the
// "objection_type" param. Advancement rule: overall >= 7 after at least two
// turns, meaning the objection was worked through, not brushed off.
func Objections() *Module {
	graph := domain.MustStageGraph(
		domain.Stage{
			Name:        "handling",
			Description: "Отработка возражения",
			Hint:        "Прояви эмпатию, дай развёрнутый ответ и задай вопрос в конце. Не дави — помоги клиенту самому принять решение.",
			Next:        []string{"resolved"},
		},
		domain.Stage{
			Name:        "resolved",
			Description: "Возражение отработано",
			Terminal:    true,
		},
	)

	return &Module{
		ID:    "objections",
		Title: "Отработка возражений",
		Graph: graph,
		Metrics: []string{
			domain.MetricWarmth,
			domain.MetricQuestions,
			domain.MetricNoPressure,
			domain.MetricActiveListening,
		},
		Ready: func(_ domain.ScoreVector, overall float64, turn, _ int) bool {
			return overall >= 7 && turn >= 2
		},
		ClientProfile: "У тебя есть конкретное возражение, и ты отстаиваешь его, пока менеджер не отработает его по-настоящему.",
		Intro: func(params map[string]string) string {
			o := objections[params["objection_type"]]
			return fmt.Sprintf("🎯 **Тренировка: Отработка возражений**\n\n"+
				"Тип возражения: **%s**\n\n"+
				"Твоя задача — отработать возражение мягко и эмпатично:\n"+
				"✓ Понять чувства клиента\n"+
				"✓ Дать развёрнутый ответ\n"+
				"✓ Задать вопрос в конце\n\n"+
				"Клиент сейчас напишет возражение, а ты попробуй его отработать.", o.name)
		},
		OpeningClient: func(params map[string]string) string {
			return objections[params["objection_type"]].opening
		},
		ResolveParams: func(params map[string]string) map[string]string {
			return resolve(params, "objection_type", objectionTypes)
		},
	}
}
