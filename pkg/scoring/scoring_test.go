package scoring_test

import (
	"testing"

	"github.com/nsfeld/salescoach/pkg/domain"
	"github.com/nsfeld/salescoach/pkg/scoring"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate_AllValuesInRange(t *testing.T) {
	inputs := []string{
		"",
		"...",
		"Привет!",
		"Добрый день! Меня зовут София, расскажите о вашем пожелании",
		"СРОЧНО! Только сегодня акция, скидка, успейте прямо сейчас, вы должны решить немедленно!!!",
		"да",
	}
	for _, in := range inputs {
		scores := scoring.Evaluate(in, nil, domain.AllMetrics)
		for metric, v := range scores {
			assert.GreaterOrEqual(t, v, 0.0, "%s(%q)", metric, in)
			assert.LessOrEqual(t, v, 10.0, "%s(%q)", metric, in)
		}
	}
}

func TestEvaluate_EmptyUtteranceDefaults(t *testing.T) {
	for _, in := range []string{"", "   ", "?!...", "\n\n"} {
		scores := scoring.Evaluate(in, nil, domain.AllMetrics)
		assert.Zero(t, scores[domain.MetricWarmth], "warmth(%q)", in)
		assert.Zero(t, scores[domain.MetricQuestions], "questions(%q)", in)
		assert.Zero(t, scores[domain.MetricStructure], "structure(%q)", in)
		assert.Zero(t, scores[domain.MetricClarity], "clarity(%q)", in)
		assert.Zero(t, scores[domain.MetricActiveListening], "active_listening(%q)", in)
		// Neutral baseline, not a reward.
		assert.InDelta(t, 5.0, scores[domain.MetricNoPressure], 0.001, "no_pressure(%q)", in)
	}
}

func TestWarmth(t *testing.T) {
	cold := scoring.Warmth(scoring.Normalize("Вышлите предоплату."), scoring.Text{})
	warm := scoring.Warmth(scoring.Normalize("Добрый день! Рада знакомству, спасибо за доверие."), scoring.Text{})
	assert.Greater(t, warm, cold)
	assert.Greater(t, warm, 6.0)

	// Saturation: stacking pleasantries gains little past the first few.
	more := scoring.Warmth(scoring.Normalize("Привет! Добрый день! Рад! Приятно! Спасибо! Благодарю! Отлично!"), scoring.Text{})
	assert.Less(t, more-warm, 3.0)
	assert.LessOrEqual(t, more, 10.0)
}

func TestQuestions(t *testing.T) {
	none := scoring.Questions(scoring.Normalize("Высылаю реквизиты."), scoring.Text{})
	assert.Zero(t, none)

	one := scoring.Questions(scoring.Normalize("Кому хотите подарить песню?"), scoring.Text{})
	assert.InDelta(t, 3.5, one, 0.001)

	// Question-word opener without the mark still counts.
	bare := scoring.Questions(scoring.Normalize("Расскажите. Как вы познакомились"), scoring.Text{})
	assert.Greater(t, bare, 0.0)

	many := scoring.Questions(scoring.Normalize("Кто? Что? Где? Когда? Почему? Зачем?"), scoring.Text{})
	assert.InDelta(t, 10.0, many, 0.001)
}

func TestQuestions_InvitationImperatives(t *testing.T) {
	// An imperative that hands the turn back is interrogative even without
	// the mark. Typical chat greeting, no '?', no question-word opener.
	greeting := scoring.Questions(scoring.Normalize("Добрый день! Меня зовут София, расскажите о вашем пожелании"), scoring.Text{})
	assert.Greater(t, greeting, 0.0)

	invite := scoring.Questions(scoring.Normalize("Поделитесь вашей историей."), scoring.Text{})
	assert.InDelta(t, 3.5, invite, 0.001)

	// A '?'-terminated invitation counts once, not twice.
	both := scoring.Questions(scoring.Normalize("Расскажите, как вы познакомились?"), scoring.Text{})
	assert.InDelta(t, 3.5, both, 0.001)
}

func TestStructure(t *testing.T) {
	full := scoring.Structure(scoring.Normalize(
		"Добрый день! Меня зовут София, я из проекта, где мы создаём песни по вашим историям. "+
			"Мы уже помогли сотням пар сохранить их моменты. Кому вы хотели бы подарить песню?"), scoring.Text{})
	assert.InDelta(t, 10.0, full, 0.001)

	bare := scoring.Structure(scoring.Normalize("Ок"), scoring.Text{})
	assert.Less(t, bare, 4.0)
}

func TestNoPressure(t *testing.T) {
	calm := scoring.NoPressure(scoring.Normalize("Подумайте спокойно, я рядом, если появятся вопросы."), scoring.Text{})
	assert.InDelta(t, 10.0, calm, 0.001)

	pushy := scoring.NoPressure(scoring.Normalize("Срочно! Акция только сегодня, вы должны успеть!"), scoring.Text{})
	assert.Less(t, pushy, 5.0)
}

func TestActiveListening_OverlapWithClientTurn(t *testing.T) {
	history := []domain.Message{
		{Role: domain.RoleCoach, Text: "Начинаем тренировку."},
		{Role: domain.RoleClient, Text: "Хочу подарить песню маме на юбилей, она любит романсы."},
	}

	echo := scoring.Evaluate("Понимаю, юбилей мамы — особенный повод. Романсы — отличный выбор!", history, []string{domain.MetricActiveListening})
	deaf := scoring.Evaluate("У нас большой каталог и выгодные условия.", history, []string{domain.MetricActiveListening})

	assert.Greater(t, echo[domain.MetricActiveListening], deaf[domain.MetricActiveListening])
	assert.Greater(t, echo[domain.MetricActiveListening], 5.0)
}

func TestEvaluate_UnknownMetricSkipped(t *testing.T) {
	scores := scoring.Evaluate("Привет!", nil, []string{"charisma", domain.MetricWarmth})
	_, ok := scores["charisma"]
	assert.False(t, ok)
	assert.Contains(t, scores, domain.MetricWarmth)
}

func TestAdvice_Deterministic(t *testing.T) {
	low := domain.ScoreVector{
		domain.MetricWarmth:    2,
		domain.MetricQuestions: 1,
	}
	a := scoring.Advice(low)
	b := scoring.Advice(low)
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)

	high := domain.ScoreVector{domain.MetricWarmth: 9, domain.MetricQuestions: 8}
	assert.Contains(t, scoring.Advice(high), "Отличная работа")
}

func TestIssues_CanonicalOrder(t *testing.T) {
	scores := domain.ScoreVector{
		domain.MetricNoPressure: 2,
		domain.MetricWarmth:     2,
	}
	issues := scoring.Issues(scores)
	assert.Len(t, issues, 2)
	// warmth precedes no_pressure in canonical order.
	assert.Contains(t, issues[0], "тепла")
}
