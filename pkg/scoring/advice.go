package scoring

import (
	"strings"

	"github.com/nsfeld/salescoach/pkg/domain"
)

// issueTexts maps each metric to the advice shown when it scores low.
var issueTexts = map[string]string{
	domain.MetricWarmth:          "Добавь больше тепла в общение",
	domain.MetricQuestions:       "Задавай открытые вопросы",
	domain.MetricStructure:       "Выстрой сообщение: приветствие, суть, вопрос в конце",
	domain.MetricClarity:         "Сформулируй мысль короче и яснее",
	domain.MetricNoPressure:      "Убери давление на клиента",
	domain.MetricActiveListening: "Покажи, что слышишь клиента",
}

// issueThreshold marks a metric as a problem worth calling out.
const issueThreshold = 6.0

// Issues returns advice lines for every low metric, in canonical metric order
// so output is deterministic.
func Issues(scores domain.ScoreVector) []string {
	var out []string
	for _, m := range domain.AllMetrics {
		if s, ok := scores[m]; ok && s < issueThreshold {
			out = append(out, issueTexts[m])
		}
	}
	return out
}

// Advice assembles a short coaching paragraph from the score vector: praise
// when strong, targeted pointers otherwise. Deterministic by construction;
// this is the text the fallback coach path returns.
func Advice(scores domain.ScoreVector) string {
	issues := Issues(scores)
	overall := scores.Overall()
	switch {
	case overall >= 7:
		return "Отличная работа! Ты создаёшь тёплую атмосферу и показываешь искренний интерес к клиенту. Продолжай в том же духе!"
	case overall >= 5:
		return "Хорошее начало! " + joinIssues(issues, 2) + " Это поможет клиенту чувствовать себя комфортнее."
	default:
		return "Давай улучшим диалог. " + joinIssues(issues, 3) + " Помни: главное — создать доверительную атмосферу."
	}
}

func joinIssues(issues []string, max int) string {
	if len(issues) == 0 {
		return "Действуй в том же направлении."
	}
	if len(issues) > max {
		issues = issues[:max]
	}
	return strings.Join(issues, ". ") + "."
}
