package persona

import (
	"context"
	"fmt"

	"github.com/nsfeld/salescoach/pkg/domain"
	"github.com/nsfeld/salescoach/pkg/ports"
	"github.com/nsfeld/salescoach/pkg/scoring"
)

// Fallback is the deterministic PersonaBackend used when no generative
// backend is configured or the live one fails. It assembles replies from the
// score vector and the current stage, so training keeps working offline.
// This is a first-class code path, exercised directly by tests.
type Fallback struct{}

// NewFallback creates the deterministic backend.
func NewFallback() *Fallback { return &Fallback{} }

// Available always reports true: the fallback can never be down.
func (f *Fallback) Available() bool { return true }

// Reply produces deterministic text for the requested role.
func (f *Fallback) Reply(_ context.Context, req ports.PersonaRequest) (string, error) {
	if req.Role == ports.PersonaCoach {
		return f.coach(req), nil
	}
	return f.client(req), nil
}

// client picks a canned reaction from the overall score band: a warm message
// opens the client up, a weak one makes them hesitate. Mirrors how a live
// client persona is instructed to behave.
func (f *Fallback) client(req ports.PersonaRequest) string {
	overall := req.Scores.Overall()
	switch {
	case overall >= 7:
		return "Звучит здорово, спасибо! Мне уже интересно — расскажите, что нужно от меня дальше?"
	case overall >= 5:
		return "Хм, в целом понятно. А можно подробнее? Хочется разобраться, прежде чем решать."
	default:
		return "Извините, я не совсем понял, о чём речь. И, честно говоря, пока сомневаюсь."
	}
}

// coach combines the heuristic advice with the stage hint and the weakest
// metric, so the feedback is targeted even without a generative backend.
func (f *Fallback) coach(req ports.PersonaRequest) string {
	text := scoring.Advice(req.Scores)
	if weakest, score := req.Scores.Weakest(); weakest != "" && score < 6 {
		if issue := weakestTip[weakest]; issue != "" {
			text += " " + issue
		}
	}
	if req.Hint != "" {
		text += fmt.Sprintf("\n\nНа этом этапе: %s", req.Hint)
	}
	return text
}

// weakestTip gives one concrete next step per metric.
var weakestTip = map[string]string{
	domain.MetricWarmth:          "Начни со слов, которые покажут клиенту, что ему рады.",
	domain.MetricQuestions:       "Закончи сообщение открытым вопросом — дай клиенту слово.",
	domain.MetricStructure:       "Раздели сообщение: приветствие, одна мысль, вопрос.",
	domain.MetricClarity:         "Одно сообщение — одна мысль, без длинных абзацев.",
	domain.MetricNoPressure:      "Убери срочность и слова-обязательства, оставь клиенту пространство.",
	domain.MetricActiveListening: "Повтори своими словами то, что клиент уже рассказал.",
}
