package scoring

import (
	"github.com/nsfeld/salescoach/pkg/domain"
)

// Evaluate scores an utterance against the requested metric set. Unknown
// metric names are skipped. The previous client turn is taken from history
// for listening metrics. Evaluate never fails: malformed input degrades to
// the documented empty-utterance defaults.
func Evaluate(utterance string, history []domain.Message, metricSet []string) domain.ScoreVector {
	t := Normalize(utterance)
	prev := Normalize(lastClientText(history))

	out := make(domain.ScoreVector, len(metricSet))
	for _, name := range metricSet {
		fn, ok := metrics[name]
		if !ok {
			continue
		}
		out[name] = fn(t, prev)
	}
	return out
}

func lastClientText(history []domain.Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == domain.RoleClient {
			return history[i].Text
		}
	}
	return ""
}
