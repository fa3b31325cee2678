package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/nsfeld/salescoach/pkg/domain"
)

// neutralNoPressure is the score an empty utterance gets on the no_pressure
// metric. Silence exerts no pressure, but it must not be rewarded with a 10.
const neutralNoPressure = 5.0

// Metric computes one quality signal from the normalized utterance and the
// previous client turn (empty Text when there is none).
type Metric func(t, prevClient Text) float64

// metrics is the dispatch table. Adding a metric means adding a function
// here; nothing else in the package needs to change.
var metrics = map[string]Metric{
	domain.MetricWarmth:          Warmth,
	domain.MetricQuestions:       Questions,
	domain.MetricStructure:       Structure,
	domain.MetricClarity:         Clarity,
	domain.MetricNoPressure:      NoPressure,
	domain.MetricActiveListening: ActiveListening,
}

// Warmth scores empathy and greeting markers against abruptness markers.
// Saturating: two or three warm touches already score well, a wall of
// pleasantries does not reach much further.
func Warmth(t, _ Text) float64 {
	if t.Empty() {
		return 0
	}
	warm := containsAny(t.Lower, warmMarkers)
	abrupt := containsAny(t.Lower, abruptMarkers)
	return clamp(saturate(float64(warm), 1.5) - 3*float64(abrupt))
}

// Questions counts interrogative sentences: terminal '?', a question-word
// opener, or an invitation imperative that hands the turn back ("расскажите",
// "поделитесь"). Capped so an interrogation does not outscore a dialogue.
func Questions(t, _ Text) float64 {
	if t.Empty() {
		return 0
	}
	count := 0
	for _, s := range t.Sentences {
		if s.Terminator == '?' {
			count++
			continue
		}
		if questionWords[firstWord(s.Text)] {
			count++
			continue
		}
		if containsAny(strings.ToLower(s.Text), closingMarkers) > 0 {
			count++
		}
	}
	return clamp(float64(count) * 3.5)
}

// Structure checks for a greeting opening, a substantial body and a closing
// that hands the turn back to the client (question or invitation).
func Structure(t, _ Text) float64 {
	if t.Empty() {
		return 0
	}
	score := 0.0
	first := strings.ToLower(t.Sentences[0].Text)
	if containsAny(first, greetingMarkers) > 0 {
		score += 4
	}
	if len(t.Sentences) >= 3 && t.WordCount() >= 15 {
		score += 3
	}
	last := t.Sentences[len(t.Sentences)-1]
	if last.Terminator == '?' || containsAny(strings.ToLower(last.Text), closingMarkers) > 0 {
		score += 3
	}
	return score
}

// Clarity scores message length and sentence economy: long enough to carry
// content, short enough to read in a chat.
func Clarity(t, _ Text) float64 {
	if t.Empty() {
		return 0
	}
	words := t.WordCount()
	var score float64
	switch {
	case words < 5:
		score = 2
	case words < 10:
		score = 5
	case words <= 60:
		score = 9
	case words <= 100:
		score = 6
	default:
		score = 3
	}
	// Run-on sentences cost a point.
	if avg := averageSentenceLength(t); avg > 25 {
		score -= 1
	}
	return clamp(score)
}

// NoPressure is the inverse of urgency and pressure markers. An utterance
// with none scores 10; the empty utterance gets the neutral baseline.
func NoPressure(t, _ Text) float64 {
	if t.Empty() {
		return neutralNoPressure
	}
	hits := containsAny(t.Lower, pressureMarkers)
	return clamp(10 - 3*float64(hits))
}

// ActiveListening rewards reflective markers plus vocabulary overlap with the
// client's previous turn (paraphrase or direct reference).
func ActiveListening(t, prevClient Text) float64 {
	if t.Empty() {
		return 0
	}
	hits := float64(containsAny(t.Lower, reflectiveMarkers))
	hits += float64(overlap(t, prevClient))
	return clamp(saturate(hits, 2))
}

// overlap counts significant words from the previous client turn that the
// trainee picked up. Words must be 4+ runes and outside the stop list.
func overlap(t, prev Text) int {
	if prev.Empty() {
		return 0
	}
	seen := make(map[string]bool, len(prev.Words))
	for _, w := range prev.Words {
		if utf8.RuneCountInString(w) >= 4 && !stopWords[w] {
			seen[w] = true
		}
	}
	count := 0
	for _, w := range t.Words {
		if seen[w] {
			count++
			delete(seen, w) // count each client word once
		}
	}
	return count
}

func firstWord(sentence string) string {
	words := tokenize(strings.ToLower(sentence))
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

func averageSentenceLength(t Text) float64 {
	if len(t.Sentences) == 0 {
		return 0
	}
	return float64(t.WordCount()) / float64(len(t.Sentences))
}
