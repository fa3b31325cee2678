package scoring

import (
	"strings"
	"unicode"
)

// Sentence is one segmented sentence with its terminator preserved, so
// metrics can tell questions from statements.
type Sentence struct {
	Text       string
	Terminator rune // '.', '!', '?' or 0 when the text just ends
}

// Text is the normalized representation all metrics share: lowercased raw
// text, word tokens and segmented sentences. Built once per utterance.
type Text struct {
	Raw       string
	Lower     string
	Words     []string
	Sentences []Sentence
}

// Normalize builds the shared text representation. Input with no letters or
// digits at all (stray punctuation, transcription garbage) normalizes to the
// empty representation, which every metric treats as an empty utterance.
func Normalize(raw string) Text {
	trimmed := strings.TrimSpace(raw)
	if !hasContent(trimmed) {
		return Text{}
	}
	lower := strings.ToLower(trimmed)
	return Text{
		Raw:       trimmed,
		Lower:     lower,
		Words:     tokenize(lower),
		Sentences: segment(trimmed),
	}
}

// Empty reports whether the utterance carried no usable content.
func (t Text) Empty() bool { return len(t.Words) == 0 }

// WordCount returns the number of word tokens.
func (t Text) WordCount() int { return len(t.Words) }

func hasContent(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func tokenize(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func segment(raw string) []Sentence {
	var out []Sentence
	var sb strings.Builder
	flush := func(term rune) {
		text := strings.TrimSpace(sb.String())
		sb.Reset()
		if text != "" {
			out = append(out, Sentence{Text: text, Terminator: term})
		}
	}
	for _, r := range raw {
		switch r {
		case '.', '!', '?', '…':
			flush(r)
		case '\n':
			flush(0)
		default:
			sb.WriteRune(r)
		}
	}
	flush(0)
	return out
}

// containsAny returns the number of distinct markers found in the lowercased
// text. Markers are stems, matched by substring the same way the curated
// lists are written (e.g. "здравств" matches "здравствуйте").
func containsAny(lower string, markers []string) int {
	hits := 0
	for _, m := range markers {
		if strings.Contains(lower, m) {
			hits++
		}
	}
	return hits
}

// saturate maps a hit count onto [0,10] with diminishing returns: the first
// hits matter most, extra repetition approaches 10 asymptotically.
func saturate(hits, halfway float64) float64 {
	if hits <= 0 {
		return 0
	}
	return 10 * hits / (hits + halfway)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
