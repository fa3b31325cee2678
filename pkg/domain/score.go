package domain

import "math"

// Metric names shared across modules. Each module selects a subset.
const (
	MetricWarmth          = "warmth"
	MetricQuestions       = "questions"
	MetricStructure       = "structure"
	MetricClarity         = "clarity"
	MetricNoPressure      = "no_pressure"
	MetricActiveListening = "active_listening"
)

// AllMetrics lists every known metric in canonical order.
var AllMetrics = []string{
	MetricWarmth,
	MetricQuestions,
	MetricStructure,
	MetricClarity,
	MetricNoPressure,
	MetricActiveListening,
}

// ScoreVector maps metric names to values in [0,10].
type ScoreVector map[string]float64

// Overall returns the unweighted mean of the vector, or 0 for an empty vector.
func (v ScoreVector) Overall() float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, s := range v {
		sum += s
	}
	return sum / float64(len(v))
}

// Rounded returns a copy with every value rounded to one decimal place.
func (v ScoreVector) Rounded() ScoreVector {
	out := make(ScoreVector, len(v))
	for k, s := range v {
		out[k] = math.Round(s*10) / 10
	}
	return out
}

// Weakest returns the metric with the lowest value. Ties resolve in canonical
// metric order so the result is deterministic.
func (v ScoreVector) Weakest() (string, float64) {
	name := ""
	low := math.Inf(1)
	for _, m := range AllMetrics {
		if s, ok := v[m]; ok && s < low {
			name, low = m, s
		}
	}
	if name == "" {
		return "", 0
	}
	return name, low
}
