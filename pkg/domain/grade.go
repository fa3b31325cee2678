package domain

import "math"

// Grade is the final verdict derived from aggregate session scores.
type Grade struct {
	Letter  string `json:"letter"`
	Score   int    `json:"score"` // 0-100
	Verdict string `json:"verdict"`
}

// gradeBand maps a minimum 0-100 score to a letter and verdict. Bands are
// checked top-down, so they must stay sorted by descending threshold.
type gradeBand struct {
	min     int
	letter  string
	verdict string
}

var gradeBands = []gradeBand{
	{85, "A", "Отлично! Ты готов работать с реальными клиентами: эмпатия, структура и естественность на месте."},
	{70, "B", "Хорошо! Базовые навыки на месте. Продолжай практиковаться для уверенности."},
	{55, "C", "Удовлетворительно. Есть понимание, но нужно больше практики. Повтори тренировки."},
	{0, "D", "Нужна практика. Вернись к базовым модулям и отработай навыки."},
}

// GradeFor converts a 0-10 aggregate score vector into a 0-100 grade using
// the fixed threshold table.
func GradeFor(scores ScoreVector) Grade {
	score := int(math.Round(scores.Overall() * 10))
	for _, band := range gradeBands {
		if score >= band.min {
			return Grade{Letter: band.letter, Score: score, Verdict: band.verdict}
		}
	}
	// Unreachable: the last band has min 0.
	return Grade{Letter: "D", Score: score}
}
