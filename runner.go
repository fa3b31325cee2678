package salescoach

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nsfeld/salescoach/pkg/domain"
)

// ContentRenderer transforms coach/client text before it is written. The CLI
// installs a markdown-to-ANSI renderer here; tests leave it nil.
type ContentRenderer func(string) (string, error)

// Runner drives an interactive practice session over plain reader/writer IO,
// which keeps it testable and independent of any particular frontend.
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Renderer ContentRenderer
}

// NewRunner creates a Runner. Input and Output must be set before Run.
func NewRunner() *Runner {
	return &Runner{}
}

// Run starts (or resumes) the session and loops reading trainee lines until
// the session completes, the input ends, or the trainee types "exit".
func (r *Runner) Run(ctx context.Context, engine *Engine, key, moduleID string, params map[string]string) error {
	if r.Input == nil {
		return errors.New("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return errors.New("output writer must be set (use os.Stdout)")
	}
	lines := bufio.NewScanner(r.Input)

	start, err := engine.Start(ctx, key, moduleID, params)
	if err != nil {
		return err
	}
	if start.Resumed {
		fmt.Fprintf(r.Output, "— продолжаем сессию %s (этап: %s) —\n\n", key, start.Stage)
	}
	if start.CoachMessage != "" {
		r.say("Коуч", start.CoachMessage)
	}
	if start.ClientMessage != "" {
		r.say("Клиент", start.ClientMessage)
	}

	for {
		fmt.Fprint(r.Output, "> ")
		if !lines.Scan() {
			return lines.Err()
		}
		utterance := strings.TrimSpace(lines.Text())
		if utterance == "" {
			continue
		}
		if utterance == "exit" || utterance == "quit" {
			return nil
		}

		turn, err := engine.Turn(ctx, key, utterance)
		if err != nil {
			if errors.Is(err, domain.ErrSessionCompleted) {
				break
			}
			return err
		}

		r.say("Клиент", turn.CounterpartReply)
		r.say("Коуч", turn.CoachFeedback)
		fmt.Fprintf(r.Output, "[этап: %s | оценка хода: %.1f]\n\n", turn.Stage, turn.Overall)

		if turn.IsFinal {
			break
		}
	}

	res, err := engine.Result(ctx, key)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.Output, "\n=== Итог: %d/100 — %s ===\n%s\n",
		res.Grade.Score, res.Grade.Letter, res.Grade.Verdict)
	return nil
}

func (r *Runner) say(who, text string) {
	if r.Renderer != nil {
		if rendered, err := r.Renderer(text); err == nil {
			text = rendered
		}
	}
	fmt.Fprintf(r.Output, "%s: %s\n\n", who, text)
}
