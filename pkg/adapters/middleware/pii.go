package middleware

import (
	"context"
	"regexp"

	"github.com/nsfeld/salescoach/pkg/domain"
	"github.com/nsfeld/salescoach/pkg/ports"
)

// Trainees paste real client contacts into practice dialogues more often
// than one would hope. These cover the common shapes.
var defaultPIIPatterns = []string{
	`\+?\d[\d\-\s()]{8,}\d`,                            // phone numbers
	`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`, // emails
	`@[a-zA-Z0-9_]{4,}`,                                // messenger handles
}

type piiMiddleware struct {
	next     ports.SessionStore
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks contact data in dialogue
// text before it reaches the store. Nil patterns select the defaults.
func NewPIIMiddleware(patternStrings []string) Middleware {
	if patternStrings == nil {
		patternStrings = defaultPIIPatterns
	}
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.SessionStore) ports.SessionStore {
		return &piiMiddleware{next: next, patterns: patterns}
	}
}

func (m *piiMiddleware) Save(ctx context.Context, key string, sess *domain.Session) error {
	// Clone so the in-memory session used by the engine keeps the original
	// text for persona context.
	cloned := sess.Clone()
	maskMessages(cloned.Opening, m.patterns)
	maskMessages(cloned.History, m.patterns)
	return m.next.Save(ctx, key, cloned)
}

func (m *piiMiddleware) Load(ctx context.Context, key string) (*domain.Session, error) {
	return m.next.Load(ctx, key)
}

func (m *piiMiddleware) Delete(ctx context.Context, key string) error {
	return m.next.Delete(ctx, key)
}

func (m *piiMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

func maskMessages(msgs []domain.Message, patterns []*regexp.Regexp) {
	for i := range msgs {
		for _, p := range patterns {
			msgs[i].Text = p.ReplaceAllString(msgs[i].Text, "***")
		}
	}
}
