package persona

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nsfeld/salescoach/pkg/domain"
	"github.com/nsfeld/salescoach/pkg/ports"
	"github.com/openai/openai-go"
)

// Brand voice prompts. The client is a curious but money-careful human; the
// coach is warm, constructive and brief.
const clientSystemPrompt = `Ты — живой клиент в переписке с менеджером.
Твой характер:
- Естественный, с эмоциями: радость, сомнения, интерес
- Реагируешь на тон менеджера: открываешься, если он тёплый, сомневаешься, если давит
- Любопытный, но осторожный с деньгами
- Отвечай 2-3 предложениями, как в живой переписке`

const coachSystemPrompt = `Ты — опытный коуч-наставник по продажам.
Стиль общения:
- Тёплый, мягкий, но честный
- Не критикуешь, а показываешь лучший путь
- Краткие, но ёмкие советы: 2-3 предложения`

// OpenAIOptions configure the live backend. Fields mirror a minimal subset of
// Chat Completion parameters.
type OpenAIOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int64
}

// OpenAIBackend implements ports.PersonaBackend over the OpenAI Chat
// Completions API (or any compatible endpoint the client is configured for).
type OpenAIBackend struct {
	client    *openai.Client
	opts      OpenAIOptions
	available bool
}

// NewOpenAIBackend creates a backend using the SDK's default client, which
// reads credentials and base URL from the environment.
func NewOpenAIBackend(optFns ...func(o *OpenAIOptions)) *OpenAIBackend {
	client := openai.NewClient()
	b := NewOpenAIBackendFromClient(&client, optFns...)
	b.available = os.Getenv("OPENAI_API_KEY") != ""
	return b
}

// NewOpenAIBackendFromClient creates a backend from an existing client.
func NewOpenAIBackendFromClient(client *openai.Client, optFns ...func(o *OpenAIOptions)) *OpenAIBackend {
	opts := OpenAIOptions{
		Model:       openai.ChatModelGPT4oMini,
		Temperature: 0.8,
		MaxTokens:   400,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &OpenAIBackend{client: client, opts: opts, available: true}
}

// Available reports whether the backend is configured with credentials.
func (b *OpenAIBackend) Available() bool { return b.available }

// Reply generates text for the requested role.
func (b *OpenAIBackend) Reply(ctx context.Context, req ports.PersonaRequest) (string, error) {
	resp, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               b.opts.Model,
		Messages:            buildMessages(req),
		Temperature:         openai.Float(b.opts.Temperature),
		MaxCompletionTokens: openai.Int(b.opts.MaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("persona backend: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("persona backend: empty completion")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// buildMessages converts the request into chat messages. For the client role
// the trainee speaks as "user" and the client as "assistant"; the coach sees
// the dialogue as quoted context plus the evaluation.
func buildMessages(req ports.PersonaRequest) []openai.ChatCompletionMessageParamUnion {
	system := clientSystemPrompt
	if req.Role == ports.PersonaCoach {
		system = coachSystemPrompt
	}
	if req.Profile != "" {
		system += "\n\n" + req.Profile
	}
	messages := []openai.ChatCompletionMessageParamUnion{openai.SystemMessage(system)}

	if req.Role == ports.PersonaClient {
		for _, msg := range tail(req.History, 6) {
			switch msg.Role {
			case domain.RoleManager:
				messages = append(messages, openai.UserMessage(msg.Text))
			case domain.RoleClient:
				messages = append(messages, openai.AssistantMessage(msg.Text))
			}
		}
		prompt := req.Utterance
		if req.Hint != "" {
			prompt = fmt.Sprintf("Этап сделки: %s. Менеджер написал: %s", req.Stage, req.Utterance)
		}
		messages = append(messages, openai.UserMessage(prompt))
		return messages
	}

	var sb strings.Builder
	sb.WriteString("История диалога:\n")
	for _, msg := range tail(req.History, 4) {
		fmt.Fprintf(&sb, "%s: %s\n", msg.Role, msg.Text)
	}
	fmt.Fprintf(&sb, "\nМенеджер на этапе %q написал: %q\n", req.Stage, req.Utterance)
	if len(req.Scores) > 0 {
		sb.WriteString("Оценки: ")
		for metric, v := range req.Scores.Rounded() {
			fmt.Fprintf(&sb, "%s=%.1f ", metric, v)
		}
		sb.WriteString("\n")
	}
	if req.Hint != "" {
		fmt.Fprintf(&sb, "Подсказка этапа: %s\n", req.Hint)
	}
	sb.WriteString("\nДай краткий совет (2-3 предложения), что улучшить или что хорошо.")
	messages = append(messages, openai.UserMessage(sb.String()))
	return messages
}

func tail(history []domain.Message, n int) []domain.Message {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
