package ai

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	apperrors "serenity/internal/errors"
)

// Gateway is the boundary to the external language model. Implementations
// must be safe for concurrent use; every call is bounded by a timeout.
type Gateway interface {
	// Send submits one prompt under the given system persona and returns the
	// raw reply text. The session id lets the provider keep per-conversation
	// context if it chooses; it carries no meaning on this side.
	Send(ctx context.Context, persona, sessionID, prompt string) (string, error)
}

// OpenAIGateway talks to an OpenAI-compatible chat-completions endpoint.
type OpenAIGateway struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

var _ Gateway = (*OpenAIGateway)(nil)

func NewOpenAIGateway(apiKey, model string, timeout time.Duration) *OpenAIGateway {
	return &OpenAIGateway{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		timeout: timeout,
	}
}

func (g *OpenAIGateway) Send(ctx context.Context, persona, sessionID, prompt string) (string, error) {
	const op = "ai.Send"

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(persona),
			openai.UserMessage(prompt),
		},
		User: openai.String(sessionID),
	})
	if err != nil {
		return "", apperrors.NewGateway(op, err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.NewGateway(op, errors.New("no choices in response"))
	}
	return resp.Choices[0].Message.Content, nil
}
