package usecases

import (
	"context"

	"serenity/internal/ai"
)

const companionPersona = "You are Serenity, a compassionate AI companion for students dealing with stress, anxiety, and academic pressure. " +
	"Provide emotional support, coping strategies, and encourage healthy habits. Be warm, understanding, and never provide medical advice. " +
	"Focus on student wellness and academic balance."

// Companion produces a supportive conversational reply for one session.
type Companion struct {
	gateway ai.Gateway
}

func NewCompanion(gateway ai.Gateway) *Companion {
	return &Companion{gateway: gateway}
}

// Respond sends the user message under the companion persona and returns the
// reply unmodified. Unlike the sentiment path, gateway failures propagate:
// there is no useful default for a conversation turn.
func (c *Companion) Respond(ctx context.Context, sessionID, message string) (string, error) {
	return c.gateway.Send(ctx, companionPersona, sessionID, message)
}
