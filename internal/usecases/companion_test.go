package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "serenity/internal/errors"
)

func TestRespond_PassesReplyThroughUnmodified(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{reply: "  That sounds really hard. Want to talk through it?  "}
	companion := NewCompanion(gw)

	reply, err := companion.Respond(context.Background(), "session-1", "I'm overwhelmed")

	require.NoError(t, err)
	require.Equal(t, gw.reply, reply)
	require.Equal(t, companionPersona, gw.lastPersona)
	require.Equal(t, "session-1", gw.lastSessionID)
	require.Equal(t, "I'm overwhelmed", gw.lastPrompt)
}

// The identical failure the analyzer swallows must surface here unchanged.
func TestRespond_PropagatesGatewayError(t *testing.T) {
	t.Parallel()

	gwErr := apperrors.NewGateway("ai.Send", errors.New("timeout"))
	gw := &fakeGateway{err: gwErr}
	companion := NewCompanion(gw)

	_, err := companion.Respond(context.Background(), "session-1", "hello")

	require.Error(t, err)
	var ge *apperrors.GatewayError
	require.ErrorAs(t, err, &ge)
	require.Same(t, gwErr, ge)
}
