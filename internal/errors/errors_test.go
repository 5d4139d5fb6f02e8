package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestGatewayError_WrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("rate limited")
	err := NewGateway("ai.Send", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable via errors.Is")
	}

	wrapped := fmt.Errorf("handling chat: %w", err)
	var ge *GatewayError
	if !errors.As(wrapped, &ge) {
		t.Fatal("expected GatewayError via errors.As through wrapping")
	}
	if ge.Op != "ai.Send" {
		t.Fatalf("Op = %q, want ai.Send", ge.Op)
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{NewValidation("user_id", "required"), http.StatusBadRequest},
		{NewGateway("ai.Send", errors.New("timeout")), http.StatusBadGateway},
		{NewStore("storage.Insert", errors.New("down")), http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
		{fmt.Errorf("ctx: %w", NewGateway("ai.Send", errors.New("x"))), http.StatusBadGateway},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	if got := NewValidation("content", "required").Error(); got != "content: required" {
		t.Fatalf("Error() = %q", got)
	}
	if got := NewValidation("", "invalid JSON").Error(); got != "invalid JSON" {
		t.Fatalf("Error() = %q", got)
	}
}
