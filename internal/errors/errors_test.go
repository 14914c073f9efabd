package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestInvalidDigitError_Message(t *testing.T) {
	err := InvalidDigitError{Pos: 17, Char: 'x'}
	if !strings.Contains(err.Error(), "'x'") || !strings.Contains(err.Error(), "17") {
		t.Errorf("unhelpful message: %s", err)
	}
}

func TestLengthExceededError_Message(t *testing.T) {
	err := LengthExceededError{Length: 2_000_000_000, Max: 1_292_782_622}
	for _, needle := range []string{"2000000000", "1292782622"} {
		if !strings.Contains(err.Error(), needle) {
			t.Errorf("message %q is missing %s", err.Error(), needle)
		}
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("wrapping nil must return nil")
	}
	base := InvalidDigitError{Pos: 1, Char: '!'}
	wrapped := WrapError(base, "parsing %s", "input")
	var digitErr InvalidDigitError
	if !errors.As(wrapped, &digitErr) || digitErr.Pos != 1 {
		t.Errorf("wrapped error lost its cause: %v", wrapped)
	}
	if !strings.HasPrefix(wrapped.Error(), "parsing input: ") {
		t.Errorf("unexpected wrap format: %v", wrapped)
	}
}

func TestIsContextError(t *testing.T) {
	if !IsContextError(context.Canceled) || !IsContextError(context.DeadlineExceeded) {
		t.Error("context errors not recognized")
	}
	if IsContextError(fmt.Errorf("boom")) {
		t.Error("arbitrary error classified as context error")
	}
	if !IsContextError(fmt.Errorf("outer: %w", context.Canceled)) {
		t.Error("wrapped context error not recognized")
	}
}

func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitSuccess},
		{context.Canceled, ExitErrorCanceled},
		{ConfigError{Message: "bad flag"}, ExitErrorConfig},
		{InvalidDigitError{Pos: 0, Char: 'z'}, ExitErrorInput},
		{LengthExceededError{Length: 10, Max: 5}, ExitErrorInput},
		{&NumericOverflowError{Op: "fft multiply"}, ExitErrorGeneric},
		{TimeoutError{Operation: "parse", Limit: time.Second}, ExitErrorTimeout},
		{fmt.Errorf("unknown"), ExitErrorGeneric},
		{WrapError(InvalidDigitError{Pos: 3, Char: '?'}, "outer"), ExitErrorInput},
	}
	for _, c := range cases {
		if got := ExitCodeFor(c.err); got != c.want {
			t.Errorf("ExitCodeFor(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
