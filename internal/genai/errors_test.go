package genai

import (
	"errors"
	"fmt"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
)

func TestClassifyAPIErrorByStatus(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorKind
	}{
		{429, KindRateLimited},
		{401, KindPermissionDenied},
		{403, KindPermissionDenied},
		{400, KindInvalidRequest},
		{500, KindUnknown},
		{529, KindUnknown},
	}

	for _, tc := range cases {
		got := classifyAPIError(&anthropic.Error{StatusCode: tc.status})
		if got.Kind != tc.want {
			t.Errorf("status %d: expected kind %d, got %d", tc.status, tc.want, got.Kind)
		}
		if got.Message == "" {
			t.Errorf("status %d: expected a human-readable message", tc.status)
		}
	}
}

func TestClassifyAPIErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("request failed: %w", &anthropic.Error{StatusCode: 429})

	got := classifyAPIError(wrapped)
	if got.Kind != KindRateLimited {
		t.Errorf("expected wrapped API error to classify, got kind %d", got.Kind)
	}
}

func TestClassifyAPIErrorPlainError(t *testing.T) {
	got := classifyAPIError(errors.New("connection reset"))
	if got.Kind != KindUnknown {
		t.Errorf("expected unknown kind for transport errors, got %d", got.Kind)
	}
}
