package flows

import (
	"context"
	"testing"

	"devzen-be/pkg/llm"
)

// fakeProvider returns a canned response and records whether it was called.
type fakeProvider struct {
	response string
	err      error
	called   bool
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.called = true
	return f.response, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.called = true
	return f.response, f.err
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			name:     "bare object",
			response: `{"kind":"url"}`,
			want:     `{"kind":"url"}`,
		},
		{
			name:     "markdown fenced",
			response: "```json\n{\"kind\":\"note\"}\n```",
			want:     `{"kind":"note"}`,
		},
		{
			name:     "surrounding prose",
			response: `Sure, here it is: {"summary":"una frase"} hope that helps`,
			want:     `{"summary":"una frase"}`,
		},
		{
			name:     "no json at all",
			response: "plain text answer",
			want:     "plain text answer",
		},
		{
			name:     "nested braces",
			response: `{"payload":{"tasks":["a"]}}`,
			want:     `{"payload":{"tasks":["a"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON(tt.response)
			if got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
