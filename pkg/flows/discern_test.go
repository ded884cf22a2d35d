package flows

import (
	"context"
	"testing"
)

func TestDiscernInputHeuristics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantCall bool
	}{
		{
			name:  "four tokens is a note",
			input: "hello world this is a note",
			want:  KindNote,
		},
		{
			name:  "newline forces note even when short",
			input: "ciao\nmondo",
			want:  KindNote,
		},
		{
			name:  "bare domain is a url",
			input: "example.com",
			want:  KindURL,
		},
		{
			name:  "absolute url",
			input: "https://go.dev/doc/effective_go",
			want:  KindURL,
		},
		{
			name:  "domain with path",
			input: "news.ycombinator.com/item?id=1",
			want:  KindURL,
		},
		{
			name:     "short ambiguous text falls through to the model",
			input:    "comprare latte",
			want:     KindNote,
			wantCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{response: `{"kind":"note"}`}

			got, err := DiscernInput(context.Background(), provider, tt.input)
			if err != nil {
				t.Fatalf("DiscernInput() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DiscernInput(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if provider.called != tt.wantCall {
				t.Errorf("provider called = %v, want %v", provider.called, tt.wantCall)
			}
		})
	}
}

func TestDiscernInputRejectsUnknownKind(t *testing.T) {
	provider := &fakeProvider{response: `{"kind":"maybe"}`}

	_, err := DiscernInput(context.Background(), provider, "qualcosa strano")
	if err == nil {
		t.Fatal("expected schema error for unknown kind")
	}
}
