package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"devzen-be/internal/constant"
	"devzen-be/pkg/llm"
)

const (
	KindURL  = "url"
	KindNote = "note"
)

type discernOutput struct {
	Kind string `json:"kind"`
}

// DiscernInput classifies free text as a URL or a note. Cheap heuristics run
// first; the model is only consulted when they are inconclusive.
func DiscernInput(ctx context.Context, provider llm.LLMProvider, text string) (string, error) {
	trimmed := strings.TrimSpace(text)

	// Multi-line input is always a note.
	if strings.Contains(trimmed, "\n") {
		return KindNote, nil
	}

	// More than 3 words reads like prose, not an address.
	if len(strings.Fields(trimmed)) > 3 {
		return KindNote, nil
	}

	if looksLikeURL(trimmed) {
		return KindURL, nil
	}

	prompt := fmt.Sprintf(constant.DiscernInputPromptV1, trimmed)

	response, err := provider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		return "", fmt.Errorf("discern flow: %w", err)
	}

	var out discernOutput
	if err := json.Unmarshal([]byte(extractJSON(response)), &out); err != nil {
		return "", fmt.Errorf("discern flow: %w: %v", ErrSchemaMismatch, err)
	}

	if out.Kind != KindURL && out.Kind != KindNote {
		return "", fmt.Errorf("discern flow: %w: unknown kind %q", ErrSchemaMismatch, out.Kind)
	}

	return out.Kind, nil
}

// looksLikeURL accepts absolute http(s) URLs and bare domains like "example.com".
func looksLikeURL(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t") {
		return false
	}

	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		u, err := url.Parse(s)
		return err == nil && u.Host != ""
	}

	// Bare domain: must parse once a scheme is supplied and carry a dotted host.
	u, err := url.Parse("https://" + s)
	if err != nil || u.Host == "" {
		return false
	}
	host := u.Hostname()
	return strings.Contains(host, ".") && !strings.HasPrefix(host, ".") && !strings.HasSuffix(host, ".")
}
