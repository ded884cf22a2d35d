package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"devzen-be/internal/constant"
	"devzen-be/pkg/llm"
)

type summarizeOutput struct {
	Summary string `json:"summary"`
}

// Summarize produces a one-sentence summary for a URL. Failures are hard
// errors here; the bookmark service substitutes its fallback string.
func Summarize(ctx context.Context, provider llm.LLMProvider, url string) (string, error) {
	prompt := fmt.Sprintf(constant.SummarizePromptV1, url)

	response, err := provider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		return "", fmt.Errorf("summarize flow: %w", err)
	}

	var out summarizeOutput
	if err := json.Unmarshal([]byte(extractJSON(response)), &out); err != nil {
		return "", fmt.Errorf("summarize flow: %w: %v", ErrSchemaMismatch, err)
	}

	summary := strings.TrimSpace(out.Summary)
	if summary == "" {
		return "", fmt.Errorf("summarize flow: %w", ErrEmptyOutput)
	}

	return summary, nil
}
