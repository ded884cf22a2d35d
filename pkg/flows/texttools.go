package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"devzen-be/internal/constant"
	"devzen-be/pkg/llm"
)

type textToolOutput struct {
	Text string `json:"text"`
}

// TextTool applies one of the single-turn text transforms (correct,
// summarize, translate, improve, generate) to the given text.
func TextTool(ctx context.Context, provider llm.LLMProvider, action string, text string) (string, error) {
	instruction, ok := constant.TextToolInstructions[action]
	if !ok {
		return "", fmt.Errorf("text tool flow: unknown action %q", action)
	}

	prompt := fmt.Sprintf(constant.TextToolPromptV1, action, instruction, text)

	response, err := provider.Generate(ctx, prompt, llm.WithTemperature(0.4))
	if err != nil {
		return "", fmt.Errorf("text tool flow: %w", err)
	}

	var out textToolOutput
	if err := json.Unmarshal([]byte(extractJSON(response)), &out); err != nil {
		return "", fmt.Errorf("text tool flow: %w: %v", ErrSchemaMismatch, err)
	}

	result := strings.TrimSpace(out.Text)
	if result == "" {
		return "", fmt.Errorf("text tool flow: %w", ErrEmptyOutput)
	}

	return result, nil
}
