package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"devzen-be/internal/constant"
	"devzen-be/pkg/llm"
)

// SpaceAnalysis is the structured result of analyzing one space.
type SpaceAnalysis struct {
	Analysis    string   `json:"analysis"`
	Themes      []string `json:"themes"`
	Suggestions []string `json:"suggestions"`
}

// AnalyzeSpace produces a prose analysis with 3-5 key themes and 2-3
// suggestions for a space and its bookmarks.
func AnalyzeSpace(ctx context.Context, provider llm.LLMProvider, spaceName string, bookmarks []BookmarkRef) (*SpaceAnalysis, error) {
	prompt := fmt.Sprintf(constant.AnalyzeSpacePromptV1, spaceName, formatBookmarkList(bookmarks))

	response, err := provider.Generate(ctx, prompt, llm.WithTemperature(0.5))
	if err != nil {
		return nil, fmt.Errorf("analyze flow: %w", err)
	}

	var out SpaceAnalysis
	if err := json.Unmarshal([]byte(extractJSON(response)), &out); err != nil {
		return nil, fmt.Errorf("analyze flow: %w: %v", ErrSchemaMismatch, err)
	}

	if strings.TrimSpace(out.Analysis) == "" {
		return nil, fmt.Errorf("analyze flow: %w", ErrEmptyOutput)
	}
	if len(out.Themes) < 3 || len(out.Themes) > 5 {
		return nil, fmt.Errorf("analyze flow: %w: got %d themes, want 3-5", ErrSchemaMismatch, len(out.Themes))
	}
	if len(out.Suggestions) < 2 || len(out.Suggestions) > 3 {
		return nil, fmt.Errorf("analyze flow: %w: got %d suggestions, want 2-3", ErrSchemaMismatch, len(out.Suggestions))
	}

	return &out, nil
}
