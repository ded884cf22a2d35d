package flows

import (
	"context"
	"encoding/json"
	"fmt"

	"devzen-be/internal/constant"
	"devzen-be/pkg/llm"
)

type smartSearchOutput struct {
	Ids []string `json:"ids"`
}

// SmartSearch re-ranks bookmarks against a natural-language query. An empty
// bookmark list short-circuits to an empty result without a model call, and
// an empty result from the model is a valid answer.
func SmartSearch(ctx context.Context, provider llm.LLMProvider, query string, bookmarks []BookmarkRef) ([]string, error) {
	if len(bookmarks) == 0 {
		return []string{}, nil
	}

	prompt := fmt.Sprintf(constant.SmartSearchPromptV1, query, formatBookmarkList(bookmarks))

	response, err := provider.Generate(ctx, prompt, llm.WithTemperature(0.1))
	if err != nil {
		return nil, fmt.Errorf("smart search flow: %w", err)
	}

	var out smartSearchOutput
	if err := json.Unmarshal([]byte(extractJSON(response)), &out); err != nil {
		return nil, fmt.Errorf("smart search flow: %w: %v", ErrSchemaMismatch, err)
	}

	// Keep only ids that actually exist in the input, preserving model order.
	known := make(map[string]bool, len(bookmarks))
	for _, b := range bookmarks {
		known[b.Id] = true
	}

	ids := make([]string, 0, len(out.Ids))
	seen := make(map[string]bool, len(out.Ids))
	for _, id := range out.Ids {
		if known[id] && !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}

	return ids, nil
}
