package flows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"devzen-be/internal/constant"
	"devzen-be/pkg/llm"
)

// ErrNoCandidates is returned when categorization is attempted with no spaces.
var ErrNoCandidates = errors.New("categorize flow: no candidate spaces")

// SpaceCandidate is one selectable space offered to the categorizer.
type SpaceCandidate struct {
	Id       string
	Name     string
	Category string
}

type categorizeOutput struct {
	SpaceId string `json:"spaceId"`
}

// Categorize picks the best-fitting space for a URL out of the candidates.
// An empty candidate list is an explicit error, never a silent default.
func Categorize(ctx context.Context, provider llm.LLMProvider, url string, candidates []SpaceCandidate) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}

	var sb strings.Builder
	for _, c := range candidates {
		sb.WriteString(fmt.Sprintf("- id: %s | name: %s", c.Id, c.Name))
		if c.Category != "" {
			sb.WriteString(" | category: " + c.Category)
		}
		sb.WriteString("\n")
	}

	prompt := fmt.Sprintf(constant.CategorizePromptV1, url, sb.String())

	response, err := provider.Generate(ctx, prompt, llm.WithTemperature(0.1))
	if err != nil {
		return "", fmt.Errorf("categorize flow: %w", err)
	}

	var out categorizeOutput
	if err := json.Unmarshal([]byte(extractJSON(response)), &out); err != nil {
		return "", fmt.Errorf("categorize flow: %w: %v", ErrSchemaMismatch, err)
	}

	for _, c := range candidates {
		if c.Id == out.SpaceId {
			return out.SpaceId, nil
		}
	}

	return "", fmt.Errorf("categorize flow: %w: space id %q is not a candidate", ErrSchemaMismatch, out.SpaceId)
}
