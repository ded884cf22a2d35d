package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"devzen-be/internal/constant"
	"devzen-be/pkg/llm"
)

// Conversation stages for the develop-idea flow. The stage is re-derived from
// the caller-supplied history on every call; no server-side session exists.
const (
	StageIntroduction = "introduction"
	StageExploration  = "exploration"
	StageProposing    = "propose-structuring"
	StageFinalize     = "finalize"
)

// IdeaPayload is the structured result emitted once the idea is finalized.
type IdeaPayload struct {
	SpaceName      string   `json:"spaceName"`
	Icon           string   `json:"icon"`
	Tasks          []string `json:"tasks"`
	SuggestedTools []string `json:"suggestedTools"`
}

// DevelopIdeaResult is one assistant turn of the develop-idea conversation.
type DevelopIdeaResult struct {
	Reply      string       `json:"reply"`
	Stage      string       `json:"stage"`
	IsFinished bool         `json:"isFinished"`
	Payload    *IdeaPayload `json:"payload"`
}

// DevelopIdea advances the idea-development conversation by one assistant
// turn. The finished transition is guarded outside the prompt: regardless of
// what the model claims, IsFinished stays false unless the last user turn is
// an explicit confirmation.
func DevelopIdea(ctx context.Context, provider llm.LLMProvider, history []llm.Message) (*DevelopIdeaResult, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("develop idea flow: empty history")
	}

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: constant.DevelopIdeaSystemPromptV1,
	})
	messages = append(messages, history...)

	response, err := provider.Chat(ctx, messages, llm.WithTemperature(0.7))
	if err != nil {
		return nil, fmt.Errorf("develop idea flow: %w", err)
	}

	var out DevelopIdeaResult
	if err := json.Unmarshal([]byte(extractJSON(response)), &out); err != nil {
		return nil, fmt.Errorf("develop idea flow: %w: %v", ErrSchemaMismatch, err)
	}

	if strings.TrimSpace(out.Reply) == "" {
		return nil, fmt.Errorf("develop idea flow: %w", ErrEmptyOutput)
	}

	switch out.Stage {
	case StageIntroduction, StageExploration, StageProposing, StageFinalize:
	default:
		return nil, fmt.Errorf("develop idea flow: %w: unknown stage %q", ErrSchemaMismatch, out.Stage)
	}

	// The prompt alone is not trusted with the finished transition.
	if out.IsFinished && !hasUserConfirmation(history) {
		out.IsFinished = false
		out.Payload = nil
		if out.Stage == StageFinalize {
			out.Stage = StageProposing
		}
	}

	if out.IsFinished && out.Payload == nil {
		return nil, fmt.Errorf("develop idea flow: %w: finished without payload", ErrSchemaMismatch)
	}
	if !out.IsFinished {
		out.Payload = nil
	}

	return &out, nil
}

var confirmationPhrases = []string{
	"va bene", "d'accordo", "go ahead", "sounds good",
}

var confirmationWords = []string{
	"sì", "si", "ok", "okay", "yes", "sure", "confermo", "conferma",
	"procedi", "perfetto", "confirm",
}

// hasUserConfirmation reports whether the most recent user turn in the
// history is an explicit affirmative. Earlier confirmations do not count;
// the user must have confirmed the proposal currently on the table.
func hasUserConfirmation(history []llm.Message) bool {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != constant.ChatMessageRoleUser {
			continue
		}
		text := strings.ToLower(strings.TrimSpace(history[i].Content))
		for _, phrase := range confirmationPhrases {
			if strings.Contains(text, phrase) {
				return true
			}
		}
		words := strings.FieldsFunc(text, func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		for _, w := range words {
			for _, cw := range confirmationWords {
				if w == cw {
					return true
				}
			}
		}
		return false
	}
	return false
}
