package flows

import (
	"context"
	"fmt"
	"strings"

	"devzen-be/internal/constant"
	"devzen-be/pkg/llm"
)

// ChatInSpace answers a question grounded in the space's bookmarks. The system
// prompt forbids fabrication; the model is told to decline instead. This is
// the one flow whose output is free text, not JSON.
func ChatInSpace(ctx context.Context, provider llm.LLMProvider, spaceName string, bookmarks []BookmarkRef, history []llm.Message, question string) (string, error) {
	system := fmt.Sprintf(constant.ChatInSpacePromptV1, spaceName, formatBookmarkList(bookmarks))

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: constant.ChatMessageRoleSystem, Content: system})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: constant.ChatMessageRoleUser, Content: question})

	answer, err := provider.Chat(ctx, messages, llm.WithTemperature(0.5))
	if err != nil {
		return "", fmt.Errorf("chat flow: %w", err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", fmt.Errorf("chat flow: %w", ErrEmptyOutput)
	}

	return answer, nil
}
