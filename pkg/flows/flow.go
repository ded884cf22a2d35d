// Package flows contains the prompt flows: each one is a plain function
// (typed input) -> typed output over an llm.LLMProvider, with the model
// response parsed as JSON and validated before it is returned. A schema
// mismatch or empty output is a hard error; callers decide about fallbacks.
package flows

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyOutput is returned when the model produced no usable content.
	ErrEmptyOutput = errors.New("empty model output")

	// ErrSchemaMismatch is returned when the model output parsed but did not
	// satisfy the flow's output contract.
	ErrSchemaMismatch = errors.New("model output does not match schema")
)

// BookmarkRef is the minimal bookmark tuple passed into context-aware flows.
type BookmarkRef struct {
	Id      string
	Title   string
	Url     string
	Summary string
}

// extractJSON isolates JSON content from a model response that may be wrapped
// in prose or markdown fences.
func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return response
	}

	return response[startIdx : endIdx+1]
}

// formatBookmarkList renders bookmark tuples as prompt context lines.
func formatBookmarkList(bookmarks []BookmarkRef) string {
	var sb strings.Builder
	for _, b := range bookmarks {
		sb.WriteString(fmt.Sprintf("- id: %s | title: %s | url: %s", b.Id, b.Title, b.Url))
		if b.Summary != "" {
			sb.WriteString(" | summary: " + b.Summary)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
