package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"devzen-be/internal/constant"
	"devzen-be/pkg/llm"
)

// catalogLookupLimit caps how many catalog entries the generator may see.
const catalogLookupLimit = 15

// CatalogEntry is one importable tool offered to the workspace generator.
type CatalogEntry struct {
	Name     string
	Link     string
	Category string
	Summary  string
}

// CatalogSearcher is the bounded catalog lookup injected into the generator.
type CatalogSearcher interface {
	Search(ctx context.Context, keyword string, limit int) ([]CatalogEntry, error)
}

// WorkspacePlan is the generator output: a full nested structure ready to be
// materialized into spaces, folders and bookmarks.
type WorkspacePlan struct {
	Spaces []PlannedSpace `json:"spaces"`
}

type PlannedSpace struct {
	Name      string            `json:"name"`
	Icon      string            `json:"icon"`
	Category  string            `json:"category"`
	Folders   []PlannedFolder   `json:"folders"`
	Bookmarks []PlannedBookmark `json:"bookmarks"`
}

type PlannedFolder struct {
	Name      string            `json:"name"`
	Bookmarks []PlannedBookmark `json:"bookmarks"`
}

type PlannedBookmark struct {
	Title   string `json:"title"`
	Url     string `json:"url"`
	Summary string `json:"summary"`
}

// GenerateWorkspace turns a free-text request (or a literal exported JSON
// document) into a workspace plan. When a searcher is provided, a bounded
// catalog excerpt is offered so the model prefers real tools over invented
// URLs.
func GenerateWorkspace(ctx context.Context, provider llm.LLMProvider, searcher CatalogSearcher, userPrompt string) (*WorkspacePlan, error) {
	catalogExcerpt := "(catalog unavailable)"
	if searcher != nil {
		entries, err := searcher.Search(ctx, userPrompt, catalogLookupLimit)
		if err == nil && len(entries) > 0 {
			var sb strings.Builder
			for _, e := range entries {
				sb.WriteString(fmt.Sprintf("- %s | %s | %s", e.Name, e.Link, e.Category))
				if e.Summary != "" {
					sb.WriteString(" | " + e.Summary)
				}
				sb.WriteString("\n")
			}
			catalogExcerpt = sb.String()
		}
	}

	prompt := fmt.Sprintf(constant.GenerateWorkspacePromptV1, catalogExcerpt, userPrompt)

	response, err := provider.Generate(ctx, prompt, llm.WithTemperature(0.7))
	if err != nil {
		return nil, fmt.Errorf("generate workspace flow: %w", err)
	}

	var plan WorkspacePlan
	if err := json.Unmarshal([]byte(extractJSON(response)), &plan); err != nil {
		return nil, fmt.Errorf("generate workspace flow: %w: %v", ErrSchemaMismatch, err)
	}

	if err := validatePlan(&plan); err != nil {
		return nil, fmt.Errorf("generate workspace flow: %w", err)
	}

	return &plan, nil
}

func validatePlan(plan *WorkspacePlan) error {
	if len(plan.Spaces) == 0 {
		return fmt.Errorf("%w: no spaces", ErrEmptyOutput)
	}
	for _, s := range plan.Spaces {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("%w: space without a name", ErrSchemaMismatch)
		}
		for _, f := range s.Folders {
			if strings.TrimSpace(f.Name) == "" {
				return fmt.Errorf("%w: folder without a name in space %q", ErrSchemaMismatch, s.Name)
			}
			if err := validateBookmarks(f.Bookmarks); err != nil {
				return err
			}
		}
		if err := validateBookmarks(s.Bookmarks); err != nil {
			return err
		}
	}
	return nil
}

func validateBookmarks(bookmarks []PlannedBookmark) error {
	for _, b := range bookmarks {
		if strings.TrimSpace(b.Title) == "" || strings.TrimSpace(b.Url) == "" {
			return fmt.Errorf("%w: bookmark missing title or url", ErrSchemaMismatch)
		}
	}
	return nil
}
