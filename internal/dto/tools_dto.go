package dto

import (
	"github.com/google/uuid"
)

type ListToolsRequest struct {
	Category string `query:"category"`
	Keyword  string `query:"keyword"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

type ToolsAiSummary struct {
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
}

type ToolsAiResponse struct {
	Id       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Link     string         `json:"link"`
	Category string         `json:"category,omitempty"`
	Brand    string         `json:"brand,omitempty"`
	Summary  ToolsAiSummary `json:"summary"`
}

// ImportToolRequest copies a catalog entry into the user's space as a bookmark.
type ImportToolRequest struct {
	ToolId   uuid.UUID  `json:"tool_id" validate:"required"`
	SpaceId  uuid.UUID  `json:"space_id" validate:"required"`
	ParentId *uuid.UUID `json:"parent_id"`
}
