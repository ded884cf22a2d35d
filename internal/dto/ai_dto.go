package dto

import (
	"github.com/google/uuid"
)

type SummarizeRequest struct {
	Url string `json:"url" validate:"required"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type CategorizeRequest struct {
	Url string `json:"url" validate:"required"`
}

type CategorizeResponse struct {
	SpaceId uuid.UUID `json:"space_id"`
}

type DiscernInputRequest struct {
	Text string `json:"text" validate:"required"`
}

type DiscernInputResponse struct {
	Kind string `json:"kind"` // "url" | "note"
}

type SmartSearchRequest struct {
	Query   string     `json:"query" validate:"required"`
	SpaceId *uuid.UUID `json:"space_id"`
}

type SmartSearchResult struct {
	Item  SpaceItemResponse `json:"item"`
	Score float64           `json:"score"`
}

type SmartSearchResponse struct {
	Results []SmartSearchResult `json:"results"`
}

type AnalyzeSpaceRequest struct {
	SpaceId uuid.UUID `json:"space_id" validate:"required"`
}

type AnalyzeSpaceResponse struct {
	Analysis    string   `json:"analysis"`
	KeyThemes   []string `json:"key_themes"`
	Suggestions []string `json:"suggestions"`
}

type ChatMessageDTO struct {
	Role    string `json:"role" validate:"required,oneof=user assistant model system"`
	Content string `json:"content" validate:"required"`
}

type ChatInSpaceRequest struct {
	SpaceId  uuid.UUID        `json:"space_id" validate:"required"`
	History  []ChatMessageDTO `json:"history" validate:"dive"`
	Question string           `json:"question" validate:"required"`
	// SaveAsNote persists the exchange as a chat-note in the space.
	SaveAsNote bool `json:"save_as_note"`
}

type ChatInSpaceResponse struct {
	Answer      string     `json:"answer"`
	SavedItemId *uuid.UUID `json:"saved_item_id,omitempty"`
}

type GenerateWorkspaceRequest struct {
	Prompt     string `json:"prompt" validate:"required"`
	UseCatalog bool   `json:"use_catalog"`
}

type GenerateWorkspaceResponse struct {
	SpaceIds []uuid.UUID `json:"space_ids"`
	Spaces   int         `json:"spaces"`
	Folders  int         `json:"folders"`
	Items    int         `json:"items"`
}

type DevelopIdeaRequest struct {
	History []ChatMessageDTO `json:"history" validate:"required,min=1,dive"`
}

type DevelopIdeaPayload struct {
	SpaceName      string   `json:"space_name"`
	Icon           string   `json:"icon"`
	Tasks          []string `json:"tasks"`
	SuggestedTools []string `json:"suggested_tools"`
}

type DevelopIdeaResponse struct {
	Reply      string              `json:"reply"`
	IsFinished bool                `json:"is_finished"`
	Payload    *DevelopIdeaPayload `json:"payload,omitempty"`
}

type TextToolRequest struct {
	Action string `json:"action" validate:"required,oneof=correct summarize translate improve generate"`
	Text   string `json:"text" validate:"required"`
}

type TextToolResponse struct {
	Result string `json:"result"`
}
