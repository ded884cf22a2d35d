package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBookmarkRequest accepts free text. The service discerns whether it is a
// URL or a note before persisting, and may auto-categorize into another space.
type CreateBookmarkRequest struct {
	Input          string     `json:"input" validate:"required"`
	SpaceId        uuid.UUID  `json:"space_id" validate:"required"`
	ParentId       *uuid.UUID `json:"parent_id"`
	AutoCategorize bool       `json:"auto_categorize"`
}

type UpdateBookmarkRequest struct {
	Id              uuid.UUID
	Title           string `json:"title" validate:"required"`
	Url             string `json:"url" validate:"required"`
	Summary         string `json:"summary"`
	Icon            string `json:"icon"`
	IconUrl         string `json:"icon_url"`
	IconColor       string `json:"icon_color"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
}

type CreateFolderRequest struct {
	Name    string    `json:"name" validate:"required,min=1"`
	SpaceId uuid.UUID `json:"space_id" validate:"required"`
}

type UpdateFolderRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required,min=1"`
}

// CreateFolderFromItemsRequest merges two root items into a brand new folder.
type CreateFolderFromItemsRequest struct {
	Name         string    `json:"name" validate:"required,min=1"`
	SpaceId      uuid.UUID `json:"space_id" validate:"required"`
	FirstItemId  uuid.UUID `json:"first_item_id" validate:"required"`
	SecondItemId uuid.UUID `json:"second_item_id" validate:"required"`
}

type MoveItemRequest struct {
	Id       uuid.UUID
	SpaceId  uuid.UUID  `json:"space_id" validate:"required"`
	ParentId *uuid.UUID `json:"parent_id"`
}

// SpaceItemResponse is the polymorphic wire shape for bookmarks, folders and
// space links. Type discriminates which optional fields are populated.
type SpaceItemResponse struct {
	Id              uuid.UUID  `json:"id"`
	Type            string     `json:"type"`
	SpaceId         uuid.UUID  `json:"space_id"`
	ParentId        *uuid.UUID `json:"parent_id"`
	BackgroundColor string     `json:"background_color,omitempty"`
	TextColor       string     `json:"text_color,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`

	// Bookmark fields
	Title     string `json:"title,omitempty"`
	Url       string `json:"url,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Icon      string `json:"icon,omitempty"`
	IconUrl   string `json:"icon_url,omitempty"`
	IconColor string `json:"icon_color,omitempty"`

	// Folder fields
	Name  string              `json:"name,omitempty"`
	Items []SpaceItemResponse `json:"items,omitempty"`

	// SpaceLink fields
	LinkedSpaceId *uuid.UUID `json:"linked_space_id,omitempty"`
}
