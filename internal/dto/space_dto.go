package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSpaceRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

type UpdateSpaceRequest struct {
	Id       uuid.UUID
	Name     string `json:"name" validate:"required,min=1"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

type SpaceResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Icon      string     `json:"icon"`
	Category  string     `json:"category,omitempty"`
	IsLink    bool       `json:"is_link"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// CreateSpaceLinkRequest creates a link item inside SpaceId pointing at LinkedSpaceId.
type CreateSpaceLinkRequest struct {
	SpaceId       uuid.UUID `json:"space_id" validate:"required"`
	LinkedSpaceId uuid.UUID `json:"linked_space_id" validate:"required"`
	Name          string    `json:"name"`
}

// --- Workspace export format ---
// The same document is accepted back as literal JSON by the workspace generator.

type WorkspaceExport struct {
	ExportedAt time.Time     `json:"exported_at"`
	Spaces     []ExportSpace `json:"spaces"`
}

type ExportSpace struct {
	Name      string           `json:"name"`
	Icon      string           `json:"icon,omitempty"`
	Category  string           `json:"category,omitempty"`
	Folders   []ExportFolder   `json:"folders,omitempty"`
	Bookmarks []ExportBookmark `json:"bookmarks,omitempty"`
}

type ExportFolder struct {
	Name      string           `json:"name"`
	Bookmarks []ExportBookmark `json:"bookmarks,omitempty"`
}

type ExportBookmark struct {
	Title   string `json:"title"`
	Url     string `json:"url"`
	Summary string `json:"summary,omitempty"`
}
