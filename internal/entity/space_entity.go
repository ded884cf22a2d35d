package entity

import (
	"time"

	"github.com/google/uuid"
)

type Space struct {
	Id       uuid.UUID
	UserId   uuid.UUID
	Name     string
	Icon     string
	Category *string
	// IsLink marks a space that is hidden from the sidebar because a SpaceLink
	// elsewhere displays it as a pseudo-folder.
	IsLink    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
