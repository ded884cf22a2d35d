package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SpaceItem is the single collection holding bookmarks, folders and space links.
// The variant-specific fields live in the schema-less Tool JSON column; SpaceId is
// duplicated as a real column only for indexing.
type SpaceItem struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	SpaceId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Tool      datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (SpaceItem) TableName() string {
	return "space_items"
}
