package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AiTool is a row of the globally shared tools catalog. It carries no owning-user
// column: every user sees the same entries and imports create independent copies.
type AiTool struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Link      string         `gorm:"type:varchar(1024);not null"`
	Category  string         `gorm:"type:varchar(128);index"`
	Brand     string         `gorm:"type:varchar(128)"`
	Summary   datatypes.JSON `gorm:"type:jsonb"` // {"summary": string, "tags": [string]}
	Deleted   bool           `gorm:"default:false;index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (AiTool) TableName() string {
	return "ai_tools"
}
