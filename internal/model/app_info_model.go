package model

import (
	"time"

	"github.com/google/uuid"
)

// AppInfo is the per-user display configuration singleton.
type AppInfo struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Title     string    `gorm:"type:varchar(255)"`
	Logo      string    `gorm:"type:varchar(1024)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (AppInfo) TableName() string {
	return "app_infos"
}
