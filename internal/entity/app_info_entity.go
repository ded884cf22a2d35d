package entity

import "github.com/google/uuid"

type AppInfo struct {
	Id     uuid.UUID
	UserId uuid.UUID
	Title  string
	Logo   string
}
