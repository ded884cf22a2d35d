package entity

import (
	"time"

	"github.com/google/uuid"
)

// AiToolSummary is the parsed shape of the catalog "summary" JSON column.
type AiToolSummary struct {
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
}

type AiTool struct {
	Id        uuid.UUID
	Name      string
	Link      string
	Category  string
	Brand     string
	Summary   AiToolSummary
	Deleted   bool
	CreatedAt time.Time
}
