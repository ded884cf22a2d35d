package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type BookmarkEmbedding struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue pgvector.Vector
	ItemId         uuid.UUID
	ChunkIndex     int
	CreatedAt      time.Time
}
