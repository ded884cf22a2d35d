package contract

import (
	"context"

	"devzen-be/internal/entity"
	"devzen-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredBookmarkEmbedding pairs an embedding row with its cosine similarity.
type ScoredBookmarkEmbedding struct {
	Embedding *entity.BookmarkEmbedding
	Score     float64
}

type BookmarkEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.BookmarkEmbedding) error
	DeleteByItemId(ctx context.Context, itemId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BookmarkEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SearchSimilar(ctx context.Context, embedding []float32, limit int, userId uuid.UUID) ([]*ScoredBookmarkEmbedding, error)
}
