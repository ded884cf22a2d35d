package mapper

import (
	"devzen-be/internal/entity"
	"devzen-be/internal/model"
)

type BookmarkEmbeddingMapper struct{}

func NewBookmarkEmbeddingMapper() *BookmarkEmbeddingMapper {
	return &BookmarkEmbeddingMapper{}
}

func (m *BookmarkEmbeddingMapper) ToEntity(e *model.BookmarkEmbedding) *entity.BookmarkEmbedding {
	if e == nil {
		return nil
	}
	return &entity.BookmarkEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue,
		ItemId:         e.ItemId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *BookmarkEmbeddingMapper) ToModel(e *entity.BookmarkEmbedding) *model.BookmarkEmbedding {
	if e == nil {
		return nil
	}
	return &model.BookmarkEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue,
		ItemId:         e.ItemId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *BookmarkEmbeddingMapper) ToEntities(models []*model.BookmarkEmbedding) []*entity.BookmarkEmbedding {
	entities := make([]*entity.BookmarkEmbedding, len(models))
	for i, e := range models {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
