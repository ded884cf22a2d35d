package implementation

import (
	"context"

	"devzen-be/internal/entity"
	"devzen-be/internal/mapper"
	"devzen-be/internal/model"
	"devzen-be/internal/repository/contract"
	"devzen-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type BookmarkEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookmarkEmbeddingMapper
}

func NewBookmarkEmbeddingRepository(db *gorm.DB) contract.BookmarkEmbeddingRepository {
	return &BookmarkEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookmarkEmbeddingMapper(),
	}
}

func (r *BookmarkEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BookmarkEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.BookmarkEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.BookmarkEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *BookmarkEmbeddingRepositoryImpl) DeleteByItemId(ctx context.Context, itemId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("item_id = ?", itemId).Delete(&model.BookmarkEmbedding{}).Error
}

func (r *BookmarkEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BookmarkEmbedding, error) {
	var models []*model.BookmarkEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BookmarkEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.BookmarkEmbedding{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookmarkEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, userId uuid.UUID) ([]*contract.ScoredBookmarkEmbedding, error) {
	if limit <= 0 {
		limit = 10
	}

	type scoredRow struct {
		model.BookmarkEmbedding
		Distance float64
	}
	var rows []scoredRow

	// Cosine distance over pgvector, joined against live items of the user.
	err := r.db.WithContext(ctx).
		Model(&model.BookmarkEmbedding{}).
		Select("bookmark_embeddings.*, (embedding_value <=> ?) AS distance", pgvector.NewVector(embedding)).
		Joins("JOIN space_items ON space_items.id = bookmark_embeddings.item_id").
		Where("space_items.user_id = ?", userId).
		Where("bookmark_embeddings.deleted_at IS NULL").
		Where("space_items.deleted_at IS NULL").
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(embedding))).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*contract.ScoredBookmarkEmbedding, len(rows))
	for i, row := range rows {
		emb := row.BookmarkEmbedding
		result[i] = &contract.ScoredBookmarkEmbedding{
			Embedding: r.mapper.ToEntity(&emb),
			Score:     1.0 - row.Distance,
		}
	}
	return result, nil
}
