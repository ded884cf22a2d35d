package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"devzen-be/internal/entity"
	"devzen-be/internal/mapper"
	"devzen-be/internal/model"
	"devzen-be/internal/pkg/logger"
	"devzen-be/internal/repository/contract"
	"devzen-be/internal/repository/specification"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AiToolRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AiToolMapper
}

func NewAiToolRepository(db *gorm.DB, log logger.ILogger) contract.AiToolRepository {
	return &AiToolRepositoryImpl{
		db:     db,
		mapper: mapper.NewAiToolMapper(log),
	}
}

func (r *AiToolRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AiToolRepositoryImpl) Create(ctx context.Context, tool *entity.AiTool) error {
	raw, err := json.Marshal(tool.Summary)
	if err != nil {
		return err
	}
	m := &model.AiTool{
		Id:        tool.Id,
		Name:      tool.Name,
		Link:      tool.Link,
		Category:  tool.Category,
		Brand:     tool.Brand,
		Summary:   datatypes.JSON(raw),
		Deleted:   tool.Deleted,
		CreatedAt: tool.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *AiToolRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiTool, error) {
	var m model.AiTool
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AiToolRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiTool, error) {
	var models []*model.AiTool
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AiToolRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AiTool{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
