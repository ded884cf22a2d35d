package implementation

import (
	"context"
	"errors"
	"fmt"

	"devzen-be/internal/entity"
	"devzen-be/internal/mapper"
	"devzen-be/internal/model"
	"devzen-be/internal/pkg/logger"
	"devzen-be/internal/repository/contract"
	"devzen-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpaceItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SpaceItemMapper
}

func NewSpaceItemRepository(db *gorm.DB, log logger.ILogger) contract.SpaceItemRepository {
	return &SpaceItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewSpaceItemMapper(log),
	}
}

func (r *SpaceItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SpaceItemRepositoryImpl) Create(ctx context.Context, item entity.SpaceItem) (entity.SpaceItem, error) {
	m := r.mapper.ToModel(item)
	if m == nil {
		return nil, fmt.Errorf("cannot serialize space item")
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *SpaceItemRepositoryImpl) Update(ctx context.Context, item entity.SpaceItem) (entity.SpaceItem, error) {
	m := r.mapper.ToModel(item)
	if m == nil {
		return nil, fmt.Errorf("cannot serialize space item")
	}
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *SpaceItemRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SpaceItem{}, id).Error
}

func (r *SpaceItemRepositoryImpl) DeleteBySpaceId(ctx context.Context, spaceId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("space_id = ?", spaceId).Delete(&model.SpaceItem{}).Error
}

func (r *SpaceItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (entity.SpaceItem, error) {
	var m model.SpaceItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	// A malformed row maps to nil, same as not-found.
	return r.mapper.ToEntity(&m), nil
}

func (r *SpaceItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.SpaceItem, error) {
	var models []*model.SpaceItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SpaceItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SpaceItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
