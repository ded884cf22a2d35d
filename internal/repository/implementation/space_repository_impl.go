package implementation

import (
	"context"
	"errors"

	"devzen-be/internal/entity"
	"devzen-be/internal/mapper"
	"devzen-be/internal/model"
	"devzen-be/internal/repository/contract"
	"devzen-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpaceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SpaceMapper
}

func NewSpaceRepository(db *gorm.DB) contract.SpaceRepository {
	return &SpaceRepositoryImpl{
		db:     db,
		mapper: mapper.NewSpaceMapper(),
	}
}

func (r *SpaceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SpaceRepositoryImpl) Create(ctx context.Context, space *entity.Space) error {
	m := r.mapper.ToModel(space)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*space = *r.mapper.ToEntity(m)
	return nil
}

func (r *SpaceRepositoryImpl) Update(ctx context.Context, space *entity.Space) error {
	m := r.mapper.ToModel(space)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*space = *r.mapper.ToEntity(m)
	return nil
}

func (r *SpaceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Space{}, id).Error
}

func (r *SpaceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Space, error) {
	var m model.Space
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SpaceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Space, error) {
	var models []*model.Space
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SpaceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Space{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
