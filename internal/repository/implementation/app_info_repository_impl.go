package implementation

import (
	"context"
	"errors"

	"devzen-be/internal/entity"
	"devzen-be/internal/mapper"
	"devzen-be/internal/model"
	"devzen-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppInfoRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AppInfoMapper
}

func NewAppInfoRepository(db *gorm.DB) contract.AppInfoRepository {
	return &AppInfoRepositoryImpl{
		db:     db,
		mapper: mapper.NewAppInfoMapper(),
	}
}

func (r *AppInfoRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.AppInfo, error) {
	var m model.AppInfo
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AppInfoRepositoryImpl) Upsert(ctx context.Context, info *entity.AppInfo) error {
	m := r.mapper.ToModel(info)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "logo"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*info = *r.mapper.ToEntity(m)
	return nil
}
