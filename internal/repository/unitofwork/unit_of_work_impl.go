package unitofwork

import (
	"context"
	"fmt"

	"devzen-be/internal/pkg/logger"
	"devzen-be/internal/repository/contract"
	"devzen-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db     *gorm.DB
	tx     *gorm.DB // active transaction, nil outside Begin/Commit
	logger logger.ILogger
}

func NewUnitOfWork(db *gorm.DB, log logger.ILogger) UnitOfWork {
	return &UnitOfWorkImpl{
		db:     db,
		logger: log,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SpaceRepository() contract.SpaceRepository {
	return implementation.NewSpaceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SpaceItemRepository() contract.SpaceItemRepository {
	return implementation.NewSpaceItemRepository(u.getDB(), u.logger)
}

func (u *UnitOfWorkImpl) AiToolRepository() contract.AiToolRepository {
	return implementation.NewAiToolRepository(u.getDB(), u.logger)
}

func (u *UnitOfWorkImpl) AppInfoRepository() contract.AppInfoRepository {
	return implementation.NewAppInfoRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BookmarkEmbeddingRepository() contract.BookmarkEmbeddingRepository {
	return implementation.NewBookmarkEmbeddingRepository(u.getDB())
}
