package unitofwork

import (
	"context"

	"devzen-be/internal/pkg/logger"

	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db     *gorm.DB
	logger logger.ILogger
}

func NewRepositoryFactory(db *gorm.DB, log logger.ILogger) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db:     db,
		logger: log,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	// UoW is short lived per request; the context is used on Begin or passed
	// explicitly to repository calls.
	return NewUnitOfWork(f.db, f.logger)
}
