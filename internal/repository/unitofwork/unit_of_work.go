package unitofwork

import (
	"context"

	"devzen-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SpaceRepository() contract.SpaceRepository
	SpaceItemRepository() contract.SpaceItemRepository
	AiToolRepository() contract.AiToolRepository
	AppInfoRepository() contract.AppInfoRepository
	BookmarkEmbeddingRepository() contract.BookmarkEmbeddingRepository
}
