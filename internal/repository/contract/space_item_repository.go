package contract

import (
	"context"

	"devzen-be/internal/entity"
	"devzen-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SpaceItemRepository interface {
	Create(ctx context.Context, item entity.SpaceItem) (entity.SpaceItem, error)
	Update(ctx context.Context, item entity.SpaceItem) (entity.SpaceItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySpaceId(ctx context.Context, spaceId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (entity.SpaceItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.SpaceItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
