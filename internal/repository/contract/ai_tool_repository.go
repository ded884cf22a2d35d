package contract

import (
	"context"

	"devzen-be/internal/entity"
	"devzen-be/internal/repository/specification"
)

type AiToolRepository interface {
	Create(ctx context.Context, tool *entity.AiTool) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiTool, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiTool, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
