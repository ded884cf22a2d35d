package contract

import (
	"context"

	"devzen-be/internal/entity"

	"github.com/google/uuid"
)

type AppInfoRepository interface {
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.AppInfo, error)
	Upsert(ctx context.Context, info *entity.AppInfo) error
}
