package service

import (
	"context"

	"devzen-be/internal/dto"
	"devzen-be/internal/entity"
	"devzen-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAppInfoService interface {
	Get(ctx context.Context, userId uuid.UUID) (*dto.AppInfoResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateAppInfoRequest) (*dto.AppInfoResponse, error)
}

type appInfoService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAppInfoService(uowFactory unitofwork.RepositoryFactory) IAppInfoService {
	return &appInfoService{uowFactory: uowFactory}
}

func (s *appInfoService) Get(ctx context.Context, userId uuid.UUID) (*dto.AppInfoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	info, err := uow.AppInfoRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if info == nil {
		// Per-user singleton with a sensible default before first save.
		return &dto.AppInfoResponse{Title: "DevZen"}, nil
	}

	return &dto.AppInfoResponse{Title: info.Title, Logo: info.Logo}, nil
}

func (s *appInfoService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateAppInfoRequest) (*dto.AppInfoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	info := &entity.AppInfo{
		Id:     uuid.New(),
		UserId: userId,
		Title:  req.Title,
		Logo:   req.Logo,
	}
	if err := uow.AppInfoRepository().Upsert(ctx, info); err != nil {
		return nil, err
	}

	return &dto.AppInfoResponse{Title: info.Title, Logo: info.Logo}, nil
}
