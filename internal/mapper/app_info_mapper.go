package mapper

import (
	"devzen-be/internal/entity"
	"devzen-be/internal/model"
)

type AppInfoMapper struct{}

func NewAppInfoMapper() *AppInfoMapper {
	return &AppInfoMapper{}
}

func (m *AppInfoMapper) ToEntity(a *model.AppInfo) *entity.AppInfo {
	if a == nil {
		return nil
	}
	return &entity.AppInfo{
		Id:     a.Id,
		UserId: a.UserId,
		Title:  a.Title,
		Logo:   a.Logo,
	}
}

func (m *AppInfoMapper) ToModel(a *entity.AppInfo) *model.AppInfo {
	if a == nil {
		return nil
	}
	return &model.AppInfo{
		Id:     a.Id,
		UserId: a.UserId,
		Title:  a.Title,
		Logo:   a.Logo,
	}
}
