package mapper

import (
	"time"

	"devzen-be/internal/entity"
	"devzen-be/internal/model"
)

type SpaceMapper struct{}

func NewSpaceMapper() *SpaceMapper {
	return &SpaceMapper{}
}

func (m *SpaceMapper) ToEntity(s *model.Space) *entity.Space {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Space{
		Id:        s.Id,
		UserId:    s.UserId,
		Name:      s.Name,
		Icon:      s.Icon,
		Category:  s.Category,
		IsLink:    s.IsLink,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SpaceMapper) ToModel(s *entity.Space) *model.Space {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Space{
		Id:        s.Id,
		UserId:    s.UserId,
		Name:      s.Name,
		Icon:      s.Icon,
		Category:  s.Category,
		IsLink:    s.IsLink,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SpaceMapper) ToEntities(spaces []*model.Space) []*entity.Space {
	entities := make([]*entity.Space, len(spaces))
	for i, s := range spaces {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
