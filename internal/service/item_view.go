package service

import (
	"devzen-be/internal/dto"
	"devzen-be/internal/entity"
)

// toSpaceItemResponse maps a domain item to its polymorphic wire shape.
func toSpaceItemResponse(item entity.SpaceItem) dto.SpaceItemResponse {
	switch it := item.(type) {
	case *entity.Bookmark:
		return dto.SpaceItemResponse{
			Id:              it.Id,
			Type:            string(entity.ItemTypeBookmark),
			SpaceId:         it.SpaceId,
			ParentId:        it.ParentId,
			BackgroundColor: it.BackgroundColor,
			TextColor:       it.TextColor,
			CreatedAt:       it.CreatedAt,
			UpdatedAt:       it.UpdatedAt,
			Title:           it.Title,
			Url:             it.URL,
			Summary:         it.Summary,
			Icon:            it.Icon,
			IconUrl:         it.IconURL,
			IconColor:       it.IconColor,
		}
	case *entity.Folder:
		children := make([]dto.SpaceItemResponse, 0, len(it.Items))
		for _, child := range it.Items {
			children = append(children, toSpaceItemResponse(child))
		}
		return dto.SpaceItemResponse{
			Id:              it.Id,
			Type:            string(entity.ItemTypeFolder),
			SpaceId:         it.SpaceId,
			ParentId:        it.ParentId,
			BackgroundColor: it.BackgroundColor,
			TextColor:       it.TextColor,
			CreatedAt:       it.CreatedAt,
			UpdatedAt:       it.UpdatedAt,
			Name:            it.Name,
			Items:           children,
		}
	case *entity.SpaceLink:
		linked := it.LinkedSpaceId
		return dto.SpaceItemResponse{
			Id:              it.Id,
			Type:            string(entity.ItemTypeSpaceLink),
			SpaceId:         it.SpaceId,
			ParentId:        it.ParentId,
			BackgroundColor: it.BackgroundColor,
			TextColor:       it.TextColor,
			CreatedAt:       it.CreatedAt,
			UpdatedAt:       it.UpdatedAt,
			Name:            it.Name,
			LinkedSpaceId:   &linked,
		}
	default:
		return dto.SpaceItemResponse{}
	}
}

// groupFolderChildren attaches each bookmark to its containing folder and
// returns the root-level items. The child relation is computed from ParentId,
// never stored.
func groupFolderChildren(items []entity.SpaceItem) []entity.SpaceItem {
	folders := make(map[string]*entity.Folder)
	for _, item := range items {
		if f, ok := item.(*entity.Folder); ok {
			f.Items = nil
			folders[f.Id.String()] = f
		}
	}

	roots := make([]entity.SpaceItem, 0, len(items))
	for _, item := range items {
		b, isBookmark := item.(*entity.Bookmark)
		if isBookmark && b.ParentId != nil {
			if parent, ok := folders[b.ParentId.String()]; ok {
				parent.Items = append(parent.Items, b)
				continue
			}
		}
		roots = append(roots, item)
	}

	return roots
}
