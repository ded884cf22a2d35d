package mapper

import (
	"encoding/json"
	"time"

	"devzen-be/internal/entity"
	"devzen-be/internal/model"
	"devzen-be/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SpaceItemMapper translates space_items rows into the SpaceItem sum type.
//
// The model side is schema-less: everything variant-specific lives in the Tool
// JSON column. Malformed rows (hand-edited or partially migrated data) are
// rejected with a warning instead of failing the whole listing: ToEntity returns
// nil and the caller drops the row.
type SpaceItemMapper struct {
	logger logger.ILogger
}

func NewSpaceItemMapper(log logger.ILogger) *SpaceItemMapper {
	return &SpaceItemMapper{logger: log}
}

func (m *SpaceItemMapper) reject(id uuid.UUID, reason string) entity.SpaceItem {
	if m.logger != nil {
		m.logger.Warn("SpaceItemMapper", "Rejected malformed space item", map[string]interface{}{
			"item_id": id.String(),
			"reason":  reason,
		})
	}
	return nil
}

func (m *SpaceItemMapper) ToEntity(item *model.SpaceItem) entity.SpaceItem {
	if item == nil {
		return nil
	}

	var tool map[string]interface{}
	if len(item.Tool) == 0 {
		return m.reject(item.Id, "missing tool object")
	}
	if err := json.Unmarshal(item.Tool, &tool); err != nil || tool == nil {
		return m.reject(item.Id, "tool is not an object")
	}

	itemType, ok := stringField(tool, "type")
	if !ok {
		return m.reject(item.Id, "missing type discriminator")
	}

	spaceIdStr, ok := stringField(tool, "spaceId")
	if !ok {
		return m.reject(item.Id, "missing spaceId")
	}
	spaceId, err := uuid.Parse(spaceIdStr)
	if err != nil {
		return m.reject(item.Id, "spaceId is not a valid id")
	}

	base := entity.ItemBase{
		Id:              item.Id,
		UserId:          item.UserId,
		SpaceId:         spaceId,
		ParentId:        uuidPtrField(tool, "parentId"),
		BackgroundColor: optionalString(tool, "backgroundColor"),
		TextColor:       optionalString(tool, "textColor"),
		CreatedAt:       item.CreatedAt,
	}
	if !item.UpdatedAt.IsZero() {
		t := item.UpdatedAt
		base.UpdatedAt = &t
	}

	switch entity.ItemType(itemType) {
	case entity.ItemTypeBookmark:
		title, okTitle := stringField(tool, "title")
		url, okURL := stringField(tool, "url")
		if !okTitle || !okURL {
			return m.reject(item.Id, "bookmark missing title or url")
		}
		return &entity.Bookmark{
			ItemBase:  base,
			Title:     title,
			URL:       url,
			Summary:   optionalString(tool, "summary"),
			Icon:      optionalString(tool, "icon"),
			IconURL:   optionalString(tool, "iconUrl"),
			IconColor: optionalString(tool, "iconColor"),
		}

	case entity.ItemTypeFolder:
		name, okName := stringField(tool, "name")
		if !okName {
			return m.reject(item.Id, "folder missing name")
		}
		return &entity.Folder{
			ItemBase: base,
			Name:     name,
		}

	case entity.ItemTypeSpaceLink:
		linkedStr, okLinked := stringField(tool, "linkedSpaceId")
		if !okLinked {
			return m.reject(item.Id, "space link missing linkedSpaceId")
		}
		linkedSpaceId, err := uuid.Parse(linkedStr)
		if err != nil {
			return m.reject(item.Id, "linkedSpaceId is not a valid id")
		}
		return &entity.SpaceLink{
			ItemBase:      base,
			Name:          optionalString(tool, "name"),
			LinkedSpaceId: linkedSpaceId,
		}

	default:
		return m.reject(item.Id, "unrecognized type "+itemType)
	}
}

// ToEntities maps a slice, silently dropping rejected rows.
func (m *SpaceItemMapper) ToEntities(items []*model.SpaceItem) []entity.SpaceItem {
	entities := make([]entity.SpaceItem, 0, len(items))
	for _, item := range items {
		if e := m.ToEntity(item); e != nil {
			entities = append(entities, e)
		}
	}
	return entities
}

func (m *SpaceItemMapper) ToModel(e entity.SpaceItem) *model.SpaceItem {
	if e == nil {
		return nil
	}

	tool := map[string]interface{}{
		"type":    string(e.ItemType()),
		"spaceId": e.ItemSpaceId().String(),
	}
	if pid := e.ItemParentId(); pid != nil {
		tool["parentId"] = pid.String()
	}

	var (
		id        uuid.UUID
		userId    uuid.UUID
		createdAt time.Time
		updatedAt *time.Time
	)

	switch v := e.(type) {
	case *entity.Bookmark:
		id, userId, createdAt, updatedAt = v.Id, v.UserId, v.CreatedAt, v.UpdatedAt
		setDecorations(tool, v.ItemBase)
		tool["title"] = v.Title
		tool["url"] = v.URL
		if v.Summary != "" {
			tool["summary"] = v.Summary
		}
		if v.Icon != "" {
			tool["icon"] = v.Icon
		}
		if v.IconURL != "" {
			tool["iconUrl"] = v.IconURL
		}
		if v.IconColor != "" {
			tool["iconColor"] = v.IconColor
		}

	case *entity.Folder:
		id, userId, createdAt, updatedAt = v.Id, v.UserId, v.CreatedAt, v.UpdatedAt
		setDecorations(tool, v.ItemBase)
		tool["name"] = v.Name

	case *entity.SpaceLink:
		id, userId, createdAt, updatedAt = v.Id, v.UserId, v.CreatedAt, v.UpdatedAt
		setDecorations(tool, v.ItemBase)
		if v.Name != "" {
			tool["name"] = v.Name
		}
		tool["linkedSpaceId"] = v.LinkedSpaceId.String()

	default:
		return nil
	}

	raw, err := json.Marshal(tool)
	if err != nil {
		return nil
	}

	var updated time.Time
	if updatedAt != nil {
		updated = *updatedAt
	}

	return &model.SpaceItem{
		Id:        id,
		UserId:    userId,
		SpaceId:   e.ItemSpaceId(),
		Tool:      datatypes.JSON(raw),
		CreatedAt: createdAt,
		UpdatedAt: updated,
	}
}

func setDecorations(tool map[string]interface{}, base entity.ItemBase) {
	if base.BackgroundColor != "" {
		tool["backgroundColor"] = base.BackgroundColor
	}
	if base.TextColor != "" {
		tool["textColor"] = base.TextColor
	}
}

func stringField(obj map[string]interface{}, key string) (string, bool) {
	v, ok := obj[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func optionalString(obj map[string]interface{}, key string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return ""
}

func uuidPtrField(obj map[string]interface{}, key string) *uuid.UUID {
	s, ok := obj[key].(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
