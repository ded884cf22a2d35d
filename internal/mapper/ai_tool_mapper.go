package mapper

import (
	"encoding/json"

	"devzen-be/internal/entity"
	"devzen-be/internal/model"
	"devzen-be/internal/pkg/logger"
)

// AiToolMapper maps catalog rows. A row is only usable when its name is set and
// the summary JSON parses into {summary: string, tags: [string]}; anything else
// is rejected with a warning, mirroring the space-item mapper policy.
type AiToolMapper struct {
	logger logger.ILogger
}

func NewAiToolMapper(log logger.ILogger) *AiToolMapper {
	return &AiToolMapper{logger: log}
}

func (m *AiToolMapper) reject(name, reason string) *entity.AiTool {
	if m.logger != nil {
		m.logger.Warn("AiToolMapper", "Rejected malformed catalog entry", map[string]interface{}{
			"name":   name,
			"reason": reason,
		})
	}
	return nil
}

func (m *AiToolMapper) ToEntity(t *model.AiTool) *entity.AiTool {
	if t == nil {
		return nil
	}
	if t.Name == "" {
		return m.reject(t.Id.String(), "missing name")
	}

	var raw map[string]interface{}
	if len(t.Summary) == 0 {
		return m.reject(t.Name, "missing summary object")
	}
	if err := json.Unmarshal(t.Summary, &raw); err != nil || raw == nil {
		return m.reject(t.Name, "summary is not an object")
	}

	text, ok := raw["summary"].(string)
	if !ok {
		return m.reject(t.Name, "summary.summary is not a string")
	}

	rawTags, ok := raw["tags"].([]interface{})
	if !ok {
		return m.reject(t.Name, "summary.tags is not a list")
	}
	tags := make([]string, 0, len(rawTags))
	for _, rt := range rawTags {
		s, ok := rt.(string)
		if !ok {
			return m.reject(t.Name, "summary.tags contains a non-string")
		}
		tags = append(tags, s)
	}

	return &entity.AiTool{
		Id:       t.Id,
		Name:     t.Name,
		Link:     t.Link,
		Category: t.Category,
		Brand:    t.Brand,
		Summary: entity.AiToolSummary{
			Summary: text,
			Tags:    tags,
		},
		Deleted:   t.Deleted,
		CreatedAt: t.CreatedAt,
	}
}

func (m *AiToolMapper) ToEntities(tools []*model.AiTool) []*entity.AiTool {
	entities := make([]*entity.AiTool, 0, len(tools))
	for _, t := range tools {
		if e := m.ToEntity(t); e != nil {
			entities = append(entities, e)
		}
	}
	return entities
}
