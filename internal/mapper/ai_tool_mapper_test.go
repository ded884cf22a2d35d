package mapper

import (
	"testing"

	"devzen-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func toolRow(name, summary string) *model.AiTool {
	return &model.AiTool{
		Id:       uuid.New(),
		Name:     name,
		Link:     "https://example.com",
		Category: "devtools",
		Summary:  datatypes.JSON([]byte(summary)),
	}
}

func TestAiToolMapperToEntity(t *testing.T) {
	m := NewAiToolMapper(nil)

	e := m.ToEntity(toolRow("Postman", `{"summary": "Client API.", "tags": ["api", "testing"]}`))
	require.NotNil(t, e)
	assert.Equal(t, "Postman", e.Name)
	assert.Equal(t, "Client API.", e.Summary.Summary)
	assert.Equal(t, []string{"api", "testing"}, e.Summary.Tags)
}

func TestAiToolMapperRejectsMalformedRows(t *testing.T) {
	m := NewAiToolMapper(nil)

	tests := []struct {
		name string
		tool *model.AiTool
	}{
		{"missing name", toolRow("", `{"summary": "x", "tags": []}`)},
		{"empty summary", toolRow("Postman", ``)},
		{"summary not an object", toolRow("Postman", `"just text"`)},
		{"summary text not a string", toolRow("Postman", `{"summary": 1, "tags": []}`)},
		{"tags missing", toolRow("Postman", `{"summary": "x"}`)},
		{"tags not a list", toolRow("Postman", `{"summary": "x", "tags": "api"}`)},
		{"tags with non-string", toolRow("Postman", `{"summary": "x", "tags": ["api", 3]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, m.ToEntity(tt.tool))
		})
	}
}

func TestAiToolMapperToEntitiesDropsRejected(t *testing.T) {
	m := NewAiToolMapper(nil)

	entities := m.ToEntities([]*model.AiTool{
		toolRow("Postman", `{"summary": "Client API.", "tags": []}`),
		toolRow("", `{"summary": "x", "tags": []}`),
		toolRow("Figma", `{"summary": "Design collaborativo.", "tags": ["design"]}`),
	})

	require.Len(t, entities, 2)
	assert.Equal(t, "Postman", entities[0].Name)
	assert.Equal(t, "Figma", entities[1].Name)
}
