package mapper

import (
	"testing"
	"time"

	"devzen-be/internal/entity"
	"devzen-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func row(id uuid.UUID, tool string) *model.SpaceItem {
	return &model.SpaceItem{
		Id:        id,
		UserId:    uuid.New(),
		SpaceId:   uuid.New(),
		Tool:      datatypes.JSON([]byte(tool)),
		CreatedAt: time.Now(),
	}
}

func TestSpaceItemMapperToEntityBookmark(t *testing.T) {
	m := NewSpaceItemMapper(nil)
	id := uuid.New()
	spaceId := uuid.New()

	e := m.ToEntity(row(id, `{
		"type": "bookmark",
		"spaceId": "`+spaceId.String()+`",
		"title": "Go",
		"url": "https://go.dev",
		"summary": "Il sito del linguaggio Go.",
		"backgroundColor": "#fff"
	}`))
	require.NotNil(t, e)

	b, ok := e.(*entity.Bookmark)
	require.True(t, ok)
	assert.Equal(t, id, b.Id)
	assert.Equal(t, spaceId, b.SpaceId)
	assert.Equal(t, "Go", b.Title)
	assert.Equal(t, "https://go.dev", b.URL)
	assert.Equal(t, "Il sito del linguaggio Go.", b.Summary)
	assert.Equal(t, "#fff", b.BackgroundColor)
	assert.Nil(t, b.ParentId)
}

func TestSpaceItemMapperRejectsMalformedRows(t *testing.T) {
	m := NewSpaceItemMapper(nil)
	spaceId := uuid.New().String()

	tests := []struct {
		name string
		tool string
	}{
		{"empty tool", ``},
		{"tool not an object", `[1, 2]`},
		{"missing type", `{"spaceId": "` + spaceId + `"}`},
		{"unknown type", `{"type": "widget", "spaceId": "` + spaceId + `"}`},
		{"missing spaceId", `{"type": "folder", "name": "Docs"}`},
		{"bad spaceId", `{"type": "folder", "name": "Docs", "spaceId": "nope"}`},
		{"bookmark without url", `{"type": "bookmark", "spaceId": "` + spaceId + `", "title": "Go"}`},
		{"bookmark without title", `{"type": "bookmark", "spaceId": "` + spaceId + `", "url": "https://go.dev"}`},
		{"bookmark with non-string title", `{"type": "bookmark", "spaceId": "` + spaceId + `", "title": 7, "url": "https://go.dev"}`},
		{"folder without name", `{"type": "folder", "spaceId": "` + spaceId + `"}`},
		{"link without target", `{"type": "space-link", "spaceId": "` + spaceId + `", "name": "Altro"}`},
		{"link with bad target", `{"type": "space-link", "spaceId": "` + spaceId + `", "linkedSpaceId": "nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, m.ToEntity(row(uuid.New(), tt.tool)))
		})
	}
}

func TestSpaceItemMapperToEntitiesDropsRejected(t *testing.T) {
	m := NewSpaceItemMapper(nil)
	spaceId := uuid.New().String()

	rows := []*model.SpaceItem{
		row(uuid.New(), `{"type": "folder", "spaceId": "`+spaceId+`", "name": "Docs"}`),
		row(uuid.New(), `{"type": "widget", "spaceId": "`+spaceId+`"}`),
		row(uuid.New(), `{"type": "bookmark", "spaceId": "`+spaceId+`", "title": "Go", "url": "https://go.dev"}`),
	}

	entities := m.ToEntities(rows)
	require.Len(t, entities, 2)
	assert.Equal(t, entity.ItemTypeFolder, entities[0].ItemType())
	assert.Equal(t, entity.ItemTypeBookmark, entities[1].ItemType())
}

func TestSpaceItemMapperRoundTrip(t *testing.T) {
	m := NewSpaceItemMapper(nil)
	parentId := uuid.New()

	original := &entity.Bookmark{
		ItemBase: entity.ItemBase{
			Id:              uuid.New(),
			UserId:          uuid.New(),
			SpaceId:         uuid.New(),
			ParentId:        &parentId,
			BackgroundColor: "#112233",
			CreatedAt:       time.Now(),
		},
		Title:   "Fiber",
		URL:     "https://gofiber.io",
		Summary: "Framework web per Go.",
	}

	mdl := m.ToModel(original)
	require.NotNil(t, mdl)
	assert.Equal(t, original.SpaceId, mdl.SpaceId)

	back := m.ToEntity(mdl)
	require.NotNil(t, back)
	b, ok := back.(*entity.Bookmark)
	require.True(t, ok)
	assert.Equal(t, original.Title, b.Title)
	assert.Equal(t, original.URL, b.URL)
	assert.Equal(t, original.Summary, b.Summary)
	require.NotNil(t, b.ParentId)
	assert.Equal(t, parentId, *b.ParentId)
	assert.Equal(t, "#112233", b.BackgroundColor)
}

func TestSpaceItemMapperToModelSpaceLink(t *testing.T) {
	m := NewSpaceItemMapper(nil)
	linked := uuid.New()

	link := &entity.SpaceLink{
		ItemBase: entity.ItemBase{
			Id:      uuid.New(),
			UserId:  uuid.New(),
			SpaceId: uuid.New(),
		},
		Name:          "Progetti",
		LinkedSpaceId: linked,
	}

	mdl := m.ToModel(link)
	require.NotNil(t, mdl)

	back := m.ToEntity(mdl)
	require.NotNil(t, back)
	l, ok := back.(*entity.SpaceLink)
	require.True(t, ok)
	assert.Equal(t, "Progetti", l.Name)
	assert.Equal(t, linked, l.LinkedSpaceId)
}
