package service

import (
	"context"
	"testing"

	"devzen-be/internal/dto"
	"devzen-be/internal/entity"
	"devzen-be/internal/pkg/serverutils"
	"devzen-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spaceFixture struct {
	svc    ISpaceService
	uow    *fakeUnitOfWork
	cache  *memory.SpaceCache
	userId uuid.UUID
}

func newSpaceFixture(t *testing.T) *spaceFixture {
	t.Helper()
	uow := newFakeUnitOfWork()
	cache := memory.NewSpaceCache()
	return &spaceFixture{
		svc:    NewSpaceService(&fakeUowFactory{uow: uow}, cache, nil),
		uow:    uow,
		cache:  cache,
		userId: uuid.New(),
	}
}

func (f *spaceFixture) addSpace(t *testing.T, name string) *entity.Space {
	t.Helper()
	space := &entity.Space{Id: uuid.New(), UserId: f.userId, Name: name}
	require.NoError(t, f.uow.spaces.Create(context.Background(), space))
	return space
}

func TestSpaceServiceCreateAndList(t *testing.T) {
	f := newSpaceFixture(t)

	created, err := f.svc.Create(context.Background(), f.userId, &dto.CreateSpaceRequest{
		Name:     "Dev",
		Icon:     "code",
		Category: "Sviluppo",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dev", created.Name)
	assert.Equal(t, "Sviluppo", created.Category)

	res, err := f.svc.List(context.Background(), f.userId)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, created.Id, res[0].Id)
}

func TestSpaceServiceListServesFromCache(t *testing.T) {
	f := newSpaceFixture(t)
	f.addSpace(t, "Dev")

	// First call populates the cache.
	res, err := f.svc.List(context.Background(), f.userId)
	require.NoError(t, err)
	require.Len(t, res, 1)

	// A write that bypasses the service is invisible until invalidation.
	require.NoError(t, f.uow.spaces.Create(context.Background(), &entity.Space{
		Id: uuid.New(), UserId: f.userId, Name: "Hidden",
	}))
	res, err = f.svc.List(context.Background(), f.userId)
	require.NoError(t, err)
	assert.Len(t, res, 1)

	f.cache.Invalidate(f.userId)
	res, err = f.svc.List(context.Background(), f.userId)
	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestSpaceServiceUpdateClearsCategory(t *testing.T) {
	f := newSpaceFixture(t)
	category := "Sviluppo"
	space := f.addSpace(t, "Dev")
	space.Category = &category
	require.NoError(t, f.uow.spaces.Update(context.Background(), space))

	res, err := f.svc.Update(context.Background(), f.userId, &dto.UpdateSpaceRequest{
		Id:   space.Id,
		Name: "Renamed",
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", res.Name)
	assert.Empty(t, res.Category)
	assert.Nil(t, f.uow.spaces.spaces[space.Id].Category)
}

func TestSpaceServiceUpdateOtherUsersSpace(t *testing.T) {
	f := newSpaceFixture(t)
	space := f.addSpace(t, "Dev")

	_, err := f.svc.Update(context.Background(), uuid.New(), &dto.UpdateSpaceRequest{
		Id:   space.Id,
		Name: "Hijacked",
	})
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestSpaceServiceCreateLink(t *testing.T) {
	f := newSpaceFixture(t)
	host := f.addSpace(t, "Host")
	target := f.addSpace(t, "Target")

	res, err := f.svc.CreateLink(context.Background(), f.userId, &dto.CreateSpaceLinkRequest{
		SpaceId:       host.Id,
		LinkedSpaceId: target.Id,
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.ItemTypeSpaceLink), res.Type)
	// Name defaults to the target space's name.
	assert.Equal(t, "Target", res.Name)
	require.NotNil(t, res.LinkedSpaceId)
	assert.Equal(t, target.Id, *res.LinkedSpaceId)
	assert.True(t, f.uow.spaces.spaces[target.Id].IsLink)
}

func TestSpaceServiceCreateLinkToSelf(t *testing.T) {
	f := newSpaceFixture(t)
	space := f.addSpace(t, "Dev")

	_, err := f.svc.CreateLink(context.Background(), f.userId, &dto.CreateSpaceLinkRequest{
		SpaceId:       space.Id,
		LinkedSpaceId: space.Id,
	})
	assert.ErrorIs(t, err, serverutils.ErrForbidden)
}

func TestSpaceServiceCreateLinkUnknownTarget(t *testing.T) {
	f := newSpaceFixture(t)
	host := f.addSpace(t, "Host")

	_, err := f.svc.CreateLink(context.Background(), f.userId, &dto.CreateSpaceLinkRequest{
		SpaceId:       host.Id,
		LinkedSpaceId: uuid.New(),
	})
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestSpaceServiceDeleteCleansUpReferences(t *testing.T) {
	f := newSpaceFixture(t)
	ctx := context.Background()
	doomed := f.addSpace(t, "Doomed")
	other := f.addSpace(t, "Other")
	hidden := f.addSpace(t, "Hidden")
	hidden.IsLink = true
	require.NoError(t, f.uow.spaces.Update(ctx, hidden))

	// A link in another space pointing at the doomed one.
	incoming := &entity.SpaceLink{
		ItemBase:      entity.ItemBase{Id: uuid.New(), UserId: f.userId, SpaceId: other.Id},
		Name:          "Doomed",
		LinkedSpaceId: doomed.Id,
	}
	_, err := f.uow.items.Create(ctx, incoming)
	require.NoError(t, err)

	// A link inside the doomed space pointing at the hidden one.
	outgoing := &entity.SpaceLink{
		ItemBase:      entity.ItemBase{Id: uuid.New(), UserId: f.userId, SpaceId: doomed.Id},
		Name:          "Hidden",
		LinkedSpaceId: hidden.Id,
	}
	_, err = f.uow.items.Create(ctx, outgoing)
	require.NoError(t, err)

	// A bookmark with embeddings inside the doomed space.
	b := &entity.Bookmark{
		ItemBase: entity.ItemBase{Id: uuid.New(), UserId: f.userId, SpaceId: doomed.Id},
		Title:    "article",
		URL:      "https://example.com",
	}
	_, err = f.uow.items.Create(ctx, b)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, f.userId, doomed.Id))

	assert.Nil(t, f.uow.spaces.spaces[doomed.Id])
	assert.Nil(t, f.uow.items.get(incoming.Id))
	assert.Nil(t, f.uow.items.get(outgoing.Id))
	assert.Nil(t, f.uow.items.get(b.Id))
	assert.False(t, f.uow.spaces.spaces[hidden.Id].IsLink)
	assert.Equal(t, []uuid.UUID{b.Id}, f.uow.embeds.deletedItemIds)
}

func TestSpaceServiceDeleteUnknownSpace(t *testing.T) {
	f := newSpaceFixture(t)
	err := f.svc.Delete(context.Background(), f.userId, uuid.New())
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestSpaceServiceExportSkipsLinksAndNestsFolders(t *testing.T) {
	f := newSpaceFixture(t)
	ctx := context.Background()
	space := f.addSpace(t, "Dev")
	target := f.addSpace(t, "Target")

	folder := &entity.Folder{
		ItemBase: entity.ItemBase{Id: uuid.New(), UserId: f.userId, SpaceId: space.Id},
		Name:     "Reading",
	}
	_, err := f.uow.items.Create(ctx, folder)
	require.NoError(t, err)

	child := &entity.Bookmark{
		ItemBase: entity.ItemBase{Id: uuid.New(), UserId: f.userId, SpaceId: space.Id, ParentId: &folder.Id},
		Title:    "nested",
		URL:      "https://example.com/nested",
	}
	_, err = f.uow.items.Create(ctx, child)
	require.NoError(t, err)

	root := &entity.Bookmark{
		ItemBase: entity.ItemBase{Id: uuid.New(), UserId: f.userId, SpaceId: space.Id},
		Title:    "root",
		URL:      "https://example.com/root",
		Summary:  "a root bookmark",
	}
	_, err = f.uow.items.Create(ctx, root)
	require.NoError(t, err)

	link := &entity.SpaceLink{
		ItemBase:      entity.ItemBase{Id: uuid.New(), UserId: f.userId, SpaceId: space.Id},
		Name:          "Target",
		LinkedSpaceId: target.Id,
	}
	_, err = f.uow.items.Create(ctx, link)
	require.NoError(t, err)

	doc, err := f.svc.Export(ctx, f.userId)
	require.NoError(t, err)
	require.Len(t, doc.Spaces, 2)

	var dev dto.ExportSpace
	for _, s := range doc.Spaces {
		if s.Name == "Dev" {
			dev = s
		}
	}
	require.Len(t, dev.Folders, 1)
	assert.Equal(t, "Reading", dev.Folders[0].Name)
	require.Len(t, dev.Folders[0].Bookmarks, 1)
	assert.Equal(t, "nested", dev.Folders[0].Bookmarks[0].Title)
	require.Len(t, dev.Bookmarks, 1)
	assert.Equal(t, "root", dev.Bookmarks[0].Title)
	assert.Equal(t, "a root bookmark", dev.Bookmarks[0].Summary)
}
