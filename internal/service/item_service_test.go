package service

import (
	"context"
	"encoding/json"
	"testing"

	"devzen-be/internal/dto"
	"devzen-be/internal/entity"
	"devzen-be/internal/pkg/serverutils"
	"devzen-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemFixture struct {
	svc       IItemService
	uow       *fakeUnitOfWork
	publisher *fakePublisher
	cache     *memory.SpaceCache
	userId    uuid.UUID
}

func newItemFixture(t *testing.T) *itemFixture {
	t.Helper()
	uow := newFakeUnitOfWork()
	publisher := &fakePublisher{}
	cache := memory.NewSpaceCache()
	return &itemFixture{
		svc:       NewItemService(&fakeUowFactory{uow: uow}, publisher, nil, cache),
		uow:       uow,
		publisher: publisher,
		cache:     cache,
		userId:    uuid.New(),
	}
}

func (f *itemFixture) addSpace(t *testing.T, name string) *entity.Space {
	t.Helper()
	space := &entity.Space{Id: uuid.New(), UserId: f.userId, Name: name}
	require.NoError(t, f.uow.spaces.Create(context.Background(), space))
	return space
}

func (f *itemFixture) addBookmark(t *testing.T, spaceId uuid.UUID, title string, parentId *uuid.UUID) *entity.Bookmark {
	t.Helper()
	b := &entity.Bookmark{
		ItemBase: entity.ItemBase{Id: uuid.New(), UserId: f.userId, SpaceId: spaceId, ParentId: parentId},
		Title:    title,
		URL:      "https://example.com/" + title,
	}
	_, err := f.uow.items.Create(context.Background(), b)
	require.NoError(t, err)
	return b
}

func (f *itemFixture) addFolder(t *testing.T, spaceId uuid.UUID, name string) *entity.Folder {
	t.Helper()
	folder := &entity.Folder{
		ItemBase: entity.ItemBase{Id: uuid.New(), UserId: f.userId, SpaceId: spaceId},
		Name:     name,
	}
	_, err := f.uow.items.Create(context.Background(), folder)
	require.NoError(t, err)
	return folder
}

func (f *itemFixture) addLink(t *testing.T, spaceId uuid.UUID, targetId uuid.UUID, name string) *entity.SpaceLink {
	t.Helper()
	link := &entity.SpaceLink{
		ItemBase:      entity.ItemBase{Id: uuid.New(), UserId: f.userId, SpaceId: spaceId},
		Name:          name,
		LinkedSpaceId: targetId,
	}
	_, err := f.uow.items.Create(context.Background(), link)
	require.NoError(t, err)
	return link
}

func embeddedItemIds(t *testing.T, p *fakePublisher) []uuid.UUID {
	t.Helper()
	ids := make([]uuid.UUID, 0, len(p.payloads))
	for _, payload := range p.payloads {
		var msg dto.PublishEmbedBookmarkMessage
		require.NoError(t, json.Unmarshal(payload, &msg))
		ids = append(ids, msg.ItemId)
	}
	return ids
}

func TestItemServiceListGroupsFolderChildren(t *testing.T) {
	f := newItemFixture(t)
	space := f.addSpace(t, "Dev")
	folder := f.addFolder(t, space.Id, "Reading")
	child := f.addBookmark(t, space.Id, "article", &folder.Id)
	root := f.addBookmark(t, space.Id, "root-note", nil)

	res, err := f.svc.List(context.Background(), f.userId, space.Id)
	require.NoError(t, err)

	require.Len(t, res, 2)
	byId := map[uuid.UUID]dto.SpaceItemResponse{}
	for _, item := range res {
		byId[item.Id] = item
	}
	folderRes, ok := byId[folder.Id]
	require.True(t, ok)
	require.Len(t, folderRes.Items, 1)
	assert.Equal(t, child.Id, folderRes.Items[0].Id)
	assert.Contains(t, byId, root.Id)
}

func TestItemServiceListUnknownSpace(t *testing.T) {
	f := newItemFixture(t)
	_, err := f.svc.List(context.Background(), f.userId, uuid.New())
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestItemServiceListOtherUsersSpace(t *testing.T) {
	f := newItemFixture(t)
	space := f.addSpace(t, "Dev")
	_, err := f.svc.List(context.Background(), uuid.New(), space.Id)
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestItemServiceUpdateBookmarkPublishesEmbedJob(t *testing.T) {
	f := newItemFixture(t)
	space := f.addSpace(t, "Dev")
	b := f.addBookmark(t, space.Id, "old", nil)

	res, err := f.svc.UpdateBookmark(context.Background(), f.userId, &dto.UpdateBookmarkRequest{
		Id:      b.Id,
		Title:   "new title",
		Url:     "https://example.com/new",
		Summary: "fresh summary",
	})
	require.NoError(t, err)

	assert.Equal(t, "new title", res.Title)
	assert.Equal(t, "https://example.com/new", res.Url)
	assert.NotNil(t, res.UpdatedAt)

	stored := f.uow.items.get(b.Id).(*entity.Bookmark)
	assert.Equal(t, "new title", stored.Title)
	assert.Equal(t, []uuid.UUID{b.Id}, embeddedItemIds(t, f.publisher))
}

func TestItemServiceUpdateBookmarkRejectsFolder(t *testing.T) {
	f := newItemFixture(t)
	space := f.addSpace(t, "Dev")
	folder := f.addFolder(t, space.Id, "Reading")

	_, err := f.svc.UpdateBookmark(context.Background(), f.userId, &dto.UpdateBookmarkRequest{
		Id:    folder.Id,
		Title: "x",
		Url:   "https://example.com",
	})
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestItemServiceCreateFolderFromItems(t *testing.T) {
	f := newItemFixture(t)
	space := f.addSpace(t, "Dev")
	other := f.addSpace(t, "Other")
	first := f.addBookmark(t, space.Id, "first", nil)
	second := f.addBookmark(t, other.Id, "second", nil)

	res, err := f.svc.CreateFolderFromItems(context.Background(), f.userId, &dto.CreateFolderFromItemsRequest{
		Name:         "Merged",
		SpaceId:      space.Id,
		FirstItemId:  first.Id,
		SecondItemId: second.Id,
	})
	require.NoError(t, err)

	assert.Equal(t, "Merged", res.Name)
	assert.Equal(t, string(entity.ItemTypeFolder), res.Type)
	require.Len(t, res.Items, 2)

	for _, id := range []uuid.UUID{first.Id, second.Id} {
		stored := f.uow.items.get(id).(*entity.Bookmark)
		require.NotNil(t, stored.ParentId)
		assert.Equal(t, res.Id, *stored.ParentId)
		assert.Equal(t, space.Id, stored.SpaceId)
	}
}

func TestItemServiceMoveFolderCascadesChildren(t *testing.T) {
	f := newItemFixture(t)
	source := f.addSpace(t, "Source")
	dest := f.addSpace(t, "Dest")
	folder := f.addFolder(t, source.Id, "Reading")
	child := f.addBookmark(t, source.Id, "article", &folder.Id)
	loose := f.addBookmark(t, source.Id, "loose", nil)

	res, err := f.svc.Move(context.Background(), f.userId, &dto.MoveItemRequest{
		Id:      folder.Id,
		SpaceId: dest.Id,
	})
	require.NoError(t, err)

	assert.Equal(t, dest.Id, res.SpaceId)
	assert.Nil(t, res.ParentId)

	storedChild := f.uow.items.get(child.Id).(*entity.Bookmark)
	assert.Equal(t, dest.Id, storedChild.SpaceId)
	require.NotNil(t, storedChild.ParentId)
	assert.Equal(t, folder.Id, *storedChild.ParentId)

	storedLoose := f.uow.items.get(loose.Id).(*entity.Bookmark)
	assert.Equal(t, source.Id, storedLoose.SpaceId)
}

func TestItemServiceMoveBookmarkAcrossSpacesDetachesParent(t *testing.T) {
	f := newItemFixture(t)
	source := f.addSpace(t, "Source")
	dest := f.addSpace(t, "Dest")
	folder := f.addFolder(t, source.Id, "Reading")
	b := f.addBookmark(t, source.Id, "article", &folder.Id)

	res, err := f.svc.Move(context.Background(), f.userId, &dto.MoveItemRequest{
		Id:      b.Id,
		SpaceId: dest.Id,
	})
	require.NoError(t, err)

	assert.Equal(t, dest.Id, res.SpaceId)
	assert.Nil(t, res.ParentId)
}

func TestItemServiceMoveBookmarkWithinSpaceSetsParent(t *testing.T) {
	f := newItemFixture(t)
	space := f.addSpace(t, "Dev")
	folder := f.addFolder(t, space.Id, "Reading")
	b := f.addBookmark(t, space.Id, "article", nil)

	res, err := f.svc.Move(context.Background(), f.userId, &dto.MoveItemRequest{
		Id:       b.Id,
		SpaceId:  space.Id,
		ParentId: &folder.Id,
	})
	require.NoError(t, err)

	require.NotNil(t, res.ParentId)
	assert.Equal(t, folder.Id, *res.ParentId)
}

func TestItemServiceMoveUnknownDestination(t *testing.T) {
	f := newItemFixture(t)
	space := f.addSpace(t, "Dev")
	b := f.addBookmark(t, space.Id, "article", nil)

	_, err := f.svc.Move(context.Background(), f.userId, &dto.MoveItemRequest{
		Id:      b.Id,
		SpaceId: uuid.New(),
	})
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestItemServiceDeleteFolderOrphansChildren(t *testing.T) {
	f := newItemFixture(t)
	space := f.addSpace(t, "Dev")
	folder := f.addFolder(t, space.Id, "Reading")
	child := f.addBookmark(t, space.Id, "article", &folder.Id)

	require.NoError(t, f.svc.Delete(context.Background(), f.userId, folder.Id))

	assert.Nil(t, f.uow.items.get(folder.Id))
	stored := f.uow.items.get(child.Id).(*entity.Bookmark)
	assert.Nil(t, stored.ParentId)
}

func TestItemServiceDeleteBookmarkRemovesEmbeddings(t *testing.T) {
	f := newItemFixture(t)
	space := f.addSpace(t, "Dev")
	b := f.addBookmark(t, space.Id, "article", nil)

	require.NoError(t, f.svc.Delete(context.Background(), f.userId, b.Id))

	assert.Nil(t, f.uow.items.get(b.Id))
	assert.Equal(t, []uuid.UUID{b.Id}, f.uow.embeds.deletedItemIds)
}

func TestItemServiceDeleteLinkResetsTargetFlag(t *testing.T) {
	f := newItemFixture(t)
	space := f.addSpace(t, "Dev")
	target := f.addSpace(t, "Target")
	target.IsLink = true
	require.NoError(t, f.uow.spaces.Update(context.Background(), target))
	link := f.addLink(t, space.Id, target.Id, "Target")

	require.NoError(t, f.svc.Delete(context.Background(), f.userId, link.Id))

	assert.Nil(t, f.uow.items.get(link.Id))
	assert.False(t, f.uow.spaces.spaces[target.Id].IsLink)
}

func TestItemServiceDeleteOtherUsersItem(t *testing.T) {
	f := newItemFixture(t)
	space := f.addSpace(t, "Dev")
	b := f.addBookmark(t, space.Id, "article", nil)

	err := f.svc.Delete(context.Background(), uuid.New(), b.Id)
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
	assert.NotNil(t, f.uow.items.get(b.Id))
}

func TestItemServiceDuplicateBookmark(t *testing.T) {
	f := newItemFixture(t)
	space := f.addSpace(t, "Dev")
	b := f.addBookmark(t, space.Id, "article", nil)

	res, err := f.svc.Duplicate(context.Background(), f.userId, b.Id)
	require.NoError(t, err)

	assert.NotEqual(t, b.Id, res.Id)
	assert.Equal(t, "article (Copia)", res.Title)
	assert.Equal(t, b.URL, res.Url)
	assert.Equal(t, []uuid.UUID{res.Id}, embeddedItemIds(t, f.publisher))
}

func TestItemServiceDuplicateFolderCopiesChildren(t *testing.T) {
	f := newItemFixture(t)
	space := f.addSpace(t, "Dev")
	folder := f.addFolder(t, space.Id, "Reading")
	childA := f.addBookmark(t, space.Id, "a", &folder.Id)
	childB := f.addBookmark(t, space.Id, "b", &folder.Id)

	res, err := f.svc.Duplicate(context.Background(), f.userId, folder.Id)
	require.NoError(t, err)

	assert.Equal(t, "Reading (Copia)", res.Name)
	require.Len(t, res.Items, 2)
	titles := []string{res.Items[0].Title, res.Items[1].Title}
	assert.ElementsMatch(t, []string{"a (Copia)", "b (Copia)"}, titles)

	for _, copied := range res.Items {
		assert.NotEqual(t, childA.Id, copied.Id)
		assert.NotEqual(t, childB.Id, copied.Id)
		require.NotNil(t, copied.ParentId)
		assert.Equal(t, res.Id, *copied.ParentId)
	}
	// Originals stay in place.
	assert.NotNil(t, f.uow.items.get(childA.Id))
	assert.NotNil(t, f.uow.items.get(childB.Id))
	assert.Len(t, embeddedItemIds(t, f.publisher), 2)
}
