package service

import (
	"context"

	"devzen-be/internal/entity"
	"devzen-be/internal/repository/contract"
	"devzen-be/internal/repository/specification"
	"devzen-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repositories interpreting the subset of specifications the
// services actually use. Everything is pointer-backed so mutations through
// FindOne results behave like attached GORM rows only after Update.

type fakeSpaceRepo struct {
	spaces map[uuid.UUID]*entity.Space
	order  []uuid.UUID
}

func newFakeSpaceRepo() *fakeSpaceRepo {
	return &fakeSpaceRepo{spaces: make(map[uuid.UUID]*entity.Space)}
}

func (r *fakeSpaceRepo) matches(space *entity.Space, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if space.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if space.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.UserOwnedBy:
			if space.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeSpaceRepo) Create(_ context.Context, space *entity.Space) error {
	cp := *space
	r.spaces[space.Id] = &cp
	r.order = append(r.order, space.Id)
	return nil
}

func (r *fakeSpaceRepo) Update(_ context.Context, space *entity.Space) error {
	cp := *space
	r.spaces[space.Id] = &cp
	return nil
}

func (r *fakeSpaceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.spaces, id)
	return nil
}

func (r *fakeSpaceRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Space, error) {
	for _, id := range r.order {
		space, ok := r.spaces[id]
		if ok && r.matches(space, specs) {
			cp := *space
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSpaceRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Space, error) {
	var out []*entity.Space
	for _, id := range r.order {
		space, ok := r.spaces[id]
		if ok && r.matches(space, specs) {
			cp := *space
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSpaceRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeItemRepo struct {
	items map[uuid.UUID]entity.SpaceItem
	order []uuid.UUID
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]entity.SpaceItem)}
}

func itemOwner(item entity.SpaceItem) uuid.UUID {
	switch it := item.(type) {
	case *entity.Bookmark:
		return it.UserId
	case *entity.Folder:
		return it.UserId
	case *entity.SpaceLink:
		return it.UserId
	}
	return uuid.Nil
}

func cloneItem(item entity.SpaceItem) entity.SpaceItem {
	switch it := item.(type) {
	case *entity.Bookmark:
		cp := *it
		return &cp
	case *entity.Folder:
		cp := *it
		return &cp
	case *entity.SpaceLink:
		cp := *it
		return &cp
	}
	return item
}

func (r *fakeItemRepo) matches(item entity.SpaceItem, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if item.ItemId() != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if item.ItemId() == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.UserOwnedBy:
			if itemOwner(item) != s.UserID {
				return false
			}
		case specification.BySpaceID:
			if item.ItemSpaceId() != s.SpaceID {
				return false
			}
		case specification.ByParentID:
			pid := item.ItemParentId()
			if s.ParentID == nil {
				if pid != nil {
					return false
				}
			} else if pid == nil || *pid != *s.ParentID {
				return false
			}
		case specification.ByItemType:
			if string(item.ItemType()) != s.Type {
				return false
			}
		case specification.ByLinkedSpaceID:
			link, ok := item.(*entity.SpaceLink)
			if !ok || link.LinkedSpaceId != s.LinkedSpaceID {
				return false
			}
		}
	}
	return true
}

func (r *fakeItemRepo) Create(_ context.Context, item entity.SpaceItem) (entity.SpaceItem, error) {
	cp := cloneItem(item)
	r.items[item.ItemId()] = cp
	r.order = append(r.order, item.ItemId())
	return cloneItem(cp), nil
}

func (r *fakeItemRepo) Update(_ context.Context, item entity.SpaceItem) (entity.SpaceItem, error) {
	cp := cloneItem(item)
	r.items[item.ItemId()] = cp
	return cloneItem(cp), nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) DeleteBySpaceId(ctx context.Context, spaceId uuid.UUID) error {
	for id, item := range r.items {
		if item.ItemSpaceId() == spaceId {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeItemRepo) FindOne(_ context.Context, specs ...specification.Specification) (entity.SpaceItem, error) {
	for _, id := range r.order {
		item, ok := r.items[id]
		if ok && r.matches(item, specs) {
			return cloneItem(item), nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]entity.SpaceItem, error) {
	out := make([]entity.SpaceItem, 0)
	for _, id := range r.order {
		item, ok := r.items[id]
		if ok && r.matches(item, specs) {
			out = append(out, cloneItem(item))
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeItemRepo) get(id uuid.UUID) entity.SpaceItem {
	return r.items[id]
}

type fakeEmbeddingRepo struct {
	deletedItemIds []uuid.UUID
}

func (r *fakeEmbeddingRepo) CreateBulk(context.Context, []*entity.BookmarkEmbedding) error {
	return nil
}

func (r *fakeEmbeddingRepo) DeleteByItemId(_ context.Context, itemId uuid.UUID) error {
	r.deletedItemIds = append(r.deletedItemIds, itemId)
	return nil
}

func (r *fakeEmbeddingRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.BookmarkEmbedding, error) {
	return nil, nil
}

func (r *fakeEmbeddingRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return 0, nil
}

func (r *fakeEmbeddingRepo) SearchSimilar(context.Context, []float32, int, uuid.UUID) ([]*contract.ScoredBookmarkEmbedding, error) {
	return nil, nil
}

type fakeUnitOfWork struct {
	spaces *fakeSpaceRepo
	items  *fakeItemRepo
	embeds *fakeEmbeddingRepo
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		spaces: newFakeSpaceRepo(),
		items:  newFakeItemRepo(),
		embeds: &fakeEmbeddingRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error { return nil }
func (u *fakeUnitOfWork) Rollback() error { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return nil }
func (u *fakeUnitOfWork) SpaceRepository() contract.SpaceRepository { return u.spaces }
func (u *fakeUnitOfWork) SpaceItemRepository() contract.SpaceItemRepository {
	return u.items
}
func (u *fakeUnitOfWork) AiToolRepository() contract.AiToolRepository { return nil }
func (u *fakeUnitOfWork) AppInfoRepository() contract.AppInfoRepository { return nil }
func (u *fakeUnitOfWork) BookmarkEmbeddingRepository() contract.BookmarkEmbeddingRepository {
	return u.embeds
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakePublisher struct {
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(_ context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}
