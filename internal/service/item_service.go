package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"devzen-be/internal/constant"
	"devzen-be/internal/dto"
	"devzen-be/internal/entity"
	"devzen-be/internal/pkg/serverutils"
	"devzen-be/internal/repository/memory"
	"devzen-be/internal/repository/specification"
	"devzen-be/internal/repository/unitofwork"
	"devzen-be/pkg/events"
	pkgNats "devzen-be/pkg/nats"

	"github.com/google/uuid"
)

type IItemService interface {
	List(ctx context.Context, userId uuid.UUID, spaceId uuid.UUID) ([]dto.SpaceItemResponse, error)
	UpdateBookmark(ctx context.Context, userId uuid.UUID, req *dto.UpdateBookmarkRequest) (*dto.SpaceItemResponse, error)
	CreateFolder(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.SpaceItemResponse, error)
	UpdateFolder(ctx context.Context, userId uuid.UUID, req *dto.UpdateFolderRequest) (*dto.SpaceItemResponse, error)
	CreateFolderFromItems(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderFromItemsRequest) (*dto.SpaceItemResponse, error)
	Move(ctx context.Context, userId uuid.UUID, req *dto.MoveItemRequest) (*dto.SpaceItemResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Duplicate(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SpaceItemResponse, error)
}

type itemService struct {
	uowFactory     unitofwork.RepositoryFactory
	embedPublisher IPublisherService
	eventPublisher *pkgNats.Publisher
	spaceCache     *memory.SpaceCache
}

func NewItemService(
	uowFactory unitofwork.RepositoryFactory,
	embedPublisher IPublisherService,
	eventPublisher *pkgNats.Publisher,
	spaceCache *memory.SpaceCache,
) IItemService {
	return &itemService{
		uowFactory:     uowFactory,
		embedPublisher: embedPublisher,
		eventPublisher: eventPublisher,
		spaceCache:     spaceCache,
	}
}

func (s *itemService) List(ctx context.Context, userId uuid.UUID, spaceId uuid.UUID) ([]dto.SpaceItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	space, err := uow.SpaceRepository().FindOne(ctx,
		specification.ByID{ID: spaceId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if space == nil {
		return nil, serverutils.ErrNotFound
	}

	items, err := uow.SpaceItemRepository().FindAll(ctx,
		specification.BySpaceID{SpaceID: spaceId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	roots := groupFolderChildren(items)
	res := make([]dto.SpaceItemResponse, 0, len(roots))
	for _, item := range roots {
		res = append(res, toSpaceItemResponse(item))
	}
	return res, nil
}

func (s *itemService) UpdateBookmark(ctx context.Context, userId uuid.UUID, req *dto.UpdateBookmarkRequest) (*dto.SpaceItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bookmark, err := s.findBookmark(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	bookmark.Title = req.Title
	bookmark.URL = req.Url
	bookmark.Summary = req.Summary
	bookmark.Icon = req.Icon
	bookmark.IconURL = req.IconUrl
	bookmark.IconColor = req.IconColor
	bookmark.BackgroundColor = req.BackgroundColor
	bookmark.TextColor = req.TextColor
	now := time.Now()
	bookmark.UpdatedAt = &now

	updated, err := uow.SpaceItemRepository().Update(ctx, bookmark)
	if err != nil {
		return nil, err
	}

	s.publishEmbedJob(ctx, bookmark.Id)
	s.publishItemsChanged(ctx, userId, bookmark.SpaceId)

	res := toSpaceItemResponse(updated)
	return &res, nil
}

func (s *itemService) CreateFolder(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.SpaceItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.checkSpace(ctx, uow, userId, req.SpaceId); err != nil {
		return nil, err
	}

	folder := &entity.Folder{
		ItemBase: entity.ItemBase{
			Id:        uuid.New(),
			UserId:    userId,
			SpaceId:   req.SpaceId,
			CreatedAt: time.Now(),
		},
		Name: req.Name,
	}

	created, err := uow.SpaceItemRepository().Create(ctx, folder)
	if err != nil {
		return nil, err
	}

	s.publishItemsChanged(ctx, userId, req.SpaceId)

	res := toSpaceItemResponse(created)
	return &res, nil
}

func (s *itemService) UpdateFolder(ctx context.Context, userId uuid.UUID, req *dto.UpdateFolderRequest) (*dto.SpaceItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.SpaceItemRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	folder, ok := item.(*entity.Folder)
	if !ok {
		return nil, serverutils.ErrNotFound
	}

	folder.Name = req.Name
	now := time.Now()
	folder.UpdatedAt = &now

	updated, err := uow.SpaceItemRepository().Update(ctx, folder)
	if err != nil {
		return nil, err
	}

	s.publishItemsChanged(ctx, userId, folder.SpaceId)

	res := toSpaceItemResponse(updated)
	return &res, nil
}

// CreateFolderFromItems creates a new folder and reparents the two source
// items into it. The steps are sequential: if a reparent fails partway the
// folder stays behind and the client resynchronizes, matching the product's
// accepted behavior.
func (s *itemService) CreateFolderFromItems(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderFromItemsRequest) (*dto.SpaceItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.checkSpace(ctx, uow, userId, req.SpaceId); err != nil {
		return nil, err
	}

	first, err := s.findBookmark(ctx, uow, userId, req.FirstItemId)
	if err != nil {
		return nil, err
	}
	second, err := s.findBookmark(ctx, uow, userId, req.SecondItemId)
	if err != nil {
		return nil, err
	}

	folder := &entity.Folder{
		ItemBase: entity.ItemBase{
			Id:        uuid.New(),
			UserId:    userId,
			SpaceId:   req.SpaceId,
			CreatedAt: time.Now(),
		},
		Name: req.Name,
	}
	if _, err := uow.SpaceItemRepository().Create(ctx, folder); err != nil {
		return nil, err
	}

	for _, b := range []*entity.Bookmark{first, second} {
		parentId := folder.Id
		b.ParentId = &parentId
		b.SpaceId = req.SpaceId
		now := time.Now()
		b.UpdatedAt = &now
		if _, err := uow.SpaceItemRepository().Update(ctx, b); err != nil {
			return nil, err
		}
	}

	folder.Items = []*entity.Bookmark{first, second}

	s.publishItemsChanged(ctx, userId, req.SpaceId)

	res := toSpaceItemResponse(folder)
	return &res, nil
}

func (s *itemService) Move(ctx context.Context, userId uuid.UUID, req *dto.MoveItemRequest) (*dto.SpaceItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.checkSpace(ctx, uow, userId, req.SpaceId); err != nil {
		return nil, err
	}

	item, err := uow.SpaceItemRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, serverutils.ErrNotFound
	}

	sourceSpaceId := item.ItemSpaceId()
	now := time.Now()

	var moved entity.SpaceItem
	switch it := item.(type) {
	case *entity.Folder:
		// Folders always live at root; moving one cascades the space change
		// to every child bookmark.
		it.SpaceId = req.SpaceId
		it.ParentId = nil
		it.UpdatedAt = &now
		moved, err = uow.SpaceItemRepository().Update(ctx, it)
		if err != nil {
			return nil, err
		}

		children, err := uow.SpaceItemRepository().FindAll(ctx,
			specification.ByParentID{ParentID: &it.Id},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			b, ok := child.(*entity.Bookmark)
			if !ok {
				continue
			}
			b.SpaceId = req.SpaceId
			b.UpdatedAt = &now
			if _, err := uow.SpaceItemRepository().Update(ctx, b); err != nil {
				return nil, err
			}
		}
	case *entity.Bookmark:
		if req.SpaceId != sourceSpaceId {
			// Cross-space move detaches the bookmark from any folder.
			it.ParentId = nil
		} else {
			it.ParentId = req.ParentId
		}
		it.SpaceId = req.SpaceId
		it.UpdatedAt = &now
		moved, err = uow.SpaceItemRepository().Update(ctx, it)
		if err != nil {
			return nil, err
		}
	case *entity.SpaceLink:
		it.SpaceId = req.SpaceId
		it.UpdatedAt = &now
		moved, err = uow.SpaceItemRepository().Update(ctx, it)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown item type %T", item)
	}

	s.publishItemsChanged(ctx, userId, sourceSpaceId)
	if req.SpaceId != sourceSpaceId {
		s.publishItemsChanged(ctx, userId, req.SpaceId)
	}

	res := toSpaceItemResponse(moved)
	return &res, nil
}

func (s *itemService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.SpaceItemRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if item == nil {
		return serverutils.ErrNotFound
	}

	switch it := item.(type) {
	case *entity.Folder:
		// Children are orphaned to root, never deleted.
		children, err := uow.SpaceItemRepository().FindAll(ctx,
			specification.ByParentID{ParentID: &it.Id},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, child := range children {
			b, ok := child.(*entity.Bookmark)
			if !ok {
				continue
			}
			b.ParentId = nil
			b.UpdatedAt = &now
			if _, err := uow.SpaceItemRepository().Update(ctx, b); err != nil {
				return err
			}
		}
	case *entity.SpaceLink:
		// The linked space becomes visible in the sidebar again.
		if err := s.resetLinkFlag(ctx, uow, userId, it.LinkedSpaceId); err != nil {
			return err
		}
		s.spaceCache.Invalidate(userId)
	case *entity.Bookmark:
		if err := uow.BookmarkEmbeddingRepository().DeleteByItemId(ctx, it.Id); err != nil {
			return err
		}
	}

	if err := uow.SpaceItemRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.publishItemsChanged(ctx, userId, item.ItemSpaceId())
	return nil
}

func (s *itemService) Duplicate(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SpaceItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.SpaceItemRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, serverutils.ErrNotFound
	}

	var copied entity.SpaceItem

	switch it := item.(type) {
	case *entity.Bookmark:
		dup := *it
		dup.Id = uuid.New()
		dup.Title = it.Title + constant.DuplicateSuffix
		dup.CreatedAt = time.Now()
		dup.UpdatedAt = nil
		copied, err = uow.SpaceItemRepository().Create(ctx, &dup)
		if err != nil {
			return nil, err
		}
		s.publishEmbedJob(ctx, dup.Id)
	case *entity.Folder:
		newFolder := &entity.Folder{
			ItemBase: entity.ItemBase{
				Id:              uuid.New(),
				UserId:          userId,
				SpaceId:         it.SpaceId,
				BackgroundColor: it.BackgroundColor,
				TextColor:       it.TextColor,
				CreatedAt:       time.Now(),
			},
			Name: it.Name + constant.DuplicateSuffix,
		}
		if _, err := uow.SpaceItemRepository().Create(ctx, newFolder); err != nil {
			return nil, err
		}

		children, err := uow.SpaceItemRepository().FindAll(ctx,
			specification.ByParentID{ParentID: &it.Id},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			b, ok := child.(*entity.Bookmark)
			if !ok {
				continue
			}
			dup := *b
			dup.Id = uuid.New()
			dup.Title = b.Title + constant.DuplicateSuffix
			parentId := newFolder.Id
			dup.ParentId = &parentId
			dup.CreatedAt = time.Now()
			dup.UpdatedAt = nil
			if _, err := uow.SpaceItemRepository().Create(ctx, &dup); err != nil {
				return nil, err
			}
			newFolder.Items = append(newFolder.Items, &dup)
			s.publishEmbedJob(ctx, dup.Id)
		}
		copied = newFolder
	case *entity.SpaceLink:
		dup := *it
		dup.Id = uuid.New()
		dup.Name = it.Name + constant.DuplicateSuffix
		dup.CreatedAt = time.Now()
		dup.UpdatedAt = nil
		copied, err = uow.SpaceItemRepository().Create(ctx, &dup)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown item type %T", item)
	}

	s.publishItemsChanged(ctx, userId, item.ItemSpaceId())

	res := toSpaceItemResponse(copied)
	return &res, nil
}

// --- helpers ---

func (s *itemService) checkSpace(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, spaceId uuid.UUID) error {
	space, err := uow.SpaceRepository().FindOne(ctx,
		specification.ByID{ID: spaceId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if space == nil {
		return serverutils.ErrNotFound
	}
	return nil
}

func (s *itemService) findBookmark(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, id uuid.UUID) (*entity.Bookmark, error) {
	item, err := uow.SpaceItemRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	bookmark, ok := item.(*entity.Bookmark)
	if !ok {
		return nil, serverutils.ErrNotFound
	}
	return bookmark, nil
}

func (s *itemService) resetLinkFlag(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, spaceId uuid.UUID) error {
	target, err := uow.SpaceRepository().FindOne(ctx,
		specification.ByID{ID: spaceId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if target == nil || !target.IsLink {
		return nil
	}
	target.IsLink = false
	now := time.Now()
	target.UpdatedAt = &now
	return uow.SpaceRepository().Update(ctx, target)
}

func (s *itemService) publishEmbedJob(ctx context.Context, itemId uuid.UUID) {
	payload, err := json.Marshal(dto.PublishEmbedBookmarkMessage{ItemId: itemId})
	if err != nil {
		return
	}
	if err := s.embedPublisher.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish embed job for item %s: %v\n", itemId, err)
	}
}

func (s *itemService) publishItemsChanged(ctx context.Context, userId uuid.UUID, spaceId uuid.UUID) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: "space_items.changed",
		Data: map[string]interface{}{
			"user_id":  userId,
			"space_id": spaceId,
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish space_items.changed event: %v\n", err)
	}
}
