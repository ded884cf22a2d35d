package service

import (
	"context"
	"fmt"
	"time"

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

type ISpaceService interface {
	List(ctx context.Context, userId uuid.UUID) ([]dto.SpaceResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSpaceRequest) (*dto.SpaceResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSpaceRequest) (*dto.SpaceResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	CreateLink(ctx context.Context, userId uuid.UUID, req *dto.CreateSpaceLinkRequest) (*dto.SpaceItemResponse, error)
	Export(ctx context.Context, userId uuid.UUID) (*dto.WorkspaceExport, error)
}

type spaceService struct {
	uowFactory     unitofwork.RepositoryFactory
	spaceCache     *memory.SpaceCache
	eventPublisher *pkgNats.Publisher
}

func NewSpaceService(
	uowFactory unitofwork.RepositoryFactory,
	spaceCache *memory.SpaceCache,
	eventPublisher *pkgNats.Publisher,
) ISpaceService {
	return &spaceService{
		uowFactory:     uowFactory,
		spaceCache:     spaceCache,
		eventPublisher: eventPublisher,
	}
}

func (s *spaceService) List(ctx context.Context, userId uuid.UUID) ([]dto.SpaceResponse, error) {
	spaces, found := s.spaceCache.Get(userId)
	if !found {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		var err error
		spaces, err = uow.SpaceRepository().FindAll(ctx,
			specification.UserOwnedBy{UserID: userId},
			specification.OrderBy{Field: "created_at"},
		)
		if err != nil {
			return nil, err
		}
		s.spaceCache.Set(userId, spaces)
	}

	res := make([]dto.SpaceResponse, 0, len(spaces))
	for _, space := range spaces {
		res = append(res, toSpaceResponse(space))
	}
	return res, nil
}

func (s *spaceService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSpaceRequest) (*dto.SpaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	space := &entity.Space{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		Icon:      req.Icon,
		CreatedAt: time.Now(),
	}
	if req.Category != "" {
		category := req.Category
		space.Category = &category
	}

	if err := uow.SpaceRepository().Create(ctx, space); err != nil {
		return nil, err
	}

	s.invalidateAndNotify(ctx, userId)

	res := toSpaceResponse(space)
	return &res, nil
}

func (s *spaceService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSpaceRequest) (*dto.SpaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	space, err := s.findSpace(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	space.Name = req.Name
	space.Icon = req.Icon
	space.Category = nil
	if req.Category != "" {
		category := req.Category
		space.Category = &category
	}
	now := time.Now()
	space.UpdatedAt = &now

	if err := uow.SpaceRepository().Update(ctx, space); err != nil {
		return nil, err
	}

	s.invalidateAndNotify(ctx, userId)

	res := toSpaceResponse(space)
	return &res, nil
}

// Delete removes a space and everything referring to it. The order is load
// bearing: incoming links first, then the isLink flags of spaces our own
// links point at, then the contained items, then the space row itself.
func (s *spaceService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	space, err := s.findSpace(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	// 1. Links elsewhere pointing at this space.
	incoming, err := uow.SpaceItemRepository().FindAll(ctx,
		specification.ByLinkedSpaceID{LinkedSpaceID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	for _, link := range incoming {
		if err := uow.SpaceItemRepository().Delete(ctx, link.ItemId()); err != nil {
			return err
		}
	}

	// 2. Spaces our outgoing links point at become visible again.
	items, err := uow.SpaceItemRepository().FindAll(ctx,
		specification.BySpaceID{SpaceID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	for _, item := range items {
		link, ok := item.(*entity.SpaceLink)
		if !ok {
			continue
		}
		if err := s.resetLinkFlag(ctx, uow, userId, link.LinkedSpaceId); err != nil {
			return err
		}
	}

	// 3. Contained items, along with bookmark embeddings.
	for _, item := range items {
		if b, ok := item.(*entity.Bookmark); ok {
			if err := uow.BookmarkEmbeddingRepository().DeleteByItemId(ctx, b.Id); err != nil {
				return err
			}
		}
	}
	if err := uow.SpaceItemRepository().DeleteBySpaceId(ctx, id); err != nil {
		return err
	}

	// 4. The space itself.
	if err := uow.SpaceRepository().Delete(ctx, space.Id); err != nil {
		return err
	}

	s.invalidateAndNotify(ctx, userId)
	s.publishItemsChanged(ctx, userId, id)
	return nil
}

// CreateLink adds a space-link item to SpaceId pointing at LinkedSpaceId and
// hides the target from the sidebar. The hidden state is a single boolean, so
// a second link to the same space shares it; removing either link clears it.
func (s *spaceService) CreateLink(ctx context.Context, userId uuid.UUID, req *dto.CreateSpaceLinkRequest) (*dto.SpaceItemResponse, error) {
	if req.SpaceId == req.LinkedSpaceId {
		return nil, fmt.Errorf("%w: a space cannot link to itself", serverutils.ErrForbidden)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findSpace(ctx, uow, userId, req.SpaceId); err != nil {
		return nil, err
	}
	target, err := s.findSpace(ctx, uow, userId, req.LinkedSpaceId)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = target.Name
	}

	link := &entity.SpaceLink{
		ItemBase: entity.ItemBase{
			Id:        uuid.New(),
			UserId:    userId,
			SpaceId:   req.SpaceId,
			CreatedAt: time.Now(),
		},
		Name:          name,
		LinkedSpaceId: req.LinkedSpaceId,
	}

	created, err := uow.SpaceItemRepository().Create(ctx, link)
	if err != nil {
		return nil, err
	}

	if !target.IsLink {
		target.IsLink = true
		now := time.Now()
		target.UpdatedAt = &now
		if err := uow.SpaceRepository().Update(ctx, target); err != nil {
			return nil, err
		}
	}

	s.invalidateAndNotify(ctx, userId)
	s.publishItemsChanged(ctx, userId, req.SpaceId)

	res := toSpaceItemResponse(created)
	return &res, nil
}

// Export flattens the user's whole workspace into the nested JSON document.
// Space links are not part of the format; the document round-trips through
// the workspace generator.
func (s *spaceService) Export(ctx context.Context, userId uuid.UUID) (*dto.WorkspaceExport, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	spaces, err := uow.SpaceRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	doc := &dto.WorkspaceExport{
		ExportedAt: time.Now(),
		Spaces:     make([]dto.ExportSpace, 0, len(spaces)),
	}

	for _, space := range spaces {
		items, err := uow.SpaceItemRepository().FindAll(ctx,
			specification.BySpaceID{SpaceID: space.Id},
			specification.UserOwnedBy{UserID: userId},
			specification.OrderBy{Field: "created_at"},
		)
		if err != nil {
			return nil, err
		}

		exported := dto.ExportSpace{
			Name: space.Name,
			Icon: space.Icon,
		}
		if space.Category != nil {
			exported.Category = *space.Category
		}

		for _, root := range groupFolderChildren(items) {
			switch it := root.(type) {
			case *entity.Folder:
				folder := dto.ExportFolder{Name: it.Name}
				for _, b := range it.Items {
					folder.Bookmarks = append(folder.Bookmarks, toExportBookmark(b))
				}
				exported.Folders = append(exported.Folders, folder)
			case *entity.Bookmark:
				exported.Bookmarks = append(exported.Bookmarks, toExportBookmark(it))
			}
		}

		doc.Spaces = append(doc.Spaces, exported)
	}

	return doc, nil
}

// --- helpers ---

func toSpaceResponse(space *entity.Space) dto.SpaceResponse {
	res := dto.SpaceResponse{
		Id:        space.Id,
		Name:      space.Name,
		Icon:      space.Icon,
		IsLink:    space.IsLink,
		CreatedAt: space.CreatedAt,
		UpdatedAt: space.UpdatedAt,
	}
	if space.Category != nil {
		res.Category = *space.Category
	}
	return res
}

func toExportBookmark(b *entity.Bookmark) dto.ExportBookmark {
	return dto.ExportBookmark{
		Title:   b.Title,
		Url:     b.URL,
		Summary: b.Summary,
	}
}

func (s *spaceService) findSpace(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, id uuid.UUID) (*entity.Space, error) {
	space, err := uow.SpaceRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if space == nil {
		return nil, serverutils.ErrNotFound
	}
	return space, nil
}

func (s *spaceService) resetLinkFlag(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, spaceId uuid.UUID) error {
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

func (s *spaceService) invalidateAndNotify(ctx context.Context, userId uuid.UUID) {
	s.spaceCache.Invalidate(userId)
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: "spaces.changed",
		Data: map[string]interface{}{
			"user_id": userId,
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish spaces.changed event: %v\n", err)
	}
}

func (s *spaceService) publishItemsChanged(ctx context.Context, userId uuid.UUID, spaceId uuid.UUID) {
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
