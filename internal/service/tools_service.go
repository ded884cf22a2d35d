package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"devzen-be/internal/dto"
	"devzen-be/internal/entity"
	"devzen-be/internal/pkg/serverutils"
	"devzen-be/internal/repository/specification"
	"devzen-be/internal/repository/unitofwork"
	"devzen-be/pkg/events"
	pkgNats "devzen-be/pkg/nats"

	"github.com/google/uuid"
)

const defaultToolsPageSize = 50

type IToolsService interface {
	List(ctx context.Context, req *dto.ListToolsRequest) ([]dto.ToolsAiResponse, error)
	Import(ctx context.Context, userId uuid.UUID, req *dto.ImportToolRequest) (*dto.SpaceItemResponse, error)
}

type toolsService struct {
	uowFactory         unitofwork.RepositoryFactory
	embedPublisher     IPublisherService
	summarizePublisher IPublisherService
	eventPublisher     *pkgNats.Publisher
}

func NewToolsService(
	uowFactory unitofwork.RepositoryFactory,
	embedPublisher IPublisherService,
	summarizePublisher IPublisherService,
	eventPublisher *pkgNats.Publisher,
) IToolsService {
	return &toolsService{
		uowFactory:         uowFactory,
		embedPublisher:     embedPublisher,
		summarizePublisher: summarizePublisher,
		eventPublisher:     eventPublisher,
	}
}

// List returns catalog entries. Flagged entries are always excluded; the
// catalog is shared across users.
func (s *toolsService) List(ctx context.Context, req *dto.ListToolsRequest) ([]dto.ToolsAiResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pageSize := req.PageSize
	if pageSize <= 0 || pageSize > 200 {
		pageSize = defaultToolsPageSize
	}
	page := req.Page
	if page < 1 {
		page = 1
	}

	specs := []specification.Specification{
		specification.NotDeletedFlag{},
		specification.OrderBy{Field: "name"},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	}
	if req.Category != "" {
		specs = append(specs, specification.ByCategory{Category: req.Category})
	}
	if req.Keyword != "" {
		specs = append(specs, specification.NameContains{Keyword: req.Keyword})
	}

	tools, err := uow.AiToolRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ToolsAiResponse, 0, len(tools))
	for _, tool := range tools {
		res = append(res, dto.ToolsAiResponse{
			Id:       tool.Id,
			Name:     tool.Name,
			Link:     tool.Link,
			Category: tool.Category,
			Brand:    tool.Brand,
			Summary: dto.ToolsAiSummary{
				Summary: tool.Summary.Summary,
				Tags:    tool.Summary.Tags,
			},
		})
	}
	return res, nil
}

// Import copies a catalog entry into the user's space as an independent
// bookmark. The catalog row is never touched.
func (s *toolsService) Import(ctx context.Context, userId uuid.UUID, req *dto.ImportToolRequest) (*dto.SpaceItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tool, err := uow.AiToolRepository().FindOne(ctx,
		specification.ByID{ID: req.ToolId},
		specification.NotDeletedFlag{},
	)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, serverutils.ErrNotFound
	}

	space, err := uow.SpaceRepository().FindOne(ctx,
		specification.ByID{ID: req.SpaceId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if space == nil {
		return nil, serverutils.ErrNotFound
	}

	bookmark := &entity.Bookmark{
		ItemBase: entity.ItemBase{
			Id:        uuid.New(),
			UserId:    userId,
			SpaceId:   req.SpaceId,
			ParentId:  req.ParentId,
			CreatedAt: time.Now(),
		},
		Title:   tool.Name,
		URL:     tool.Link,
		Summary: tool.Summary.Summary,
	}

	created, err := uow.SpaceItemRepository().Create(ctx, bookmark)
	if err != nil {
		return nil, err
	}

	s.publishEmbedJob(ctx, bookmark.Id)
	if bookmark.Summary == "" {
		s.publishSummarizeJob(ctx, bookmark.Id)
	}
	s.publishItemsChanged(ctx, userId, req.SpaceId)

	res := toSpaceItemResponse(created)
	return &res, nil
}

func (s *toolsService) publishEmbedJob(ctx context.Context, itemId uuid.UUID) {
	payload, err := json.Marshal(dto.PublishEmbedBookmarkMessage{ItemId: itemId})
	if err != nil {
		return
	}
	if err := s.embedPublisher.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish embed job for item %s: %v\n", itemId, err)
	}
}

func (s *toolsService) publishSummarizeJob(ctx context.Context, itemId uuid.UUID) {
	payload, err := json.Marshal(dto.PublishSummarizeBookmarkMessage{ItemId: itemId})
	if err != nil {
		return
	}
	if err := s.summarizePublisher.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish summarize job for item %s: %v\n", itemId, err)
	}
}

func (s *toolsService) publishItemsChanged(ctx context.Context, userId uuid.UUID, spaceId uuid.UUID) {
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
