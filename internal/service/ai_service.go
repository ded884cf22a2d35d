package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"devzen-be/internal/constant"
	"devzen-be/internal/dto"
	"devzen-be/internal/entity"
	"devzen-be/internal/pkg/serverutils"
	"devzen-be/internal/repository/memory"
	"devzen-be/internal/repository/specification"
	"devzen-be/internal/repository/unitofwork"
	"devzen-be/pkg/embedding"
	"devzen-be/pkg/events"
	"devzen-be/pkg/flows"
	"devzen-be/pkg/llm"
	pkgNats "devzen-be/pkg/nats"

	"github.com/google/uuid"
)

// smartSearchRecallLimit caps the vector recall fed into the re-rank flow.
const smartSearchRecallLimit = 30

type IAiService interface {
	CreateBookmark(ctx context.Context, userId uuid.UUID, req *dto.CreateBookmarkRequest) (*dto.SpaceItemResponse, error)
	Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error)
	Categorize(ctx context.Context, userId uuid.UUID, req *dto.CategorizeRequest) (*dto.CategorizeResponse, error)
	DiscernInput(ctx context.Context, req *dto.DiscernInputRequest) (*dto.DiscernInputResponse, error)
	SmartSearch(ctx context.Context, userId uuid.UUID, req *dto.SmartSearchRequest) (*dto.SmartSearchResponse, error)
	AnalyzeSpace(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeSpaceRequest) (*dto.AnalyzeSpaceResponse, error)
	ChatInSpace(ctx context.Context, userId uuid.UUID, req *dto.ChatInSpaceRequest) (*dto.ChatInSpaceResponse, error)
	GenerateWorkspace(ctx context.Context, userId uuid.UUID, req *dto.GenerateWorkspaceRequest) (*dto.GenerateWorkspaceResponse, error)
	DevelopIdea(ctx context.Context, req *dto.DevelopIdeaRequest) (*dto.DevelopIdeaResponse, error)
	TextTool(ctx context.Context, req *dto.TextToolRequest) (*dto.TextToolResponse, error)
}

type aiService struct {
	uowFactory          unitofwork.RepositoryFactory
	llmProvider         llm.LLMProvider
	embeddingProvider   embedding.EmbeddingProvider
	embedPublisher      IPublisherService
	summarizePublisher  IPublisherService
	spaceCache          *memory.SpaceCache
	eventPublisher      *pkgNats.Publisher
}

func NewAiService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	embeddingProvider embedding.EmbeddingProvider,
	embedPublisher IPublisherService,
	summarizePublisher IPublisherService,
	spaceCache *memory.SpaceCache,
	eventPublisher *pkgNats.Publisher,
) IAiService {
	return &aiService{
		uowFactory:         uowFactory,
		llmProvider:        llmProvider,
		embeddingProvider:  embeddingProvider,
		embedPublisher:     embedPublisher,
		summarizePublisher: summarizePublisher,
		spaceCache:         spaceCache,
		eventPublisher:     eventPublisher,
	}
}

// CreateBookmark turns free text into a persisted bookmark or note. URLs get
// a model summary (with a fixed fallback so creation never blocks on the
// model); notes store the text itself as the body.
func (s *aiService) CreateBookmark(ctx context.Context, userId uuid.UUID, req *dto.CreateBookmarkRequest) (*dto.SpaceItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

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

	kind, err := flows.DiscernInput(ctx, s.llmProvider, req.Input)
	if err != nil {
		return nil, err
	}

	bookmark := &entity.Bookmark{
		ItemBase: entity.ItemBase{
			Id:        uuid.New(),
			UserId:    userId,
			SpaceId:   req.SpaceId,
			ParentId:  req.ParentId,
			CreatedAt: time.Now(),
		},
	}

	if kind == flows.KindURL {
		url := normalizeURL(req.Input)
		bookmark.URL = url
		bookmark.Title = titleFromURL(url)

		summary, err := flows.Summarize(ctx, s.llmProvider, url)
		if err != nil {
			summary = constant.FallbackSummary
		}
		bookmark.Summary = summary

		if req.AutoCategorize {
			spaceId, err := s.categorizeURL(ctx, uow, userId, url)
			if err != nil {
				return nil, err
			}
			if spaceId != req.SpaceId {
				bookmark.SpaceId = spaceId
				bookmark.ParentId = nil
			}
		}
	} else {
		bookmark.URL = constant.NoteURLScheme + uuid.New().String()
		bookmark.Title = noteTitle(req.Input)
		bookmark.Summary = req.Input
	}

	created, err := uow.SpaceItemRepository().Create(ctx, bookmark)
	if err != nil {
		return nil, err
	}

	s.publishEmbedJob(ctx, bookmark.Id)
	s.publishItemsChanged(ctx, userId, bookmark.SpaceId)

	res := toSpaceItemResponse(created)
	return &res, nil
}

func (s *aiService) Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error) {
	summary, err := flows.Summarize(ctx, s.llmProvider, req.Url)
	if err != nil {
		return nil, err
	}
	return &dto.SummarizeResponse{Summary: summary}, nil
}

func (s *aiService) Categorize(ctx context.Context, userId uuid.UUID, req *dto.CategorizeRequest) (*dto.CategorizeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	spaceId, err := s.categorizeURL(ctx, uow, userId, req.Url)
	if err != nil {
		return nil, err
	}
	return &dto.CategorizeResponse{SpaceId: spaceId}, nil
}

func (s *aiService) DiscernInput(ctx context.Context, req *dto.DiscernInputRequest) (*dto.DiscernInputResponse, error) {
	kind, err := flows.DiscernInput(ctx, s.llmProvider, req.Text)
	if err != nil {
		return nil, err
	}
	return &dto.DiscernInputResponse{Kind: kind}, nil
}

// SmartSearch recalls candidate bookmarks by vector similarity, then lets the
// model re-rank them against the query's intent. An empty candidate set is an
// empty result, not an error.
func (s *aiService) SmartSearch(ctx context.Context, userId uuid.UUID, req *dto.SmartSearchRequest) (*dto.SmartSearchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	queryEmbedding, err := s.embeddingProvider.Generate(req.Query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	scored, err := uow.BookmarkEmbeddingRepository().SearchSimilar(ctx,
		queryEmbedding.Embedding.Values, smartSearchRecallLimit, userId)
	if err != nil {
		return nil, err
	}

	// Best score per item across its chunks.
	bestScores := make(map[uuid.UUID]float64)
	itemIds := make([]uuid.UUID, 0, len(scored))
	for _, sc := range scored {
		itemId := sc.Embedding.ItemId
		if prev, seen := bestScores[itemId]; !seen || sc.Score > prev {
			if !seen {
				itemIds = append(itemIds, itemId)
			}
			bestScores[itemId] = sc.Score
		}
	}

	if len(itemIds) == 0 {
		return &dto.SmartSearchResponse{Results: []dto.SmartSearchResult{}}, nil
	}

	specs := []specification.Specification{
		specification.ByIDs{IDs: itemIds},
		specification.UserOwnedBy{UserID: userId},
	}
	if req.SpaceId != nil {
		specs = append(specs, specification.BySpaceID{SpaceID: *req.SpaceId})
	}
	items, err := uow.SpaceItemRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	bookmarks := make(map[string]*entity.Bookmark, len(items))
	refs := make([]flows.BookmarkRef, 0, len(items))
	for _, item := range items {
		b, ok := item.(*entity.Bookmark)
		if !ok {
			continue
		}
		bookmarks[b.Id.String()] = b
		refs = append(refs, flows.BookmarkRef{
			Id:      b.Id.String(),
			Title:   b.Title,
			Url:     b.URL,
			Summary: b.Summary,
		})
	}

	rankedIds, err := flows.SmartSearch(ctx, s.llmProvider, req.Query, refs)
	if err != nil {
		return nil, err
	}

	results := make([]dto.SmartSearchResult, 0, len(rankedIds))
	for _, id := range rankedIds {
		b := bookmarks[id]
		if b == nil {
			continue
		}
		results = append(results, dto.SmartSearchResult{
			Item:  toSpaceItemResponse(b),
			Score: bestScores[b.Id],
		})
	}

	return &dto.SmartSearchResponse{Results: results}, nil
}

func (s *aiService) AnalyzeSpace(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeSpaceRequest) (*dto.AnalyzeSpaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	space, refs, err := s.spaceContext(ctx, uow, userId, req.SpaceId)
	if err != nil {
		return nil, err
	}

	analysis, err := flows.AnalyzeSpace(ctx, s.llmProvider, space.Name, refs)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyzeSpaceResponse{
		Analysis:    analysis.Analysis,
		KeyThemes:   analysis.Themes,
		Suggestions: analysis.Suggestions,
	}, nil
}

func (s *aiService) ChatInSpace(ctx context.Context, userId uuid.UUID, req *dto.ChatInSpaceRequest) (*dto.ChatInSpaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	space, refs, err := s.spaceContext(ctx, uow, userId, req.SpaceId)
	if err != nil {
		return nil, err
	}

	answer, err := flows.ChatInSpace(ctx, s.llmProvider, space.Name, refs, toLLMHistory(req.History), req.Question)
	if err != nil {
		return nil, err
	}

	res := &dto.ChatInSpaceResponse{Answer: answer}

	if req.SaveAsNote {
		note := &entity.Bookmark{
			ItemBase: entity.ItemBase{
				Id:        uuid.New(),
				UserId:    userId,
				SpaceId:   space.Id,
				CreatedAt: time.Now(),
			},
			Title:   noteTitle(req.Question),
			URL:     constant.ChatNoteURLScheme + uuid.New().String(),
			Summary: fmt.Sprintf("Q: %s\n\nA: %s", req.Question, answer),
		}
		if _, err := uow.SpaceItemRepository().Create(ctx, note); err != nil {
			return nil, err
		}
		res.SavedItemId = &note.Id
		s.publishEmbedJob(ctx, note.Id)
		s.publishItemsChanged(ctx, userId, space.Id)
	}

	return res, nil
}

// GenerateWorkspace runs the generator flow and materializes its plan into
// real spaces, folders and bookmarks. Embeddings and missing summaries are
// filled in by the background pipeline afterwards.
func (s *aiService) GenerateWorkspace(ctx context.Context, userId uuid.UUID, req *dto.GenerateWorkspaceRequest) (*dto.GenerateWorkspaceResponse, error) {
	var searcher flows.CatalogSearcher
	if req.UseCatalog {
		searcher = &catalogSearcher{uowFactory: s.uowFactory}
	}

	plan, err := flows.GenerateWorkspace(ctx, s.llmProvider, searcher, req.Prompt)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	res := &dto.GenerateWorkspaceResponse{}

	for _, planned := range plan.Spaces {
		space := &entity.Space{
			Id:        uuid.New(),
			UserId:    userId,
			Name:      planned.Name,
			Icon:      planned.Icon,
			CreatedAt: time.Now(),
		}
		if planned.Category != "" {
			category := planned.Category
			space.Category = &category
		}
		if err := uow.SpaceRepository().Create(ctx, space); err != nil {
			return nil, err
		}
		res.SpaceIds = append(res.SpaceIds, space.Id)
		res.Spaces++

		for _, b := range planned.Bookmarks {
			if err := s.createPlannedBookmark(ctx, uow, userId, space.Id, nil, b); err != nil {
				return nil, err
			}
			res.Items++
		}

		for _, plannedFolder := range planned.Folders {
			folder := &entity.Folder{
				ItemBase: entity.ItemBase{
					Id:        uuid.New(),
					UserId:    userId,
					SpaceId:   space.Id,
					CreatedAt: time.Now(),
				},
				Name: plannedFolder.Name,
			}
			if _, err := uow.SpaceItemRepository().Create(ctx, folder); err != nil {
				return nil, err
			}
			res.Folders++

			for _, b := range plannedFolder.Bookmarks {
				parentId := folder.Id
				if err := s.createPlannedBookmark(ctx, uow, userId, space.Id, &parentId, b); err != nil {
					return nil, err
				}
				res.Items++
			}
		}
	}

	s.spaceCache.Invalidate(userId)
	s.publishSpacesChanged(ctx, userId)

	return res, nil
}

func (s *aiService) DevelopIdea(ctx context.Context, req *dto.DevelopIdeaRequest) (*dto.DevelopIdeaResponse, error) {
	result, err := flows.DevelopIdea(ctx, s.llmProvider, toLLMHistory(req.History))
	if err != nil {
		return nil, err
	}

	res := &dto.DevelopIdeaResponse{
		Reply:      result.Reply,
		IsFinished: result.IsFinished,
	}
	if result.Payload != nil {
		res.Payload = &dto.DevelopIdeaPayload{
			SpaceName:      result.Payload.SpaceName,
			Icon:           result.Payload.Icon,
			Tasks:          result.Payload.Tasks,
			SuggestedTools: result.Payload.SuggestedTools,
		}
	}
	return res, nil
}

func (s *aiService) TextTool(ctx context.Context, req *dto.TextToolRequest) (*dto.TextToolResponse, error) {
	result, err := flows.TextTool(ctx, s.llmProvider, req.Action, req.Text)
	if err != nil {
		return nil, err
	}
	return &dto.TextToolResponse{Result: result}, nil
}

// --- helpers ---

func (s *aiService) categorizeURL(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, url string) (uuid.UUID, error) {
	spaces, err := uow.SpaceRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return uuid.Nil, err
	}

	candidates := make([]flows.SpaceCandidate, 0, len(spaces))
	for _, space := range spaces {
		c := flows.SpaceCandidate{Id: space.Id.String(), Name: space.Name}
		if space.Category != nil {
			c.Category = *space.Category
		}
		candidates = append(candidates, c)
	}

	chosen, err := flows.Categorize(ctx, s.llmProvider, url, candidates)
	if err != nil {
		return uuid.Nil, err
	}

	spaceId, err := uuid.Parse(chosen)
	if err != nil {
		return uuid.Nil, fmt.Errorf("categorize returned a malformed space id: %w", err)
	}
	return spaceId, nil
}

// spaceContext loads a space and all bookmarks inside it (folder children
// included) as flow context.
func (s *aiService) spaceContext(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, spaceId uuid.UUID) (*entity.Space, []flows.BookmarkRef, error) {
	space, err := uow.SpaceRepository().FindOne(ctx,
		specification.ByID{ID: spaceId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, nil, err
	}
	if space == nil {
		return nil, nil, serverutils.ErrNotFound
	}

	items, err := uow.SpaceItemRepository().FindAll(ctx,
		specification.BySpaceID{SpaceID: spaceId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, nil, err
	}

	refs := make([]flows.BookmarkRef, 0, len(items))
	for _, item := range items {
		b, ok := item.(*entity.Bookmark)
		if !ok {
			continue
		}
		refs = append(refs, flows.BookmarkRef{
			Id:      b.Id.String(),
			Title:   b.Title,
			Url:     b.URL,
			Summary: b.Summary,
		})
	}

	return space, refs, nil
}

func (s *aiService) createPlannedBookmark(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, spaceId uuid.UUID, parentId *uuid.UUID, planned flows.PlannedBookmark) error {
	bookmark := &entity.Bookmark{
		ItemBase: entity.ItemBase{
			Id:        uuid.New(),
			UserId:    userId,
			SpaceId:   spaceId,
			ParentId:  parentId,
			CreatedAt: time.Now(),
		},
		Title:   planned.Title,
		URL:     planned.Url,
		Summary: planned.Summary,
	}

	if _, err := uow.SpaceItemRepository().Create(ctx, bookmark); err != nil {
		return err
	}

	s.publishEmbedJob(ctx, bookmark.Id)
	if bookmark.Summary == "" {
		s.publishSummarizeJob(ctx, bookmark.Id)
	}
	return nil
}

func (s *aiService) publishEmbedJob(ctx context.Context, itemId uuid.UUID) {
	payload, err := json.Marshal(dto.PublishEmbedBookmarkMessage{ItemId: itemId})
	if err != nil {
		return
	}
	if err := s.embedPublisher.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish embed job for item %s: %v\n", itemId, err)
	}
}

func (s *aiService) publishSummarizeJob(ctx context.Context, itemId uuid.UUID) {
	payload, err := json.Marshal(dto.PublishSummarizeBookmarkMessage{ItemId: itemId})
	if err != nil {
		return
	}
	if err := s.summarizePublisher.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish summarize job for item %s: %v\n", itemId, err)
	}
}

func (s *aiService) publishItemsChanged(ctx context.Context, userId uuid.UUID, spaceId uuid.UUID) {
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

func (s *aiService) publishSpacesChanged(ctx context.Context, userId uuid.UUID) {
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

// toLLMHistory maps wire messages to provider messages, normalizing the
// assistant role.
func toLLMHistory(history []dto.ChatMessageDTO) []llm.Message {
	messages := make([]llm.Message, 0, len(history))
	for _, m := range history {
		role := m.Role
		if role == "assistant" {
			role = constant.ChatMessageRoleModel
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Content})
	}
	return messages
}

// normalizeURL makes bare domains navigable.
func normalizeURL(input string) string {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	return "https://" + trimmed
}

// titleFromURL derives a readable default title from a URL.
func titleFromURL(url string) string {
	title := strings.TrimPrefix(url, "https://")
	title = strings.TrimPrefix(title, "http://")
	title = strings.TrimPrefix(title, "www.")
	if idx := strings.Index(title, "/"); idx > 0 {
		title = title[:idx]
	}
	return title
}

// noteTitle derives a title from the first line of a note body.
func noteTitle(text string) string {
	line := strings.TrimSpace(text)
	if idx := strings.Index(line, "\n"); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}
	runes := []rune(line)
	if len(runes) > 60 {
		return string(runes[:60]) + "…"
	}
	return line
}

// catalogSearcher exposes the shared catalog to the workspace generator with
// a hard result cap.
type catalogSearcher struct {
	uowFactory unitofwork.RepositoryFactory
}

func (c *catalogSearcher) Search(ctx context.Context, keyword string, limit int) ([]flows.CatalogEntry, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.NotDeletedFlag{},
		specification.Pagination{Limit: limit},
		specification.OrderBy{Field: "name"},
	}
	// A single-word keyword narrows by name; free-text prompts fall back to a
	// capped slice of the whole catalog for the model to pick from.
	if kw := strings.TrimSpace(keyword); kw != "" && !strings.ContainsAny(kw, " \n") {
		specs = append(specs, specification.NameContains{Keyword: kw})
	}

	tools, err := uow.AiToolRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	entries := make([]flows.CatalogEntry, 0, len(tools))
	for _, tool := range tools {
		entries = append(entries, flows.CatalogEntry{
			Name:     tool.Name,
			Link:     tool.Link,
			Category: tool.Category,
			Summary:  tool.Summary.Summary,
		})
	}
	return entries, nil
}
