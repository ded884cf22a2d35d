package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"devzen-be/internal/dto"
	"devzen-be/internal/entity"
	"devzen-be/internal/repository/specification"
	"devzen-be/internal/repository/unitofwork"
	"devzen-be/pkg/embedding"
	"devzen-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type embedConsumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewEmbedConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &embedConsumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *embedConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *embedConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedBookmarkMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing embedding for ItemId: %s", payload.ItemId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.SpaceItemRepository().FindOne(ctx, specification.ByID{ID: payload.ItemId})
	if err != nil {
		log.Printf("[ERROR] Failed to get item %s: %v", payload.ItemId, err)
		msg.Nack()
		return
	}
	if item == nil {
		log.Printf("[ERROR] Item not found: %s", payload.ItemId)
		msg.Ack() // Item deleted? Ack.
		return
	}

	bookmark, ok := item.(*entity.Bookmark)
	if !ok {
		// Only bookmarks carry searchable content.
		msg.Ack()
		return
	}

	content := fmt.Sprintf(`Bookmark Title: %s
URL: %s

%s`,
		bookmark.Title,
		bookmark.URL,
		bookmark.Summary,
	)

	// ChunkSize 1500 chars with 200 overlap keeps chunks well inside the
	// embedding model's context window.
	chunks := utils.SplitText(content, 1500, 200)

	var newEmbeddings []*entity.BookmarkEmbedding
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to generate embedding for chunk %d of item %s: %v", i, payload.ItemId, err)
			msg.Nack()
			return
		}

		newEmbeddings = append(newEmbeddings, &entity.BookmarkEmbedding{
			Id:             uuid.New(),
			Document:       chunk,
			EmbeddingValue: pgvector.NewVector(res.Embedding.Values),
			ItemId:         bookmark.Id,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.BookmarkEmbeddingRepository().DeleteByItemId(ctx, bookmark.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old embeddings: %v", err)
		msg.Nack()
		return
	}

	if len(newEmbeddings) > 0 {
		if err := uow.BookmarkEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
			log.Printf("[ERROR] Failed to create bulk embeddings: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Bookmark embedded: %d chunks for ItemId: %s", len(newEmbeddings), payload.ItemId)
	msg.Ack()
}
