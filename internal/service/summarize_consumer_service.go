package service

import (
	"context"
	"encoding/json"
	"log"

	"devzen-be/internal/constant"
	"devzen-be/internal/dto"
	"devzen-be/internal/entity"
	"devzen-be/internal/repository/specification"
	"devzen-be/internal/repository/unitofwork"
	"devzen-be/pkg/flows"
	"devzen-be/pkg/llm"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type summarizeConsumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	llmProvider    llm.LLMProvider
	embedPublisher IPublisherService
}

func NewSummarizeConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	embedPublisher IPublisherService,
) IConsumerService {
	return &summarizeConsumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		llmProvider:    llmProvider,
		embedPublisher: embedPublisher,
	}
}

func (cs *summarizeConsumerService) Consume(ctx context.Context) error {
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

func (cs *summarizeConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishSummarizeBookmarkMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack()
		return
	}

	log.Printf("[INFO] Summarizing bookmark ItemId: %s", payload.ItemId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.SpaceItemRepository().FindOne(ctx, specification.ByID{ID: payload.ItemId})
	if err != nil {
		log.Printf("[ERROR] Failed to get item %s: %v", payload.ItemId, err)
		msg.Nack()
		return
	}
	if item == nil {
		msg.Ack()
		return
	}

	bookmark, ok := item.(*entity.Bookmark)
	if !ok {
		msg.Ack()
		return
	}
	if bookmark.Summary != "" {
		// Someone already filled it in, nothing to do.
		msg.Ack()
		return
	}

	summary, err := flows.Summarize(ctx, cs.llmProvider, bookmark.URL)
	if err != nil {
		log.Printf("[WARN] Summarization failed for %s, storing fallback: %v", bookmark.URL, err)
		summary = constant.FallbackSummary
	}

	bookmark.Summary = summary
	if _, err := uow.SpaceItemRepository().Update(ctx, bookmark); err != nil {
		log.Printf("[ERROR] Failed to update bookmark %s: %v", bookmark.Id, err)
		msg.Nack()
		return
	}

	// The summary is part of the embedded document, re-embed with it.
	embedPayload, _ := json.Marshal(dto.PublishEmbedBookmarkMessage{ItemId: bookmark.Id})
	if err := cs.embedPublisher.Publish(ctx, embedPayload); err != nil {
		log.Printf("[WARN] Failed to publish embed job for %s: %v", bookmark.Id, err)
	}

	log.Printf("[SUCCESS] Bookmark summarized: %s", bookmark.Id)
	msg.Ack()
}
