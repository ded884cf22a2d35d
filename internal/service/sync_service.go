package service

import (
	"context"
	"strings"

	"devzen-be/internal/pkg/logger"
	"devzen-be/internal/websocket"
	"devzen-be/pkg/events"
	pkgNats "devzen-be/pkg/nats"

	"github.com/google/uuid"
)

// ISyncService bridges domain events from the NATS bus to connected
// websocket clients so every device of a user sees changes live.
type ISyncService interface {
	Start() error
}

type syncService struct {
	subscriber *pkgNats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewSyncService(subscriber *pkgNats.Subscriber, hub *websocket.Hub, log logger.ILogger) ISyncService {
	return &syncService{
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

func (s *syncService) Start() error {
	return s.subscriber.Subscribe("events.>", "sync-worker", s.handleEvent)
}

func (s *syncService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	rawUserId, ok := payload["user_id"].(string)
	if !ok {
		// Events without a user target are not pushed to clients.
		return nil
	}
	userId, err := uuid.Parse(rawUserId)
	if err != nil {
		s.logger.Warn("SyncService", "Event carries invalid user_id", map[string]interface{}{"user_id": rawUserId})
		return nil
	}

	// The subscriber reports the full subject, strip the stream prefix back
	// to the domain event type.
	eventType := strings.TrimPrefix(event.EventType(), "events.")

	s.hub.Send(userId, eventType, payload)
	return nil
}
