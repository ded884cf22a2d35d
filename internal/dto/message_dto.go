package dto

import (
	"github.com/google/uuid"
)

// PublishEmbedBookmarkMessage is the payload of the EMBED_BOOKMARK topic.
type PublishEmbedBookmarkMessage struct {
	ItemId uuid.UUID `json:"item_id"`
}

// PublishSummarizeBookmarkMessage is the payload of the SUMMARIZE_BOOKMARK topic.
type PublishSummarizeBookmarkMessage struct {
	ItemId uuid.UUID `json:"item_id"`
}
