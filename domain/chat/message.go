// Package chat contains core concepts of the direct-message system.
// Messages are immutable once stored; ordering within a conversation is
// the per-conversation sequence number assigned at append time.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat message.
type Message struct {
	ID             uuid.UUID // unique identifier
	ConversationID ConversationID
	SenderID       string
	Body           string
	Lang           string // detected language code, empty when detection failed
	Seq            uint64 // strictly increasing per conversation, never reused
	SentAt         time.Time
}
