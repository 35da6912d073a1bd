package event

import (
	"time"

	"github.com/google/uuid"

	"dmchat/domain/chat"
)

// Topic scopes fan-out delivery. Either the shared presence topic or one
// conversation id.
type Topic string

// TopicPresence receives every PresenceChanged event.
const TopicPresence Topic = "presence"

// TopicFor returns the delivery topic of one conversation.
func TopicFor(id chat.ConversationID) Topic {
	return Topic(id)
}

type DomainEvent interface {
	EventTopic() Topic
}

// MessageAppended is emitted after a message has been committed to the
// conversation store. Storage is authoritative; this event is best-effort.
type MessageAppended struct {
	ID             uuid.UUID
	ConversationID chat.ConversationID
	SenderID       string
	Body           string
	Lang           string
	Seq            uint64
	At             time.Time
}

func (m MessageAppended) EventTopic() Topic {
	return TopicFor(m.ConversationID)
}

// PresenceChanged is emitted after a presence entry flipped online or offline.
type PresenceChanged struct {
	UserID string
	Online bool
	At     time.Time
}

func (p PresenceChanged) EventTopic() Topic {
	return TopicPresence
}
