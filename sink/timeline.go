// Package sink contains permanent event consumers fed by the fan-out:
// projections and derived views that follow the authoritative store.
package sink

import (
	"context"
	"sync"

	"dmchat/domain/chat"
	"dmchat/domain/event"
)

// Timeline keeps the most recent messages of every conversation in memory,
// a cheap "recent activity" view for debugging and telemetry. It is a
// projection: losing it loses nothing.
type Timeline struct {
	mu     sync.RWMutex
	keep   int
	recent map[chat.ConversationID][]chat.Message
}

func NewTimeline(keep int) *Timeline {
	return &Timeline{
		keep:   keep,
		recent: make(map[chat.ConversationID][]chat.Message),
	}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	evt, ok := e.(event.MessageAppended)
	if !ok {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	messages := append(t.recent[evt.ConversationID], fromEvent(evt))
	if len(messages) > t.keep {
		messages = messages[len(messages)-t.keep:]
	}
	t.recent[evt.ConversationID] = messages
	return nil
}

// Recent returns the kept tail of one conversation, newest last.
func (t *Timeline) Recent(id chat.ConversationID) []chat.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]chat.Message(nil), t.recent[id]...)
}

// Conversations lists every conversation currently tracked by the projection.
func (t *Timeline) Conversations() []chat.ConversationID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]chat.ConversationID, 0, len(t.recent))
	for id := range t.recent {
		ids = append(ids, id)
	}
	return ids
}

func fromEvent(evt event.MessageAppended) chat.Message {
	return chat.Message{
		ID:             evt.ID,
		ConversationID: evt.ConversationID,
		SenderID:       evt.SenderID,
		Body:           evt.Body,
		Lang:           evt.Lang,
		Seq:            evt.Seq,
		SentAt:         evt.At,
	}
}
