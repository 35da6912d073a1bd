package runtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"dmchat/domain/chat"
	"dmchat/domain/event"
)

type recordingSink struct {
	events []event.DomainEvent
}

func (s *recordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.events = append(s.events, e)
	return nil
}

func TestRegistry_Subscribe_One_Topic_One_Sink(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	topic := event.TopicFor(chat.ConversationID("alice:bob"))
	sink := &recordingSink{}

	// Given no subscription exists
	req.Nil(registry.GetSinksForTopic(topic))

	// When a sink subscribes a topic
	sub := registry.Subscribe(topic, sink)

	// Then
	req.Equal(topic, sub.Topic)
	req.NotEmpty(sub.ID)
	req.Len(registry.GetSinksForTopic(topic), 1)
	req.Equal(1, registry.CountSubscribers())
}

func TestRegistry_Subscribe_One_Topic_Multiple_Sinks(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	topic := event.TopicPresence
	sink1 := &recordingSink{}
	sink2 := &recordingSink{}

	// When two sinks subscribe the same topic
	registry.Subscribe(topic, sink1)
	registry.Subscribe(topic, sink2)

	// Then both are returned
	req.Len(registry.GetSinksForTopic(topic), 2)
	req.Equal(2, registry.CountSubscribers())
}

func TestRegistry_Topics_Are_Isolated(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	presenceSink := &recordingSink{}
	conversationSink := &recordingSink{}

	registry.Subscribe(event.TopicPresence, presenceSink)
	registry.Subscribe(event.TopicFor(chat.ConversationID("alice:bob")), conversationSink)

	// A conversation topic never sees the presence subscribers
	req.Len(registry.GetSinksForTopic(event.TopicFor(chat.ConversationID("alice:bob"))), 1)
	req.Len(registry.GetSinksForTopic(event.TopicPresence), 1)
	req.Nil(registry.GetSinksForTopic(event.TopicFor(chat.ConversationID("alice:carol"))))
}

func TestRegistry_Unsubscribe_Removes_Empty_Topic(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	topic := event.TopicFor(chat.ConversationID("alice:bob"))
	sink := &recordingSink{}

	// Given a subscription
	sub := registry.Subscribe(topic, sink)

	// When it is removed
	registry.Unsubscribe(sub)

	// Then no sink is left and the topic entry is gone
	req.Nil(registry.GetSinksForTopic(topic))
	req.Equal(0, registry.CountSubscribers())

	// And a second unsubscribe is harmless
	registry.Unsubscribe(sub)
}

func TestRegistry_Unsubscribe_Keeps_Other_Sinks(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	topic := event.TopicPresence
	sink1 := &recordingSink{}
	sink2 := &recordingSink{}

	sub1 := registry.Subscribe(topic, sink1)
	registry.Subscribe(topic, sink2)

	// When one of two sinks unsubscribes
	registry.Unsubscribe(sub1)

	// Then the other keeps receiving
	req.Len(registry.GetSinksForTopic(topic), 1)
}
