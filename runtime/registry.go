// Package runtime handles event propagation and the supervision of
// background workers. It carries no domain rules.
package runtime

import (
	"sync"

	"github.com/google/uuid"

	"dmchat/contract"
	"dmchat/domain/event"
)

// Registry maps topics to the sinks currently subscribed to them. A topic
// is either the shared presence topic or one conversation id.
//
// Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu          sync.RWMutex
	subscribers map[event.Topic]map[string]contract.EventSink
}

func NewRegistry() *Registry {
	return &Registry{
		subscribers: make(map[event.Topic]map[string]contract.EventSink),
	}
}

// GetSinksForTopic retrieves all sinks of a topic. Returns nil when the
// topic has no subscribers.
func (r *Registry) GetSinksForTopic(topic event.Topic) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.subscribers[topic]
	if !ok {
		return nil
	}
	sinks := make([]contract.EventSink, 0, len(members))
	for _, sink := range members {
		sinks = append(sinks, sink)
	}
	return sinks
}

// Subscribe registers a sink for a topic and returns the handle used to
// remove it. The topic entry is initialized on the fly.
func (r *Registry) Subscribe(topic event.Topic, sink contract.EventSink) contract.Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subscribers[topic]; !ok {
		r.subscribers[topic] = make(map[string]contract.EventSink)
	}
	sub := contract.Subscription{ID: uuid.NewString(), Topic: topic}
	r.subscribers[topic][sub.ID] = sink
	return sub
}

// Unsubscribe removes a subscription and drops empty topic entries so the
// map does not leak over time.
func (r *Registry) Unsubscribe(sub contract.Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.subscribers[sub.Topic]
	if !ok {
		return
	}
	delete(members, sub.ID)
	if len(members) == 0 {
		delete(r.subscribers, sub.Topic)
	}
}

// CountSubscribers reports the number of active subscriptions, all topics
// included. Used by telemetry.
func (r *Registry) CountSubscribers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, members := range r.subscribers {
		total += len(members)
	}
	return total
}
