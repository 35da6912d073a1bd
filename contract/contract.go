//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"dmchat/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself.
// Panic recovery and restarts belong to the supervisor.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision, avoiding manual naming in the
// Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives fan-out deliveries. Consume must respect ctx: a slow
// sink is cut off by the fan-out delivery timeout and simply misses the
// event (clients recover through the since_sequence pull path).
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry maps topics to the sinks currently interested in them.
type IRegistry interface {
	GetSinksForTopic(topic event.Topic) []EventSink
	Subscribe(topic event.Topic, sink EventSink) Subscription
	Unsubscribe(sub Subscription)
}

// Subscription is the handle returned by Subscribe. Opaque outside the
// registry implementation.
type Subscription struct {
	ID    string
	Topic event.Topic
}
