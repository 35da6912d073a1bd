package grpc

import (
	"context"

	"dmchat/domain/event"
)

// Sink bridges the fan-out and one connected subscriber stream. Consume is
// called by the fan-out worker; the stream handler owns the channel and
// drains it towards the client.
type Sink struct {
	Events chan event.DomainEvent
}

func NewGrpcSink(bufferSize int) *Sink {
	return &Sink{Events: make(chan event.DomainEvent, bufferSize)}
}

// Consume redirects the event into the subscriber's channel. A full channel
// means a client too slow to keep up: the event is dropped and the client
// resynchronizes through a history pull.
func (s *Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
