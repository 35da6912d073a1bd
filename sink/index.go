package sink

import (
	"context"
	"fmt"
	"log/slog"

	"dmchat/domain/event"
	"dmchat/repositories"
)

// IndexSink feeds the full-text search index from committed messages. The
// index is a derived view; an indexing failure is logged, never propagated
// back into the write path.
type IndexSink struct {
	search repositories.ISearchRepository
	log    *slog.Logger
}

func NewIndexSink(search repositories.ISearchRepository, log *slog.Logger) IndexSink {
	return IndexSink{search: search, log: log}
}

func (s IndexSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageAppended:
		return s.search.Index(fromEvent(evt))
	default:
		s.log.Debug(fmt.Sprintf("Not an indexable event : %v", evt))
		return nil
	}
}
