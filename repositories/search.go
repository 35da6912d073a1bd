//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_search_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"

	"dmchat/domain/chat"
)

type ISearchRepository interface {
	Index(message chat.Message) error
	Search(ctx context.Context, id chat.ConversationID, query string) ([]chat.Message, error)
}

// SearchRepository maintains a Bluge full-text index over message bodies.
// The index is a derived view fed from the fan-out: it is best-effort and
// can lag the Badger store, which stays authoritative.
type SearchRepository struct {
	writer *bluge.Writer
	log    *slog.Logger
	limit  int
}

func NewSearchRepository(writer *bluge.Writer, log *slog.Logger, limit int) *SearchRepository {
	return &SearchRepository{writer: writer, log: log, limit: limit}
}

// Index upserts one message document, keyed by conversation id and sequence
// so re-deliveries of the same event stay idempotent.
func (r *SearchRepository) Index(message chat.Message) error {
	docID := fmt.Sprintf("%s#%d", message.ConversationID, message.Seq)
	doc := bluge.NewDocument(docID).
		AddField(bluge.NewKeywordField("conversation_id", string(message.ConversationID))).
		AddField(bluge.NewTextField("body", message.Body).StoreValue()).
		AddField(bluge.NewKeywordField("sender_id", message.SenderID).StoreValue()).
		AddField(bluge.NewKeywordField("message_id", message.ID.String()).StoreValue()).
		AddField(bluge.NewKeywordField("lang", message.Lang).StoreValue()).
		AddField(bluge.NewNumericField("sequence", float64(message.Seq))).
		AddField(bluge.NewStoredOnlyField("sequence_raw", []byte(strconv.FormatUint(message.Seq, 10)))).
		AddField(bluge.NewStoredOnlyField("sent_at_raw", []byte(strconv.FormatInt(message.SentAt.UnixNano(), 10))))

	return r.writer.Update(doc.ID(), doc)
}

// Search returns the matching messages of one conversation in sequence order.
func (r *SearchRepository) Search(ctx context.Context, id chat.ConversationID, query string) ([]chat.Message, error) {
	reader, err := r.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			r.log.Warn("Failed to close index reader", "error", err)
		}
	}()

	boolQuery := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(string(id)).SetField("conversation_id")).
		AddMust(bluge.NewMatchQuery(query).SetField("body"))

	request := bluge.NewTopNSearch(r.limit, boolQuery).SortBy([]string{"sequence"})
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	var messages []chat.Message
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}

		message := chat.Message{ConversationID: id}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "body":
				message.Body = string(value)
			case "sender_id":
				message.SenderID = string(value)
			case "lang":
				message.Lang = string(value)
			case "message_id":
				if parsed, err := uuid.Parse(string(value)); err == nil {
					message.ID = parsed
				}
			case "sequence_raw":
				if seq, err := strconv.ParseUint(string(value), 10, 64); err == nil {
					message.Seq = seq
				}
			case "sent_at_raw":
				if nanos, err := strconv.ParseInt(string(value), 10, 64); err == nil {
					message.SentAt = time.Unix(0, nanos).UTC()
				}
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}
