package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"dmchat/domain/chat"
	"dmchat/errors"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newMessage(id chat.ConversationID, sender, body string) chat.Message {
	return chat.Message{
		ID:             uuid.New(),
		ConversationID: id,
		SenderID:       sender,
		Body:           body,
		SentAt:         time.Now().UTC(),
	}
}

func TestConversationRepository_Append_Assigns_Increasing_Sequences(t *testing.T) {
	req := require.New(t)
	repository := NewConversationRepository(openTestDB(t), slog.Default())
	conversationID := chat.ConversationID("alice:bob")

	// When three messages are appended
	for i := 1; i <= 3; i++ {
		stored, err := repository.AppendMessage(newMessage(conversationID, "alice", fmt.Sprintf("message %d", i)))
		req.NoError(err)
		// Then each gets the next sequence number
		req.Equal(uint64(i), stored.Seq)
	}

	// And history returns them in append order
	messages, err := repository.MessagesSince(context.Background(), conversationID, 0)
	req.NoError(err)
	req.Len(messages, 3)
	for i, message := range messages {
		req.Equal(uint64(i+1), message.Seq)
		req.Equal(fmt.Sprintf("message %d", i+1), message.Body)
	}
}

func TestConversationRepository_Rejects_Blank_Body(t *testing.T) {
	req := require.New(t)
	repository := NewConversationRepository(openTestDB(t), slog.Default())
	conversationID := chat.ConversationID("alice:bob")

	for _, body := range []string{"", "   ", "\t\n"} {
		_, err := repository.AppendMessage(newMessage(conversationID, "alice", body))
		req.ErrorIs(err, errors.ErrEmptyBody)
	}

	// And nothing was stored
	messages, err := repository.MessagesSince(context.Background(), conversationID, 0)
	req.NoError(err)
	req.Empty(messages)
}

func TestConversationRepository_MessagesSince_Is_Incremental(t *testing.T) {
	req := require.New(t)
	repository := NewConversationRepository(openTestDB(t), slog.Default())
	conversationID := chat.ConversationID("alice:bob")

	total := 5
	for i := 1; i <= total; i++ {
		_, err := repository.AppendMessage(newMessage(conversationID, "alice", fmt.Sprintf("message %d", i)))
		req.NoError(err)
	}

	// history(conv, k) returns exactly the messages with sequence > k
	messages, err := repository.MessagesSince(context.Background(), conversationID, 3)
	req.NoError(err)
	req.Len(messages, 2)
	req.Equal(uint64(4), messages[0].Seq)
	req.Equal(uint64(5), messages[1].Seq)

	// And is empty once the cursor reaches the end
	messages, err = repository.MessagesSince(context.Background(), conversationID, uint64(total))
	req.NoError(err)
	req.Empty(messages)

	messages, err = repository.MessagesSince(context.Background(), conversationID, uint64(total+10))
	req.NoError(err)
	req.Empty(messages)

	// And the largest possible cursor cannot wrap around to the beginning
	messages, err = repository.MessagesSince(context.Background(), conversationID, math.MaxUint64)
	req.NoError(err)
	req.Empty(messages)
}

func TestConversationRepository_Conversations_Are_Isolated(t *testing.T) {
	req := require.New(t)
	repository := NewConversationRepository(openTestDB(t), slog.Default())

	_, err := repository.AppendMessage(newMessage("alice:bob", "alice", "for bob"))
	req.NoError(err)
	_, err = repository.AppendMessage(newMessage("alice:carol", "alice", "for carol"))
	req.NoError(err)

	// Each conversation has its own sequence starting at 1
	messages, err := repository.MessagesSince(context.Background(), "alice:carol", 0)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal(uint64(1), messages[0].Seq)
	req.Equal("for carol", messages[0].Body)
}

func TestConversationRepository_Sequence_Survives_Reopen(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	conversationID := chat.ConversationID("alice:bob")

	first := NewConversationRepository(db, slog.Default())
	for i := 1; i <= 3; i++ {
		_, err := first.AppendMessage(newMessage(conversationID, "alice", fmt.Sprintf("message %d", i)))
		req.NoError(err)
	}

	// A fresh repository over the same DB recovers the counter from disk
	second := NewConversationRepository(db, slog.Default())
	stored, err := second.AppendMessage(newMessage(conversationID, "bob", "message 4"))
	req.NoError(err)
	req.Equal(uint64(4), stored.Seq)
}

func TestConversationRepository_MessagesSince_Honors_Cancellation(t *testing.T) {
	req := require.New(t)
	repository := NewConversationRepository(openTestDB(t), slog.Default())
	conversationID := chat.ConversationID("alice:bob")

	for i := 1; i <= 10; i++ {
		_, err := repository.AppendMessage(newMessage(conversationID, "alice", fmt.Sprintf("message %d", i)))
		req.NoError(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repository.MessagesSince(ctx, conversationID, 0)
	req.ErrorIs(err, context.Canceled)
}

// Ten concurrent senders, one hundred messages each: the resulting sequence
// must be exactly 1..1000 with no duplicate and no gap.
func TestConversationRepository_Concurrent_Appends_Never_Corrupt_Sequences(t *testing.T) {
	req := require.New(t)
	repository := NewConversationRepository(openTestDB(t), slog.Default())
	conversationID := chat.ConversationID("alice:bob")

	const senders = 10
	const perSender = 100

	var wg sync.WaitGroup
	errs := make(chan error, senders*perSender)
	for s := 0; s < senders; s++ {
		wg.Add(1)
		go func(sender int) {
			defer wg.Done()
			for i := 0; i < perSender; i++ {
				_, err := repository.AppendMessage(newMessage(conversationID,
					fmt.Sprintf("sender-%d", sender), fmt.Sprintf("message %d", i)))
				if err != nil {
					errs <- err
				}
			}
		}(s)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		req.NoError(err)
	}

	messages, err := repository.MessagesSince(context.Background(), conversationID, 0)
	req.NoError(err)
	req.Len(messages, senders*perSender)
	for i, message := range messages {
		req.Equal(uint64(i+1), message.Seq)
	}
}
