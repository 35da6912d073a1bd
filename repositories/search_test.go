package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"dmchat/domain/chat"
)

func openTestIndex(t *testing.T) *bluge.Writer {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return writer
}

func indexedMessage(id chat.ConversationID, seq uint64, sender, body string) chat.Message {
	return chat.Message{
		ID:             uuid.New(),
		ConversationID: id,
		SenderID:       sender,
		Body:           body,
		Lang:           "en",
		Seq:            seq,
		SentAt:         time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestSearchRepository_Finds_Messages_By_Body(t *testing.T) {
	req := require.New(t)
	repository := NewSearchRepository(openTestIndex(t), slog.Default(), 50)
	conversationID := chat.ConversationID("alice:bob")

	req.NoError(repository.Index(indexedMessage(conversationID, 1, "alice", "see you at the harbor")))
	req.NoError(repository.Index(indexedMessage(conversationID, 2, "bob", "which harbor exactly")))
	req.NoError(repository.Index(indexedMessage(conversationID, 3, "alice", "the northern one")))

	matches, err := repository.Search(context.Background(), conversationID, "harbor")
	req.NoError(err)
	req.Len(matches, 2)
	req.Equal(uint64(1), matches[0].Seq)
	req.Equal(uint64(2), matches[1].Seq)
	req.Equal("see you at the harbor", matches[0].Body)
	req.Equal("bob", matches[1].SenderID)
}

func TestSearchRepository_Matching_Is_Case_Insensitive(t *testing.T) {
	req := require.New(t)
	repository := NewSearchRepository(openTestIndex(t), slog.Default(), 50)
	conversationID := chat.ConversationID("alice:bob")

	req.NoError(repository.Index(indexedMessage(conversationID, 1, "alice", "Meeting moved to Tuesday")))

	matches, err := repository.Search(context.Background(), conversationID, "TUESDAY")
	req.NoError(err)
	req.Len(matches, 1)
	req.Equal("Meeting moved to Tuesday", matches[0].Body)
}

func TestSearchRepository_Scopes_Results_To_One_Conversation(t *testing.T) {
	req := require.New(t)
	repository := NewSearchRepository(openTestIndex(t), slog.Default(), 50)

	req.NoError(repository.Index(indexedMessage("alice:bob", 1, "alice", "lunch tomorrow")))
	req.NoError(repository.Index(indexedMessage("alice:carol", 1, "carol", "lunch sounds great")))

	matches, err := repository.Search(context.Background(), "alice:bob", "lunch")
	req.NoError(err)
	req.Len(matches, 1)
	req.Equal(chat.ConversationID("alice:bob"), matches[0].ConversationID)
	req.Equal("alice", matches[0].SenderID)
}

func TestSearchRepository_Reindexing_Same_Sequence_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	repository := NewSearchRepository(openTestIndex(t), slog.Default(), 50)
	conversationID := chat.ConversationID("alice:bob")

	message := indexedMessage(conversationID, 1, "alice", "draft wording")
	req.NoError(repository.Index(message))

	// A re-delivered event carries the final body; the document is replaced
	message.Body = "final wording"
	req.NoError(repository.Index(message))

	matches, err := repository.Search(context.Background(), conversationID, "wording")
	req.NoError(err)
	req.Len(matches, 1)
	req.Equal("final wording", matches[0].Body)
}

func TestSearchRepository_No_Match_Returns_Empty(t *testing.T) {
	req := require.New(t)
	repository := NewSearchRepository(openTestIndex(t), slog.Default(), 50)
	conversationID := chat.ConversationID("alice:bob")

	req.NoError(repository.Index(indexedMessage(conversationID, 1, "alice", "nothing relevant here")))

	matches, err := repository.Search(context.Background(), conversationID, "submarine")
	req.NoError(err)
	req.Empty(matches)
}

func TestSearchRepository_Honors_Result_Limit(t *testing.T) {
	req := require.New(t)
	repository := NewSearchRepository(openTestIndex(t), slog.Default(), 2)
	conversationID := chat.ConversationID("alice:bob")

	for seq := uint64(1); seq <= 5; seq++ {
		req.NoError(repository.Index(indexedMessage(conversationID, seq, "alice", "repeated topic")))
	}

	matches, err := repository.Search(context.Background(), conversationID, "topic")
	req.NoError(err)
	req.Len(matches, 2)
}
