package test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"dmchat/contract"
	"dmchat/domain/chat"
	"dmchat/domain/event"
	"dmchat/moderation"
	"dmchat/repositories"
	"dmchat/runtime"
	"dmchat/runtime/workers"
	"dmchat/services"
	"dmchat/sink"
)

// waitingSink records deliveries and signals once it got the expected count.
type waitingSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
	want   int
	done   chan struct{}
}

func newWaitingSink(want int) *waitingSink {
	return &waitingSink{want: want, done: make(chan struct{})}
}

func (s *waitingSink) Consume(_ context.Context, evt event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func (s *waitingSink) recorded() []event.DomainEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.DomainEvent(nil), s.events...)
}

func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)

	indexWriter, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	presenceRepository := repositories.NewPresenceRepository(db)
	conversationRepository := repositories.NewConversationRepository(db, log)
	searchRepository := repositories.NewSearchRepository(indexWriter, log, 50)

	words, err := moderation.LoadWords()
	req.NoError(err)
	moderator, err := moderation.NewModerator(words.Words, '*')
	req.NoError(err)

	registry := runtime.NewRegistry()
	events := make(chan event.DomainEvent, 64)
	timeline := sink.NewTimeline(10)
	indexSink := sink.NewIndexSink(searchRepository, log)
	fanout := workers.NewEventFanoutWorker(log,
		[]contract.EventSink{timeline, indexSink}, registry, events, time.Second)

	supervisor := workers.NewSupervisor(log, 200*time.Millisecond)
	runCtx, cancel := context.WithCancel(ctx)
	go supervisor.Add(fanout).Run(runCtx)

	t.Cleanup(func() {
		cancel()
		supervisor.Stop()
		req.NoError(indexWriter.Close())
		req.NoError(db.Close())
	})

	service := services.NewChatService(log, presenceRepository,
		conversationRepository, searchRepository, registry, &moderator, events)

	// Given alice and bob are logged in
	_, err = service.Login(ctx, "alice")
	req.NoError(err)
	contacts, err := service.Login(ctx, "bob")
	req.NoError(err)
	req.Len(contacts, 2)

	// Given bob follows the conversation
	conversationID, err := chat.ConversationIDFor("alice", "bob")
	req.NoError(err)
	bobSink := newWaitingSink(1)
	subscription, err := service.Subscribe(string(conversationID), bobSink)
	req.NoError(err)
	t.Cleanup(func() { service.Unsubscribe(subscription) })

	// When alice messages bob
	message, err := service.SendMessage(ctx, chat.SendMessageCommand{
		SenderID:    "alice",
		RecipientID: "bob",
		Body:        "hi bob, meet me at the harbor",
	})
	req.NoError(err)
	req.Equal(uint64(1), message.Seq)

	// Then bob's subscription gets the push
	select {
	case <-bobSink.done:
	case <-time.After(2 * time.Second):
		req.Fail("Timeout: message has never reached the subscriber")
	}
	appended, ok := bobSink.recorded()[0].(event.MessageAppended)
	req.True(ok)
	req.Equal("alice", appended.SenderID)
	req.Equal(uint64(1), appended.Seq)

	// And bob reads the same conversation from his side
	history, err := service.GetHistory(ctx, chat.GetHistoryCommand{UserID: "bob", OtherID: "alice"})
	req.NoError(err)
	req.Len(history, 1)
	req.Equal("hi bob, meet me at the harbor", history[0].Body)

	// And the contact filter matches by substring
	filtered, err := service.ListContacts(ctx, "alice", "bo")
	req.NoError(err)
	req.Len(filtered, 1)
	req.Equal("bob", filtered[0].UserID)

	// And once the index sink caught up the message is searchable
	req.Eventually(func() bool {
		found, err := service.SearchHistory(ctx, chat.SearchHistoryCommand{
			UserID: "bob", OtherID: "alice", Query: "harbor",
		})
		return err == nil && len(found) == 1
	}, 2*time.Second, 50*time.Millisecond)

	// And logging bob out keeps his last-seen entry visible to alice
	req.NoError(service.Logout(ctx, "bob"))
	contacts, err = service.ListContacts(ctx, "alice", "")
	req.NoError(err)
	req.Len(contacts, 1)
	req.Equal("bob", contacts[0].UserID)
	req.False(contacts[0].Online)
}
