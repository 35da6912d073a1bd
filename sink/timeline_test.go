package sink

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"dmchat/domain/chat"
	"dmchat/domain/event"
)

func TestTimeline_Keeps_The_Tail_Per_Conversation(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(3)
	ctx := context.Background()

	// Given five messages in one conversation and one in another
	for seq := uint64(1); seq <= 5; seq++ {
		req.NoError(timeline.Consume(ctx, event.MessageAppended{
			ConversationID: "alice:bob",
			SenderID:       "alice",
			Body:           fmt.Sprintf("message %d", seq),
			Seq:            seq,
		}))
	}
	req.NoError(timeline.Consume(ctx, event.MessageAppended{
		ConversationID: "alice:carol",
		SenderID:       "carol",
		Body:           "hello",
		Seq:            1,
	}))

	// Then only the newest three survive, newest last
	recent := timeline.Recent("alice:bob")
	req.Len(recent, 3)
	req.Equal(uint64(3), recent[0].Seq)
	req.Equal(uint64(5), recent[2].Seq)

	// And conversations do not leak into each other
	recent = timeline.Recent("alice:carol")
	req.Len(recent, 1)
	req.Equal("hello", recent[0].Body)
}

func TestTimeline_Ignores_Presence_Events(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(3)

	req.NoError(timeline.Consume(context.Background(), event.PresenceChanged{UserID: "alice", Online: true}))
	req.Empty(timeline.Recent(chat.ConversationID("alice:bob")))
}

func TestTimeline_Conversations_Lists_Tracked_Ids(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(3)
	ctx := context.Background()

	req.Empty(timeline.Conversations())

	req.NoError(timeline.Consume(ctx, event.MessageAppended{
		ConversationID: "alice:bob", SenderID: "alice", Body: "one", Seq: 1,
	}))
	req.NoError(timeline.Consume(ctx, event.MessageAppended{
		ConversationID: "alice:carol", SenderID: "carol", Body: "two", Seq: 1,
	}))

	ids := timeline.Conversations()
	req.Len(ids, 2)
	req.ElementsMatch([]chat.ConversationID{"alice:bob", "alice:carol"}, ids)
}

func TestTimeline_Recent_Returns_A_Copy(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(3)
	ctx := context.Background()

	req.NoError(timeline.Consume(ctx, event.MessageAppended{
		ConversationID: "alice:bob", SenderID: "alice", Body: "original", Seq: 1,
	}))

	recent := timeline.Recent("alice:bob")
	recent[0].Body = "mutated"

	req.Equal("original", timeline.Recent("alice:bob")[0].Body)
}
