package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	pb "dmchat/proto/chat"
)

type testDirectMessageSuite struct {
	BaseGrpcSuite
}

func TestDirectMessageSuite(t *testing.T) {
	suite.Run(t, &testDirectMessageSuite{})
}

func (s *testDirectMessageSuite) TestFullDirectMessageFlow() {
	// Fresh identities per run so the suite can hit a shared server
	alice := "alice-" + uuid.NewString()[:8]
	bob := "bob-" + uuid.NewString()[:8]
	conversationID := conversationIDFor(alice, bob)
	body := "hi " + bob + ", meet me at the harbor"

	// --- STEP 0: LOGIN BOTH SIDES ---
	s.Run("Step 0: Both users log in", func() {
		s.WithChat("Login both sides", func(ctx context.Context, client pb.ChatServiceClient) {
			_, err := client.Login(ctx, &pb.LoginRequest{UserId: alice})
			s.Require().NoError(err)

			snapshot, err := client.Login(ctx, &pb.LoginRequest{UserId: bob})
			s.Require().NoError(err)

			// Both users must be visible and online in the snapshot
			online := map[string]bool{}
			for _, entry := range snapshot.GetEntries() {
				online[entry.GetUserId()] = entry.GetOnline()
			}
			s.Require().True(online[alice], "alice should be online after login")
			s.Require().True(online[bob], "bob should be online after login")
		})
	})

	// --- STEP 1: SUBSCRIBE, SEND, RECEIVE ---
	s.Run("Step 1: Subscriber receives the message push", func() {
		s.WithChat("Subscribe and send", func(ctx context.Context, client pb.ChatServiceClient) {
			stream, err := client.Subscribe(ctx, &pb.SubscribeRequest{Topic: conversationID})
			s.Require().NoError(err)

			// Give the server a beat to register the subscription
			time.Sleep(200 * time.Millisecond)

			sent, err := client.SendMessage(ctx, &pb.SendMessageRequest{
				SenderId:    alice,
				RecipientId: bob,
				Body:        body,
			})
			s.Require().NoError(err)
			s.Require().Equal(conversationID, sent.GetMessage().GetConversationId())
			s.Require().Greater(sent.GetMessage().GetSequence(), uint64(0))

			evt, err := stream.Recv()
			s.Require().NoError(err)
			pushed := evt.GetConversation().GetMessage()
			s.Require().NotNil(pushed, "expected a conversation event")
			s.Require().Equal(alice, pushed.GetSenderId())
			s.Require().Equal(sent.GetMessage().GetSequence(), pushed.GetSequence())
		})
	})

	// --- STEP 2: HISTORY FROM THE OTHER SIDE ---
	s.Run("Step 2: Recipient reads the same conversation", func() {
		s.WithChat("Read history as recipient", func(ctx context.Context, client pb.ChatServiceClient) {
			history, err := client.GetHistory(ctx, &pb.GetHistoryRequest{
				UserId:  bob,
				OtherId: alice,
			})
			s.Require().NoError(err)
			s.Require().NotEmpty(history.GetMessages())

			last := history.GetMessages()[len(history.GetMessages())-1]
			s.Require().Equal(body, last.GetBody())

			// The incremental cursor excludes everything already seen
			rest, err := client.GetHistory(ctx, &pb.GetHistoryRequest{
				UserId:        bob,
				OtherId:       alice,
				SinceSequence: last.GetSequence(),
			})
			s.Require().NoError(err)
			s.Require().Empty(rest.GetMessages())
		})
	})

	// --- STEP 3: CONTACTS AND SEARCH ---
	s.Run("Step 3: Contact filter and full-text search", func() {
		s.WithChat("Filter contacts and search", func(ctx context.Context, client pb.ChatServiceClient) {
			contacts, err := client.ListContacts(ctx, &pb.ListContactsRequest{
				CurrentUserId: alice,
				SearchTerm:    bob,
			})
			s.Require().NoError(err)
			s.Require().Len(contacts.GetEntries(), 1)
			s.Require().Equal(bob, contacts.GetEntries()[0].GetUserId())

			// The index is fed asynchronously; poll until it catches up
			s.Require().Eventually(func() bool {
				found, err := client.SearchHistory(ctx, &pb.SearchHistoryRequest{
					UserId:  bob,
					OtherId: alice,
					Query:   "harbor",
				})
				return err == nil && len(found.GetMessages()) == 1
			}, 5*time.Second, 200*time.Millisecond)
		})
	})

	// --- STEP 4: LOGOUT KEEPS LAST SEEN ---
	s.Run("Step 4: Logout keeps the last-seen entry", func() {
		s.WithChat("Logout and check presence", func(ctx context.Context, client pb.ChatServiceClient) {
			resp, err := client.Logout(ctx, &pb.LogoutRequest{UserId: bob})
			s.Require().NoError(err)
			s.Require().True(resp.GetSuccess())

			contacts, err := client.ListContacts(ctx, &pb.ListContactsRequest{
				CurrentUserId: alice,
				SearchTerm:    bob,
			})
			s.Require().NoError(err)
			s.Require().Len(contacts.GetEntries(), 1)
			s.Require().False(contacts.GetEntries()[0].GetOnline())
			s.Require().NotNil(contacts.GetEntries()[0].GetLastActiveAt())
		})
	})
}

// conversationIDFor mirrors the server side pairing rule: sorted pair joined
// by the separator.
func conversationIDFor(a, b string) string {
	if a < b {
		return fmt.Sprintf("%s:%s", a, b)
	}
	return fmt.Sprintf("%s:%s", b, a)
}
