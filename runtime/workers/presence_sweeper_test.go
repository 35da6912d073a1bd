package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dmchat/domain/chat"
	"dmchat/domain/event"
	"dmchat/mocks"
)

func TestPresenceSweeperWorker_Expires_Idle_Users(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	presenceMock := mocks.NewMockIPresenceRepository(ctrl)
	events := make(chan event.DomainEvent, 4)

	idleTimeout := time.Minute
	now := time.Now().UTC()

	// Given one idle user, one active user and one already-offline user
	presenceMock.EXPECT().Snapshot().Return([]chat.Presence{
		{UserID: "alice", Online: true, LastActiveAt: now.Add(-2 * time.Minute)},
		{UserID: "bob", Online: true, LastActiveAt: now.Add(-time.Second)},
		{UserID: "carol", Online: false, LastActiveAt: now.Add(-time.Hour)},
	}, nil).Times(1)

	// Then only the idle user is expired
	presenceMock.EXPECT().MarkOffline("alice", gomock.Any()).Return(nil).Times(1)

	worker := NewPresenceSweeperWorker(slog.Default(), presenceMock, events, time.Second, idleTimeout)

	// When a sweep runs
	worker.sweep(context.Background())

	// And the expiry was broadcast
	select {
	case evt := <-events:
		changed, ok := evt.(event.PresenceChanged)
		req.True(ok)
		req.Equal("alice", changed.UserID)
		req.False(changed.Online)
	default:
		req.Fail("Expected a presence change event")
	}
	req.Empty(events)
}

func TestPresenceSweeperWorker_Snapshot_Failure_Skips_The_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	presenceMock := mocks.NewMockIPresenceRepository(ctrl)

	presenceMock.EXPECT().Snapshot().Return(nil, context.DeadlineExceeded).Times(1)
	// No MarkOffline expected

	worker := NewPresenceSweeperWorker(slog.Default(), presenceMock, nil, time.Second, time.Minute)
	worker.sweep(context.Background())
}

func TestPresenceSweeperWorker_Stops_On_Cancel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	presenceMock := mocks.NewMockIPresenceRepository(ctrl)
	presenceMock.EXPECT().Snapshot().Return(nil, nil).AnyTimes()

	worker := NewPresenceSweeperWorker(slog.Default(), presenceMock, nil, 10*time.Millisecond, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		req.Fail("Worker should have stopped after cancellation")
	}
}
