package workers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dmchat/contract"
	"dmchat/domain/event"
	"dmchat/mocks"
)

func TestEventFanoutWorker_Fanout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockSink := mocks.NewMockEventSink(ctrl)

	topicSinks := []contract.EventSink{mockSink, mockSink}
	permanentSinks := []contract.EventSink{mockSink}

	fanoutWorker := NewEventFanoutWorker(
		log, permanentSinks, mockRegistry, nil, 10*time.Second)

	done := make(chan struct{})
	var mu sync.Mutex
	count := 0
	// Given two topic sinks and one permanent sink exist
	mockRegistry.EXPECT().GetSinksForTopic(gomock.Any()).Return(topicSinks).Times(1)
	// Given every sink consumes the event
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Do(
		func(ctx context.Context, evt event.DomainEvent) {
			mu.Lock()
			defer mu.Unlock()
			count++
			if count == 3 {
				close(done)
			}
		}).Return(nil).
		Times(3)

	evt := event.MessageAppended{ConversationID: "alice:bob"}

	// When an event is received and handled by worker
	fanoutWorker.Fanout(evt)

	// Then every sink got its delivery
	select {
	case <-done:
	case <-time.After(1 * time.Second):
		req.Fail("Goroutine did not terminated at time")
	}
}

func TestEventFanoutWorker_SinkTimeout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockSink := mocks.NewMockEventSink(ctrl)
	topicSinks := []contract.EventSink{mockSink}

	sinkTimeout := 20 * time.Millisecond
	fanoutWorker := NewEventFanoutWorker(
		log, nil, mockRegistry, nil, sinkTimeout)

	// Given one sink that never drains
	mockRegistry.EXPECT().GetSinksForTopic(gomock.Any()).Return(topicSinks).Times(1)
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(
			func(ctx context.Context, evt event.DomainEvent) error {
				<-ctx.Done()     // Waiting for timeout to trigger cancellation
				return ctx.Err() // Sending back "context deadline exceeded"
			},
		).
		Times(1)

	evt := event.PresenceChanged{UserID: "alice", Online: true}

	// When an event is received and handled by worker
	fanoutWorker.Fanout(evt)

	// Then the stuck sink was cut off at the timeout
	// And waiting more than timeout to let goroutine finish
	time.Sleep(50 * time.Millisecond)
}

func TestEventFanoutWorker_Run_Stops_When_Channel_Closes(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	events := make(chan event.DomainEvent)

	fanoutWorker := NewEventFanoutWorker(
		log, nil, mockRegistry, events, time.Second)

	done := make(chan error, 1)
	go func() {
		done <- fanoutWorker.Run(context.Background())
	}()

	// When the producer side closes the channel
	close(events)

	// Then Run returns nil so the supervisor never restarts it
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(1 * time.Second):
		req.Fail("Run should have returned after channel close")
	}
}
