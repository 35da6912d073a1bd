package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"

	"dmchat/contract"
	"dmchat/domain/event"
	grpc2 "dmchat/grpc"
	"dmchat/internal"
	"dmchat/moderation"
	pb "dmchat/proto/chat"
	"dmchat/repositories"
	"dmchat/runtime"
	"dmchat/runtime/workers"
	"dmchat/services"
	"dmchat/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for gRPC and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage (BadgerDB + Bluge index)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = blugeWriter.Close()
	}()

	// 3. Repositories & moderation
	presenceRepository := repositories.NewPresenceRepository(db)
	conversationRepository := repositories.NewConversationRepository(db, log)
	searchRepository := repositories.NewSearchRepository(blugeWriter, log, config.SearchLimit)

	words, err := moderation.LoadWords()
	if err != nil {
		return fmt.Errorf("word lists loading failed: %w", err)
	}
	log.Info(fmt.Sprintf("%d censored words loaded [%s]",
		len(words.Words), strings.Join(words.Languages, ",")))
	censorChar, err := characterRune(config.CensorCharacter)
	if err != nil {
		return err
	}
	moderator, err := moderation.NewModerator(words.Words, censorChar)
	if err != nil {
		return fmt.Errorf("moderator build failed: %w", err)
	}

	// 4. Fan-out pipeline & supervision
	registry := runtime.NewRegistry()
	events := make(chan event.DomainEvent, config.BufferSize)
	timeline := sink.NewTimeline(config.TimelineKeep)
	permanentSinks := []contract.EventSink{
		timeline,
		sink.NewIndexSink(searchRepository, log),
	}

	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewEventFanoutWorker(log, permanentSinks, registry, events, config.SinkTimeout))
	sup.Add(workers.NewPresenceSweeperWorker(log, presenceRepository, events, config.SweepInterval, config.IdleTimeout))
	sup.Add(workers.NewTelemetryWorker(log, registry, config.TelemetryInterval))

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	if config.DebugPort > 0 {
		internal.StartDebugServer(db, log, config.DebugPort, func() map[string]any {
			stats := map[string]any{
				"subscribers":     registry.CountSubscribers(),
				"buffered_events": len(events),
			}
			for _, id := range timeline.Conversations() {
				stats["recent "+string(id)] = len(timeline.Recent(id))
			}
			return stats
		})
	}

	// 6. Service & gRPC Server Setup
	chatService := services.NewChatService(log, presenceRepository, conversationRepository,
		searchRepository, registry, &moderator, events)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer()
	server := grpc2.NewChatServer(log, chatService, config.ConnectionBufferSize)
	pb.RegisterChatServiceServer(s, server)

	// Use an error channel to capture Serve() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	s.GracefulStop()
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
