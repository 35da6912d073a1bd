package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"dmchat/domain/chat"
	pb "dmchat/proto/chat"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"CHAT_SERVER_ADDR,default=localhost:8080"`
	UserID        string `env:"CHAT_USER_ID,required=true"`
	PeerID        string `env:"CHAT_PEER_ID,required=true"`
	LogLevel      string `env:"LOG_LEVEL,required=true"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v", err)
	}
	os.Exit(code)
}

// run handles the gRPC client lifecycle, configuration loading, and event streaming.
// This pattern ensures clean resource management and error propagation.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Establish connection to the server.
	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	// Defer ensures the connection is closed even if the stream fails later.
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	client := pb.NewChatServiceClient(conn)

	// 4. Login and derive the conversation topic for the configured peer.
	if _, err := client.Login(ctx, &pb.LoginRequest{UserId: config.UserID}); err != nil {
		return exitRuntime, fmt.Errorf("login failed: %w", err)
	}
	defer func() {
		_, _ = client.Logout(context.Background(), &pb.LogoutRequest{UserId: config.UserID})
	}()

	conversationID, err := chat.ConversationIDFor(config.UserID, config.PeerID)
	if err != nil {
		return exitConfig, fmt.Errorf("bad peer configuration: %w", err)
	}

	// 5. Initiate the event stream.
	stream, err := client.Subscribe(ctx, &pb.SubscribeRequest{Topic: string(conversationID)})
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open stream: %w", err)
	}

	log.Info(fmt.Sprintf(">>> Connected to %s! Listening %s (Ctrl+C to quit)...",
		config.ServerAddress, conversationID))

	// 6. Event reception loop.
	// This loop runs until the context is canceled or the server closes the connection.
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		default:
			resp, err := stream.Recv()
			if err != nil {
				// Normal exit if the user triggered a shutdown.
				if ctx.Err() != nil {
					return exitOK, nil
				}
				return exitRuntime, fmt.Errorf("stream error: %w", err)
			}

			// Display the received message.
			if msg := resp.GetConversation().GetMessage(); msg != nil {
				log.Info(fmt.Sprintf("[%s] %s: %s",
					msg.SentAt.AsTime().Format(time.TimeOnly),
					msg.SenderId,
					msg.Body,
				))
			}
		}
	}
}
