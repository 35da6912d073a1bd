package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"dmchat/domain/chat"
	"dmchat/domain/event"
	"dmchat/errors"
	pb "dmchat/proto/chat"
	"dmchat/services"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	chatService          services.IChatService
	connectionBufferSize int
	log                  *slog.Logger
}

func NewChatServer(log *slog.Logger, chatService services.IChatService, connectionBufferSize int) *ChatServer {
	return &ChatServer{chatService: chatService, connectionBufferSize: connectionBufferSize, log: log}
}

func (s *ChatServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.PresenceSnapshot, error) {
	snapshot, err := s.chatService.Login(ctx, req.GetUserId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toPresenceSnapshot(snapshot), nil
}

func (s *ChatServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	if err := s.chatService.Logout(ctx, req.GetUserId()); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.LogoutResponse{Success: true}, nil
}

// SendMessage is synchronous: the response carries the message as stored,
// censored body and assigned sequence number included. Subscribers of the
// conversation topic receive the same message through their stream.
func (s *ChatServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	message, err := s.chatService.SendMessage(ctx, chat.SendMessageCommand{
		SenderID:    req.GetSenderId(),
		RecipientID: req.GetRecipientId(),
		Body:        req.GetBody(),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SendMessageResponse{Message: toStoredMessage(message)}, nil
}

func (s *ChatServer) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	messages, err := s.chatService.GetHistory(ctx, chat.GetHistoryCommand{
		UserID:   req.GetUserId(),
		OtherID:  req.GetOtherId(),
		SinceSeq: req.GetSinceSequence(),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetHistoryResponse{Messages: toStoredMessages(messages)}, nil
}

func (s *ChatServer) SearchHistory(ctx context.Context, req *pb.SearchHistoryRequest) (*pb.SearchHistoryResponse, error) {
	messages, err := s.chatService.SearchHistory(ctx, chat.SearchHistoryCommand{
		UserID:  req.GetUserId(),
		OtherID: req.GetOtherId(),
		Query:   req.GetQuery(),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SearchHistoryResponse{Messages: toStoredMessages(messages)}, nil
}

func (s *ChatServer) ListContacts(ctx context.Context, req *pb.ListContactsRequest) (*pb.PresenceSnapshot, error) {
	contacts, err := s.chatService.ListContacts(ctx, req.GetCurrentUserId(), req.GetSearchTerm())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toPresenceSnapshot(contacts), nil
}

// Subscribe establishes a long-lived stream for real-time delivery on one
// topic. It registers a dedicated Sink behind the fan-out and blocks until
// the client disconnects. Deferred unsubscription prevents leaks in the
// registry.
func (s *ChatServer) Subscribe(req *pb.SubscribeRequest, stream pb.ChatService_SubscribeServer) error {
	sink := NewGrpcSink(s.connectionBufferSize)
	sub, err := s.chatService.Subscribe(req.GetTopic(), sink)
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	defer s.chatService.Unsubscribe(sub)

	for {
		select {
		case <-stream.Context().Done():
			s.log.Warn(fmt.Sprintf("Subscriber disconnected from %s", sub.Topic))
			return nil
		case evt := <-sink.Events:
			if err := stream.Send(toChatEvent(evt)); err != nil {
				s.log.Error("failed to push event to stream",
					"topic", sub.Topic,
					"error", err)
				return err
			}
		}
	}
}

func toChatEvent(e event.DomainEvent) *pb.ChatEvent {
	switch evt := e.(type) {
	case event.PresenceChanged:
		return &pb.ChatEvent{
			Event: &pb.ChatEvent_Presence{
				Presence: &pb.PresenceChangedEvent{
					UserId: evt.UserID,
					Online: evt.Online,
					At:     timestamppb.New(evt.At),
				},
			},
		}
	case event.MessageAppended:
		return &pb.ChatEvent{
			Event: &pb.ChatEvent_Conversation{
				Conversation: &pb.ConversationChangedEvent{
					Message: &pb.StoredMessage{
						MessageId:      evt.ID.String(),
						ConversationId: string(evt.ConversationID),
						SenderId:       evt.SenderID,
						Body:           evt.Body,
						Lang:           evt.Lang,
						Sequence:       evt.Seq,
						SentAt:         timestamppb.New(evt.At),
					},
				},
			},
		}
	default:
		return &pb.ChatEvent{}
	}
}

func toStoredMessage(message chat.Message) *pb.StoredMessage {
	return &pb.StoredMessage{
		MessageId:      message.ID.String(),
		ConversationId: string(message.ConversationID),
		SenderId:       message.SenderID,
		Body:           message.Body,
		Lang:           message.Lang,
		Sequence:       message.Seq,
		SentAt:         timestamppb.New(message.SentAt),
	}
}

func toStoredMessages(messages []chat.Message) []*pb.StoredMessage {
	return lo.Map(messages, func(item chat.Message, _ int) *pb.StoredMessage {
		return toStoredMessage(item)
	})
}

func toPresenceSnapshot(entries []chat.Presence) *pb.PresenceSnapshot {
	return &pb.PresenceSnapshot{
		Entries: lo.Map(entries, func(item chat.Presence, _ int) *pb.PresenceEntry {
			return &pb.PresenceEntry{
				UserId:       item.UserID,
				Online:       item.Online,
				LastActiveAt: timestamppb.New(item.LastActiveAt),
			}
		}),
	}
}
