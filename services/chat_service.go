//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"dmchat/contract"
	"dmchat/domain/chat"
	"dmchat/domain/event"
	"dmchat/errors"
	"dmchat/moderation"
	"dmchat/repositories"
)

var validate = validator.New()

type IChatService interface {
	Login(ctx context.Context, userID string) ([]chat.Presence, error)
	Logout(ctx context.Context, userID string) error
	SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (chat.Message, error)
	GetHistory(ctx context.Context, cmd chat.GetHistoryCommand) ([]chat.Message, error)
	SearchHistory(ctx context.Context, cmd chat.SearchHistoryCommand) ([]chat.Message, error)
	ListContacts(ctx context.Context, currentUserID, searchTerm string) ([]chat.Presence, error)
	Subscribe(topic string, sink contract.EventSink) (contract.Subscription, error)
	Unsubscribe(sub contract.Subscription)
}

// ChatService is the façade every external collaborator talks to. It
// validates requests, orchestrates the two stores and hands change events
// to the fan-out. Mutations commit first and notify second: a lost event is
// recovered by the since-sequence pull path, a lost write would not be.
type ChatService struct {
	log           *slog.Logger
	presence      repositories.IPresenceRepository
	conversations repositories.IConversationRepository
	search        repositories.ISearchRepository
	registry      contract.IRegistry
	moderator     *moderation.Moderator
	events        chan event.DomainEvent
}

func NewChatService(log *slog.Logger, presence repositories.IPresenceRepository,
	conversations repositories.IConversationRepository, search repositories.ISearchRepository,
	registry contract.IRegistry, moderator *moderation.Moderator,
	events chan event.DomainEvent) *ChatService {
	return &ChatService{
		log:           log,
		presence:      presence,
		conversations: conversations,
		search:        search,
		registry:      registry,
		moderator:     moderator,
		events:        events,
	}
}

// Login marks a user online and returns the full presence snapshot. Any
// non-empty identifier is accepted; there are no credentials.
func (s *ChatService) Login(_ context.Context, userID string) ([]chat.Presence, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.presence.MarkOnline(userID, now); err != nil {
		return nil, err
	}
	s.emit(event.PresenceChanged{UserID: userID, Online: true, At: now})

	return s.presence.Snapshot()
}

// Logout flips the user offline. The presence entry survives, so contacts
// still see a last-active timestamp.
func (s *ChatService) Logout(_ context.Context, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.presence.MarkOffline(userID, now); err != nil {
		return err
	}
	s.emit(event.PresenceChanged{UserID: userID, Online: false, At: now})
	return nil
}

// SendMessage validates the pair, censors the body, appends to the
// conversation and notifies its topic. The stored (censored) body is the
// single source of truth; the raw input is gone after this call.
func (s *ChatService) SendMessage(_ context.Context, cmd chat.SendMessageCommand) (chat.Message, error) {
	if err := s.validateSend(cmd); err != nil {
		return chat.Message{}, err
	}
	conversationID, err := chat.ConversationIDFor(cmd.SenderID, cmd.RecipientID)
	if err != nil {
		return chat.Message{}, err
	}

	at := cmd.CreatedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}
	// Sending counts as activity.
	if err := s.presence.Touch(cmd.SenderID, at); err != nil {
		s.log.Warn("Failed to touch sender presence", "user_id", cmd.SenderID, "error", err)
	}

	body := s.moderator.Censor(cmd.Body)
	message, err := s.conversations.AppendMessage(chat.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       cmd.SenderID,
		Body:           body,
		Lang:           detectLang(body),
		SentAt:         at,
	})
	if err != nil {
		return chat.Message{}, err
	}

	s.emit(event.MessageAppended{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Body:           message.Body,
		Lang:           message.Lang,
		Seq:            message.Seq,
		At:             message.SentAt,
	})
	return message, nil
}

// GetHistory returns the pair's messages with sequence > SinceSeq in append
// order. Incremental by design: a client that missed a push event calls
// this with its last seen sequence number.
func (s *ChatService) GetHistory(ctx context.Context, cmd chat.GetHistoryCommand) ([]chat.Message, error) {
	if err := validatePair(cmd.UserID, cmd.OtherID); err != nil {
		return nil, err
	}
	conversationID, err := chat.ConversationIDFor(cmd.UserID, cmd.OtherID)
	if err != nil {
		return nil, err
	}
	if err := s.presence.Touch(cmd.UserID, time.Now().UTC()); err != nil {
		s.log.Warn("Failed to touch reader presence", "user_id", cmd.UserID, "error", err)
	}
	return s.conversations.MessagesSince(ctx, conversationID, cmd.SinceSeq)
}

// SearchHistory runs a full-text query against one conversation. The index
// is fed asynchronously from the fan-out and may lag the store slightly.
func (s *ChatService) SearchHistory(ctx context.Context, cmd chat.SearchHistoryCommand) ([]chat.Message, error) {
	if err := validatePair(cmd.UserID, cmd.OtherID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cmd.Query) == "" {
		return nil, errors.ErrEmptyQuery
	}
	conversationID, err := chat.ConversationIDFor(cmd.UserID, cmd.OtherID)
	if err != nil {
		return nil, err
	}
	return s.search.Search(ctx, conversationID, cmd.Query)
}

// ListContacts returns the snapshot without the caller, optionally filtered
// by a case-insensitive substring, sorted by user id regardless of presence.
func (s *ChatService) ListContacts(_ context.Context, currentUserID, searchTerm string) ([]chat.Presence, error) {
	if err := validateUserID(currentUserID); err != nil {
		return nil, err
	}

	entries, err := s.presence.Snapshot()
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(searchTerm)
	return lo.Filter(entries, func(entry chat.Presence, _ int) bool {
		if entry.UserID == currentUserID {
			return false
		}
		return term == "" || strings.Contains(strings.ToLower(entry.UserID), term)
	}), nil
}

// Subscribe registers a sink for "presence" or a conversation id and
// returns the handle to drop it. A string that cannot name a topic is a
// caller mistake, not a system fault.
func (s *ChatService) Subscribe(topic string, sink contract.EventSink) (contract.Subscription, error) {
	if topic == string(event.TopicPresence) {
		return s.registry.Subscribe(event.TopicPresence, sink), nil
	}
	if _, _, err := chat.ParseConversationID(topic); err != nil {
		return contract.Subscription{}, fmt.Errorf("%w: %q", errors.ErrUnknownTopic, topic)
	}
	return s.registry.Subscribe(event.Topic(topic), sink), nil
}

func (s *ChatService) Unsubscribe(sub contract.Subscription) {
	s.registry.Unsubscribe(sub)
}

// emit hands an event to the fan-out without ever blocking a request.
// Delivery is best-effort; storage already committed.
func (s *ChatService) emit(evt event.DomainEvent) {
	select {
	case s.events <- evt:
	default:
		s.log.Warn("Event channel full, dropping notification", "topic", evt.EventTopic())
	}
}

func (s *ChatService) validateSend(cmd chat.SendMessageCommand) error {
	if err := validatePair(cmd.SenderID, cmd.RecipientID); err != nil {
		return err
	}
	if strings.TrimSpace(cmd.Body) == "" {
		return errors.ErrEmptyBody
	}
	// Struct tags are the safety net for fields the manual checks above
	// do not cover.
	if err := validate.Struct(cmd); err != nil {
		return errors.ErrInvalidUserID
	}
	return nil
}

func validatePair(a, b string) error {
	if err := validateUserID(a); err != nil {
		return err
	}
	return validateUserID(b)
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.ErrEmptyUserID
	}
	if strings.Contains(userID, chat.Separator) {
		return errors.ErrInvalidUserID
	}
	return nil
}

func detectLang(body string) string {
	info := whatlanggo.Detect(body)
	return info.Lang.Iso6391()
}
