//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"

	"dmchat/domain/chat"
	"dmchat/errors"
	pb "dmchat/proto/storage"
)

type IConversationRepository interface {
	AppendMessage(message chat.Message) (chat.Message, error)
	MessagesSince(ctx context.Context, id chat.ConversationID, sinceSeq uint64) ([]chat.Message, error)
}

// ConversationRepository persists conversation histories in BadgerDB.
//
// Keys are formatted as "msg:{conversation_id}:{sequence_padded}" to:
//  1. Group a conversation under one prefix for cheap range scans.
//  2. Ensure sequence ordering using 20-digit zero padding (lexicographical order).
//
// Sequence numbers are assigned here, under a per-conversation lock, so two
// concurrent appends to the same conversation can never share or skip a
// number while appends to different conversations proceed independently.
type ConversationRepository struct {
	db  *badger.DB
	log *slog.Logger

	mu       sync.Mutex // guards counters map shape only
	counters map[chat.ConversationID]*seqCounter
}

type seqCounter struct {
	mu     sync.Mutex
	loaded bool
	next   uint64
}

func NewConversationRepository(db *badger.DB, log *slog.Logger) *ConversationRepository {
	return &ConversationRepository{
		db:       db,
		log:      log,
		counters: make(map[chat.ConversationID]*seqCounter),
	}
}

// AppendMessage commits a message at the next sequence position of its
// conversation and returns it as stored. The body must be non-empty after
// trimming; the conversation is created lazily on first append.
func (r *ConversationRepository) AppendMessage(message chat.Message) (chat.Message, error) {
	if strings.TrimSpace(message.Body) == "" {
		return chat.Message{}, errors.ErrEmptyBody
	}

	counter := r.counterFor(message.ConversationID)
	counter.mu.Lock()
	defer counter.mu.Unlock()

	if !counter.loaded {
		last, err := r.lastStoredSeq(message.ConversationID)
		if err != nil {
			return chat.Message{}, err
		}
		counter.next = last + 1
		counter.loaded = true
	}

	message.Seq = counter.next
	bytes, err := proto.Marshal(fromMessage(message))
	if err != nil {
		return chat.Message{}, err
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(message.ConversationID, message.Seq), bytes)
	})
	if err != nil {
		return chat.Message{}, err
	}

	// Only a committed write consumes the number.
	counter.next++
	return message, nil
}

// MessagesSince returns the messages with sequence > sinceSeq in append
// order. The scan is a consistent point-in-time view and checks ctx between
// items so a caller can abandon a large fetch.
func (r *ConversationRepository) MessagesSince(ctx context.Context, id chat.ConversationID, sinceSeq uint64) ([]chat.Message, error) {
	// No sequence can exceed the maximal cursor; incrementing it below would
	// wrap to zero and return the whole history.
	if sinceSeq == math.MaxUint64 {
		return nil, nil
	}

	var stored [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", id))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(messageKey(id, sinceSeq+1)); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := it.Item().Value(func(value []byte) error {
				stored = append(stored, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	messages := make([]chat.Message, 0, len(stored))
	for _, b := range stored {
		var messagePb pb.Message
		if err = proto.Unmarshal(b, &messagePb); err != nil {
			return nil, err
		}
		message, err := toMessage(&messagePb)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (r *ConversationRepository) counterFor(id chat.ConversationID) *seqCounter {
	r.mu.Lock()
	defer r.mu.Unlock()
	counter, ok := r.counters[id]
	if !ok {
		counter = &seqCounter{}
		r.counters[id] = counter
	}
	return counter
}

// lastStoredSeq recovers the highest committed sequence number of a
// conversation by a reverse seek, so counters survive process restarts.
func (r *ConversationRepository) lastStoredSeq(id chat.ConversationID) (uint64, error) {
	var last uint64
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%s:", id)
		prefix := []byte(prefixStr)

		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the largest possible sequence, then step back onto the
		// newest key of this conversation.
		it.Seek(append(prefix, []byte("99999999999999999999")...))
		if !it.ValidForPrefix(prefix) {
			return nil
		}

		seq, err := strconv.ParseUint(string(it.Item().Key()[len(prefixStr):]), 10, 64)
		if err != nil {
			return err
		}
		last = seq
		return nil
	})
	return last, err
}

func messageKey(id chat.ConversationID, seq uint64) []byte {
	return []byte(fmt.Sprintf("msg:%s:%020d", id, seq))
}

func fromMessage(message chat.Message) *pb.Message {
	return &pb.Message{
		Id:             message.ID.String(),
		ConversationId: string(message.ConversationID),
		SenderId:       message.SenderID,
		Body:           message.Body,
		Lang:           message.Lang,
		Sequence:       message.Seq,
		SentAt:         message.SentAt.UnixNano(),
	}
}

func toMessage(messagePb *pb.Message) (chat.Message, error) {
	parsedID, err := uuid.Parse(messagePb.Id)
	if err != nil {
		return chat.Message{}, err
	}
	return chat.Message{
		ID:             parsedID,
		ConversationID: chat.ConversationID(messagePb.ConversationId),
		SenderID:       messagePb.SenderId,
		Body:           messagePb.Body,
		Lang:           messagePb.Lang,
		Seq:            messagePb.Sequence,
		SentAt:         time.Unix(0, messagePb.SentAt).UTC(),
	}, nil
}
