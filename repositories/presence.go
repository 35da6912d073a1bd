//go:generate go run go.uber.org/mock/mockgen -source=presence.go -destination=../mocks/mock_presence_repository.go -package=mocks
package repositories

import (
	goerrors "errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"

	"dmchat/domain/chat"
	pb "dmchat/proto/storage"
)

// Badger aborts a read-modify-write transaction that raced a commit on the
// same key. Presence operations must not surface that to callers, so they
// retry a few times; each retry re-reads the entry.
const maxTxnRetries = 5

type IPresenceRepository interface {
	MarkOnline(userID string, at time.Time) error
	MarkOffline(userID string, at time.Time) error
	Touch(userID string, at time.Time) error
	Snapshot() ([]chat.Presence, error)
}

// PresenceRepository persists presence entries in BadgerDB under
// "presence:{user_id}" keys. Entries are never deleted: a logout only flips
// the online flag so the last-seen timestamp survives the disconnect.
type PresenceRepository struct {
	db *badger.DB
}

func NewPresenceRepository(db *badger.DB) *PresenceRepository {
	return &PresenceRepository{db: db}
}

// MarkOnline inserts or refreshes an entry. Idempotent.
func (r *PresenceRepository) MarkOnline(userID string, at time.Time) error {
	bytes, err := proto.Marshal(&pb.Presence{
		UserId:       userID,
		Online:       true,
		LastActiveAt: at.UnixNano(),
	})
	if err != nil {
		return err
	}
	// Blind overwrite, no read in the transaction, so no conflict possible.
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(presenceKey(userID), bytes)
	})
}

// MarkOffline flips the flag and refreshes the timestamp. A user that never
// logged in is a no-op, not an error.
func (r *PresenceRepository) MarkOffline(userID string, at time.Time) error {
	return r.updateEntry(userID, func(entry *pb.Presence) {
		entry.Online = false
		entry.LastActiveAt = at.UnixNano()
	})
}

// Touch refreshes the last-active timestamp of an already-online user,
// extending the session on activity.
func (r *PresenceRepository) Touch(userID string, at time.Time) error {
	return r.updateEntry(userID, func(entry *pb.Presence) {
		if entry.Online {
			entry.LastActiveAt = at.UnixNano()
		}
	})
}

// Snapshot returns every known entry sorted by user id. The sort comes for
// free: Badger iterates keys in lexicographic order.
func (r *PresenceRepository) Snapshot() ([]chat.Presence, error) {
	var entries []chat.Presence
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("presence:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var entryPb pb.Presence
				if err := proto.Unmarshal(value, &entryPb); err != nil {
					return err
				}
				entries = append(entries, toPresence(&entryPb))
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
	return entries, nil
}

func (r *PresenceRepository) updateEntry(userID string, mutate func(entry *pb.Presence)) error {
	var err error
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		err = r.db.Update(func(txn *badger.Txn) error {
			item, err := txn.Get(presenceKey(userID))
			if goerrors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			if err != nil {
				return err
			}

			var entry pb.Presence
			err = item.Value(func(value []byte) error {
				return proto.Unmarshal(value, &entry)
			})
			if err != nil {
				return err
			}

			mutate(&entry)
			bytes, err := proto.Marshal(&entry)
			if err != nil {
				return err
			}
			return txn.Set(presenceKey(userID), bytes)
		})
		if !goerrors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

func presenceKey(userID string) []byte {
	return []byte("presence:" + userID)
}

func toPresence(entryPb *pb.Presence) chat.Presence {
	return chat.Presence{
		UserID:       entryPb.UserId,
		Online:       entryPb.Online,
		LastActiveAt: time.Unix(0, entryPb.LastActiveAt).UTC(),
	}
}
