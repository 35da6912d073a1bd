package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/proto"

	pb "dmchat/proto/storage"
)

// Config defines the viewer-side environment variables.
type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
}

// The viewer opens the store read-only and dumps presence entries and
// conversation sizes as tables. Works next to a running server thanks to
// BypassLockGuard.
func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := dumpPresence(db); err != nil {
		log.Fatalf("Presence dump failed: %v", err)
	}
	if err := dumpConversations(db); err != nil {
		log.Fatalf("Conversation dump failed: %v", err)
	}
}

func dumpPresence(db *badger.DB) error {
	color.Bold.Println("Presence")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"User", "Status", "Last active"})

	err := db.View(func(txn *badger.Txn) error {
		prefix := []byte("presence:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var entry pb.Presence
				if err := proto.Unmarshal(value, &entry); err != nil {
					return err
				}
				status := color.Red.Sprint("offline")
				if entry.Online {
					status = color.Green.Sprint("online")
				}
				table.Append([]string{
					entry.UserId,
					status,
					time.Unix(0, entry.LastActiveAt).UTC().Format(time.RFC822),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	table.Render()
	return nil
}

func dumpConversations(db *badger.DB) error {
	color.Bold.Println("Conversations")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Conversation", "Messages", "Last sender"})

	counts := make(map[string]int)
	lastSender := make(map[string]string)

	err := db.View(func(txn *badger.Txn) error {
		prefix := []byte("msg:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var message pb.Message
				if err := proto.Unmarshal(value, &message); err != nil {
					return err
				}
				counts[message.ConversationId]++
				lastSender[message.ConversationId] = message.SenderId
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for id, count := range counts {
		table.Append([]string{id, fmt.Sprintf("%d", count), lastSender[id]})
	}
	table.Render()

	if len(counts) == 0 {
		color.Gray.Println(strings.Repeat(" ", 2) + "no conversations yet")
	}
	return nil
}
