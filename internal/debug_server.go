package internal

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"

	pb "dmchat/proto/storage"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key       string
	Type      string
	Timestamp string
	EntityID  string
	Detail    string
}

type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer exposes the raw store over HTTP for local inspection.
// /inspect?prefix=msg: browses messages, /inspect?prefix=presence: browses
// presence entries. Development tool only, never expose it publicly.
func StartDebugServer(db *badger.DB, log *slog.Logger, port int, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "msg:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapRow(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		addr := fmt.Sprintf("localhost:%d", port)
		log.Info("Debug inspector listening", "url", "http://"+addr+"/inspect")
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Warn("Debug inspector stopped", "error", err)
		}
	}()
}

func mapRow(key string, val []byte) InspectRow {
	switch {
	case strings.HasPrefix(key, "msg:"):
		var message pb.Message
		if err := proto.Unmarshal(val, &message); err != nil {
			break
		}
		return InspectRow{
			Key:       key,
			Type:      "MESSAGE",
			Timestamp: time.Unix(0, message.SentAt).Format("15:04:05"),
			EntityID:  message.SenderId,
			Detail:    fmt.Sprintf("seq=%d %q", message.Sequence, message.Body),
		}
	case strings.HasPrefix(key, "presence:"):
		var entry pb.Presence
		if err := proto.Unmarshal(val, &entry); err != nil {
			break
		}
		status := "offline"
		if entry.Online {
			status = "online"
		}
		return InspectRow{
			Key:       key,
			Type:      "PRESENCE",
			Timestamp: time.Unix(0, entry.LastActiveAt).Format("15:04:05"),
			EntityID:  entry.UserId,
			Detail:    status,
		}
	}
	return InspectRow{
		Key:       key,
		Type:      "RAW",
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Detail:    fmt.Sprintf("Size: %d bytes", len(val)),
	}
}
