package workers

import (
	"context"
	"log/slog"
	"time"

	"dmchat/contract"
	"dmchat/domain/event"
	"dmchat/repositories"
)

// Ensure *PresenceSweeperWorker implements the contract.Worker interface at
// compile time.
var _ contract.Worker = (*PresenceSweeperWorker)(nil)

// PresenceSweeperWorker marks users offline once they have been inactive
// longer than idleTimeout. A client extends its session through Touch on
// every action; this worker is the explicit replacement for sessions that
// silently die with a closed browser tab.
type PresenceSweeperWorker struct {
	log         *slog.Logger
	presence    repositories.IPresenceRepository
	events      chan event.DomainEvent
	interval    time.Duration
	idleTimeout time.Duration
}

func NewPresenceSweeperWorker(log *slog.Logger, presence repositories.IPresenceRepository,
	events chan event.DomainEvent, interval, idleTimeout time.Duration) *PresenceSweeperWorker {
	return &PresenceSweeperWorker{
		log:         log,
		presence:    presence,
		events:      events,
		interval:    interval,
		idleTimeout: idleTimeout,
	}
}

func (w *PresenceSweeperWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping presence sweeper")
			return ctx.Err()
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *PresenceSweeperWorker) sweep(ctx context.Context) {
	entries, err := w.presence.Snapshot()
	if err != nil {
		w.log.Warn("Presence snapshot failed, skipping sweep", "error", err)
		return
	}

	now := time.Now().UTC()
	for _, entry := range entries {
		if !entry.Online || now.Sub(entry.LastActiveAt) < w.idleTimeout {
			continue
		}
		if err := w.presence.MarkOffline(entry.UserID, now); err != nil {
			w.log.Warn("Failed to expire idle user", "user_id", entry.UserID, "error", err)
			continue
		}
		w.log.Info("Idle user marked offline", "user_id", entry.UserID)

		select {
		case w.events <- event.PresenceChanged{UserID: entry.UserID, Online: false, At: now}:
		case <-ctx.Done():
			return
		default:
			w.log.Debug("Event channel full, presence change not broadcast", "user_id", entry.UserID)
		}
	}
}
