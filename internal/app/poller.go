package app

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/aferro/curator/internal/api"
	"github.com/aferro/curator/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
	recentLimit         = 8
)

// StartPoller launches a background goroutine that refreshes the
// dashboard store at a fixed cadence, backing off while the API is
// unreachable. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, client *api.Client, logger *slog.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			failures := store.Snapshot().ConsecutiveFailures
			wait := calculateBackoff(failures, interval)
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}
			refresh(ctx, store, client, logger)
		}
	}()
}

// calculateBackoff doubles the interval per consecutive failure, capped
// at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

func refresh(ctx context.Context, store *state.Store, client *api.Client, logger *slog.Logger) {
	photos, err := client.Photos().List(ctx)
	if err != nil {
		fail(store, logger, "photos", err)
		return
	}
	videos, err := client.Videos().List(ctx)
	if err != nil {
		fail(store, logger, "videos", err)
		return
	}
	services, err := client.Services().List(ctx)
	if err != nil {
		fail(store, logger, "services", err)
		return
	}
	contacts, err := client.Contacts().List(ctx)
	if err != nil {
		fail(store, logger, "contacts", err)
		return
	}

	stats := state.Stats{
		Photos:   len(photos),
		Videos:   len(videos),
		Services: len(services),
		Contacts: len(contacts),
	}
	for _, s := range services {
		if s.Status == api.ServiceActive {
			stats.ActiveServices++
		}
	}
	for _, c := range contacts {
		if c.Status == api.ContactUnread {
			stats.UnreadContacts++
		}
	}

	store.Update(&stats, recentActivity(photos, videos, services, contacts), nil)
	logger.Info("dashboard refresh complete",
		"photos", stats.Photos,
		"videos", stats.Videos,
		"services", stats.Services,
		"contacts", stats.Contacts,
	)
}

func fail(store *state.Store, logger *slog.Logger, kind string, err error) {
	store.Update(nil, nil, err)
	logger.Warn("dashboard refresh failed", "kind", kind, "err", err)
}

// recentActivity merges the newest records across kinds. Timestamps are
// the API's sortable date strings, so ordering is lexicographic.
func recentActivity(photos []api.Photo, videos []api.Video, services []api.Service, contacts []api.Contact) []state.Activity {
	var rows []state.Activity
	for _, p := range photos {
		rows = append(rows, state.Activity{Kind: "photos", Title: p.Title, CreatedAt: p.CreatedAt})
	}
	for _, v := range videos {
		rows = append(rows, state.Activity{Kind: "videos", Title: v.Title, CreatedAt: v.CreatedAt})
	}
	for _, s := range services {
		rows = append(rows, state.Activity{Kind: "services", Title: s.Title, CreatedAt: s.CreatedAt})
	}
	for _, c := range contacts {
		rows = append(rows, state.Activity{Kind: "contacts", Title: c.Subject, CreatedAt: c.CreatedAt})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt > rows[j].CreatedAt
	})
	if len(rows) > recentLimit {
		rows = rows[:recentLimit]
	}
	return rows
}
