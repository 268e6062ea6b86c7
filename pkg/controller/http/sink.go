package http

import (
	"context"
	"time"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/interfaces"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
	"github.com/Kassiosky/ZabbixMonitor/pkg/utils/mailbox"
)

// Notice is the last notification shown on the dashboard
type Notice struct {
	Title   string    `json:"title"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Dashboard is the HTTP-facing presentation sink. The poll loop
// pushes into it; request handlers only ever read the latest state
// through the mailbox cells, never shared memory.
type Dashboard struct {
	snapshots *mailbox.Mailbox[model.Snapshot]
	badges    *mailbox.Mailbox[int]
	notices   *mailbox.Mailbox[Notice]
}

var _ interfaces.Sink = (*Dashboard)(nil)

// NewDashboard creates an empty dashboard sink
func NewDashboard() *Dashboard {
	return &Dashboard{
		snapshots: mailbox.New[model.Snapshot](),
		badges:    mailbox.New[int](),
		notices:   mailbox.New[Notice](),
	}
}

// Close stops the mailbox goroutines
func (d *Dashboard) Close() {
	d.snapshots.Close()
	d.badges.Close()
	d.notices.Close()
}

// RenderProblems replaces the displayed snapshot wholesale
func (d *Dashboard) RenderProblems(snapshot model.Snapshot) {
	d.snapshots.Publish(snapshot)
}

// SetStatusBadge updates the active-problem counter
func (d *Dashboard) SetStatusBadge(count int) {
	d.badges.Publish(count)
}

// Notify records the notification for display in the status banner
func (d *Dashboard) Notify(ctx context.Context, title, message string) {
	d.notices.Publish(Notice{
		Title:   title,
		Message: message,
		At:      time.Now(),
	})
}

// ShowImage is a no-op; the dashboard serves graph images on demand
// through its own endpoint instead of receiving pushes
func (d *Dashboard) ShowImage(ctx context.Context, title string, image []byte) {}

// Snapshot returns the latest published snapshot
func (d *Dashboard) Snapshot() (model.Snapshot, bool) {
	return d.snapshots.Latest()
}

// Badge returns the latest badge count
func (d *Dashboard) Badge() (int, bool) {
	return d.badges.Latest()
}

// LastNotice returns the most recent notification
func (d *Dashboard) LastNotice() (Notice, bool) {
	return d.notices.Latest()
}
