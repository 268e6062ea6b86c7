package interfaces

//go:generate moq -out mocks/sink_mock.go -pkg mocks . Sink

import (
	"context"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
)

// Sink is a presentation surface the monitoring core pushes data into.
// Implementations must be cheap and non-blocking from the caller's
// point of view; a failing sink is logged, never escalated to the poll
// loop.
type Sink interface {
	// RenderProblems replaces the displayed problem set wholesale
	RenderProblems(snapshot model.Snapshot)

	// SetStatusBadge updates the active-problem count indicator
	SetStatusBadge(count int)

	// Notify raises a user-visible notification
	Notify(ctx context.Context, title, message string)

	// ShowImage presents a rendered graph image
	ShowImage(ctx context.Context, title string, image []byte)
}
