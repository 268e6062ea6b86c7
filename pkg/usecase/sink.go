package usecase

import (
	"context"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/interfaces"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
)

// MultiSink fans monitor output out to every configured presentation
// surface. Sinks are expected to handle their own failures; the fanout
// adds nothing but iteration.
type MultiSink []interfaces.Sink

var _ interfaces.Sink = MultiSink{}

// RenderProblems forwards the snapshot to all sinks
func (s MultiSink) RenderProblems(snapshot model.Snapshot) {
	for _, sink := range s {
		sink.RenderProblems(snapshot)
	}
}

// SetStatusBadge forwards the badge count to all sinks
func (s MultiSink) SetStatusBadge(count int) {
	for _, sink := range s {
		sink.SetStatusBadge(count)
	}
}

// Notify forwards the notification to all sinks
func (s MultiSink) Notify(ctx context.Context, title, message string) {
	for _, sink := range s {
		sink.Notify(ctx, title, message)
	}
}

// ShowImage forwards the image to all sinks
func (s MultiSink) ShowImage(ctx context.Context, title string, image []byte) {
	for _, sink := range s {
		sink.ShowImage(ctx, title, image)
	}
}
