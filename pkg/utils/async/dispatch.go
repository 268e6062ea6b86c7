package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"

	"github.com/Kassiosky/ZabbixMonitor/pkg/utils/apperr"
)

// Dispatch runs a handler in the background with panic recovery. Sink
// side effects (Slack posts, image uploads) go through here so a slow
// or failing surface never stalls the poll loop.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := detach(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			apperr.Handle(newCtx, err)
		}
	}()
}

// detach builds a background context that keeps the logger but drops
// the caller's cancellation, so background work survives the request
// that spawned it.
func detach(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
