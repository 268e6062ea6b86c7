package async_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Kassiosky/ZabbixMonitor/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

// syncBuffer makes the log writer safe to read while the dispatched
// goroutine is still writing
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestDispatchRunsHandler(t *testing.T) {
	done := make(chan struct{})
	async.Dispatch(context.Background(), func(ctx context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not run")
	}
}

func TestDispatchSurvivesCallerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	async.Dispatch(ctx, func(ctx context.Context) error {
		done <- ctx.Err()
		return nil
	})

	select {
	case err := <-done:
		// the detached context must not inherit the cancellation
		gt.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("handler did not run")
	}
}

func TestDispatchRecoversPanic(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	async.Dispatch(context.Background(), func(ctx context.Context) error {
		defer wg.Done()
		panic("boom")
	})

	// must not crash the test process
	wg.Wait()
}

func TestDispatchLogsError(t *testing.T) {
	var buf syncBuffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	async.Dispatch(ctx, func(ctx context.Context) error {
		return goerr.New("handler failed")
	})

	// the error is logged after the handler returns; wait for it
	deadline := time.After(time.Second)
	for {
		if strings.Contains(buf.String(), "handler failed") {
			gt.True(t, strings.Contains(buf.String(), "application error"))
			return
		}
		select {
		case <-deadline:
			t.Fatal("handler error was not logged")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
