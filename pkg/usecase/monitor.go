package usecase

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/interfaces"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/types"
)

const (
	// DefaultInterval is the fixed delay between poll cycles
	DefaultInterval = 10 * time.Second
	// DefaultLookback is the server-side problem window
	DefaultLookback = 120 * time.Minute
	// DefaultBackoff is the cool-down after a failed cycle
	DefaultBackoff = 60 * time.Second
)

// Monitor is the incident poller. It owns the last-known problem set
// and the decision whether a cycle notifies, refreshes, or does
// nothing; the Run goroutine is the only writer of that state.
type Monitor struct {
	zbx     interfaces.ZabbixAPI
	sink    interfaces.Sink
	appName string

	interval time.Duration
	lookback time.Duration
	backoff  time.Duration
	now      func() time.Time

	known []model.Problem // owned by the Run goroutine
}

// MonitorOption configures a Monitor
type MonitorOption func(*Monitor)

// WithInterval overrides the poll interval
func WithInterval(d time.Duration) MonitorOption {
	return func(m *Monitor) {
		m.interval = d
	}
}

// WithLookback overrides the problem lookback window
func WithLookback(d time.Duration) MonitorOption {
	return func(m *Monitor) {
		m.lookback = d
	}
}

// WithBackoff overrides the failed-cycle cool-down
func WithBackoff(d time.Duration) MonitorOption {
	return func(m *Monitor) {
		m.backoff = d
	}
}

// WithMonitorClock overrides the time source (tests)
func WithMonitorClock(now func() time.Time) MonitorOption {
	return func(m *Monitor) {
		m.now = now
	}
}

// WithAppName sets the prefix used in notification titles
func WithAppName(name string) MonitorOption {
	return func(m *Monitor) {
		m.appName = name
	}
}

// NewMonitor creates a Monitor polling zbx and pushing into sink
func NewMonitor(zbx interfaces.ZabbixAPI, sink interfaces.Sink, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		zbx:      zbx,
		sink:     sink,
		appName:  "ZabbixMonitor",
		interval: DefaultInterval,
		lookback: DefaultLookback,
		backoff:  DefaultBackoff,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// FetchCurrent returns the current problem set, host-enriched. Any
// server-reported (protocol) error degrades to an empty set with a nil
// error; only transport-class failures propagate, so the caller can
// apply the back-off policy to them alone. A login failure aborts the
// cycle entirely: no partial fetch happens without a token.
func (m *Monitor) FetchCurrent(ctx context.Context) ([]model.Problem, error) {
	logger := ctxlog.From(ctx)

	if err := m.zbx.EnsureToken(ctx); err != nil {
		if goerr.HasTag(err, model.ErrTagRPC) {
			logger.Warn("API authentication rejected, treating cycle as empty", "error", err)
			return nil, nil
		}
		return nil, goerr.Wrap(err, "login transport failure")
	}

	problems, err := m.zbx.RecentProblems(ctx, m.now().Add(-m.lookback))
	if err != nil {
		if goerr.HasTag(err, model.ErrTagRPC) {
			logger.Warn("problem fetch rejected by server, treating cycle as empty", "error", err)
			return nil, nil
		}
		return nil, goerr.Wrap(err, "problem fetch transport failure")
	}

	// Host name is not part of the problem payload; it costs one
	// trigger lookup per problem. Enrichment never drops a problem:
	// lookup failures leave the Unknown Host default in place.
	for i := range problems {
		hosts, err := m.zbx.TriggerHosts(ctx, problems[i].TriggerID)
		if err != nil {
			logger.Debug("host lookup failed",
				"trigger", problems[i].TriggerID,
				"error", err,
			)
			continue
		}
		if len(hosts) > 0 {
			problems[i].Host = hosts[0]
		}
	}

	return problems, nil
}

// Cycle performs one poll cycle: fetch, classify, side effects. The
// returned kind reflects the transition from the last known set.
func (m *Monitor) Cycle(ctx context.Context) (types.ChangeKind, error) {
	problems, err := m.FetchCurrent(ctx)
	if err != nil {
		return "", err
	}

	kind := Classify(m.known, problems)
	if kind == types.ChangeUnchanged {
		return kind, nil
	}

	switch kind {
	case types.ChangeNewlyActive:
		m.sink.Notify(ctx, m.appName+" New incident discovered", "There is a new problem in Zabbix.")
	case types.ChangeAllClear:
		m.sink.Notify(ctx, m.appName+" All incidents cleared", "There are no active problems in Zabbix.")
	}

	snapshot := model.NewSnapshot(problems, kind, m.now())
	m.sink.RenderProblems(snapshot)
	m.sink.SetStatusBadge(snapshot.Count())
	m.known = problems

	ctxlog.From(ctx).Info("problem set changed",
		slog.String("kind", kind.String()),
		slog.Int("count", snapshot.Count()),
	)

	return kind, nil
}

// Run polls on a fixed delay until the context is cancelled. A failed
// or panicking cycle logs, then cools down for the back-off duration;
// nothing escapes as a crash.
func (m *Monitor) Run(ctx context.Context) {
	logger := ctxlog.From(ctx)
	logger.Info("incident poller started",
		slog.Duration("interval", m.interval),
		slog.Duration("lookback", m.lookback),
	)

	for {
		delay := m.interval
		if err := m.safeCycle(ctx); err != nil {
			logger.Error("poll cycle failed, backing off",
				"error", err,
				slog.Duration("backoff", m.backoff),
			)
			delay = m.backoff
		}

		select {
		case <-ctx.Done():
			logger.Info("incident poller stopped")
			return
		case <-time.After(delay):
		}
	}
}

func (m *Monitor) safeCycle(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = goerr.New("panic in poll cycle",
				goerr.V("recover", r),
				goerr.V("stack", string(debug.Stack())),
			)
		}
	}()

	cycleCtx := ctxlog.With(ctx, ctxlog.From(ctx).With("cycle", types.NewCycleID().String()))
	_, err = m.Cycle(cycleCtx)
	return err
}
