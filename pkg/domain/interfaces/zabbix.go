package interfaces

//go:generate moq -out mocks/zabbix_mock.go -pkg mocks . ZabbixAPI GraphRenderer

import (
	"context"
	"time"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/types"
)

// ZabbixAPI is the JSON-RPC surface of the monitoring server, wrapped
// into domain-typed calls. All methods carry the process-lifetime API
// token except the login performed by EnsureToken itself.
type ZabbixAPI interface {
	// EnsureToken logs in if no API token is held yet. Idempotent.
	EnsureToken(ctx context.Context) error

	// RecentProblems fetches active problems that occurred after the
	// given time, ordered by event ID descending. Host fields are not
	// populated; that requires TriggerHosts per problem.
	RecentProblems(ctx context.Context, since time.Time) ([]model.Problem, error)

	// TriggerHosts returns the host names associated with a trigger
	TriggerHosts(ctx context.Context, id types.TriggerID) ([]string, error)

	// TriggerByEventName returns the trigger of the most recent event
	// whose name matches exactly. Empty result yields an empty ID.
	TriggerByEventName(ctx context.Context, name string) (types.TriggerID, error)

	// TriggerFirstItem returns the first metric item of a trigger.
	// Empty result yields an empty ID.
	TriggerFirstItem(ctx context.Context, id types.TriggerID) (types.ItemID, error)
}

// GraphRenderer fetches rendered graph images through the web session
// identity (cookie based, separate from the API token).
type GraphRenderer interface {
	// GraphImage fetches the short-term graph image for an item.
	// The trigger ID feeds the Referer the server requires.
	GraphImage(ctx context.Context, item types.ItemID, trigger types.TriggerID) ([]byte, error)
}
