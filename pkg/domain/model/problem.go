package model

import (
	"time"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/types"
)

// UnknownHost is the display label attached to a problem whose
// trigger→host lookup yielded nothing. A problem with no resolvable
// host must still be displayable.
const UnknownHost = "Unknown Host"

// Problem represents one currently-active fault reported by the
// Zabbix server.
type Problem struct {
	EventID    types.EventID   `json:"event_id"`    // stable per problem instance
	TriggerID  types.TriggerID `json:"trigger_id"`  // rule that fired; re-fires share this
	Name       string          `json:"name"`        // human-readable, not unique across triggers
	Severity   Severity        `json:"severity"`    // ordinal, higher is more severe
	OccurredAt time.Time       `json:"occurred_at"` // seconds resolution
	Host       string          `json:"host_name"`   // resolved via the trigger, UnknownHost fallback
}

// NewProblem creates a Problem with the host defaulted to UnknownHost
func NewProblem(eventID types.EventID, triggerID types.TriggerID, name string, severity Severity, occurredAt time.Time) Problem {
	return Problem{
		EventID:    eventID,
		TriggerID:  triggerID,
		Name:       name,
		Severity:   severity,
		OccurredAt: occurredAt,
		Host:       UnknownHost,
	}
}

// Equal compares two problems by full field value
func (p Problem) Equal(other Problem) bool {
	return p.EventID == other.EventID &&
		p.TriggerID == other.TriggerID &&
		p.Name == other.Name &&
		p.Severity == other.Severity &&
		p.OccurredAt.Equal(other.OccurredAt) &&
		p.Host == other.Host
}

// EqualProblems compares two ordered problem sequences by value.
// Same problems, same order, same field values means equal.
func EqualProblems(a, b []Problem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
