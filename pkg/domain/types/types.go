package types

import (
	"github.com/google/uuid"
)

// EventID identifies one problem occurrence on the Zabbix server.
// IDs are decimal strings on the wire and are kept opaque here.
type EventID string

// String returns the string representation
func (id EventID) String() string {
	return string(id)
}

// IsEmpty returns true when no event is identified
func (id EventID) IsEmpty() bool {
	return id == ""
}

// TriggerID identifies the trigger (rule) that fired a problem.
// One trigger may fire many problems over time. Zabbix reports it as
// the "objectid" of a problem or event.
type TriggerID string

// String returns the string representation
func (id TriggerID) String() string {
	return string(id)
}

// IsEmpty returns true when no trigger is identified
func (id TriggerID) IsEmpty() bool {
	return id == ""
}

// ItemID identifies the metric item a trigger watches. Graph images
// are rendered per item.
type ItemID string

// String returns the string representation
func (id ItemID) String() string {
	return string(id)
}

// IsEmpty returns true when no item is identified
func (id ItemID) IsEmpty() bool {
	return id == ""
}

// CycleID correlates all log records emitted by one poll cycle
type CycleID string

// String returns the string representation
func (id CycleID) String() string {
	return string(id)
}

// NewCycleID creates a new CycleID
func NewCycleID() CycleID {
	return CycleID(uuid.New().String())
}
