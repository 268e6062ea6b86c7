package model

import (
	"time"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/types"
)

// Snapshot is the output of one poll cycle, replaced wholesale each
// time. Problems keep the server order (event ID descending).
type Snapshot struct {
	Problems  []Problem        `json:"problems"`
	Kind      types.ChangeKind `json:"kind"`
	FetchedAt time.Time        `json:"fetched_at"`
}

// NewSnapshot creates a Snapshot for the given cycle result
func NewSnapshot(problems []Problem, kind types.ChangeKind, fetchedAt time.Time) Snapshot {
	return Snapshot{
		Problems:  problems,
		Kind:      kind,
		FetchedAt: fetchedAt,
	}
}

// Count returns the number of active problems
func (s Snapshot) Count() int {
	return len(s.Problems)
}

// HasProblems returns true when at least one problem is active
func (s Snapshot) HasProblems() bool {
	return len(s.Problems) > 0
}
