package usecase

import (
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/types"
)

// Classify compares the previously known problem set against the
// freshly fetched one and labels the transition. Pure and total: every
// pair of sets maps to exactly one kind, and Classify(A, A) is always
// ChangeUnchanged.
//
// Only the empty/non-empty boundary notifies. Count or content drift
// among non-zero sets refreshes the display without re-alerting; that
// asymmetry is the tool's noise-reduction policy.
func Classify(previous, current []model.Problem) types.ChangeKind {
	switch {
	case model.EqualProblems(previous, current):
		return types.ChangeUnchanged
	case len(previous) == 0 && len(current) > 0:
		return types.ChangeNewlyActive
	case len(previous) > 0 && len(current) == 0:
		return types.ChangeAllClear
	default:
		return types.ChangeDrift
	}
}
