package types

// ChangeKind classifies the transition between two consecutive problem
// sets. Only the empty/non-empty boundary crossings notify; drift among
// non-zero counts refreshes the display silently.
type ChangeKind string

const (
	// ChangeUnchanged means the sets are equal by value. No side effects.
	ChangeUnchanged ChangeKind = "unchanged"
	// ChangeNewlyActive means problems appeared where there were none
	ChangeNewlyActive ChangeKind = "newly_active"
	// ChangeAllClear means all problems resolved
	ChangeAllClear ChangeKind = "all_clear"
	// ChangeDrift means the set changed without crossing the empty boundary
	ChangeDrift ChangeKind = "drift"
)

// String returns the string representation of the change kind
func (k ChangeKind) String() string {
	return string(k)
}

// IsValid checks if the change kind is valid
func (k ChangeKind) IsValid() bool {
	switch k {
	case ChangeUnchanged, ChangeNewlyActive, ChangeAllClear, ChangeDrift:
		return true
	default:
		return false
	}
}

// Notifies returns true when this transition produces a notification
func (k ChangeKind) Notifies() bool {
	return k == ChangeNewlyActive || k == ChangeAllClear
}
