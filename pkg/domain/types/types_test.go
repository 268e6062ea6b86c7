package types_test

import (
	"testing"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestNewCycleID(t *testing.T) {
	id1 := types.NewCycleID()
	id2 := types.NewCycleID()

	gt.V(t, id1.String()).NotEqual("")
	gt.V(t, id1).NotEqual(id2)
}

func TestChangeKindIsValid(t *testing.T) {
	valid := []types.ChangeKind{
		types.ChangeUnchanged,
		types.ChangeNewlyActive,
		types.ChangeAllClear,
		types.ChangeDrift,
	}
	for _, k := range valid {
		gt.True(t, k.IsValid())
	}

	gt.False(t, types.ChangeKind("resolved").IsValid())
	gt.False(t, types.ChangeKind("").IsValid())
}

func TestChangeKindNotifies(t *testing.T) {
	gt.True(t, types.ChangeNewlyActive.Notifies())
	gt.True(t, types.ChangeAllClear.Notifies())
	gt.False(t, types.ChangeDrift.Notifies())
	gt.False(t, types.ChangeUnchanged.Notifies())
}
