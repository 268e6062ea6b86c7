package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/interfaces/mocks"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/types"
	"github.com/Kassiosky/ZabbixMonitor/pkg/usecase"
)

func TestGraphResolve(t *testing.T) {
	ctx := context.Background()
	png := []byte{0x89, 'P', 'N', 'G'}

	api := &mocks.ZabbixAPIMock{
		TriggerByEventNameFunc: func(ctx context.Context, name string) (types.TriggerID, error) {
			gt.Equal(t, name, "High CPU utilization")
			return types.TriggerID("7001"), nil
		},
		TriggerFirstItemFunc: func(ctx context.Context, id types.TriggerID) (types.ItemID, error) {
			gt.Equal(t, id, types.TriggerID("7001"))
			return types.ItemID("42"), nil
		},
	}
	renderer := &mocks.GraphRendererMock{
		GraphImageFunc: func(ctx context.Context, item types.ItemID, trigger types.TriggerID) ([]byte, error) {
			gt.Equal(t, item, types.ItemID("42"))
			gt.Equal(t, trigger, types.TriggerID("7001"))
			return png, nil
		},
	}

	u := usecase.NewGraph(api, renderer)
	image, err := u.Resolve(ctx, "High CPU utilization")
	gt.NoError(t, err).Required()
	gt.Equal(t, image, png)
}

func TestGraphResolveNoMatchingEvent(t *testing.T) {
	// Scenario: a name matching zero events must short-circuit before
	// the trigger and item lookups
	ctx := context.Background()

	api := &mocks.ZabbixAPIMock{
		TriggerByEventNameFunc: func(ctx context.Context, name string) (types.TriggerID, error) {
			return "", nil
		},
		TriggerFirstItemFunc: func(ctx context.Context, id types.TriggerID) (types.ItemID, error) {
			return types.ItemID("42"), nil
		},
	}
	renderer := &mocks.GraphRendererMock{
		GraphImageFunc: func(ctx context.Context, item types.ItemID, trigger types.TriggerID) ([]byte, error) {
			return []byte("img"), nil
		},
	}

	u := usecase.NewGraph(api, renderer)
	_, err := u.Resolve(ctx, "No such problem")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagGraphUnavailable))

	gt.A(t, api.TriggerByEventNameCalls()).Length(1)
	gt.A(t, api.TriggerFirstItemCalls()).Length(0)
	gt.A(t, renderer.GraphImageCalls()).Length(0)
}

func TestGraphResolveTriggerWithoutItems(t *testing.T) {
	ctx := context.Background()

	api := &mocks.ZabbixAPIMock{
		TriggerByEventNameFunc: func(ctx context.Context, name string) (types.TriggerID, error) {
			return types.TriggerID("7001"), nil
		},
		TriggerFirstItemFunc: func(ctx context.Context, id types.TriggerID) (types.ItemID, error) {
			return "", nil
		},
	}
	renderer := &mocks.GraphRendererMock{
		GraphImageFunc: func(ctx context.Context, item types.ItemID, trigger types.TriggerID) ([]byte, error) {
			return []byte("img"), nil
		},
	}

	u := usecase.NewGraph(api, renderer)
	_, err := u.Resolve(ctx, "High CPU utilization")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagGraphUnavailable))
	gt.A(t, renderer.GraphImageCalls()).Length(0)
}

func TestGraphResolveRendererFailure(t *testing.T) {
	ctx := context.Background()

	api := &mocks.ZabbixAPIMock{
		TriggerByEventNameFunc: func(ctx context.Context, name string) (types.TriggerID, error) {
			return types.TriggerID("7001"), nil
		},
		TriggerFirstItemFunc: func(ctx context.Context, id types.TriggerID) (types.ItemID, error) {
			return types.ItemID("42"), nil
		},
	}
	renderer := &mocks.GraphRendererMock{
		GraphImageFunc: func(ctx context.Context, item types.ItemID, trigger types.TriggerID) ([]byte, error) {
			return nil, goerr.New("graph response is not an image",
				goerr.T(model.ErrTagGraphUnavailable))
		},
	}

	u := usecase.NewGraph(api, renderer)
	_, err := u.Resolve(ctx, "High CPU utilization")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagGraphUnavailable))
}
