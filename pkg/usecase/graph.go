package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/interfaces"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
)

// Graph resolves a problem name to a rendered short-term graph image.
// The chain is name → event → trigger → item → image; it is rebuilt on
// every request, deliberately uncached, since the event→item binding
// can go stale without bound.
type Graph struct {
	zbx      interfaces.ZabbixAPI
	renderer interfaces.GraphRenderer
}

// NewGraph creates a Graph resolver
func NewGraph(zbx interfaces.ZabbixAPI, renderer interfaces.GraphRenderer) *Graph {
	return &Graph{
		zbx:      zbx,
		renderer: renderer,
	}
}

// Resolve walks the lookup chain for the named problem. Any empty step
// aborts with a graph-unavailable error before the later lookups are
// issued. Problem names are not unique; the most recent matching event
// wins, which can pick the wrong trigger when two rules share a
// display name (known limitation).
func (u *Graph) Resolve(ctx context.Context, name string) ([]byte, error) {
	if u.renderer == nil {
		return nil, goerr.New("graph rendering is not configured",
			goerr.T(model.ErrTagGraphUnavailable))
	}

	trigger, err := u.zbx.TriggerByEventName(ctx, name)
	if err != nil {
		return nil, goerr.Wrap(err, "event lookup failed", goerr.V("name", name))
	}
	if trigger.IsEmpty() {
		return nil, goerr.New("no event matches the problem name",
			goerr.T(model.ErrTagGraphUnavailable), goerr.V("name", name))
	}

	item, err := u.zbx.TriggerFirstItem(ctx, trigger)
	if err != nil {
		return nil, goerr.Wrap(err, "item lookup failed", goerr.V("trigger", trigger))
	}
	if item.IsEmpty() {
		return nil, goerr.New("trigger has no metric items",
			goerr.T(model.ErrTagGraphUnavailable), goerr.V("trigger", trigger))
	}

	image, err := u.renderer.GraphImage(ctx, item, trigger)
	if err != nil {
		return nil, err
	}

	return image, nil
}
