package zabbix

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/types"
)

// Zabbix serializes every value as a string on the wire
type problemRow struct {
	EventID  string `json:"eventid"`
	ObjectID string `json:"objectid"` // objectid = triggerid
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Clock    string `json:"clock"`
}

func (r problemRow) toModel() model.Problem {
	// Unparsable severity or clock degrade to zero values; the problem
	// is still displayable.
	severity, _ := strconv.Atoi(r.Severity)
	clock, _ := strconv.ParseInt(r.Clock, 10, 64)

	return model.NewProblem(
		types.EventID(r.EventID),
		types.TriggerID(r.ObjectID),
		r.Name,
		model.Severity(severity),
		time.Unix(clock, 0),
	)
}

type hostRow struct {
	Host string `json:"host"`
}

type triggerRow struct {
	TriggerID string    `json:"triggerid"`
	Hosts     []hostRow `json:"hosts"`
	Items     []itemRow `json:"items"`
}

type itemRow struct {
	ItemID string `json:"itemid"`
}

type eventRow struct {
	EventID  string `json:"eventid"`
	ObjectID string `json:"objectid"`
	Clock    string `json:"clock"`
}

// RecentProblems fetches active problems that occurred after since,
// ordered by event ID descending (server side sort). Hosts are not
// included in the problem payload; enrich via TriggerHosts.
func (c *Client) RecentProblems(ctx context.Context, since time.Time) ([]model.Problem, error) {
	result, err := c.Call(ctx, methodProblem, map[string]any{
		"output":                "extend",
		"selectTags":            "extend",
		"selectSuppressionData": "extend",
		"time_from":             since.Unix(),
		"sortfield":             []string{"eventid"},
		"sortorder":             "DESC",
	})
	if err != nil {
		return nil, err
	}

	var rows []problemRow
	if err := json.Unmarshal(result, &rows); err != nil {
		return nil, goerr.Wrap(err, "unexpected problem.get result")
	}

	problems := make([]model.Problem, 0, len(rows))
	for _, row := range rows {
		problems = append(problems, row.toModel())
	}
	return problems, nil
}

// TriggerHosts returns the host names associated with a trigger
func (c *Client) TriggerHosts(ctx context.Context, id types.TriggerID) ([]string, error) {
	result, err := c.Call(ctx, methodTrigger, map[string]any{
		"output":      []string{"triggerid"},
		"selectHosts": []string{"host"},
		"triggerids":  id.String(),
	})
	if err != nil {
		return nil, err
	}

	var rows []triggerRow
	if err := json.Unmarshal(result, &rows); err != nil {
		return nil, goerr.Wrap(err, "unexpected trigger.get result")
	}

	if len(rows) == 0 {
		return nil, nil
	}

	hosts := make([]string, 0, len(rows[0].Hosts))
	for _, h := range rows[0].Hosts {
		hosts = append(hosts, h.Host)
	}
	return hosts, nil
}

// TriggerByEventName returns the trigger of the most recent event
// whose name matches exactly. Problem names are not unique across
// triggers; most recent occurrence wins by server sort order.
func (c *Client) TriggerByEventName(ctx context.Context, name string) (types.TriggerID, error) {
	result, err := c.Call(ctx, methodEvent, map[string]any{
		"output":    "extend",
		"filter":    map[string]string{"name": name},
		"sortfield": "clock",
		"sortorder": "DESC",
	})
	if err != nil {
		return "", err
	}

	var rows []eventRow
	if err := json.Unmarshal(result, &rows); err != nil {
		return "", goerr.Wrap(err, "unexpected event.get result")
	}

	if len(rows) == 0 {
		return "", nil
	}
	return types.TriggerID(rows[0].ObjectID), nil
}

// TriggerFirstItem returns the first metric item of a trigger
func (c *Client) TriggerFirstItem(ctx context.Context, id types.TriggerID) (types.ItemID, error) {
	result, err := c.Call(ctx, methodTrigger, map[string]any{
		"output":      "extend",
		"triggerids":  id.String(),
		"selectItems": "extend",
	})
	if err != nil {
		return "", err
	}

	var rows []triggerRow
	if err := json.Unmarshal(result, &rows); err != nil {
		return "", goerr.Wrap(err, "unexpected trigger.get result")
	}

	if len(rows) == 0 || len(rows[0].Items) == 0 {
		return "", nil
	}
	return types.ItemID(rows[0].Items[0].ItemID), nil
}
