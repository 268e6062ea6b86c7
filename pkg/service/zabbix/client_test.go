package zabbix_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/types"
	"github.com/Kassiosky/ZabbixMonitor/pkg/service/zabbix"
)

type rpcCapture struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
	Auth   string          `json:"auth"`
	ID     int64           `json:"id"`
}

// newRPCServer serves canned results per method and records requests
func newRPCServer(t *testing.T, results map[string]any) (*httptest.Server, *[]rpcCapture) {
	t.Helper()
	var captured []rpcCapture

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.URL.Path, "/api_jsonrpc.php")

		var req rpcCapture
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		captured = append(captured, req)

		result, ok := results[req.Method]
		if !ok {
			t.Fatalf("unexpected RPC method: %s", req.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		gt.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"result":  result,
			"id":      req.ID,
		}))
	}))
	t.Cleanup(srv.Close)

	return srv, &captured
}

func TestCallAttachesAuthExceptLogin(t *testing.T) {
	ctx := context.Background()
	srv, captured := newRPCServer(t, map[string]any{
		"user.login":  "tok-123",
		"problem.get": []any{},
	})

	c := zabbix.New(srv.URL, "operator", "secret")

	gt.NoError(t, c.EnsureToken(ctx))
	gt.Equal(t, c.Token(), "tok-123")

	_, err := c.RecentProblems(ctx, time.Unix(0, 0))
	gt.NoError(t, err)

	calls := *captured
	gt.A(t, calls).Length(2)
	gt.Equal(t, calls[0].Method, "user.login")
	gt.Equal(t, calls[0].Auth, "")
	gt.Equal(t, calls[1].Method, "problem.get")
	gt.Equal(t, calls[1].Auth, "tok-123")
}

func TestEnsureTokenIdempotent(t *testing.T) {
	ctx := context.Background()
	srv, captured := newRPCServer(t, map[string]any{"user.login": "tok-123"})

	c := zabbix.New(srv.URL, "operator", "secret")
	gt.NoError(t, c.EnsureToken(ctx))
	gt.NoError(t, c.EnsureToken(ctx))

	// the second call must not log in again
	gt.A(t, *captured).Length(1)
}

func TestEnsureTokenSkipsLoginWithSeededToken(t *testing.T) {
	ctx := context.Background()
	srv, captured := newRPCServer(t, map[string]any{})

	c := zabbix.New(srv.URL, "operator", "secret", zabbix.WithToken("pre-seeded"))
	gt.NoError(t, c.EnsureToken(ctx))
	gt.A(t, *captured).Length(0)
	gt.Equal(t, c.Token(), "pre-seeded")
}

func TestCallServerError(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":-32602,"message":"Invalid params.","data":"Incorrect user name or password."},"id":1}`))
	}))
	defer srv.Close()

	c := zabbix.New(srv.URL, "operator", "wrong")
	err := c.EnsureToken(ctx)
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagRPC))
	gt.Equal(t, c.Token(), "")
}

func TestCallMalformedBody(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	c := zabbix.New(srv.URL, "operator", "secret", zabbix.WithToken("tok"))
	_, err := c.Call(ctx, "problem.get", map[string]any{})
	gt.Error(t, err)
	// a non-JSON body is a transport-class failure, not a server error
	gt.False(t, goerr.HasTag(err, model.ErrTagRPC))
}

func TestCallTransportFailure(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := zabbix.New(srv.URL, "operator", "secret", zabbix.WithToken("tok"))
	_, err := c.Call(ctx, "problem.get", map[string]any{})
	gt.Error(t, err)
	gt.False(t, goerr.HasTag(err, model.ErrTagRPC))
}

func TestRecentProblems(t *testing.T) {
	ctx := context.Background()
	srv, captured := newRPCServer(t, map[string]any{
		"problem.get": []map[string]string{
			{"eventid": "101", "objectid": "7001", "name": "High CPU utilization", "severity": "4", "clock": "1756700000"},
			{"eventid": "100", "objectid": "7002", "name": "Disk space low", "severity": "2", "clock": "1756699000"},
		},
	})

	c := zabbix.New(srv.URL, "operator", "secret", zabbix.WithToken("tok"))
	since := time.Unix(1756690000, 0)
	problems, err := c.RecentProblems(ctx, since)
	gt.NoError(t, err).Required()
	gt.A(t, problems).Length(2)

	gt.Equal(t, problems[0].EventID, types.EventID("101"))
	gt.Equal(t, problems[0].TriggerID, types.TriggerID("7001"))
	gt.Equal(t, problems[0].Severity, model.SeverityHigh)
	gt.Equal(t, problems[0].OccurredAt, time.Unix(1756700000, 0))
	gt.Equal(t, problems[0].Host, model.UnknownHost)

	// time_from carries the lookback boundary
	var params struct {
		TimeFrom int64 `json:"time_from"`
	}
	gt.NoError(t, json.Unmarshal((*captured)[0].Params, &params))
	gt.Equal(t, params.TimeFrom, since.Unix())
}

func TestRecentProblemsUnparsableFields(t *testing.T) {
	ctx := context.Background()
	srv, _ := newRPCServer(t, map[string]any{
		"problem.get": []map[string]string{
			{"eventid": "55", "objectid": "9", "name": "Odd one", "severity": "??", "clock": ""},
		},
	})

	c := zabbix.New(srv.URL, "operator", "secret", zabbix.WithToken("tok"))
	problems, err := c.RecentProblems(ctx, time.Unix(0, 0))
	gt.NoError(t, err).Required()
	gt.A(t, problems).Length(1)
	gt.Equal(t, problems[0].Severity, model.SeverityNotClassified)
	gt.Equal(t, problems[0].OccurredAt, time.Unix(0, 0))
}

func TestTriggerHosts(t *testing.T) {
	ctx := context.Background()
	srv, _ := newRPCServer(t, map[string]any{
		"trigger.get": []map[string]any{
			{"triggerid": "7001", "hosts": []map[string]string{{"host": "web-01"}, {"host": "web-02"}}},
		},
	})

	c := zabbix.New(srv.URL, "operator", "secret", zabbix.WithToken("tok"))
	hosts, err := c.TriggerHosts(ctx, types.TriggerID("7001"))
	gt.NoError(t, err).Required()
	gt.Equal(t, hosts, []string{"web-01", "web-02"})
}

func TestTriggerHostsEmpty(t *testing.T) {
	ctx := context.Background()
	srv, _ := newRPCServer(t, map[string]any{"trigger.get": []any{}})

	c := zabbix.New(srv.URL, "operator", "secret", zabbix.WithToken("tok"))
	hosts, err := c.TriggerHosts(ctx, types.TriggerID("7001"))
	gt.NoError(t, err)
	gt.A(t, hosts).Length(0)
}

func TestTriggerByEventName(t *testing.T) {
	ctx := context.Background()
	srv, captured := newRPCServer(t, map[string]any{
		"event.get": []map[string]string{
			{"eventid": "300", "objectid": "7005", "clock": "1756701000"},
			{"eventid": "200", "objectid": "7004", "clock": "1756700000"},
		},
	})

	c := zabbix.New(srv.URL, "operator", "secret", zabbix.WithToken("tok"))
	id, err := c.TriggerByEventName(ctx, "High CPU utilization")
	gt.NoError(t, err).Required()
	// first row is the most recent by server sort order
	gt.Equal(t, id, types.TriggerID("7005"))

	var params struct {
		Filter    map[string]string `json:"filter"`
		SortOrder string            `json:"sortorder"`
	}
	gt.NoError(t, json.Unmarshal((*captured)[0].Params, &params))
	gt.Equal(t, params.Filter["name"], "High CPU utilization")
	gt.Equal(t, params.SortOrder, "DESC")
}

func TestTriggerByEventNameNoMatch(t *testing.T) {
	ctx := context.Background()
	srv, _ := newRPCServer(t, map[string]any{"event.get": []any{}})

	c := zabbix.New(srv.URL, "operator", "secret", zabbix.WithToken("tok"))
	id, err := c.TriggerByEventName(ctx, "No such problem")
	gt.NoError(t, err)
	gt.True(t, id.IsEmpty())
}

func TestTriggerFirstItem(t *testing.T) {
	ctx := context.Background()
	srv, _ := newRPCServer(t, map[string]any{
		"trigger.get": []map[string]any{
			{"triggerid": "7001", "items": []map[string]string{{"itemid": "42"}, {"itemid": "43"}}},
		},
	})

	c := zabbix.New(srv.URL, "operator", "secret", zabbix.WithToken("tok"))
	id, err := c.TriggerFirstItem(ctx, types.TriggerID("7001"))
	gt.NoError(t, err).Required()
	gt.Equal(t, id, types.ItemID("42"))
}

func TestTriggerFirstItemNoItems(t *testing.T) {
	ctx := context.Background()
	srv, _ := newRPCServer(t, map[string]any{
		"trigger.get": []map[string]any{{"triggerid": "7001", "items": []any{}}},
	})

	c := zabbix.New(srv.URL, "operator", "secret", zabbix.WithToken("tok"))
	id, err := c.TriggerFirstItem(ctx, types.TriggerID("7001"))
	gt.NoError(t, err)
	gt.True(t, id.IsEmpty())
}
