package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagRPC marks errors reported by the Zabbix server itself (an
	// "error" object in the JSON-RPC envelope). The poller degrades
	// these to an empty cycle instead of backing off.
	ErrTagRPC = goerr.NewTag("zabbix_rpc")

	// ErrTagGraphUnavailable marks a miss anywhere in the graph
	// resolution chain. Never fatal; surfaced per request.
	ErrTagGraphUnavailable = goerr.NewTag("graph_unavailable")
)
