package zabbix

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
)

const (
	apiPath       = "/api_jsonrpc.php"
	contentType   = "application/json-rpc"
	methodLogin   = "user.login"
	methodProblem = "problem.get"
	methodTrigger = "trigger.get"
	methodEvent   = "event.get"
)

// Client talks to the Zabbix JSON-RPC endpoint. The API token is held
// for the process lifetime once obtained; only the poll loop writes
// it, other goroutines read it atomically.
type Client struct {
	httpClient *http.Client
	apiURL     string
	username   string
	password   string

	token atomic.Value // string
	rpcID atomic.Int64
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken pre-seeds the API token so no login call is needed
func WithToken(token string) Option {
	return func(c *Client) {
		c.token.Store(token)
	}
}

// WithTLSVerify re-enables TLS certificate validation. Off by default:
// the tool targets internal deployments with self-signed certificates,
// and the relaxation is surfaced to the integrator as a config flag.
func WithTLSVerify() Option {
	return func(c *Client) {
		c.httpClient = newHTTPClient(false)
	}
}

// New creates a Client for the Zabbix server at baseURL
func New(baseURL, username, password string, opts ...Option) *Client {
	c := &Client{
		httpClient: newHTTPClient(true),
		apiURL:     strings.TrimRight(baseURL, "/") + apiPath,
		username:   username,
		password:   password,
	}
	c.token.Store("")

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func newHTTPClient(skipVerify bool) *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: skipVerify, // #nosec G402
			},
		},
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      int64  `json:"id"`
	Auth    string `json:"auth,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// Call issues one JSON-RPC request. The held API token is attached as
// the auth field on every method except user.login. A server-reported
// error comes back tagged with model.ErrTagRPC; transport failures and
// malformed bodies are returned untagged.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	req := rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.rpcID.Add(1),
	}
	if method != methodLogin {
		req.Auth = c.Token()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode RPC request", goerr.V("method", method))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build RPC request", goerr.V("method", method))
	}
	httpReq.Header.Set("Content-Type", contentType)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, goerr.Wrap(err, "RPC transport failure",
			goerr.V("method", method), goerr.V("url", c.apiURL))
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read RPC response", goerr.V("method", method))
	}

	var resp rpcResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, goerr.Wrap(err, "malformed RPC response",
			goerr.V("method", method), goerr.V("status", httpResp.StatusCode))
	}

	if resp.Error != nil {
		return nil, goerr.New("zabbix server returned an error",
			goerr.T(model.ErrTagRPC),
			goerr.V("method", method),
			goerr.V("code", resp.Error.Code),
			goerr.V("message", resp.Error.Message),
			goerr.V("data", resp.Error.Data),
		)
	}

	return resp.Result, nil
}

// Token returns the current API token, empty until a login succeeds
func (c *Client) Token() string {
	token, _ := c.token.Load().(string)
	return token
}

func (c *Client) setToken(token string) {
	c.token.Store(token)
}
