package zabbix

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

// EnsureToken logs in via user.login when no API token is held yet.
// Safe to call every cycle; a held token is kept for the process
// lifetime, there is no expiry or refresh path.
func (c *Client) EnsureToken(ctx context.Context) error {
	if c.Token() != "" {
		return nil
	}

	result, err := c.Call(ctx, methodLogin, map[string]string{
		"user":     c.username,
		"password": c.password,
	})
	if err != nil {
		return goerr.Wrap(err, "API authentication failed")
	}

	var token string
	if err := json.Unmarshal(result, &token); err != nil {
		return goerr.Wrap(err, "unexpected login result")
	}
	if token == "" {
		return goerr.New("login returned an empty token")
	}

	c.setToken(token)
	return nil
}
