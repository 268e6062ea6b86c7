package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Kassiosky/ZabbixMonitor/pkg/service/zabbix"
)

// Zabbix holds Zabbix server connection configuration. The same
// credentials drive both the JSON-RPC API session and the web session
// used for graph rendering.
type Zabbix struct {
	URL       string
	User      string
	Password  string
	APIToken  string
	TLSVerify bool
}

// Flags returns CLI flags for Zabbix configuration
func (z *Zabbix) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "zabbix-url",
			Usage:       "Zabbix server base URL (e.g. https://zabbix.example.com)",
			Category:    "Zabbix",
			Required:    true,
			Sources:     cli.EnvVars("ZBXMON_ZABBIX_URL"),
			Destination: &z.URL,
		},
		&cli.StringFlag{
			Name:        "zabbix-user",
			Usage:       "Zabbix username",
			Category:    "Zabbix",
			Sources:     cli.EnvVars("ZBXMON_ZABBIX_USER"),
			Destination: &z.User,
		},
		&cli.StringFlag{
			Name:        "zabbix-password",
			Usage:       "Zabbix password",
			Category:    "Zabbix",
			Sources:     cli.EnvVars("ZBXMON_ZABBIX_PASSWORD"),
			Destination: &z.Password,
		},
		&cli.StringFlag{
			Name:        "zabbix-api-token",
			Usage:       "Pre-issued API token (skips user.login)",
			Category:    "Zabbix",
			Sources:     cli.EnvVars("ZBXMON_ZABBIX_API_TOKEN"),
			Destination: &z.APIToken,
		},
		&cli.BoolFlag{
			Name:        "zabbix-tls-verify",
			Usage:       "Verify the Zabbix server TLS certificate",
			Category:    "Zabbix",
			Value:       false,
			Sources:     cli.EnvVars("ZBXMON_ZABBIX_TLS_VERIFY"),
			Destination: &z.TLSVerify,
		},
	}
}

// Validate validates the Zabbix configuration
func (z *Zabbix) Validate() error {
	if z.URL == "" {
		return goerr.New("zabbix-url is required")
	}
	if z.APIToken == "" && (z.User == "" || z.Password == "") {
		return goerr.New("zabbix-user and zabbix-password are required unless zabbix-api-token is set")
	}
	return nil
}

// Configure creates the JSON-RPC client
func (z *Zabbix) Configure() *zabbix.Client {
	var opts []zabbix.Option
	if z.APIToken != "" {
		opts = append(opts, zabbix.WithToken(z.APIToken))
	}
	if z.TLSVerify {
		opts = append(opts, zabbix.WithTLSVerify())
	}
	return zabbix.New(z.URL, z.User, z.Password, opts...)
}

// ConfigureWebSession creates the browser-style session used for
// chart rendering. Requires username and password; an API token alone
// cannot log in to the web frontend.
func (z *Zabbix) ConfigureWebSession() (*zabbix.WebSession, error) {
	if z.User == "" || z.Password == "" {
		return nil, goerr.New("zabbix-user and zabbix-password are required for graph rendering")
	}

	var opts []zabbix.WebSessionOption
	if z.TLSVerify {
		opts = append(opts, zabbix.WithWebTLSVerify())
	}
	return zabbix.NewWebSession(z.URL, z.User, z.Password, opts...)
}

// LogValue returns structured log value
func (z Zabbix) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", z.URL),
		slog.String("user", z.User),
		slog.Bool("has_password", z.Password != ""),
		slog.Bool("has_api_token", z.APIToken != ""),
		slog.Bool("tls_verify", z.TLSVerify),
	)
}
