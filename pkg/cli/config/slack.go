package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/Kassiosky/ZabbixMonitor/pkg/service/slacknotify"
)

// Slack holds Slack notification configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("ZBXMON_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID for notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("ZBXMON_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// IsConfigured checks if Slack notifications are enabled
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// ConfigureOptional creates the Slack notifier if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) *slacknotify.Service {
	if !s.IsConfigured() {
		logger.Warn("Slack not configured - notifications stay local to the dashboard")
		return nil
	}

	logger.Info("Configuring Slack notifier", "channel", s.Channel)
	return slacknotify.New(s.OAuthToken, s.Channel)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
