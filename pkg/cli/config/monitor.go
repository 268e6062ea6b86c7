package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
	"github.com/Kassiosky/ZabbixMonitor/pkg/usecase"
)

// Monitor holds poll loop configuration
type Monitor struct {
	Interval       time.Duration
	Lookback       time.Duration
	Backoff        time.Duration
	SeveritiesFile string
}

// Flags returns CLI flags for Monitor configuration
func (m *Monitor) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "interval",
			Usage:       "Delay between poll cycles",
			Category:    "Monitor",
			Value:       usecase.DefaultInterval,
			Sources:     cli.EnvVars("ZBXMON_INTERVAL"),
			Destination: &m.Interval,
		},
		&cli.DurationFlag{
			Name:        "lookback",
			Usage:       "How far back to fetch problems each cycle",
			Category:    "Monitor",
			Value:       usecase.DefaultLookback,
			Sources:     cli.EnvVars("ZBXMON_LOOKBACK"),
			Destination: &m.Lookback,
		},
		&cli.DurationFlag{
			Name:        "backoff",
			Usage:       "Delay after a failed poll cycle",
			Category:    "Monitor",
			Value:       usecase.DefaultBackoff,
			Sources:     cli.EnvVars("ZBXMON_BACKOFF"),
			Destination: &m.Backoff,
		},
		&cli.StringFlag{
			Name:        "severities-file",
			Usage:       "YAML file overriding severity names and colors",
			Category:    "Monitor",
			Sources:     cli.EnvVars("ZBXMON_SEVERITIES_FILE"),
			Destination: &m.SeveritiesFile,
		},
	}
}

// Validate validates the monitor configuration
func (m *Monitor) Validate() error {
	if m.Interval <= 0 {
		return goerr.New("interval must be positive", goerr.V("interval", m.Interval))
	}
	if m.Lookback <= 0 {
		return goerr.New("lookback must be positive", goerr.V("lookback", m.Lookback))
	}
	if m.Backoff <= 0 {
		return goerr.New("backoff must be positive", goerr.V("backoff", m.Backoff))
	}
	return nil
}

// ApplySeverities loads the severity override file if configured
func (m *Monitor) ApplySeverities() error {
	if m.SeveritiesFile == "" {
		return nil
	}

	cfg, err := model.LoadSeveritiesConfig(m.SeveritiesFile)
	if err != nil {
		return err
	}
	cfg.Apply()
	return nil
}

// Options returns the monitor options derived from this configuration
func (m *Monitor) Options() []usecase.MonitorOption {
	return []usecase.MonitorOption{
		usecase.WithInterval(m.Interval),
		usecase.WithLookback(m.Lookback),
		usecase.WithBackoff(m.Backoff),
	}
}

// LogValue returns structured log value
func (m Monitor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("interval", m.Interval),
		slog.Duration("lookback", m.Lookback),
		slog.Duration("backoff", m.Backoff),
		slog.String("severities_file", m.SeveritiesFile),
	)
}
