package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Kassiosky/ZabbixMonitor/pkg/cli/config"
	controller "github.com/Kassiosky/ZabbixMonitor/pkg/controller/http"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/interfaces"
	"github.com/Kassiosky/ZabbixMonitor/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		zabbixCfg  config.Zabbix
		monitorCfg config.Monitor
		slackCfg   config.Slack
	)

	flags := joinFlags(
		serverCfg.Flags(),
		zabbixCfg.Flags(),
		monitorCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the poll loop and dashboard server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := zabbixCfg.Validate(); err != nil {
				return err
			}
			if err := monitorCfg.Validate(); err != nil {
				return err
			}

			logger.Info("Starting zbxmon",
				slog.String("addr", serverCfg.Addr),
				slog.Any("zabbix", zabbixCfg),
				slog.Any("monitor", monitorCfg),
				slog.Any("slack", slackCfg),
			)

			if err := monitorCfg.ApplySeverities(); err != nil {
				return err
			}

			// JSON-RPC client for the poll loop and lookup chain
			zbxClient := zabbixCfg.Configure()

			// Browser-style session for chart rendering. A failed login
			// here only loses graphs, never monitoring.
			var renderer interfaces.GraphRenderer
			webSession, err := zabbixCfg.ConfigureWebSession()
			if err != nil {
				logger.Warn("Graph rendering disabled", "error", err)
			} else {
				if err := webSession.Login(ctx); err != nil {
					logger.Warn("Zabbix web login failed, graphs unavailable until retry", "error", err)
				}
				renderer = webSession
			}

			graphUC := usecase.NewGraph(zbxClient, renderer)

			// Presentation sinks. The dashboard always runs; Slack is
			// added when configured.
			dashboard := controller.NewDashboard()
			defer dashboard.Close()

			sinks := usecase.MultiSink{dashboard}
			var sharer interfaces.Sink
			if notifier := slackCfg.ConfigureOptional(logger); notifier != nil {
				sinks = append(sinks, notifier)
				sharer = notifier
			}

			monitor := usecase.NewMonitor(zbxClient, sinks, monitorCfg.Options()...)

			server := controller.NewServer(ctx, serverCfg.Addr, dashboard, graphUC, sharer)

			pollCtx, stopPolling := context.WithCancel(ctx)
			defer stopPolling()

			go monitor.Run(pollCtx)

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			stopPolling()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
