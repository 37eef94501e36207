package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bnema/labdesk/internal/adapters/bridge"
	"github.com/bnema/labdesk/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var (
		listen        string
		notifications bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the command bridge for the desktop UI",
		Long:  "Serve the command registry over loopback HTTP and keep the notification socket open until interrupted. The session is shared by every request for the lifetime of the process.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := strings.TrimSpace(listen)
			if err := bridge.CheckLoopback(addr); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runBridge(ctx, app, addr, notifications)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", app.settings.BridgeListen, "Loopback address for the bridge")
	cmd.Flags().BoolVar(&notifications, "notifications", true, "Keep the notification socket open")
	return cmd
}

func runBridge(ctx context.Context, app *app, addr string, notifications bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	listenerDone := make(chan struct{})
	if notifications {
		go func() {
			defer close(listenerDone)
			if err := app.listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				app.logger.WithError(err).Warn("notification listener stopped")
			}
		}()
	} else {
		close(listenerDone)
	}

	server := bridge.NewServer(bridge.NewHandler(app.registry, app.metrics, version.Version), app.logger)
	app.logger.WithFields(logrus.Fields{
		"addr":      addr,
		"api":       app.resolver.APIBase(),
		"downloads": app.downloadsDir,
	}).Info("bridge listening")

	err := bridge.Serve(ctx, server, addr)
	cancel()
	<-listenerDone
	return err
}
