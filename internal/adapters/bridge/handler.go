// Package bridge exposes the command registry to the UI over loopback HTTP.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/bnema/labdesk/internal/adapters/metrics"
	"github.com/bnema/labdesk/internal/application"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

const (
	maxArgsBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// Commands is the part of the registry the bridge needs.
type Commands interface {
	Names() []string
	Invoke(ctx context.Context, name string, args json.RawMessage) application.Result
}

type Handler struct {
	commands Commands
	metrics  *metrics.Commands
	version  string
}

func NewHandler(commands Commands, collector *metrics.Commands, version string) *Handler {
	return &Handler{commands: commands, metrics: collector, version: version}
}

// RegisterRoutes registers the bridge routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	e.GET("/commands", h.ListCommands)
	e.POST("/commands/:name", h.InvokeCommand)
	if h.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": h.version})
}

func (h *Handler) ListCommands(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"commands": h.commands.Names()})
}

// InvokeCommand answers 200 for both outcome variants; the envelope status
// tells them apart.
func (h *Handler) InvokeCommand(c echo.Context) error {
	if h.metrics != nil {
		defer h.metrics.Track()()
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxArgsBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read arguments").SetInternal(err)
	}
	if len(body) > maxArgsBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "arguments too large")
	}

	result := h.commands.Invoke(c.Request().Context(), c.Param("name"), body)
	return c.JSON(http.StatusOK, result)
}

// NewServer builds the echo instance serving h.
func NewServer(h *Handler, logger logrus.FieldLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logger.WithFields(logrus.Fields{
				"method":   v.Method,
				"uri":      v.URI,
				"status":   v.Status,
				"duration": v.Latency.Round(time.Millisecond),
			}).Debug("bridge request")
			return nil
		},
	}))

	h.RegisterRoutes(e)
	return e
}

// CheckLoopback rejects listen addresses that would expose the bridge
// beyond the local machine.
func CheckLoopback(addr string) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("parse listen address %q: %w", addr, err)
	}
	if host == "localhost" {
		return nil
	}
	ip := net.ParseIP(host)
	if ip == nil || !ip.IsLoopback() {
		return fmt.Errorf("listen address %q is not a loopback address", addr)
	}
	return nil
}

// Serve runs e on addr until ctx is cancelled, then shuts it down.
func Serve(ctx context.Context, e *echo.Echo, addr string) error {
	if err := CheckLoopback(addr); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("bridge server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown bridge server: %w", err)
		}
		return nil
	}
}
