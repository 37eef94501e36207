package cmd

import (
	"fmt"
	"os"

	filesink "github.com/bnema/labdesk/internal/adapters/downloads/file"
	"github.com/bnema/labdesk/internal/adapters/endpoint"
	"github.com/bnema/labdesk/internal/adapters/metrics"
	"github.com/bnema/labdesk/internal/adapters/notify/ws"
	"github.com/bnema/labdesk/internal/adapters/remote"
	outcomeadapter "github.com/bnema/labdesk/internal/adapters/render/outcome"
	"github.com/bnema/labdesk/internal/adapters/session/memory"
	settingstoml "github.com/bnema/labdesk/internal/adapters/settings/toml"
	"github.com/bnema/labdesk/internal/application"
	"github.com/bnema/labdesk/internal/version"
	"github.com/sirupsen/logrus"
)

const settingsPathEnv = "LABDESK_SETTINGS"

type app struct {
	settings      settingstoml.Config
	logger        *logrus.Logger
	resolver      *endpoint.Resolver
	session       *memory.Store
	registry      *application.Registry
	metrics       *metrics.Commands
	listener      *ws.Listener
	renderOutcome func(application.Result) (string, error)
	downloadsDir  string
}

func wireApp() (*app, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, err
	}

	cfg, err := settingstoml.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(cfg.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	resourcesDir := cfg.ResourcesDir
	if resourcesDir == "" {
		resourcesDir = endpoint.DefaultResourcesDir()
	}
	downloadsDir := cfg.DownloadsDir
	if downloadsDir == "" {
		downloadsDir = filesink.DefaultDir()
	}

	resolver := endpoint.NewResolver(resourcesDir)
	client := remote.NewClient(resolver,
		remote.WithTimeout(cfg.Timeout),
		remote.WithUserAgent("labdesk/"+version.Version),
		remote.WithLogger(logger),
	)
	session := memory.NewStore()
	collector := metrics.NewCommands()

	registry := application.NewRegistry(application.Deps{
		Remote:    client,
		Session:   session,
		Downloads: filesink.NewSink(downloadsDir),
		Logger:    logger,
	},
		application.WithRegistryLogger(logger),
		application.WithObserver(collector),
	)
	application.RegisterAll(registry)

	return &app{
		settings:      cfg,
		logger:        logger,
		resolver:      resolver,
		session:       session,
		registry:      registry,
		metrics:       collector,
		listener:      ws.NewListener(resolver, session, ws.WithLogger(logger)),
		renderOutcome: outcomeadapter.Render,
		downloadsDir:  downloadsDir,
	}, nil
}

func settingsPath() (string, error) {
	if value := os.Getenv(settingsPathEnv); value != "" {
		return value, nil
	}
	return settingstoml.DefaultPath()
}
