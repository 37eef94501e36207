package endpoint

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/labdesk/internal/ports"
	"github.com/spf13/viper"
)

const (
	DefaultAPIBase              = "http://localhost:8080"
	DefaultNotificationEndpoint = "ws://localhost:8080/ws/notificacoes"

	resourceConfigFile = "config.json"
	resourcesDirName   = "resources"
	apiURLKey          = "api_url"
	wsURLKey           = "ws_url"
)

// Resolver reads the bundled resource config on every call. A missing or
// broken file is never an error: it only selects the fixed defaults.
type Resolver struct {
	resourcesDir string
}

var _ ports.EndpointResolver = (*Resolver)(nil)

func NewResolver(resourcesDir string) *Resolver {
	return &Resolver{resourcesDir: strings.TrimSpace(resourcesDir)}
}

func (r *Resolver) APIBase() string {
	return strings.TrimRight(r.lookup(apiURLKey, DefaultAPIBase), "/")
}

func (r *Resolver) NotificationEndpoint() string {
	return r.lookup(wsURLKey, DefaultNotificationEndpoint)
}

func (r *Resolver) ConfigPath() string {
	if r.resourcesDir == "" {
		return ""
	}
	return filepath.Join(r.resourcesDir, resourceConfigFile)
}

func (r *Resolver) lookup(key string, fallback string) string {
	path := r.ConfigPath()
	if path == "" {
		return fallback
	}

	cfg := viper.New()
	cfg.SetConfigFile(path)
	cfg.SetConfigType("json")
	if err := cfg.ReadInConfig(); err != nil {
		return fallback
	}

	value, ok := cfg.Get(key).(string)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}

	return strings.TrimSpace(value)
}

// DefaultResourcesDir is the resources directory shipped next to the
// installed executable.
func DefaultResourcesDir() string {
	executable, err := os.Executable()
	if err != nil {
		return ""
	}

	resolved, err := filepath.EvalSymlinks(executable)
	if err != nil {
		resolved = executable
	}

	return filepath.Join(filepath.Dir(resolved), resourcesDirName)
}
