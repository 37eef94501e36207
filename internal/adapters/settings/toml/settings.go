package toml

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DefaultTimeout      = 15 * time.Second
	DefaultLogLevel     = "info"
	DefaultBridgeListen = "127.0.0.1:8765"

	envPrefix        = "LABDESK"
	settingsDir      = ".config/labdesk"
	settingsFileName = "settings.toml"
	settingsFileMode = 0o600
	settingsDirMode  = 0o700
	tempFilePattern  = ".settings-*.toml.tmp"

	resourcesDirKey = "resources_dir"
	downloadsDirKey = "downloads_dir"
	timeoutKey      = "timeout"
	logLevelKey     = "log_level"
	bridgeListenKey = "bridge_listen"
)

var ErrSettingsExist = errors.New("settings file already exists")

// Config is the effective process configuration: file values overridden by
// LABDESK_* environment variables. Empty directories mean "use the
// platform default".
type Config struct {
	Path         string
	ResourcesDir string
	DownloadsDir string
	Timeout      time.Duration
	LogLevel     logrus.Level
	BridgeListen string
}

func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, settingsDir, settingsFileName), nil
}

// Load reads path. A missing file is not an error and yields the defaults.
func Load(path string) (Config, error) {
	file, err := readSchema(path)
	if err != nil {
		return Config{}, err
	}

	cfg := viper.New()
	cfg.SetDefault(resourcesDirKey, file.ResourcesDir)
	cfg.SetDefault(downloadsDirKey, file.DownloadsDir)
	cfg.SetDefault(timeoutKey, file.Timeout)
	cfg.SetDefault(logLevelKey, file.LogLevel)
	cfg.SetDefault(bridgeListenKey, file.BridgeListen)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	timeout, err := time.ParseDuration(strings.TrimSpace(cfg.GetString(timeoutKey)))
	if err != nil {
		return Config{}, fmt.Errorf("parse timeout: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("timeout must be positive, got %s", timeout)
	}

	level, err := logrus.ParseLevel(cfg.GetString(logLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("parse log level: %w", err)
	}

	return Config{
		Path:         path,
		ResourcesDir: cfg.GetString(resourcesDirKey),
		DownloadsDir: cfg.GetString(downloadsDirKey),
		Timeout:      timeout,
		LogLevel:     level,
		BridgeListen: cfg.GetString(bridgeListenKey),
	}, nil
}

// Init writes a settings file holding the defaults. It refuses to replace
// an existing file unless force is set.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrSettingsExist, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat settings file: %w", err)
		}
	}

	return writeSchema(path, defaultSchema())
}

// Encode renders cfg in the settings file format.
func Encode(cfg Config) ([]byte, error) {
	file := fileSchema{
		Version:      currentSettingsSchemaVersion,
		ResourcesDir: cfg.ResourcesDir,
		DownloadsDir: cfg.DownloadsDir,
		Timeout:      cfg.Timeout.String(),
		LogLevel:     cfg.LogLevel.String(),
		BridgeListen: cfg.BridgeListen,
	}
	data, err := toml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}

func readSchema(path string) (fileSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultSchema(), nil
		}
		return fileSchema{}, fmt.Errorf("read settings file: %w", err)
	}

	var file fileSchema
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return fileSchema{}, fmt.Errorf("decode settings file %s: %w", path, err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func writeSchema(path string, file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(path), settingsDirMode); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode settings file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp settings file: %w", err)
	}
	if err := tempFile.Chmod(settingsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp settings file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp settings file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}
	cleanup = false

	return nil
}
