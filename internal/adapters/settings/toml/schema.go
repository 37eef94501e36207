package toml

import "fmt"

const currentSettingsSchemaVersion = 1

type fileSchema struct {
	Version      int    `toml:"version"`
	ResourcesDir string `toml:"resources_dir,omitempty"`
	DownloadsDir string `toml:"downloads_dir,omitempty"`
	Timeout      string `toml:"timeout"`
	LogLevel     string `toml:"log_level"`
	BridgeListen string `toml:"bridge_listen"`
}

func defaultSchema() fileSchema {
	return fileSchema{
		Version:      currentSettingsSchemaVersion,
		Timeout:      DefaultTimeout.String(),
		LogLevel:     DefaultLogLevel,
		BridgeListen: DefaultBridgeListen,
	}
}

func (s *fileSchema) applyDefaults() {
	defaults := defaultSchema()
	if s.Version == 0 {
		s.Version = defaults.Version
	}
	if s.Timeout == "" {
		s.Timeout = defaults.Timeout
	}
	if s.LogLevel == "" {
		s.LogLevel = defaults.LogLevel
	}
	if s.BridgeListen == "" {
		s.BridgeListen = defaults.BridgeListen
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSettingsSchemaVersion {
		return fmt.Errorf("unsupported settings schema version %d (current %d)", s.Version, currentSettingsSchemaVersion)
	}
	return nil
}
