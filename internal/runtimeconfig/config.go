package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-mdsections/internal/markdown"
)

var (
	ErrStorageProviderUnknown = errors.New("mdsections config: storage provider is invalid")
	ErrStorageDSNRequired     = errors.New("mdsections config: storage dsn is required for database providers")
	ErrFileModeInvalid        = errors.New("mdsections config: storage file mode is invalid")
	ErrLoggingProviderUnknown = errors.New("mdsections config: logging provider is invalid")
	ErrLoggingLevelInvalid    = errors.New("mdsections config: logging level is invalid")
	ErrLoggingFormatInvalid   = errors.New("mdsections config: logging format is invalid")
	ErrRenderExtensionUnknown = errors.New("mdsections config: render extension is unknown")
)

const (
	StorageFilesystem = "filesystem"
	StorageMemory     = "memory"
	StorageSQLite     = "sqlite"
	StoragePostgres   = "postgres"
)

// Config is the runtime configuration of the module.
type Config struct {
	Storage StorageConfig
	Logging LoggingConfig
	Render  RenderConfig
}

// StorageConfig selects and configures the document backing store.
type StorageConfig struct {
	// Provider is one of filesystem, memory, sqlite or postgres.
	Provider string
	// BaseDir resolves relative paths for the filesystem provider.
	BaseDir string
	// FileMode applies to files created by the filesystem provider.
	FileMode uint32
	// DSN is the database connection string for sqlite and postgres.
	DSN string
	// AutoMigrate creates the documents table on startup for database providers.
	AutoMigrate bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// RenderConfig holds the default HTML render options.
type RenderConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// DefaultConfig returns filesystem storage with console logging at info level.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Provider:    StorageFilesystem,
			FileMode:    0o644,
			AutoMigrate: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Render: RenderConfig{
			Extensions: []string{"gfm"},
		},
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	provider := normalize(cfg.Storage.Provider)
	switch provider {
	case StorageFilesystem, StorageMemory:
	case StorageSQLite, StoragePostgres:
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return fmt.Errorf("%w: %s", ErrStorageDSNRequired, provider)
		}
	default:
		return fmt.Errorf("%w: %q", ErrStorageProviderUnknown, cfg.Storage.Provider)
	}
	if cfg.Storage.FileMode > 0o777 {
		return fmt.Errorf("%w: %o", ErrFileModeInvalid, cfg.Storage.FileMode)
	}

	logProvider := normalize(cfg.Logging.Provider)
	if !isSupportedLogProvider(logProvider) {
		return fmt.Errorf("%w: %q", ErrLoggingProviderUnknown, cfg.Logging.Provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if logProvider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}

	for _, ext := range cfg.Render.Extensions {
		if !markdown.KnownExtension(ext) {
			return fmt.Errorf("%w: %s", ErrRenderExtensionUnknown, ext)
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedLogProvider(provider string) bool {
	switch provider {
	case "", "none", "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
