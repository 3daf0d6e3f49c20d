package mdsections

import "github.com/goliatone/go-mdsections/internal/runtimeconfig"

var (
	ErrStorageProviderUnknown = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDSNRequired     = runtimeconfig.ErrStorageDSNRequired
	ErrFileModeInvalid        = runtimeconfig.ErrFileModeInvalid
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
	ErrRenderExtensionUnknown = runtimeconfig.ErrRenderExtensionUnknown
)

const (
	StorageFilesystem = runtimeconfig.StorageFilesystem
	StorageMemory     = runtimeconfig.StorageMemory
	StorageSQLite     = runtimeconfig.StorageSQLite
	StoragePostgres   = runtimeconfig.StoragePostgres
)

type (
	Config        = runtimeconfig.Config
	StorageConfig = runtimeconfig.StorageConfig
	LoggingConfig = runtimeconfig.LoggingConfig
	RenderConfig  = runtimeconfig.RenderConfig
)

// DefaultConfig returns filesystem storage, console logging at info level and
// GFM rendering.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
