// Package di wires runtime configuration into a logger provider, a document
// store, a section renderer and the section command handlers.
package di

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	sectionscmd "github.com/goliatone/go-mdsections/internal/commands/sections"
	"github.com/goliatone/go-mdsections/internal/logging"
	"github.com/goliatone/go-mdsections/internal/logging/console"
	"github.com/goliatone/go-mdsections/internal/logging/gologger"
	"github.com/goliatone/go-mdsections/internal/markdown"
	"github.com/goliatone/go-mdsections/internal/runtimeconfig"
	"github.com/goliatone/go-mdsections/internal/storage"
	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

const schemaTimeout = 10 * time.Second

// CommandRegistry matches the registration contract of go-command registries.
type CommandRegistry = sectionscmd.CommandRegistry

// Container wires module dependencies.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	store          interfaces.DocumentStore
	renderer       interfaces.SectionRenderer
	renderDefaults interfaces.RenderOptions

	bunDB    *bun.DB
	ownsDB   bool
	registry CommandRegistry

	sectionHandlers *sectionscmd.HandlerSet
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Logging.Provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithStore overrides the store selected by Storage.Provider.
func WithStore(store interfaces.DocumentStore) Option {
	return func(c *Container) {
		if store != nil {
			c.store = store
		}
	}
}

// WithBunDB supplies the database used by the sqlite and postgres providers.
// The container does not close a supplied database.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithRenderer overrides the goldmark section renderer.
func WithRenderer(renderer interfaces.SectionRenderer) Option {
	return func(c *Container) {
		if renderer != nil {
			c.renderer = renderer
		}
	}
}

// WithCommandRegistry registers the section command handlers with reg.
func WithCommandRegistry(reg CommandRegistry) Option {
	return func(c *Container) {
		c.registry = reg
	}
}

// NewContainer validates cfg and builds the container.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureStore(); err != nil {
		return nil, err
	}
	c.configureRenderer()
	if err := c.configureCommands(); err != nil {
		_ = c.Close()
		return nil, err
	}

	logging.ModuleLogger(c.loggerProvider, "mdsections").Debug("container.configured",
		"storage_provider", c.storageProvider(),
		"logging_provider", normalize(cfg.Logging.Provider),
	)
	return c, nil
}

// Open returns a document handle bound to the configured store, logger and
// renderer. No I/O happens until a read or write.
func (c *Container) Open(path string) *markdown.Document {
	return markdown.NewDocument(path,
		markdown.WithStore(c.store),
		markdown.WithLogger(logging.MarkdownLogger(c.loggerProvider)),
		markdown.WithRenderer(c.renderer, c.renderDefaults),
	)
}

// LoggerProvider returns the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Store returns the configured document store.
func (c *Container) Store() interfaces.DocumentStore {
	return c.store
}

// SectionHandlers returns the section command handlers.
func (c *Container) SectionHandlers() *sectionscmd.HandlerSet {
	return c.sectionHandlers
}

// Close releases the database opened by the container, if any.
func (c *Container) Close() error {
	if c.bunDB == nil || !c.ownsDB {
		return nil
	}
	err := c.bunDB.Close()
	c.bunDB = nil
	return err
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}

	cfg := c.Config.Logging
	switch normalize(cfg.Provider) {
	case "", "none":
		c.loggerProvider = nil
	case "console":
		opts := console.Options{}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure logger: %w", err)
		}
		c.loggerProvider = provider
	default:
		return fmt.Errorf("%w: %q", runtimeconfig.ErrLoggingProviderUnknown, cfg.Provider)
	}
	return nil
}

func (c *Container) configureStore() error {
	if c.store != nil {
		return nil
	}

	cfg := c.Config.Storage
	logger := logging.StorageLogger(c.loggerProvider)

	switch normalize(cfg.Provider) {
	case runtimeconfig.StorageFilesystem:
		c.store = storage.NewFileStore(storage.FileStoreConfig{
			BaseDir:  cfg.BaseDir,
			FileMode: fs.FileMode(cfg.FileMode),
		})
	case runtimeconfig.StorageMemory:
		c.store = storage.NewMemoryStore()
	case runtimeconfig.StorageSQLite, runtimeconfig.StoragePostgres:
		if err := c.openDatabase(cfg); err != nil {
			return err
		}
		store := storage.NewBunStore(c.bunDB)
		if cfg.AutoMigrate {
			ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
			defer cancel()
			if err := store.EnsureSchema(ctx); err != nil {
				_ = c.Close()
				return fmt.Errorf("di: ensure schema: %w", err)
			}
		}
		c.store = store
	default:
		return fmt.Errorf("%w: %q", runtimeconfig.ErrStorageProviderUnknown, cfg.Provider)
	}

	logger.Debug("storage.configured", "provider", normalize(cfg.Provider))
	return nil
}

func (c *Container) openDatabase(cfg runtimeconfig.StorageConfig) error {
	if c.bunDB != nil {
		return nil
	}

	var (
		driver  string
		dialect func(*sql.DB) *bun.DB
	)
	switch normalize(cfg.Provider) {
	case runtimeconfig.StorageSQLite:
		driver = "sqlite3"
		dialect = func(sqldb *sql.DB) *bun.DB { return bun.NewDB(sqldb, sqlitedialect.New()) }
	case runtimeconfig.StoragePostgres:
		driver = "postgres"
		dialect = func(sqldb *sql.DB) *bun.DB { return bun.NewDB(sqldb, pgdialect.New()) }
	default:
		return errors.New("di: storage provider has no database driver")
	}

	sqldb, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("di: open %s: %w", driver, err)
	}
	c.bunDB = dialect(sqldb)
	c.ownsDB = true
	return nil
}

func (c *Container) configureRenderer() {
	if c.renderer == nil {
		c.renderer = markdown.NewGoldmarkRenderer()
	}
	cfg := c.Config.Render
	c.renderDefaults = interfaces.RenderOptions{
		Extensions: append([]string(nil), cfg.Extensions...),
		HardWraps:  cfg.HardWraps,
		SafeMode:   cfg.SafeMode,
	}
}

func (c *Container) configureCommands() error {
	set, err := sectionscmd.RegisterSectionCommands(c.registry, sectionscmd.OpenerFunc(c.Open), c.loggerProvider)
	if err != nil {
		return fmt.Errorf("di: register section commands: %w", err)
	}
	c.sectionHandlers = set
	return nil
}

func (c *Container) storageProvider() string {
	return normalize(c.Config.Storage.Provider)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
