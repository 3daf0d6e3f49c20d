// Package gologger backs the module loggers with github.com/goliatone/go-logger.
package gologger

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-mdsections/internal/logging"
	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

// ErrUnsupportedFormat is returned for a Format other than json, console or pretty.
var ErrUnsupportedFormat = errors.New("gologger: unsupported output format")

// Config mirrors runtimeconfig.LoggingConfig for the gologger provider.
type Config struct {
	Level     string
	Format    string
	AddSource bool
	// Focus limits output to the named loggers.
	Focus []string
}

var formatOptions = map[string]func() glog.Option{
	"":        func() glog.Option { return glog.WithLoggerTypeJSON() },
	"json":    func() glog.Option { return glog.WithLoggerTypeJSON() },
	"console": func() glog.Option { return glog.WithLoggerTypeConsole() },
	"pretty":  func() glog.Option { return glog.WithLoggerTypePretty() },
}

var levelNames = map[string]string{
	"trace":   glog.Trace,
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
	"fatal":   glog.Fatal,
}

// Provider resolves module names to go-logger children of one root logger.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider builds the root logger. An empty Format selects json and an
// unknown Level leaves go-logger's default in place.
func NewProvider(cfg Config) (*Provider, error) {
	options, err := rootOptions(cfg)
	if err != nil {
		return nil, err
	}

	root := glog.NewLogger(options...)
	if focus := compact(cfg.Focus); len(focus) > 0 {
		root.Focus(focus...)
	}
	return &Provider{root: root}, nil
}

func rootOptions(cfg Config) ([]glog.Option, error) {
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	withFormat, ok := formatOptions[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, cfg.Format)
	}

	options := []glog.Option{withFormat()}
	if level := glogLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}
	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}
	return options, nil
}

// GetLogger returns the child logger for module; a blank module gets the root.
func (p *Provider) GetLogger(module string) interfaces.Logger {
	if p == nil || p.root == nil {
		return logging.NoOp()
	}
	if module = strings.TrimSpace(module); module == "" {
		return adapt(p.root)
	}
	return adapt(p.root.GetLogger(module))
}

func adapt(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &moduleLogger{inner: inner}
}

type moduleLogger struct {
	inner glog.Logger
}

var (
	_ interfaces.Logger       = (*moduleLogger)(nil)
	_ interfaces.FieldsLogger = (*moduleLogger)(nil)
)

func (m *moduleLogger) Trace(msg string, args ...any) { m.inner.Trace(msg, args...) }
func (m *moduleLogger) Debug(msg string, args ...any) { m.inner.Debug(msg, args...) }
func (m *moduleLogger) Info(msg string, args ...any)  { m.inner.Info(msg, args...) }
func (m *moduleLogger) Warn(msg string, args ...any)  { m.inner.Warn(msg, args...) }
func (m *moduleLogger) Error(msg string, args ...any) { m.inner.Error(msg, args...) }
func (m *moduleLogger) Fatal(msg string, args ...any) { m.inner.Fatal(msg, args...) }

// WithFields prefers go-logger's native field support and falls back to
// key/value pairs, sorted by key, through With.
func (m *moduleLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return m
	}
	switch inner := m.inner.(type) {
	case glog.FieldsLogger:
		return adapt(inner.WithFields(maps.Clone(fields)))
	case interface{ With(...any) *glog.BaseLogger }:
		pairs := make([]any, 0, 2*len(fields))
		for _, key := range slices.Sorted(maps.Keys(fields)) {
			pairs = append(pairs, key, fields[key])
		}
		return adapt(inner.With(pairs...))
	default:
		return m
	}
}

func (m *moduleLogger) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return m
	}
	return adapt(m.inner.WithContext(ctx))
}

func glogLevel(level string) string {
	return levelNames[strings.ToLower(strings.TrimSpace(level))]
}

func compact(names []string) []string {
	var out []string
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
