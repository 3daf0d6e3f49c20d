package sectionscmd

import (
	"errors"

	"github.com/goliatone/go-mdsections/internal/commands"
	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers produced by RegisterSectionCommands.
type HandlerSet struct {
	Write   *WriteSectionsHandler
	Replace *ReplaceSectionHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	writeHandlerOpts   []commands.HandlerOption[WriteSectionsCommand]
	replaceHandlerOpts []commands.HandlerOption[ReplaceSectionCommand]
}

// WithWriteHandlerOptions forwards options to the WriteSectionsHandler constructor.
func WithWriteHandlerOptions(opts ...commands.HandlerOption[WriteSectionsCommand]) Option {
	return func(cfg *options) {
		cfg.writeHandlerOpts = append(cfg.writeHandlerOpts, opts...)
	}
}

// WithReplaceHandlerOptions forwards options to the ReplaceSectionHandler constructor.
func WithReplaceHandlerOptions(opts ...commands.HandlerOption[ReplaceSectionCommand]) Option {
	return func(cfg *options) {
		cfg.replaceHandlerOpts = append(cfg.replaceHandlerOpts, opts...)
	}
}

// RegisterSectionCommands builds the section command handlers and registers
// them with reg when it is non-nil.
func RegisterSectionCommands(reg CommandRegistry, opener DocumentOpener, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if opener == nil {
		return nil, errors.New("sections command registration: document opener is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "sections")

	writeHandler := NewWriteSectionsHandler(opener, logger, cfg.writeHandlerOpts...)
	replaceHandler := NewReplaceSectionHandler(opener, logger, cfg.replaceHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(writeHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(replaceHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Write:   writeHandler,
		Replace: replaceHandler,
	}, nil
}
