// Package sectionscmd exposes section writes as go-command messages.
package sectionscmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-mdsections/internal/commands"
	"github.com/goliatone/go-mdsections/internal/logging"
	"github.com/goliatone/go-mdsections/internal/markdown"
	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

const (
	writeOperation   = "sections.write"
	replaceOperation = "sections.replace"
)

var (
	_ command.Commander[WriteSectionsCommand]  = (*WriteSectionsHandler)(nil)
	_ command.Commander[ReplaceSectionCommand] = (*ReplaceSectionHandler)(nil)
)

// DocumentOpener returns a document handle for a path.
type DocumentOpener interface {
	Open(path string) *markdown.Document
}

// OpenerFunc adapts a function to DocumentOpener.
type OpenerFunc func(path string) *markdown.Document

// Open implements DocumentOpener.
func (fn OpenerFunc) Open(path string) *markdown.Document {
	return fn(path)
}

// WriteSectionsHandler serializes and persists sections, returning once the
// write completion resolves.
type WriteSectionsHandler struct {
	inner *commands.Handler[WriteSectionsCommand]
}

// NewWriteSectionsHandler creates a handler bound to opener.
func NewWriteSectionsHandler(opener DocumentOpener, logger interfaces.Logger, opts ...commands.HandlerOption[WriteSectionsCommand]) *WriteSectionsHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg WriteSectionsCommand) error {
		doc := opener.Open(msg.Path)
		done := doc.WriteSections(ctx, msg.Sections)
		if err := done.Wait(ctx); err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"write_id":      done.ID().String(),
			"section_count": len(msg.Sections),
		}).Info("sections.command.write.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[WriteSectionsCommand]{
		commands.WithLogger[WriteSectionsCommand](baseLogger),
		commands.WithOperation[WriteSectionsCommand](writeOperation),
		commands.WithMessageFields(func(msg WriteSectionsCommand) map[string]any {
			return map[string]any{
				"markdown_path": msg.Path,
				"section_count": len(msg.Sections),
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[WriteSectionsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &WriteSectionsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[WriteSectionsCommand].
func (h *WriteSectionsHandler) Execute(ctx context.Context, msg WriteSectionsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ReplaceSectionHandler rewrites the content of one named section.
type ReplaceSectionHandler struct {
	inner *commands.Handler[ReplaceSectionCommand]
}

// NewReplaceSectionHandler creates a handler bound to opener.
func NewReplaceSectionHandler(opener DocumentOpener, logger interfaces.Logger, opts ...commands.HandlerOption[ReplaceSectionCommand]) *ReplaceSectionHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ReplaceSectionCommand) error {
		done := opener.Open(msg.Path).ReplaceSection(ctx, msg.Name, msg.Content)
		if err := done.Wait(ctx); err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"write_id":     done.ID().String(),
			"section_name": msg.Name,
		}).Info("sections.command.replace.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ReplaceSectionCommand]{
		commands.WithLogger[ReplaceSectionCommand](baseLogger),
		commands.WithOperation[ReplaceSectionCommand](replaceOperation),
		commands.WithMessageFields(func(msg ReplaceSectionCommand) map[string]any {
			return map[string]any{
				"markdown_path": msg.Path,
				"section_name":  msg.Name,
				"content_lines": len(msg.Content),
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ReplaceSectionCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ReplaceSectionHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ReplaceSectionCommand].
func (h *ReplaceSectionHandler) Execute(ctx context.Context, msg ReplaceSectionCommand) error {
	return h.inner.Execute(ctx, msg)
}
