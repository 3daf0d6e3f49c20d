// Package mdsections splits Markdown documents into heading-keyed sections
// and writes edited sections back as the same text.
package mdsections

import (
	sectionscmd "github.com/goliatone/go-mdsections/internal/commands/sections"
	"github.com/goliatone/go-mdsections/internal/di"
	"github.com/goliatone/go-mdsections/internal/markdown"
	"github.com/goliatone/go-mdsections/internal/sections"
	"github.com/goliatone/go-mdsections/internal/storage"
	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

// Section is one heading-keyed slice of a document.
type Section = interfaces.Section

// Heading is an outline entry with its anchor slug.
type Heading = sections.Heading

// Document is a handle on one Markdown document in the configured store.
type Document = markdown.Document

// Completion resolves when an asynchronous write finishes.
type Completion = markdown.Completion

// FrontMatter is the metadata block parsed from the top of a document.
type FrontMatter = interfaces.FrontMatter

// RenderOptions controls HTML rendering of a section.
type RenderOptions = interfaces.RenderOptions

// DocumentStore persists raw document text.
type DocumentStore = interfaces.DocumentStore

type (
	WriteSectionsCommand  = sectionscmd.WriteSectionsCommand
	ReplaceSectionCommand = sectionscmd.ReplaceSectionCommand
	WriteSectionsHandler  = sectionscmd.WriteSectionsHandler
	ReplaceSectionHandler = sectionscmd.ReplaceSectionHandler
)

var (
	ErrSectionNotFound  = markdown.ErrSectionNotFound
	ErrDocumentNotFound = storage.ErrDocumentNotFound
	ErrInvalidEncoding  = storage.ErrInvalidEncoding
)

// Split parses text into sections. It never fails.
func Split(text string) []Section {
	return sections.Split(text)
}

// Join serializes sections back into document text.
func Join(list []Section) string {
	return sections.Join(list)
}

// Find returns the index of the first section named name.
func Find(list []Section, name string) (int, bool) {
	return sections.Find(list, name)
}

// Outline lists the headings of list with unique anchors.
func Outline(list []Section) []Heading {
	return sections.Outline(list)
}

// Option customises module wiring.
type Option = di.Option

var (
	WithLoggerProvider  = di.WithLoggerProvider
	WithStore           = di.WithStore
	WithBunDB           = di.WithBunDB
	WithRenderer        = di.WithRenderer
	WithCommandRegistry = di.WithCommandRegistry
)

// Module is the top level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module from cfg and optional DI overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Open returns a handle on the document at path.
func (m *Module) Open(path string) *Document {
	return m.container.Open(path)
}

// WriteSectionsHandler returns the go-command handler for section writes.
func (m *Module) WriteSectionsHandler() *WriteSectionsHandler {
	return m.container.SectionHandlers().Write
}

// ReplaceSectionHandler returns the go-command handler for section replacement.
func (m *Module) ReplaceSectionHandler() *ReplaceSectionHandler {
	return m.container.SectionHandlers().Replace
}

// Close releases resources opened by the module.
func (m *Module) Close() error {
	return m.container.Close()
}
