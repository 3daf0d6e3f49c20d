package markdown

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-mdsections/internal/logging"
	"github.com/goliatone/go-mdsections/internal/sections"
	"github.com/goliatone/go-mdsections/internal/storage"
	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

// ErrSectionNotFound is returned when no heading section carries the requested name.
var ErrSectionNotFound = errors.New("markdown: section not found")

// Option configures a Document.
type Option func(*Document)

// WithStore replaces the default filesystem store.
func WithStore(store interfaces.DocumentStore) Option {
	return func(d *Document) {
		if store != nil {
			d.store = store
		}
	}
}

// WithLogger sets the logger used for read and write entries.
func WithLogger(logger interfaces.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithRenderer replaces the goldmark renderer and its default options.
func WithRenderer(renderer interfaces.SectionRenderer, defaults interfaces.RenderOptions) Option {
	return func(d *Document) {
		if renderer != nil {
			d.renderer = renderer
		}
		d.renderDefaults = defaults
	}
}

// Document is a handle on one Markdown document in a backing store. It keeps
// no parsed state: every read goes to the store and every write replaces the
// stored document.
type Document struct {
	path           string
	store          interfaces.DocumentStore
	logger         interfaces.Logger
	renderer       interfaces.SectionRenderer
	renderDefaults interfaces.RenderOptions
}

// NewDocument creates a handle for path. No I/O happens until a read or write.
func NewDocument(path string, opts ...Option) *Document {
	doc := &Document{
		path:     path,
		store:    storage.NewFileStore(storage.FileStoreConfig{}),
		logger:   logging.NoOp(),
		renderer: NewGoldmarkRenderer(),
	}
	for _, opt := range opts {
		opt(doc)
	}
	doc.logger = logging.WithDocumentContext(doc.logger, path, "")
	return doc
}

// Path returns the store path of the document.
func (d *Document) Path() string {
	return d.path
}

// ReadSections reads the whole document and splits it into sections. It either
// returns every section or the store error.
func (d *Document) ReadSections(ctx context.Context) ([]interfaces.Section, error) {
	ctx = ensureContext(ctx)
	data, err := d.store.ReadDocument(ctx, d.path)
	if err != nil {
		d.logger.Error("markdown.sections.read.failed", "error", err)
		return nil, err
	}

	list := sections.Split(string(data))
	d.logger.Debug("markdown.sections.read", "section_count", len(list), "bytes", len(data))
	return list, nil
}

// WriteSections serializes list and replaces the stored document on a separate
// goroutine. The text is built before WriteSections returns, so callers may
// keep editing list afterwards. Cancelling ctx does not abort the write.
func (d *Document) WriteSections(ctx context.Context, list []interfaces.Section) *Completion {
	ctx = context.WithoutCancel(ensureContext(ctx))
	data := []byte(sections.Join(list))
	completion := newCompletion()

	logger := logging.WithFields(d.logger, map[string]any{
		"write_id": completion.ID(),
	})
	logger.Debug("markdown.sections.write.start", "section_count", len(list), "bytes", len(data))

	go func() {
		err := d.store.WriteDocument(ctx, d.path, data)
		if err != nil {
			logger.Error("markdown.sections.write.failed", "error", err)
		} else {
			logger.Info("markdown.sections.write.completed", "bytes", len(data))
		}
		completion.resolve(err)
	}()

	return completion
}

// Section reads the document and returns the first section named name.
func (d *Document) Section(ctx context.Context, name string) (interfaces.Section, error) {
	list, err := d.ReadSections(ctx)
	if err != nil {
		return interfaces.Section{}, err
	}
	idx, ok := sections.Find(list, name)
	if !ok {
		return interfaces.Section{}, fmt.Errorf("%w: %q in %s", ErrSectionNotFound, name, d.path)
	}
	return list[idx], nil
}

// ReplaceSection swaps the content lines of the named section, leaving its
// header and every other section untouched, and writes the document back.
// Read failures and a missing section resolve the returned Completion
// immediately.
func (d *Document) ReplaceSection(ctx context.Context, name string, content []string) *Completion {
	list, err := d.ReadSections(ctx)
	if err != nil {
		return resolvedCompletion(err)
	}
	idx, ok := sections.Find(list, name)
	if !ok {
		return resolvedCompletion(fmt.Errorf("%w: %q in %s", ErrSectionNotFound, name, d.path))
	}
	list[idx].Content = append([]string(nil), content...)
	return d.WriteSections(ctx, list)
}

// Outline reads the document and lists its headings with anchors.
func (d *Document) Outline(ctx context.Context) ([]sections.Heading, error) {
	list, err := d.ReadSections(ctx)
	if err != nil {
		return nil, err
	}
	return sections.Outline(list), nil
}

// FrontMatter reads the document and parses its leading metadata block.
func (d *Document) FrontMatter(ctx context.Context) (interfaces.FrontMatter, []byte, error) {
	data, err := d.store.ReadDocument(ensureContext(ctx), d.path)
	if err != nil {
		return interfaces.FrontMatter{}, nil, err
	}
	return ParseFrontMatter(data)
}

// RenderSection renders the named section, header included, to HTML. Non-zero
// fields of opts override the document's render defaults.
func (d *Document) RenderSection(ctx context.Context, name string, opts interfaces.RenderOptions) ([]byte, error) {
	section, err := d.Section(ctx, name)
	if err != nil {
		return nil, err
	}
	source := strings.Join(section.Lines(), "\n")
	return d.renderer.Render([]byte(source), mergeRenderOptions(d.renderDefaults, opts))
}

func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
