package sectionscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

const (
	writeSectionsMessageType  = "mdsections.sections.write"
	replaceSectionMessageType = "mdsections.sections.replace"
)

// WriteSectionsCommand replaces the document at Path with the serialized
// Sections.
type WriteSectionsCommand struct {
	// Path locates the document in the configured store.
	Path string `json:"path"`
	// Sections is written in order. An empty list truncates the document.
	Sections []interfaces.Section `json:"sections"`
}

// Type implements command.Message.
func (WriteSectionsCommand) Type() string { return writeSectionsMessageType }

// Validate ensures a path is present before handlers execute.
func (cmd WriteSectionsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(nonBlank(
			"mdsections.sections.write.path_required", "path is required",
		))),
	)
}

// ReplaceSectionCommand swaps the content of the section called Name.
type ReplaceSectionCommand struct {
	Path    string   `json:"path"`
	Name    string   `json:"name"`
	Content []string `json:"content"`
}

// Type implements command.Message.
func (ReplaceSectionCommand) Type() string { return replaceSectionMessageType }

// Validate ensures path and section name are present.
func (cmd ReplaceSectionCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(nonBlank(
			"mdsections.sections.replace.path_required", "path is required",
		))),
		validation.Field(&cmd.Name, validation.Required, validation.By(nonBlank(
			"mdsections.sections.replace.name_required", "section name is required",
		))),
	)
}

func nonBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
