package sections

import (
	"slices"

	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

// Find returns the index of the first heading section whose name matches.
// Matching uses the same trim and lowercase folding applied while splitting.
func Find(list []interfaces.Section, name string) (int, bool) {
	key := normalizeName(name)
	for i, section := range list {
		if section.IsHeading() && section.Name == key {
			return i, true
		}
	}
	return -1, false
}

// Names lists the heading names in document order, skipping sections that
// were not opened by a heading.
func Names(list []interfaces.Section) []string {
	names := make([]string, 0, len(list))
	for _, section := range list {
		if section.IsHeading() {
			names = append(names, section.Name)
		}
	}
	return names
}

// Clone deep copies the sections so callers can edit the copy freely.
func Clone(list []interfaces.Section) []interfaces.Section {
	if list == nil {
		return nil
	}
	out := make([]interfaces.Section, len(list))
	for i, section := range list {
		out[i] = interfaces.Section{
			Header:  slices.Clone(section.Header),
			Content: slices.Clone(section.Content),
			Name:    section.Name,
		}
	}
	return out
}

// Equal reports whether two section lists hold the same lines and names.
// Nil and empty line slices compare equal.
func Equal(a, b []interfaces.Section) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			return false
		}
		if !slices.Equal(a[i].Header, b[i].Header) || !slices.Equal(a[i].Content, b[i].Content) {
			return false
		}
	}
	return true
}
