package interfaces

import "strings"

// Section is one heading block of a Markdown document and the lines that
// follow it up to the next heading.
type Section struct {
	// Header holds the raw heading lines: one line for an ATX heading, the
	// text line plus its underline for a setext heading, none for the
	// implicit leading section.
	Header []string `json:"header"`
	// Content holds the body lines in document order.
	Content []string `json:"content"`
	// Name is the lowercased heading name: the whole text line of a setext
	// heading, the first word after the # marks of an ATX heading.
	// It is empty for the implicit leading section.
	Name string `json:"name,omitempty"`
}

// IsHeading reports whether the section was opened by a heading.
func (s Section) IsHeading() bool {
	return len(s.Header) > 0
}

// Level returns the heading level derived from the header markup: the count
// of leading # for ATX headings, 1 for = underlines, 2 for - underlines and
// 0 for the implicit leading section.
func (s Section) Level() int {
	switch len(s.Header) {
	case 1:
		line := strings.TrimLeft(s.Header[0], " ")
		level := 0
		for level < len(line) && line[level] == '#' {
			level++
		}
		return level
	case 2:
		underline := strings.TrimSpace(s.Header[1])
		if strings.HasPrefix(underline, "=") {
			return 1
		}
		return 2
	default:
		return 0
	}
}

// Lines returns the header lines followed by the content lines.
func (s Section) Lines() []string {
	lines := make([]string, 0, len(s.Header)+len(s.Content))
	lines = append(lines, s.Header...)
	return append(lines, s.Content...)
}
