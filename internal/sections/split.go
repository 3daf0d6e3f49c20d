package sections

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

var (
	lineBreak       = regexp.MustCompile(`\r?\n`)
	setextUnderline = regexp.MustCompile(`^ *[-=]{2,} *$`)
	atxHeading      = regexp.MustCompile(`^ *#{1,6} +([^ #]+)`)
)

// pending is the one-line lookahead. A line is held here until the next line
// shows whether it is body text or the text of a setext heading.
type pending struct {
	line string
	ok   bool
}

func (p *pending) hold(line string) {
	p.line, p.ok = line, true
}

func (p *pending) take() (string, bool) {
	line, ok := p.line, p.ok
	p.line, p.ok = "", false
	return line, ok
}

// Split parses text into sections in document order. The first section is
// always the implicit one holding the lines before the first heading, so the
// result is never empty.
func Split(text string) []interfaces.Section {
	var (
		out     []interfaces.Section
		current interfaces.Section
		prev    pending
	)

	for _, line := range splitLines(text) {
		if setextUnderline.MatchString(line) {
			held, ok := prev.take()
			if ok && held == "" {
				current.Content = append(current.Content, held)
			}
			out = append(out, current)
			current = interfaces.Section{}
			if ok && held != "" {
				current.Header = []string{held, line}
				current.Name = normalizeName(held)
			}
			continue
		}

		if held, ok := prev.take(); ok {
			current.Content = append(current.Content, held)
		}

		if name, ok := matchATX(line); ok {
			out = append(out, current)
			current = interfaces.Section{
				Header: []string{line},
				Name:   name,
			}
			continue
		}

		prev.hold(line)
	}

	if held, ok := prev.take(); ok {
		current.Content = append(current.Content, held)
	}
	return append(out, current)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return lineBreak.Split(text, -1)
}

// matchATX reports whether line is an ATX heading. The name is the first run
// of characters after the # marks that holds neither a space nor a #.
func matchATX(line string) (string, bool) {
	match := atxHeading.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return normalizeName(match[1]), true
}

func normalizeName(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
