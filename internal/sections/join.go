package sections

import (
	"strings"

	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

// Join serializes sections back into document text: header lines then content
// lines for each section, every line separated by a single line feed.
func Join(list []interfaces.Section) string {
	lines := make([]string, 0, LineCount(list))
	for _, section := range list {
		lines = append(lines, section.Lines()...)
	}
	return strings.Join(lines, "\n")
}

// LineCount reports how many lines the sections hold.
func LineCount(list []interfaces.Section) int {
	total := 0
	for _, section := range list {
		total += len(section.Header) + len(section.Content)
	}
	return total
}
