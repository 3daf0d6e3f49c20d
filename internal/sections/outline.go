package sections

import (
	"strconv"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

const fallbackAnchor = "section"

// Heading describes one heading section for navigation purposes.
type Heading struct {
	Index  int
	Name   string
	Level  int
	Anchor string
}

// Outline lists the heading sections with a slug anchor each. Repeated
// anchors get a numeric suffix (-1, -2, ...) in document order.
func Outline(list []interfaces.Section) []Heading {
	seen := map[string]int{}
	headings := make([]Heading, 0, len(list))
	for i, section := range list {
		if !section.IsHeading() {
			continue
		}
		anchor := anchorFor(section.Name)
		if count, ok := seen[anchor]; ok {
			seen[anchor] = count + 1
			anchor = anchor + "-" + strconv.Itoa(count+1)
		} else {
			seen[anchor] = 0
		}
		headings = append(headings, Heading{
			Index:  i,
			Name:   section.Name,
			Level:  section.Level(),
			Anchor: anchor,
		})
	}
	return headings
}

func anchorFor(name string) string {
	normalized, err := slug.Normalize(name)
	if err != nil || normalized == "" {
		return fallbackAnchor
	}
	return normalized
}
