package markdown

import (
	"bytes"
	"fmt"
	"maps"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

// ParseFrontMatter splits source into its metadata block and the Markdown body
// that follows it. Documents without a metadata block return an empty
// FrontMatter and the unchanged body.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta.toFrontMatter(), body, nil
}

type frontMatterEnvelope struct {
	Title   string         `yaml:"title"`
	Slug    string         `yaml:"slug"`
	Summary string         `yaml:"summary"`
	Tags    []string       `yaml:"tags"`
	Author  string         `yaml:"author"`
	Date    time.Time      `yaml:"date"`
	Draft   bool           `yaml:"draft"`
	Custom  map[string]any `yaml:",inline"`
}

func (env frontMatterEnvelope) toFrontMatter() interfaces.FrontMatter {
	custom := maps.Clone(env.Custom)
	if custom == nil {
		custom = map[string]any{}
	}

	raw := maps.Clone(custom)
	setIf := func(key string, value any, ok bool) {
		if ok {
			raw[key] = value
		}
	}
	setIf("title", env.Title, env.Title != "")
	setIf("slug", env.Slug, env.Slug != "")
	setIf("summary", env.Summary, env.Summary != "")
	setIf("tags", append([]string(nil), env.Tags...), len(env.Tags) > 0)
	setIf("author", env.Author, env.Author != "")
	setIf("date", env.Date, !env.Date.IsZero())
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Title:   env.Title,
		Slug:    env.Slug,
		Summary: env.Summary,
		Tags:    append([]string(nil), env.Tags...),
		Author:  env.Author,
		Date:    env.Date,
		Draft:   env.Draft,
		Custom:  custom,
		Raw:     raw,
	}
}
