package sections

import (
	"strings"
	"testing"

	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

func TestSplitEmptyInput(t *testing.T) {
	got := Split("")
	if len(got) != 1 {
		t.Fatalf("expected a single section, got %d", len(got))
	}
	if len(got[0].Header) != 0 || len(got[0].Content) != 0 || got[0].Name != "" {
		t.Fatalf("expected an empty leading section, got %#v", got[0])
	}
}

func TestSplitScenarios(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []interfaces.Section
	}{
		{
			name: "atx heading",
			text: "# Title\nBody line\n",
			want: []interfaces.Section{
				{},
				{Header: []string{"# Title"}, Name: "title", Content: []string{"Body line", ""}},
			},
		},
		{
			name: "setext heading",
			text: "Title\n===\nBody\n",
			want: []interfaces.Section{
				{},
				{Header: []string{"Title", "==="}, Name: "title", Content: []string{"Body", ""}},
			},
		},
		{
			name: "single dash is not an underline",
			text: "-\nBody\n",
			want: []interfaces.Section{
				{Content: []string{"-", "Body", ""}},
			},
		},
		{
			name: "leading content kept in implicit section",
			text: "intro\n\n## Usage\nrun it",
			want: []interfaces.Section{
				{Content: []string{"intro", ""}},
				{Header: []string{"## Usage"}, Name: "usage", Content: []string{"run it"}},
			},
		},
		{
			name: "dash underline after text",
			text: "Api\n---\ncall()",
			want: []interfaces.Section{
				{},
				{Header: []string{"Api", "---"}, Name: "api", Content: []string{"call()"}},
			},
		},
		{
			name: "setext takes back the previous body line",
			text: "# One\nfirst\nTwo\n  ===  \nsecond",
			want: []interfaces.Section{
				{},
				{Header: []string{"# One"}, Name: "one", Content: []string{"first"}},
				{Header: []string{"Two", "  ===  "}, Name: "two", Content: []string{"second"}},
			},
		},
		{
			name: "crlf line endings",
			text: "# A\r\nx\r\n# B\r\ny",
			want: []interfaces.Section{
				{},
				{Header: []string{"# A"}, Name: "a", Content: []string{"x"}},
				{Header: []string{"# B"}, Name: "b", Content: []string{"y"}},
			},
		},
		{
			name: "underline without previous line is dropped",
			text: "===\nBody",
			want: []interfaces.Section{
				{},
				{Content: []string{"Body"}},
			},
		},
		{
			name: "underline after blank line keeps the blank line",
			text: "text\n\n---\nafter",
			want: []interfaces.Section{
				{Content: []string{"text", ""}},
				{Content: []string{"after"}},
			},
		},
		{
			name: "underline directly after atx heading",
			text: "# A\n---\nbody",
			want: []interfaces.Section{
				{},
				{Header: []string{"# A"}, Name: "a"},
				{Content: []string{"body"}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Split(tc.text)
			if !Equal(got, tc.want) {
				t.Fatalf("Split(%q)\n got: %#v\nwant: %#v", tc.text, got, tc.want)
			}
		})
	}
}

func TestSplitATXVariants(t *testing.T) {
	cases := []struct {
		line    string
		heading bool
		name    string
	}{
		{line: "## MyHeading", heading: true, name: "myheading"},
		{line: "   ### Indented", heading: true, name: "indented"},
		{line: "###### Six", heading: true, name: "six"},
		{line: "####### Seven", heading: false},
		{line: "#NoSpace", heading: false},
		{line: "# ", heading: false},
		{line: "# #tag", heading: false},
		{line: "## Getting Started ##", heading: true, name: "getting"},
		{line: "## Getting Started", heading: true, name: "getting"},
		{line: "## Closing   ###   ", heading: true, name: "closing"},
		{line: "## C#", heading: true, name: "c"},
		{line: "## C# tips", heading: true, name: "c"},
		{line: "#   Spaced Out", heading: true, name: "spaced"},
		{line: "## v1.2-beta notes", heading: true, name: "v1.2-beta"},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got := Split(tc.line)
			if !tc.heading {
				if len(got) != 1 || len(got[0].Content) != 1 || got[0].Content[0] != tc.line {
					t.Fatalf("expected %q to stay body text, got %#v", tc.line, got)
				}
				return
			}
			if len(got) != 2 {
				t.Fatalf("expected two sections for %q, got %#v", tc.line, got)
			}
			if got[1].Name != tc.name {
				t.Fatalf("expected name %q, got %q", tc.name, got[1].Name)
			}
			if len(got[1].Header) != 1 || got[1].Header[0] != tc.line {
				t.Fatalf("expected raw header line %q, got %#v", tc.line, got[1].Header)
			}
		})
	}
}

func TestSplitSetextUnderlineShapes(t *testing.T) {
	cases := []struct {
		underline string
		heading   bool
	}{
		{underline: "==", heading: true},
		{underline: "--", heading: true},
		{underline: "  ----  ", heading: true},
		{underline: "-=-=", heading: true},
		{underline: "=", heading: false},
		{underline: "- -", heading: false},
		{underline: "--x", heading: false},
		{underline: "\t--", heading: false},
	}

	for _, tc := range cases {
		t.Run(tc.underline, func(t *testing.T) {
			got := Split("Heading\n" + tc.underline)
			if tc.heading {
				if len(got) != 2 || got[1].Name != "heading" {
					t.Fatalf("expected setext heading for %q, got %#v", tc.underline, got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("expected no split for %q, got %#v", tc.underline, got)
			}
		})
	}
}

func TestSplitWhitespaceOnlyHeadingText(t *testing.T) {
	got := Split("   \n---\nbody")
	if len(got) != 2 {
		t.Fatalf("expected two sections, got %#v", got)
	}
	if len(got[1].Header) != 2 || got[1].Header[0] != "   " {
		t.Fatalf("expected whitespace line to become the header, got %#v", got[1].Header)
	}
	if got[1].Name != "" {
		t.Fatalf("expected empty name, got %q", got[1].Name)
	}
}

func TestSplitFirstSectionNeverHasHeader(t *testing.T) {
	inputs := []string{"# Top\nbody", "Top\n===", "plain", "", "## A\n## B"}
	for _, input := range inputs {
		got := Split(input)
		if got[0].IsHeading() {
			t.Fatalf("Split(%q): first section should not carry a header, got %#v", input, got[0])
		}
	}
}

func TestSplitDoesNotInterpretOtherMarkdown(t *testing.T) {
	text := strings.Join([]string{
		"```",
		"# not special to fences",
		"```",
		"- item",
		"* item",
		"> quote",
	}, "\n")

	got := Split(text)
	if len(got) != 2 {
		t.Fatalf("expected the fenced hash line to open a section, got %#v", got)
	}
	if got[1].Name != "not" {
		t.Fatalf("unexpected name %q", got[1].Name)
	}
}
