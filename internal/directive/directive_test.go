package directive_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/exprdocs/internal/directive"
)

func TestParse_NoDirectiveMeansUndocumented(t *testing.T) {
	dir, sections := directive.Parse("Just some prose.\n\nMore prose.")

	require.False(t, dir.Present)
	require.Len(t, sections, 1)
	require.Equal(t, "", sections[0].Heading)
	require.Equal(t, "Just some prose.\n\nMore prose.", sections[0].Body)
}

func TestParse_SingleDirective(t *testing.T) {
	dir, sections := directive.Parse("Adds two numbers.\n\n# rhai-autodocs:index:7")

	require.True(t, dir.Present)
	require.Equal(t, 7, dir.Index)
	// Directive syntax never reaches the displayed text.
	require.NotContains(t, sections.Join(), "rhai-autodocs")
}

func TestParse_LastDirectiveWins(t *testing.T) {
	text := strings.Join([]string{
		"# rhai-autodocs:index:1",
		"Copy-pasted doc comment.",
		"# rhai-autodocs:index:4",
	}, "\n")

	dir, sections := directive.Parse(text)

	require.True(t, dir.Present)
	require.Equal(t, 4, dir.Index)
	require.Equal(t, "Copy-pasted doc comment.", sections.Join())
}

func TestParse_MalformedDirectivesDegrade(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"non numeric index", "# rhai-autodocs:index:abc"},
		{"negative index", "# rhai-autodocs:index:-1"},
		{"missing index", "# rhai-autodocs:index:"},
		{"trailing garbage", "# rhai-autodocs:index:3 tail"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir, sections := directive.Parse(tc.text)
			require.False(t, dir.Present)
			// Marker lines are stripped even when malformed.
			require.NotContains(t, sections.Join(), "rhai-autodocs")
		})
	}
}

func TestParse_SectionSplit(t *testing.T) {
	text := strings.Join([]string{
		"Preamble text.",
		"",
		"# Usage",
		"",
		"Call it from any script.",
		"# Errors",
		"Never fails.",
	}, "\n")

	_, sections := directive.Parse(text)

	require.Len(t, sections, 3)
	require.Equal(t, "", sections[0].Heading)
	require.Equal(t, "Preamble text.\n", sections[0].Body)
	require.Equal(t, "Usage", sections[1].Heading)
	require.Equal(t, "\nCall it from any script.", sections[1].Body)
	require.Equal(t, "Errors", sections[2].Heading)
	require.Equal(t, "Never fails.", sections[2].Body)
}

func TestParse_JoinIsLeftInverse(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"no markers", "line one\nline two"},
		{"sections only", "intro\n\n# One\nbody one\n# Two\nbody two"},
		{"directive between sections", "intro\n# rhai-autodocs:index:2\n# One\nbody"},
		{"directive at end", "intro\n\n# One\n\nbody\n# rhai-autodocs:index:3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var kept []string
			for _, line := range strings.Split(tc.text, "\n") {
				if strings.Contains(line, directive.IndexMarker) {
					continue
				}
				kept = append(kept, line)
			}
			expected := strings.Join(kept, "\n")

			_, sections := directive.Parse(tc.text)
			require.Equal(t, expected, sections.Join())
		})
	}
}

func TestParse_CodeFences(t *testing.T) {
	text := strings.Join([]string{
		"Example:",
		"```",
		"# hidden doc-test line",
		"#{ \"key\": 1 }",
		"let x = 1;",
		"```",
	}, "\n")

	_, sections := directive.Parse(text)

	// Fenced content never starts a section.
	require.Len(t, sections, 1)
	body := sections[0].Body
	require.NotContains(t, body, "hidden doc-test line")
	require.Contains(t, body, "#{ \"key\": 1 }")
	require.Contains(t, body, "let x = 1;")
}

func TestSectionedText_IsEmpty(t *testing.T) {
	_, sections := directive.Parse("# rhai-autodocs:index:1")
	require.True(t, sections.IsEmpty())

	_, sections = directive.Parse("words\n# rhai-autodocs:index:1")
	require.False(t, sections.IsEmpty())
}
