package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"content-validator/core/validation"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleDocument() Document {
	return Document{
		"post": validation.Report{
			validation.SectionSamples: {
				"177232": "✅ Post 177232 matches 1:1 with the destination site.",
				"12":     "❌ Post 12 is missing on the destination site.",
			},
			validation.SectionCounts: {
				"post.publish": "✅ post publish count is 10 vs 10.",
			},
		},
		"user": validation.Report{
			validation.SectionCounts:  {"user.total": "❌ user total count is 5 vs 3 (diff 2)."},
			validation.SectionSamples: {},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":         FormatTree,
		"tree":     FormatTree,
		"YAML":     FormatYAML,
		"yml":      FormatYAML,
		"json":     FormatJSON,
		"md":       FormatMarkdown,
		"markdown": FormatMarkdown,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestWrite_JSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleDocument()))

	var got map[string]validation.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]validation.Report(sampleDocument()), got)
}

func TestWrite_YAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleDocument()))

	var got map[string]validation.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleDocument()["post"], got["post"])
	assert.Equal(t, sampleDocument()["user"][validation.SectionCounts], got["user"][validation.SectionCounts])
}

func TestWrite_Tree(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTree, sampleDocument()))
	out := buf.String()

	assert.Contains(t, out, "post")
	assert.Contains(t, out, "12: ❌ Post 12 is missing on the destination site.")
	assert.Less(t, strings.Index(out, "counts"), strings.Index(out, "samples"))
	assert.Less(t, strings.Index(out, "post.publish"), strings.Index(out, "user.total"))
}

func TestWrite_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatMarkdown, sampleDocument()))
	out := buf.String()

	assert.Contains(t, out, "# Content Validation Report")
	assert.Contains(t, out, "## post")
	assert.Contains(t, out, "user total count is 5 vs 3 (diff 2).")
	assert.Contains(t, out, "Nothing to compare.")
}

func TestWrite_Deterministic(t *testing.T) {
	for _, f := range Formats() {
		var a, b bytes.Buffer
		require.NoError(t, Write(&a, f, sampleDocument()))
		require.NoError(t, Write(&b, f, sampleDocument()))
		assert.Equal(t, a.String(), b.String(), string(f))
	}
}

func TestRowKeys_NumericOrder(t *testing.T) {
	rows := map[string]string{"10": "", "9": "", "100": "", "post.publish": "", "2": ""}
	assert.Equal(t, []string{"2", "9", "10", "100", "post.publish"}, rowKeys(rows))
}

func TestWrite_TreeSamplesInNumericOrder(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	doc := Document{"post": validation.Report{validation.SectionSamples: {
		"10": "✅ Post 10 matches 1:1 with the destination site.",
		"9":  "✅ Post 9 matches 1:1 with the destination site.",
	}}}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTree, doc))
	out := buf.String()
	assert.Less(t, strings.Index(out, "9: "), strings.Index(out, "10: "))
}
