package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"content-validator/core/render"
	"content-validator/core/validation"
	"content-validator/feature/report"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validationDocument() report.Document {
	counts := validation.CountComparison{
		"post": {"publish": {Group: "post", Key: "publish", Source: 2, Destination: 2}},
	}
	user := validation.CountComparison{
		"user": {"total": {Group: "user", Key: "total", Source: 3, Destination: 1}},
	}
	return report.NewDocument("all", []*validation.Result{
		{
			Validator:  "post",
			Report:     validation.Report{validation.SectionCounts: {"post.publish": "✅ post publish count is 2 vs 2."}},
			Comparison: validation.Comparison{Counts: counts},
		},
		{
			Validator:  "user",
			Report:     validation.Report{validation.SectionCounts: {"user.total": "❌ user total count is 3 vs 1."}},
			Comparison: validation.Comparison{Counts: user},
		},
	}, time.Unix(1700000000, 0))
}

func TestWriteResults_KeepsStructuredOutputClean(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	t.Run("JSON", func(t *testing.T) {
		var out, status bytes.Buffer
		require.NoError(t, writeResults(&out, &status, render.FormatJSON, validationDocument()))

		var decoded map[string]validation.Report
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Len(t, decoded, 2)
		assert.NotContains(t, out.String(), "checks")

		assert.Contains(t, status.String(), "post: all 1 checks passed")
		assert.Contains(t, status.String(), "user: 1 of 1 checks failed")
	})

	t.Run("YAML", func(t *testing.T) {
		var out, status bytes.Buffer
		require.NoError(t, writeResults(&out, &status, render.FormatYAML, validationDocument()))

		var decoded map[string]map[string]map[string]string
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "✅ post publish count is 2 vs 2.", decoded["post"]["counts"]["post.publish"])
		assert.NotEmpty(t, status.String())
	})
}
