package content_test

import (
	"testing"

	"content-validator/feature/content"
	"content-validator/feature/content/contenttest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSchema(t *testing.T) {
	site := contenttest.NewSite(t)

	report, err := content.CheckSchema(site.DB, contenttest.Prefix)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Len(t, report.Tables, 8)
	assert.Empty(t, report.Errors)
}

func TestCheckSchema_MissingColumn(t *testing.T) {
	site := contenttest.NewSite(t)
	require.NoError(t, site.DB.Exec("ALTER TABLE wp_posts DROP COLUMN post_excerpt").Error)

	report, err := content.CheckSchema(site.DB, contenttest.Prefix)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"post_excerpt"}, report.Tables["wp_posts"].MissingColumns)
	assert.Equal(t, "ok", report.Tables["wp_users"].Status)
}

func TestCheckSchema_MissingTables(t *testing.T) {
	site := contenttest.NewSite(t)

	report, err := content.CheckSchema(site.DB, "other_")
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, "error", report.Tables["other_posts"].Status)
	assert.Contains(t, report.Tables["other_posts"].MissingColumns, "post_title")
}

func TestCheckSchema_NilDB(t *testing.T) {
	_, err := content.CheckSchema(nil, "")
	assert.Error(t, err)
}
