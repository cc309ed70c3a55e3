package content_test

import (
	"context"
	"errors"
	"testing"

	"content-validator/core/validation"
	"content-validator/feature/content"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSnapshot_RoundTrip(t *testing.T) {
	store := seededStore(t)
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	for _, kind := range content.Kinds() {
		path, err := content.ExportSnapshot(ctx, store, fs, "/snap", kind, 10)
		require.NoError(t, err)
		assert.Equal(t, content.SnapshotPath("/snap", kind), path)
	}

	snap := content.NewSnapshot(fs, "/snap", ignored)

	for _, kind := range content.Kinds() {
		want, err := store.Counts(ctx, kind)
		require.NoError(t, err)
		got, err := snap.Counts(ctx, kind)
		require.NoError(t, err)
		assert.Equal(t, want, got, string(kind))
	}

	fromDB, err := store.Sample(ctx, content.KindPost, 2)
	require.NoError(t, err)
	fromSnap, err := snap.Sample(ctx, content.KindPost, 2)
	require.NoError(t, err)

	cmp := validation.FieldComparator{IDField: content.KindPost.IDField()}
	for _, row := range cmp.CompareSamples(fromDB, fromSnap) {
		assert.True(t, row.Passed(), row.Describe())
	}

	byID, err := snap.ByIDs(ctx, content.KindUser, []string{"2"})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "2", byID[0].ID)

	rel, err := snap.Relations(ctx, []string{"1", "4"})
	require.NoError(t, err)
	assert.Equal(t, validation.Relations{"1": {"category": {"news"}, "post_tag": {"go"}}}, rel)
}

func TestSnapshot_IgnoredMeta(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := `{"counts":{"user":{"total":1}},"records":[{"ID":7,"user_login":"x","meta":{"session_tokens":["t"],"nickname":"x"}}]}`
	require.NoError(t, afero.WriteFile(fs, "/in/user.json", []byte(data), 0o644))

	records, err := content.NewSnapshot(fs, "/in", ignored).Sample(context.Background(), content.KindUser, 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "7", records[0].ID)
	assert.Equal(t, validation.Meta{"nickname": {"x"}}, records[0].Meta)
}

func TestSnapshot_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	snap := content.NewSnapshot(fs, "/in", nil)
	ctx := context.Background()

	_, err := snap.Counts(ctx, content.KindPost)
	assert.Error(t, err, "missing file")

	require.NoError(t, afero.WriteFile(fs, "/in/post.json", []byte(`{"records":[{"title":"no id"}]}`), 0o644))
	_, err = snap.Sample(ctx, content.KindPost, 1)
	assert.True(t, errors.Is(err, validation.ErrMalformedRecord))

	_, err = snap.Counts(ctx, content.Kind("comment"))
	assert.True(t, errors.Is(err, content.ErrUnknownKind))
}
