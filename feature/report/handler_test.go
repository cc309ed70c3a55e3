package report

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"content-validator/core/remote"
	remotemocks "content-validator/core/remote/mocks"
	"content-validator/core/storage"
	storagemocks "content-validator/core/storage/mocks"
	"content-validator/feature/content"
	"content-validator/feature/content/contenttest"
	"content-validator/feature/registry"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T, client *remotemocks.Client, store *storagemocks.Client) *fiber.App {
	site := contenttest.Seed(contenttest.NewSite(t))
	deps := registry.Deps{
		Source: content.NewStore(site.DB, contenttest.Prefix, []string{"session_tokens"}),
		Remote: client,
	}

	var archiver *Archiver
	if store != nil {
		archiver = NewArchiver(store, storage.Config{Bucket: "b", ReportPrefix: "reports"})
	}
	svc := NewService(deps, archiver, 0, nil)
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }

	feature := NewFeature(svc)
	require.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func userRemote() *remotemocks.Client {
	client := new(remotemocks.Client)
	client.On("GetRemoteData", mock.Anything, "validation/user/count", remote.Params{}).
		Return(`{"user": {"total": 3}}`, nil)
	client.On("GetRemoteData", mock.Anything, "validation/user/sample", mock.Anything).
		Return(`[{"ID": 1, "user_login": "admin", "user_email": "admin@example.com", "user_nicename": "admin",
			"display_name": "Admin", "user_registered": "2023-12-31 00:00:00", "meta": {"nickname": ["admin"]}}]`, nil)
	return client
}

func TestHandleReport(t *testing.T) {
	app := setupApp(t, userRemote(), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/report/user", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var doc Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	entry := doc.Validators["user"]
	assert.Equal(t, "❌ user total count is 2 vs 3 (diff -1).", entry.Report["counts"]["user.total"])
	assert.Equal(t, 2, entry.Summary.Failed)
	assert.Contains(t, entry.Report["samples"]["2"], "is missing on the destination site")
}

func TestHandleReport_Markdown(t *testing.T) {
	app := setupApp(t, userRemote(), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/report/user?format=markdown", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(body), "# Content Validation Report"))
}

func TestHandleReport_Errors(t *testing.T) {
	failing := new(remotemocks.Client)
	failing.On("GetRemoteData", mock.Anything, mock.Anything, mock.Anything).Return(nil, remote.ErrRemoteUnavailable)
	app := setupApp(t, failing, nil)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"UnknownValidator", "/report/comment", fiber.StatusBadRequest},
		{"UnknownFormat", "/report/user?format=xml", fiber.StatusBadRequest},
		{"RemoteDown", "/report/all", fiber.StatusBadGateway},
		{"ArchiveDisabled", "/reports", fiber.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestHandleReport_Archive(t *testing.T) {
	store := new(storagemocks.Client)
	store.On("BucketExists", mock.Anything, "b").Return(true, nil)
	store.On("PutObject", mock.Anything, "b", "reports/user-1700000000.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	app := setupApp(t, userRemote(), store)

	resp, err := app.Test(httptest.NewRequest("GET", "/report/user?archive=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "reports/user-1700000000.json", resp.Header.Get("X-Report-Key"))
	store.AssertExpectations(t)
}

func TestHandleList(t *testing.T) {
	store := new(storagemocks.Client)
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "reports/user-1.json", Size: 42}
	close(ch)
	store.On("ListObjects", mock.Anything, "b", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
	app := setupApp(t, userRemote(), store)

	resp, err := app.Test(httptest.NewRequest("GET", "/reports", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []Archived
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, int64(42), items[0].Size)
}

func TestHandleFetch(t *testing.T) {
	stored, err := json.Marshal(sampleDocument())
	require.NoError(t, err)

	store := new(storagemocks.Client)
	store.On("GetObject", mock.Anything, "b", "reports/all-1700000000.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(string(stored))), nil)
	store.On("GetObject", mock.Anything, "b", "reports/gone.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})
	app := setupApp(t, userRemote(), store)

	resp, err := app.Test(httptest.NewRequest("GET", "/reports/reports/all-1700000000.json", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var doc Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "all", doc.Name)

	for _, target := range []string{"/reports/reports/gone.json", "/reports/other/all-1.json"} {
		resp, err = app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, target)
	}
}
