package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"content-validator/core/storage"
	"content-validator/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "validation-reports",
			Region:    "us-east-1",
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "reports").Return(true, nil)
		assert.NoError(t, storage.EnsureBucket(ctx, m, "reports", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "reports").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "reports", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)
		assert.NoError(t, storage.EnsureBucket(ctx, m, "reports", "eu-west-1"))
		m.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "reports").Return(false, assert.AnError)
		assert.ErrorIs(t, storage.EnsureBucket(ctx, m, "reports", ""), assert.AnError)
	})
}

func TestConfigTimeouts(t *testing.T) {
	assert.Equal(t, 30*time.Second, storage.Config{}.ConnectTimeout())
	assert.Equal(t, time.Minute, storage.Config{}.OperationTimeout())
	assert.Equal(t, int64(16<<20), storage.Config{}.ReportLimit())
	assert.Equal(t, 5*time.Second, storage.Config{OperationTimeoutSeconds: 5}.OperationTimeout())
}

func TestPutJSON(t *testing.T) {
	m := new(mocks.Client)
	m.On("PutObject", mock.Anything, "b", "k.json", mock.Anything, int64(2),
		minio.PutObjectOptions{ContentType: "application/json", CacheControl: "no-cache"}).
		Return(minio.UploadInfo{}, nil).Once()
	require.NoError(t, storage.PutJSON(context.Background(), m, "b", "k.json", []byte("{}")))

	m.On("PutObject", mock.Anything, "b", "bad.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)
	assert.ErrorIs(t, storage.PutJSON(context.Background(), m, "b", "bad.json", []byte("{}")), assert.AnError)
	m.AssertExpectations(t)
}

func TestReadObject(t *testing.T) {
	ctx := context.Background()

	t.Run("WithinLimit", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", mock.Anything, "b", "k", mock.Anything).Return(io.NopCloser(strings.NewReader("hello")), nil)
		data, err := storage.ReadObject(ctx, m, "b", "k", 5)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("OverLimit", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", mock.Anything, "b", "k", mock.Anything).Return(io.NopCloser(strings.NewReader("hello!")), nil)
		_, err := storage.ReadObject(ctx, m, "b", "k", 5)
		assert.ErrorIs(t, err, storage.ErrObjectTooLarge)
	})

	t.Run("Missing", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", mock.Anything, "b", "k", mock.Anything).Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})
		_, err := storage.ReadObject(ctx, m, "b", "k", 5)
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})
}
