// Package storage provides the object storage used to archive validation
// reports.
//
// It wraps the MinIO Go client behind a small Client interface, which works
// against AWS S3 and self-hosted MinIO alike and can be mocked in tests
// (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket (and EnsureBucket): prepare the archive bucket.
//   - PutObject: upload a rendered report.
//   - GetObject: download an archived report.
//   - ListObjects: enumerate archived reports under a prefix.
//
// PutJSON and ReadObject wrap the upload and the size-capped download of
// one report. Callers bound each call with Config.OperationTimeout.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
