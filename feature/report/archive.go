package report

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"content-validator/core/render"
	"content-validator/core/storage"
	"content-validator/core/validation"

	"github.com/minio/minio-go/v7"
)

// Entry is the outcome of one validator inside a Document.
type Entry struct {
	Report  validation.Report  `json:"report"`
	Summary validation.Summary `json:"summary"`
}

// Document is one validation run over one or more validators.
type Document struct {
	Name       string           `json:"name"`
	CreatedAt  time.Time        `json:"created_at"`
	Validators map[string]Entry `json:"validators"`
}

// NewDocument collects results under name.
func NewDocument(name string, results []*validation.Result, now time.Time) Document {
	doc := Document{Name: name, CreatedAt: now.UTC(), Validators: make(map[string]Entry, len(results))}
	for _, res := range results {
		doc.Validators[res.Validator] = Entry{Report: res.Report, Summary: res.Summary()}
	}
	return doc
}

// Reports returns the rendered reports keyed by validator.
func (d Document) Reports() render.Document {
	out := make(render.Document, len(d.Validators))
	for name, e := range d.Validators {
		out[name] = e.Report
	}
	return out
}

// Names returns the validator names in sorted order.
func (d Document) Names() []string {
	names := make([]string, 0, len(d.Validators))
	for name := range d.Validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OK reports whether every validator passed.
func (d Document) OK() bool {
	for _, e := range d.Validators {
		if !e.Summary.OK() {
			return false
		}
	}
	return true
}

// Archived describes a stored report.
type Archived struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Archiver stores report documents in object storage.
type Archiver struct {
	client  storage.Client
	bucket  string
	prefix  string
	region  string
	timeout time.Duration
	limit   int64
}

// NewArchiver creates an archiver for the configured bucket and prefix.
func NewArchiver(client storage.Client, cfg storage.Config) *Archiver {
	return &Archiver{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  strings.Trim(cfg.ReportPrefix, "/"),
		region:  cfg.Region,
		timeout: cfg.OperationTimeout(),
		limit:   cfg.ReportLimit(),
	}
}

// Key returns the object name for doc: <prefix>/<name>-<unix>.json.
func (a *Archiver) Key(doc Document) string {
	return path.Join(a.prefix, fmt.Sprintf("%s-%d.json", doc.Name, doc.CreatedAt.Unix()))
}

// Archive uploads doc as JSON, creating the bucket when missing.
func (a *Archiver) Archive(ctx context.Context, doc Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if err := storage.EnsureBucket(ctx, a.client, a.bucket, a.region); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	key := a.Key(doc)
	if err := storage.PutJSON(ctx, a.client, a.bucket, key, data); err != nil {
		return "", fmt.Errorf("failed to archive report: %w", err)
	}
	return key, nil
}

// Fetch downloads an archived report by key. Keys outside the report
// prefix are reported as not found.
func (a *Archiver) Fetch(ctx context.Context, key string) (Document, error) {
	key = strings.TrimPrefix(key, "/")
	if !a.owns(key) {
		return Document{}, fmt.Errorf("%w: %s", storage.ErrObjectNotFound, key)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	data, err := storage.ReadObject(ctx, a.client, a.bucket, key, a.limit)
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode report %s: %w", key, err)
	}
	return doc, nil
}

func (a *Archiver) owns(key string) bool {
	if !strings.HasSuffix(key, ".json") || strings.Contains(key, "..") {
		return false
	}
	return a.prefix == "" || strings.HasPrefix(key, a.prefix+"/")
}

// List returns archived reports, newest first.
func (a *Archiver) List(ctx context.Context) ([]Archived, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prefix := a.prefix
	if prefix != "" {
		prefix += "/"
	}

	out := []Archived{}
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		out = append(out, Archived{Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastModified.Equal(out[j].LastModified) {
			return out[i].Key > out[j].Key
		}
		return out[i].LastModified.After(out[j].LastModified)
	})
	return out, nil
}
