package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"content-validator/core/validation"

	"github.com/spf13/afero"
)

// SnapshotFile is the layout of <dir>/<kind>.json.
type SnapshotFile struct {
	Counts    validation.Counts         `json:"counts"`
	Records   []validation.SampleRecord `json:"records"`
	Relations validation.Relations      `json:"relations,omitempty"`
}

// Snapshot serves content from JSON files exported by ExportSnapshot.
type Snapshot struct {
	fs      afero.Fs
	dir     string
	ignored map[string]struct{}
}

// NewSnapshot reads snapshot files from dir on fs.
func NewSnapshot(fs afero.Fs, dir string, ignoredMeta []string) *Snapshot {
	ignored := make(map[string]struct{}, len(ignoredMeta))
	for _, k := range ignoredMeta {
		ignored[k] = struct{}{}
	}
	return &Snapshot{fs: fs, dir: dir, ignored: ignored}
}

// SnapshotPath returns the file holding kind under dir.
func SnapshotPath(dir string, kind Kind) string {
	return filepath.Join(dir, string(kind)+".json")
}

func (s *Snapshot) load(kind Kind) (*SnapshotFile, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	path := SnapshotPath(s.dir, kind)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var file SnapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: snapshot %s: %v", validation.ErrMalformedRecord, path, err)
	}
	validation.AssignIDs(file.Records, kind.IDField())
	for i := range file.Records {
		if file.Records[i].ID == "" {
			return nil, fmt.Errorf("%w: snapshot %s record %d has no %s", validation.ErrMalformedRecord, path, i, kind.IDField())
		}
		for key := range s.ignored {
			delete(file.Records[i].Meta, key)
		}
	}
	if file.Counts == nil {
		file.Counts = validation.Counts{}
	}
	return &file, nil
}

// Counts implements Source.
func (s *Snapshot) Counts(_ context.Context, kind Kind) (validation.Counts, error) {
	file, err := s.load(kind)
	if err != nil {
		return nil, err
	}
	return file.Counts, nil
}

// Sample implements Source.
func (s *Snapshot) Sample(_ context.Context, kind Kind, n int) ([]validation.SampleRecord, error) {
	file, err := s.load(kind)
	if err != nil {
		return nil, err
	}
	return validation.FirstN{}.SelectSample(file.Records, n), nil
}

// ByIDs implements Source.
func (s *Snapshot) ByIDs(_ context.Context, kind Kind, ids []string) ([]validation.SampleRecord, error) {
	if _, err := parseIDs(ids); err != nil {
		return nil, err
	}
	file, err := s.load(kind)
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := []validation.SampleRecord{}
	for _, rec := range file.Records {
		if _, ok := wanted[rec.ID]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Relations implements Source.
func (s *Snapshot) Relations(_ context.Context, ids []string) (validation.Relations, error) {
	if _, err := parseIDs(ids); err != nil {
		return nil, err
	}
	file, err := s.load(KindPost)
	if err != nil {
		return nil, err
	}
	out := validation.Relations{}
	for _, id := range ids {
		if rel, ok := file.Relations[id]; ok {
			out[id] = rel
		}
	}
	return out, nil
}

// ExportSnapshot writes the counts, the first limit records and, for posts,
// their relations from src to <dir>/<kind>.json on fs.
func ExportSnapshot(ctx context.Context, src Source, fs afero.Fs, dir string, kind Kind, limit int) (string, error) {
	counts, err := src.Counts(ctx, kind)
	if err != nil {
		return "", err
	}
	records, err := src.Sample(ctx, kind, limit)
	if err != nil {
		return "", err
	}

	file := SnapshotFile{Counts: counts, Records: records}
	if kind == KindPost {
		ids, err := validation.ExtractIDs(records)
		if err != nil {
			return "", err
		}
		if file.Relations, err = src.Relations(ctx, ids); err != nil {
			return "", err
		}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot folder: %w", err)
	}
	path := SnapshotPath(dir, kind)
	if err := afero.WriteFile(fs, path, data, os.FileMode(0o644)); err != nil {
		return "", fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return path, nil
}
