package report

import (
	"context"
	"time"

	"content-validator/feature/registry"

	"go.uber.org/zap"
)

// Service runs validators and optionally archives the result.
type Service struct {
	deps     registry.Deps
	archiver *Archiver
	logger   *zap.Logger
	now      func() time.Time
	cache    *documentCache
}

// NewService creates a Service. A nil archiver disables archiving.
// Reports are reused for cacheTTL; concurrent requests for the same
// validator always share one run.
func NewService(deps registry.Deps, archiver *Archiver, cacheTTL time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Logger == nil {
		deps.Logger = logger
	}
	svc := &Service{deps: deps, archiver: archiver, logger: logger, now: time.Now}
	svc.cache = newDocumentCache(cacheTTL, func() time.Time { return svc.now() })
	return svc
}

// CanArchive reports whether an archiver is configured.
func (s *Service) CanArchive() bool {
	return s.archiver != nil
}

// Run validates name ("all" or a single validator). A cached document is
// returned unless fresh is set.
func (s *Service) Run(ctx context.Context, name string, fresh bool) (Document, error) {
	names, err := registry.Resolve(name)
	if err != nil {
		return Document{}, err
	}
	if fresh {
		s.cache.invalidate()
	}
	return s.cache.getOrRun(ctx, name, func(ctx context.Context) (Document, error) {
		results, err := registry.Run(ctx, s.deps, names...)
		if err != nil {
			return Document{}, err
		}
		doc := NewDocument(name, results, s.now())
		s.logger.Info("Validation finished", zap.String("validator", name), zap.Bool("ok", doc.OK()))
		return doc, nil
	})
}

// Archive stores doc and returns its key.
func (s *Service) Archive(ctx context.Context, doc Document) (string, error) {
	if s.archiver == nil {
		return "", ErrArchiveDisabled
	}
	return s.archiver.Archive(ctx, doc)
}

// List returns the archived reports.
func (s *Service) List(ctx context.Context) ([]Archived, error) {
	if s.archiver == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archiver.List(ctx)
}

// Fetch returns one archived report.
func (s *Service) Fetch(ctx context.Context, key string) (Document, error) {
	if s.archiver == nil {
		return Document{}, ErrArchiveDisabled
	}
	return s.archiver.Fetch(ctx, key)
}
