package registry

import (
	"context"
	"fmt"
	"time"

	"content-validator/core/remote"
	"content-validator/core/validation"
	"content-validator/feature/content"
	"content-validator/feature/post"
	"content-validator/feature/taxonomy"
	"content-validator/feature/user"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// All selects every validator.
const All = "all"

// Deps are the collaborators handed to each validator.
type Deps struct {
	Source  content.Source
	Remote  remote.Client
	Options validation.Options
	Logger  *zap.Logger
	// Timeout bounds one validator run when > 0.
	Timeout time.Duration
}

// Names returns the validator names in report order.
func Names() []string {
	kinds := content.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// Resolve expands "all" and rejects unknown names.
func Resolve(name string) ([]string, error) {
	if name == All {
		return Names(), nil
	}
	if _, err := content.ParseKind(name); err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// Build creates the validator for name.
func Build(name string, deps Deps) (validation.Validator, error) {
	kind, err := content.ParseKind(name)
	if err != nil {
		return nil, err
	}
	switch kind {
	case content.KindPost:
		return post.NewValidator(deps.Source, deps.Remote, deps.Options), nil
	case content.KindTaxonomy:
		return taxonomy.NewValidator(deps.Source, deps.Remote, deps.Options), nil
	default:
		return user.NewValidator(deps.Source, deps.Remote, deps.Options), nil
	}
}

// Run validates every named content type concurrently. Each run owns its
// validator; the first failure cancels the others and no results are
// returned. Results follow the order of names.
func Run(ctx context.Context, deps Deps, names ...string) ([]*validation.Result, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	validators := make([]validation.Validator, len(names))
	for i, name := range names {
		v, err := Build(name, deps)
		if err != nil {
			return nil, err
		}
		validators[i] = v
	}

	results := make([]*validation.Result, len(validators))
	g, gctx := errgroup.WithContext(ctx)
	for i, v := range validators {
		g.Go(func() error {
			runCtx := gctx
			if deps.Timeout > 0 {
				var cancel context.CancelFunc
				runCtx, cancel = context.WithTimeout(gctx, deps.Timeout)
				defer cancel()
			}
			res, err := validation.Validate(runCtx, v, logger)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("validation aborted: %w", err)
	}
	return results, nil
}
