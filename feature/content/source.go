package content

import (
	"context"

	"content-validator/core/validation"
)

// Source reads local content. Records come back in a stable order
// (ascending identifier) so sampling is reproducible.
type Source interface {
	// Counts returns the aggregate counts for kind.
	Counts(ctx context.Context, kind Kind) (validation.Counts, error)
	// Sample returns the first n records of kind.
	Sample(ctx context.Context, kind Kind, n int) ([]validation.SampleRecord, error)
	// ByIDs returns the records of kind with the given identifiers.
	// Unknown identifiers are skipped.
	ByIDs(ctx context.Context, kind Kind, ids []string) ([]validation.SampleRecord, error)
	// Relations returns taxonomy → term slugs for each post identifier.
	Relations(ctx context.Context, ids []string) (validation.Relations, error)
}
