package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"content-validator/core/validation"
)

// GetRecords requests a sample resource and decodes it into records whose
// identifiers are read from idField.
func GetRecords(ctx context.Context, c Client, path string, params Params, idField string) ([]validation.SampleRecord, error) {
	var raw json.RawMessage
	if err := c.GetRemoteData(ctx, path, params, &raw); err != nil {
		return nil, err
	}
	records, err := validation.DecodeRecords(raw, idField)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRemoteDecode, path, err)
	}
	return records, nil
}

// GetCounts requests a count resource.
func GetCounts(ctx context.Context, c Client, path string) (validation.Counts, error) {
	counts := validation.Counts{}
	if err := c.GetRemoteData(ctx, path, Params{}, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// GetRelations requests the taxonomy relations of the given records.
func GetRelations(ctx context.Context, c Client, path string, ids []string) (validation.Relations, error) {
	relations := validation.Relations{}
	if err := c.GetRemoteData(ctx, path, Params{Type: TypeTerms, IDs: ids}, &relations); err != nil {
		return nil, err
	}
	return relations, nil
}
