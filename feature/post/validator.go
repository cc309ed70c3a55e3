package post

import (
	"context"

	"content-validator/core/remote"
	"content-validator/core/validation"
	"content-validator/feature/content"
)

// RelationsField is the sample cell comparing a post's taxonomy terms.
const RelationsField = "terms"

// Validator compares posts, including their term assignments.
type Validator struct {
	content.RecordValidator
}

// NewValidator creates a post validator reading from source and querying client.
func NewValidator(source content.Source, client remote.Client, opts validation.Options) *Validator {
	return &Validator{content.RecordValidator{
		Kind:       content.KindPost,
		SampleType: remote.TypePosts,
		Source:     source,
		Remote:     client,
		Options:    opts,
	}}
}

// SourceData reads counts, the sample and the sample's term relations.
func (v *Validator) SourceData(ctx context.Context) (*validation.Dataset, error) {
	data, err := v.RecordValidator.SourceData(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := v.SampleIDs(data)
	if err != nil {
		return nil, err
	}
	if data.Relations, err = v.Source.Relations(ctx, ids); err != nil {
		return nil, err
	}
	return data, nil
}

// DestinationData requests counts, the post sample and then the sample's
// term relations.
func (v *Validator) DestinationData(ctx context.Context, source *validation.Dataset) (*validation.Dataset, error) {
	data, err := v.RecordValidator.DestinationData(ctx, source)
	if err != nil {
		return nil, err
	}
	ids, err := v.SampleIDs(source)
	if err != nil {
		return nil, err
	}
	if data.Relations, err = remote.GetRelations(ctx, v.Remote, v.SamplePath(), ids); err != nil {
		return nil, err
	}
	return data, nil
}

// Compare adds a terms cell to every sample row. Source relations are
// ground truth, like meta.
func (v *Validator) Compare(source, destination *validation.Dataset) validation.Comparison {
	cmp := v.RecordValidator.Compare(source, destination)
	for i := range cmp.Samples {
		row := &cmp.Samples[i]
		if row.Absent {
			row.Fields[RelationsField] = false
			continue
		}
		row.Fields[RelationsField] = validation.MetaEqual(source.Relations[row.ID], destination.Relations[row.ID])
	}
	return cmp
}
