package content

import (
	"context"
	"fmt"

	"content-validator/core/remote"
	"content-validator/core/validation"
)

// RecordValidator validates one content kind: counts plus a field by field
// comparison of a sample. It implements validation.Validator and is meant
// to be embedded by kind specific validators.
type RecordValidator struct {
	Kind       Kind
	SampleType remote.SampleType
	Source     Source
	Remote     remote.Client
	Options    validation.Options
}

// Name implements validation.Validator.
func (v *RecordValidator) Name() string {
	return string(v.Kind)
}

// CountPath is the remote count resource of the kind.
func (v *RecordValidator) CountPath() string {
	return fmt.Sprintf("validation/%s/count", v.Kind)
}

// SamplePath is the remote sample resource of the kind.
func (v *RecordValidator) SamplePath() string {
	return fmt.Sprintf("validation/%s/sample", v.Kind)
}

// SourceData implements validation.Validator.
func (v *RecordValidator) SourceData(ctx context.Context) (*validation.Dataset, error) {
	counts, err := v.Source.Counts(ctx, v.Kind)
	if err != nil {
		return nil, err
	}
	records, err := v.Source.Sample(ctx, v.Kind, v.Options.SampleCount)
	if err != nil {
		return nil, err
	}
	return &validation.Dataset{
		Counts: counts,
		Sample: v.Options.Sampler().SelectSample(records, v.Options.SampleCount),
	}, nil
}

// SampleIDs derives the destination query identifiers from the source sample.
func (v *RecordValidator) SampleIDs(source *validation.Dataset) ([]string, error) {
	return v.Options.Sampler().ExtractIDs(source.Sample)
}

// DestinationData implements validation.Validator. The count resource is
// requested first, then the sample resource with the source identifiers.
func (v *RecordValidator) DestinationData(ctx context.Context, source *validation.Dataset) (*validation.Dataset, error) {
	ids, err := v.SampleIDs(source)
	if err != nil {
		return nil, err
	}
	counts, err := remote.GetCounts(ctx, v.Remote, v.CountPath())
	if err != nil {
		return nil, err
	}
	records, err := remote.GetRecords(ctx, v.Remote, v.SamplePath(), remote.Params{Type: v.SampleType, IDs: ids}, v.Kind.IDField())
	if err != nil {
		return nil, err
	}
	return &validation.Dataset{Counts: counts, Sample: records}, nil
}

// Compare implements validation.Validator.
func (v *RecordValidator) Compare(source, destination *validation.Dataset) validation.Comparison {
	rows := validation.FieldComparator{IDField: v.Kind.IDField()}.CompareSamples(source.Sample, destination.Sample)

	labels := make(map[string]string, len(source.Sample))
	for _, rec := range source.Sample {
		if label, ok := rec.Fields[v.Kind.LabelField()]; ok {
			labels[rec.ID] = label.Text()
		}
	}
	for i := range rows {
		rows[i].Noun = v.Kind.Noun()
		rows[i].Label = labels[rows[i].ID]
	}

	return validation.Comparison{
		Counts:  validation.CompareCounts(source.Counts, destination.Counts),
		Samples: rows,
	}
}
