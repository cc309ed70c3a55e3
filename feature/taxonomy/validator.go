package taxonomy

import (
	"content-validator/core/remote"
	"content-validator/core/validation"
	"content-validator/feature/content"
)

// Validator compares taxonomy terms: per taxonomy term and assignment
// counts, then a sample of terms with their meta.
type Validator struct {
	content.RecordValidator
}

// NewValidator creates a taxonomy validator reading from source and querying client.
func NewValidator(source content.Source, client remote.Client, opts validation.Options) *Validator {
	return &Validator{content.RecordValidator{
		Kind:       content.KindTaxonomy,
		SampleType: remote.TypeTerms,
		Source:     source,
		Remote:     client,
		Options:    opts,
	}}
}
