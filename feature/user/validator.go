package user

import (
	"content-validator/core/remote"
	"content-validator/core/validation"
	"content-validator/feature/content"
)

// Validator compares users: the total count, then a sample of accounts
// with their meta.
type Validator struct {
	content.RecordValidator
}

// NewValidator creates a user validator reading from source and querying client.
func NewValidator(source content.Source, client remote.Client, opts validation.Options) *Validator {
	return &Validator{content.RecordValidator{
		Kind:       content.KindUser,
		SampleType: remote.TypeUsers,
		Source:     source,
		Remote:     client,
		Options:    opts,
	}}
}
