package validation

import "fmt"

// DefaultSampleCount is the sample size used when the caller leaves it unset.
const DefaultSampleCount = 25

// SampleStrategy selects the records used for detailed comparison and
// derives the identifiers used to query the destination.
type SampleStrategy interface {
	// SelectSample returns at most n records. It must be deterministic for a
	// given input so reruns against an unchanged source pick the same sample.
	SelectSample(records []SampleRecord, n int) []SampleRecord

	// ExtractIDs returns the identifiers of records in order.
	ExtractIDs(records []SampleRecord) ([]string, error)
}

// FirstN keeps the first n records in the order the source produced them.
// Readers return records in a stable content order, which makes the
// selection reproducible.
type FirstN struct{}

// SelectSample implements SampleStrategy.
func (FirstN) SelectSample(records []SampleRecord, n int) []SampleRecord {
	n = ResolveSampleCount(n)
	if n > len(records) {
		n = len(records)
	}
	out := make([]SampleRecord, n)
	copy(out, records[:n])
	return out
}

// ExtractIDs implements SampleStrategy.
func (FirstN) ExtractIDs(records []SampleRecord) ([]string, error) {
	return ExtractIDs(records)
}

// ExtractIDs returns record identifiers in order. It fails with
// ErrMalformedRecord if any record has no identifier.
func ExtractIDs(records []SampleRecord) ([]string, error) {
	ids := make([]string, 0, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("%w: sample record %d has no identifier", ErrMalformedRecord, i)
		}
		ids = append(ids, rec.ID)
	}
	return ids, nil
}

// ResolveSampleCount applies DefaultSampleCount to unset or negative counts.
func ResolveSampleCount(n int) int {
	if n <= 0 {
		return DefaultSampleCount
	}
	return n
}
