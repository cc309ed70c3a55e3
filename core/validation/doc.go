// Package validation is the reconciliation engine that compares a source
// dataset with its destination copy after a migration or sync pass.
//
// A run has four steps, always in this order:
//
//  1. SourceData reads local counts and a deterministic sample of records.
//  2. DestinationData asks the remote side for exactly the sampled IDs.
//  3. Compare diffs counts (CountComparator) and fields (FieldComparator).
//  4. Assemble renders the comparison into a section → key → message Report.
//
// # Equivalence
//
// Count comparison walks the source keys only; a key missing on the
// destination is treated as zero. Record comparison aligns by identifier,
// never by position. Scalar fields need strict equality (a numeric string is
// not a number). The meta field treats the source as ground truth: extra
// destination keys are ignored, but every source key must be present with
// the same ordered values.
//
// # Adding content types
//
// Implement Validator (SourceData, DestinationData, Compare) and call
// Validate. The orchestration is shared and must not be re-implemented.
//
//	res, err := validation.Validate(ctx, post.New(reader, client, opts), logger)
//	if err != nil {
//	    return err // infrastructure failure, no partial report
//	}
//	fmt.Println(res.Report[validation.SectionSamples])
package validation
