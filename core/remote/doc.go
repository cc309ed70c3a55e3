// Package remote is the client side of the destination validation API.
//
// The destination exposes one count resource and one sample resource per
// content type, e.g. validation/post/count and validation/post/sample. The
// sample resource takes a type (posts, terms, users) and the list of source
// IDs to look up, so the destination is only ever asked about records the
// source actually sampled.
//
// # Errors
//
// Transport failures and non-2xx answers wrap ErrRemoteUnavailable; bodies
// that are not valid JSON for the expected shape wrap ErrRemoteDecode. The
// validation engine does not recover from either.
//
// # Usage
//
//	client, err := remote.NewClient(cfg.Remote, logger)
//	counts, err := remote.GetCounts(ctx, client, "validation/post/count")
package remote
