package remote

import "errors"

var (
	// ErrRemoteUnavailable is returned when the request fails or the
	// destination answers with a non-2xx status.
	ErrRemoteUnavailable = errors.New("remote unavailable")

	// ErrRemoteDecode is returned when the response body cannot be decoded.
	ErrRemoteDecode = errors.New("remote response could not be decoded")

	// ErrUnknownSampleType is returned for a sample type outside the enumeration.
	ErrUnknownSampleType = errors.New("unknown sample type")
)
