package report

import "errors"

// ErrArchiveDisabled is returned when no storage client is configured.
var ErrArchiveDisabled = errors.New("report archiving is not configured")
