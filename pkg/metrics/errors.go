package metrics

import (
	"errors"
)

// Sentinel kinds for metrics errors.
var (
	ErrSampleFailed = errors.New("system metrics sample failed")
)
