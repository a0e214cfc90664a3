package stats

import "errors"

var (
	// ErrInvalidDateFormat is returned before any query runs when a window bound does not parse.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrUpstreamQuery wraps every failure of the underlying stores, context expiry included.
	ErrUpstreamQuery = errors.New("upstream query failure")
)
