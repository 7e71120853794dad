package search

import "errors"

var (
	ErrSearchUnavailable = errors.New("catalog search is currently unavailable")
	ErrBadResponse       = errors.New("catalog search returned an unusable response")
)
