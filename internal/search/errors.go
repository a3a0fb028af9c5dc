package search

import "errors"

// Domain-specific errors for the search package.
var (
	ErrEmptyQuery = errors.New("query is empty")
	ErrNoResults  = errors.New("result set is empty")
)
