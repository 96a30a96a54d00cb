package domain

import "errors"

var (
	ErrEmptyQuery  = errors.New("empty search query")
	ErrNotFound    = errors.New("not found")
	ErrRateLimited = errors.New("rate limited")
)
