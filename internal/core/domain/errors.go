package domain

import "errors"

var (
	ErrVideoNotFound   = errors.New("video not found")
	ErrInvalidVideoURL = errors.New("invalid video url")
	ErrUnknownOrder    = errors.New("unknown ordering mode")
)
