package data_access

import "errors"

var (
	// ErrNotFound means the referenced document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate means a uniqueness constraint rejected the write.
	ErrDuplicate = errors.New("duplicate document")

	// ErrUpstream means the metadata provider failed or was unreachable.
	ErrUpstream = errors.New("upstream provider error")
)
