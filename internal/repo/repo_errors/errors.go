package repo_errors

import "errors"

var (
	ErrNotFound = errors.New("requested row not found")

	// ErrStaleState means a status-guarded update or delete matched no rows:
	// another request already moved the quote out of Pending.
	ErrStaleState = errors.New("row changed state since it was read")
)
