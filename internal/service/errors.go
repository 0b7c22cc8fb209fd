package service

import "errors"

// Sentinel errors wrapping the engine's failure categories. The engine
// fails a run on the first error and never rolls back remote mutations
// already issued; callers match with [errors.Is] to tell the categories
// apart.
var (
	// ErrRemoteIndex wraps failures of the remote index client (network,
	// auth, quota).
	ErrRemoteIndex = errors.New("remote index error")

	// ErrContentSource wraps failures of the content database queries.
	ErrContentSource = errors.New("content source error")

	// ErrLedger wraps failures of the ledger store.
	ErrLedger = errors.New("ledger error")

	// ErrHistory wraps failures of the history store.
	ErrHistory = errors.New("history error")
)
