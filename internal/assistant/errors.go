package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyMessage = errors.New("message is empty")

	// ErrCompletionFailed marks any text-completion failure (transport,
	// timeout, empty output). It is fatal for the turn: no partial state
	// is committed and the caller retries with the same prior state.
	ErrCompletionFailed = errors.New("text completion failed")
)
