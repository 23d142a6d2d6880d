package llm

import "errors"

// Failure kinds of an extraction call. None is retried at this layer; callers
// match with errors.Is and choose their own retry or messaging policy.
var (
	// ErrAuthentication indicates the API credential was rejected.
	ErrAuthentication = errors.New("api credential rejected")

	// ErrConnection indicates the API endpoint was unreachable.
	ErrConnection = errors.New("api endpoint unreachable")

	// ErrRateLimited indicates the API quota is exhausted.
	ErrRateLimited = errors.New("api rate limit exceeded")

	// ErrExtraction indicates any other extraction failure, wrapping the
	// underlying cause.
	ErrExtraction = errors.New("extraction failed")
)
