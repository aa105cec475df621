package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify pipeline failures. Control flow (retry vs. advance to
// the next candidate vs. abort) branches on these tags, never on error
// message text.
var (
	// ErrTagBadIdentifier marks unparseable extension identifier input.
	// Fatal, never retried.
	ErrTagBadIdentifier = goerr.NewTag("bad_identifier")

	// ErrTagNotFound marks a definitive HTTP 404 from the marketplace:
	// the publisher/extension/version/platform combination does not exist.
	// Never retried for the same URL.
	ErrTagNotFound = goerr.NewTag("not_found")

	// ErrTagTransport marks failures worth the same request again:
	// timeouts, connection failures, and transient server statuses
	// (5xx and other unexpected non-404 answers). The only retryable
	// class.
	ErrTagTransport = goerr.NewTag("transport")

	// ErrTagValidation marks a completed download whose bytes are not a
	// well-formed VSIX archive. Treated as a server-side content problem,
	// not retried.
	ErrTagValidation = goerr.NewTag("validation")

	// ErrTagExhausted marks terminal pipeline failure after every
	// candidate URL has failed.
	ErrTagExhausted = goerr.NewTag("exhausted")
)
