package internals

import "errors"

// Failure categories of this pipeline stage. Call sites wrap these with
// fmt.Errorf("...: %w", ...) so callers can dispatch with errors.Is.
var (
	// ErrInvalidConfiguration indicates a hash argument string selecting no algorithm
	ErrInvalidConfiguration = errors.New(`invalid configuration`)
	// ErrSourceNotFound indicates that the byte source does not exist
	ErrSourceNotFound = errors.New(`source not found`)
	// ErrSourceUnreadable indicates an I/O failure while reading the source
	ErrSourceUnreadable = errors.New(`source unreadable`)
	// ErrInternalDigest indicates an unexpected failure of a digest primitive
	ErrInternalDigest = errors.New(`internal digest failure`)
)
