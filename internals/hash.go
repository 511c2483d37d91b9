package internals

import (
	"fmt"
)

// HashAlgo is an alias for string, but specifically can only
// be one of the identifiers for hash algorithms this stage records.
// The identifier doubles as the tag handed to the result sink.
type HashAlgo string

const (
	HashMD5  HashAlgo = `MD5`
	HashSHA1 HashAlgo = `SHA1`
)

// SupportedHashAlgorithms returns the list of supported hash algorithms.
// The slice contains specified hash algorithm identifiers
func SupportedHashAlgorithms() []string {
	return []string{
		string(HashMD5),
		string(HashSHA1),
	}
}

// DigestSize returns the output size in bytes for a given hash algorithm.
func (h HashAlgo) DigestSize() int {
	switch h {
	case HashMD5:
		return 16
	case HashSHA1:
		return 20
	}
	return 0
}

// HexSize returns the fixed width of the digest in hexadecimal representation.
func (h HashAlgo) HexSize() int {
	return 2 * h.DigestSize()
}

// Algorithm returns a fresh accumulator for the given hash algorithm.
// One accumulator observes exactly one file's bytes and is discarded
// after finalization.
func (h HashAlgo) Algorithm() Hash {
	switch h {
	case HashMD5:
		return NewMD5()
	case HashSHA1:
		return NewSHA1()
	}
	panic(fmt.Sprintf("internal error - unknown hash algorithm %q", string(h)))
}

// Hash is a custom interface to define operations
// a hash algorithm needs to support to be recorded by this stage
type Hash interface {
	// returns number of bytes of the digest
	Size() int
	// update hash state with given bytes
	ReadBytes([]byte) error
	// update hash state with content of file at given filepath,
	// returns the number of bytes consumed
	ReadFile(string) (uint64, error)
	// reset hash state
	Reset()
	// finalize hash state and return the digest
	Sum() []byte
	// finalize hash state and return the digest as lowercase hexadecimal string
	HexSum() string
	// get string representation of this hash algorithm
	Name() string
}
