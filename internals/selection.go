package internals

import (
	"fmt"
	"strings"
)

// Selection is the set of hash algorithms to compute for every file of one
// pipeline run. It is immutable once established and may be shared read-only
// across concurrent file computations; every file still gets its own
// accumulators.
type Selection struct {
	algos []HashAlgo
}

// ParseHashArgs parses the module argument string into a Selection.
// An empty string selects both algorithms. Otherwise any string containing
// "MD5" selects MD5 and any string containing "SHA1" selects SHA1; the
// tokens may occur in any order with any separator and matching is
// case-sensitive. A non-empty string containing neither token yields an
// error wrapping ErrInvalidConfiguration.
//
// The argument string is validated here once, before any file is processed,
// and never re-parsed per file.
func ParseHashArgs(args string) (Selection, error) {
	// an empty argument string means both hashes are calculated
	if args == "" {
		return Selection{algos: []HashAlgo{HashMD5, HashSHA1}}, nil
	}

	algos := make([]HashAlgo, 0, 2)
	if strings.Contains(args, string(HashMD5)) {
		algos = append(algos, HashMD5)
	}
	if strings.Contains(args, string(HashSHA1)) {
		algos = append(algos, HashSHA1)
	}

	if len(algos) == 0 {
		return Selection{}, fmt.Errorf(`invalid hash arguments '%s': %w`, args, ErrInvalidConfiguration)
	}
	return Selection{algos: algos}, nil
}

// Algos returns the selected algorithms, MD5 before SHA1.
// The returned slice is a copy.
func (s Selection) Algos() []HashAlgo {
	algos := make([]HashAlgo, len(s.algos))
	copy(algos, s.algos)
	return algos
}

// Has reports whether the given algorithm is part of the selection.
func (s Selection) Has(algo HashAlgo) bool {
	for _, a := range s.algos {
		if a == algo {
			return true
		}
	}
	return false
}

// Len returns the number of selected algorithms.
func (s Selection) Len() int {
	return len(s.algos)
}

// String returns the selected algorithm identifiers joined by commas.
func (s Selection) String() string {
	parts := make([]string, 0, len(s.algos))
	for _, a := range s.algos {
		parts = append(parts, string(a))
	}
	return strings.Join(parts, ",")
}
