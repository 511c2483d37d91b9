package v1

import (
	"github.com/peterclemenko/hashcalc-go/internals"
)

const VERSION_MAJOR = 1
const VERSION_MINOR = 0
const VERSION_PATCH = 0
const RELEASE_DATE = "2026-08-30"

// ParseHashArgs parses a module argument string into an algorithm selection.
// An empty string selects both MD5 and SHA1.
func ParseHashArgs(args string) (Selection, error) {
	return internals.ParseHashArgs(args)
}

// ComputeFileDigests computes the selected digests of the file at the given filepath.
func ComputeFileDigests(sel Selection, filepath string) (FileDigests, error) {
	return internals.ComputeFileDigests(sel, filepath)
}

// SupportedHashAlgorithms returns the list of supported hash algorithm identifiers.
func SupportedHashAlgorithms() []string {
	return internals.SupportedHashAlgorithms()
}
