package v1

import "github.com/peterclemenko/hashcalc-go/internals"

type HashAlgo = internals.HashAlgo
type Selection = internals.Selection
type FileDigests = internals.FileDigests
type FileResult = internals.FileResult
