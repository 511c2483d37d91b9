package internals

import (
	"fmt"
	"io"
)

// We process the file 8k at a time. Any reasonably sized buffer gives the
// same digests; see the chunking invariance tests.
const FileBufferSize = 8192

// FileDigests is the result of one file's digest computation.
// Digests maps an algorithm identifier to its lowercase hexadecimal digest
// and carries entries only for selected algorithms of a non-empty source.
type FileDigests struct {
	Digests   map[HashAlgo]string
	BytesRead uint64
}

// Empty reports whether the source yielded no bytes. Digests of empty
// sources are deliberately not computed; this preserves the inherited
// pipeline policy and is not the empty-input digest.
func (f FileDigests) Empty() bool {
	return f.BytesRead == 0
}

// ComputeDigests reads src in chunks of up to FileBufferSize bytes, feeds
// every chunk into one accumulator per selected algorithm (same bytes, same
// order for each) and finalizes the accumulators to lowercase hex digests
// once the source is exhausted. The source is released on every exit path.
//
// Errors wrap ErrSourceNotFound, ErrSourceUnreadable or ErrInternalDigest.
// A missing source is detected before any accumulator is created.
func ComputeDigests(sel Selection, src Source) (FileDigests, error) {
	result := FileDigests{Digests: make(map[HashAlgo]string, sel.Len())}

	if sel.Len() == 0 {
		return result, fmt.Errorf(`no hash algorithm selected: %w`, ErrInvalidConfiguration)
	}
	if !src.Exists() {
		return result, fmt.Errorf(`file to be analyzed does not exist: '%s': %w`, src.Path(), ErrSourceNotFound)
	}

	fd, err := src.Open()
	if err != nil {
		return result, fmt.Errorf(`could not open '%s': %s: %w`, src.Path(), err, ErrSourceUnreadable)
	}
	defer fd.Close()

	accumulators := make([]Hash, 0, sel.Len())
	for _, algo := range sel.Algos() {
		accumulators = append(accumulators, algo.Algorithm())
	}

	buffer := make([]byte, FileBufferSize)
	for {
		n, err := fd.Read(buffer)
		if n > 0 {
			for _, acc := range accumulators {
				if accErr := acc.ReadBytes(buffer[:n]); accErr != nil {
					return result, fmt.Errorf(`%s accumulator failed on '%s': %s: %w`, acc.Name(), src.Path(), accErr, ErrInternalDigest)
				}
			}
			result.BytesRead += uint64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf(`read failed on '%s': %s: %w`, src.Path(), err, ErrSourceUnreadable)
		}
	}

	// empty source: release resources, report no digests
	if result.Empty() {
		return result, nil
	}

	for i, algo := range sel.Algos() {
		result.Digests[algo] = accumulators[i].HexSum()
	}
	return result, nil
}

// ComputeFileDigests computes the selected digests of the file at the given filepath.
func ComputeFileDigests(sel Selection, filepath string) (FileDigests, error) {
	return ComputeDigests(sel, FileSource(filepath))
}
