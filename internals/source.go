package internals

import (
	"io"
	"os"
)

// Source represents one file's content as an abstract readable stream.
// The digest computation never assumes seekability or a known total length.
type Source interface {
	// identifies the source in error messages and results
	Path() string
	// reports whether the source exists
	Exists() bool
	// acquires the byte stream; the caller releases it via Close
	Open() (io.ReadCloser, error)
}

// fileSource is a Source backed by a regular file
type fileSource struct {
	path string
}

// FileSource returns a Source reading the file at the given filepath.
func FileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Path() string {
	return s.path
}

func (s *fileSource) Exists() bool {
	stat, err := os.Stat(s.path)
	return err == nil && stat.Mode().IsRegular()
}

func (s *fileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.path)
}
