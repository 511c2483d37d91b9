package internals

import (
	"sort"
	"sync"
)

// DigestStore records computed digests for later lookup and comparison.
// It is the in-memory result sink of this pipeline stage; it never touches
// the file system. Safe for concurrent use.
type DigestStore struct {
	mutex  sync.RWMutex
	byPath map[string]FileDigests
}

// NewDigestStore returns a freshly-initialized DigestStore instance
func NewDigestStore() *DigestStore {
	return &DigestStore{byPath: make(map[string]FileDigests)}
}

// Record stores the digests computed for the file at the given path.
// Empty results carry no digests and are not recorded.
func (s *DigestStore) Record(path string, digests FileDigests) {
	if digests.Empty() {
		return
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.byPath[path] = digests
}

// Lookup returns the recorded digests of the given path.
func (s *DigestStore) Lookup(path string) (FileDigests, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	digests, ok := s.byPath[path]
	return digests, ok
}

// Matches reports whether the recorded digest of path for the given
// algorithm equals hexDigest.
func (s *DigestStore) Matches(path string, algo HashAlgo, hexDigest string) bool {
	digests, ok := s.Lookup(path)
	if !ok {
		return false
	}
	return digests.Digests[algo] == hexDigest
}

// Len returns the number of recorded paths.
func (s *DigestStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.byPath)
}

// Duplicates determines groups of paths sharing a digest value. Keys have
// the shape "ALGO:hexdigest"; a group is reported only if its digest value
// was recorded for at least two paths. Paths within a group are sorted.
func (s *DigestStore) Duplicates() map[string][]string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	byDigest := make(map[string][]string)
	for path, digests := range s.byPath {
		for algo, hexDigest := range digests.Digests {
			key := string(algo) + `:` + hexDigest
			byDigest[key] = append(byDigest[key], path)
		}
	}

	duplicates := make(map[string][]string)
	for key, paths := range byDigest {
		if len(paths) > 1 {
			sort.Strings(paths)
			duplicates[key] = paths
		}
	}
	return duplicates
}
