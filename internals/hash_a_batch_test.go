package internals

import (
	"errors"
	"os"
	"testing"
)

func TestHashABatch(t *testing.T) {
	pathA := tempFileWith(t, []byte(`abc`))
	defer os.Remove(pathA)
	pathB := tempFileWith(t, []byte(`some other content`))
	defer os.Remove(pathB)
	pathEmpty := tempFileWith(t, []byte{})
	defer os.Remove(pathEmpty)
	missing := pathA + `.does-not-exist`

	paths := []string{pathA, pathB, pathEmpty, missing}
	out := make(chan FileResult)
	go HashABatch(mustSelection(t, ``), paths, 3, out)

	results := make(map[string]FileResult)
	for result := range out {
		results[result.Path] = result
	}

	if len(results) != len(paths) {
		t.Fatalf(`expected %d results, got %d`, len(paths), len(results))
	}
	if results[pathA].Digests[HashMD5] != abcMD5 {
		t.Errorf(`expected MD5 '%s' for '%s', got '%s'`, abcMD5, pathA, results[pathA].Digests[HashMD5])
	}
	if results[pathB].Err != nil {
		t.Errorf(`unexpected error for '%s': %s`, pathB, results[pathB].Err.Error())
	}
	if !results[pathEmpty].FileDigests().Empty() {
		t.Errorf(`expected empty result for empty file`)
	}
	if results[pathEmpty].Err != nil {
		t.Errorf(`expected empty file to not be an error, got %s`, results[pathEmpty].Err.Error())
	}
	if !errors.Is(results[missing].Err, ErrSourceNotFound) {
		t.Errorf(`expected ErrSourceNotFound for '%s', got %v`, missing, results[missing].Err)
	}
}

// TestHashABatchFailureIsolation checks that one failing file does not
// abort the remaining files
func TestHashABatchFailureIsolation(t *testing.T) {
	good := tempFileWith(t, []byte(`still processed`))
	defer os.Remove(good)

	paths := []string{`/nonexistent/one`, `/nonexistent/two`, good}
	out := make(chan FileResult)
	go HashABatch(mustSelection(t, `SHA1`), paths, 1, out)

	succeeded := 0
	failed := 0
	for result := range out {
		if result.Err != nil {
			failed++
		} else {
			succeeded++
		}
	}
	if failed != 2 || succeeded != 1 {
		t.Errorf(`expected 2 failures and 1 success, got %d and %d`, failed, succeeded)
	}
}

func TestHashABatchDefaultWorkers(t *testing.T) {
	path := tempFileWith(t, []byte(`abc`))
	defer os.Remove(path)

	out := make(chan FileResult)
	go HashABatch(mustSelection(t, `MD5`), []string{path}, 0, out)

	count := 0
	for result := range out {
		count++
		if result.Err != nil {
			t.Errorf(`unexpected error: %s`, result.Err.Error())
		}
	}
	if count != 1 {
		t.Errorf(`expected 1 result, got %d`, count)
	}
}
