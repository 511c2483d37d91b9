package internals

import (
	"strings"
	"testing"
)

const abcMD5 = `900150983cd24fb0d6963f7d28e17f72`
const abcSHA1 = `a9993e364706816aba3e25717850c26c9cd0d89d`

// TestSupportedHashAlgos checks that the recorded hash algorithms are supported
func TestSupportedHashAlgos(t *testing.T) {
	supported := SupportedHashAlgorithms()
	for _, req := range []string{`MD5`, `SHA1`} {
		if !contains(supported, req) {
			t.Errorf(`hash algorithm '%s' unsupported, but support is required`, req)
		}
	}
	if len(supported) != 2 {
		t.Errorf(`expected 2 supported hash algorithms, got %v`, supported)
	}
}

func TestDigestSizes(t *testing.T) {
	if HashMD5.DigestSize() != 16 {
		t.Errorf(`expected MD5 digest size 16, got %d`, HashMD5.DigestSize())
	}
	if HashSHA1.DigestSize() != 20 {
		t.Errorf(`expected SHA1 digest size 20, got %d`, HashSHA1.DigestSize())
	}
	if HashMD5.HexSize() != 32 || HashSHA1.HexSize() != 40 {
		t.Errorf(`expected hex widths 32 and 40, got %d and %d`, HashMD5.HexSize(), HashSHA1.HexSize())
	}
}

// TestKnownVectors checks the accumulators against the "abc" test vectors
func TestKnownVectors(t *testing.T) {
	tests := []struct {
		algo     HashAlgo
		expected string
	}{
		{HashMD5, abcMD5},
		{HashSHA1, abcSHA1},
	}

	for _, test := range tests {
		acc := test.algo.Algorithm()
		if err := acc.ReadBytes([]byte(`abc`)); err != nil {
			t.Fatal(err)
		}
		actual := acc.HexSum()
		if actual != test.expected {
			t.Errorf(`expected %s digest '%s' for "abc", got '%s'`, test.algo, test.expected, actual)
		}
		if len(actual) != test.algo.HexSize() {
			t.Errorf(`expected %d hex characters, got %d`, test.algo.HexSize(), len(actual))
		}
		if actual != strings.ToLower(actual) {
			t.Errorf(`expected lowercase hex digest, got '%s'`, actual)
		}
	}
}

// TestAccumulatorOrder checks that chunked updates equal one-shot updates
func TestAccumulatorOrder(t *testing.T) {
	oneShot := HashSHA1.Algorithm()
	if err := oneShot.ReadBytes([]byte(`abc`)); err != nil {
		t.Fatal(err)
	}

	chunked := HashSHA1.Algorithm()
	for _, chunk := range []string{`a`, `b`, `c`} {
		if err := chunked.ReadBytes([]byte(chunk)); err != nil {
			t.Fatal(err)
		}
	}

	if !compareBytes(oneShot.Sum(), chunked.Sum()) {
		t.Errorf(`expected chunked and one-shot digests to match`)
	}
}

func TestAccumulatorReset(t *testing.T) {
	acc := HashMD5.Algorithm()
	if err := acc.ReadBytes([]byte(`garbage`)); err != nil {
		t.Fatal(err)
	}
	acc.Reset()
	if err := acc.ReadBytes([]byte(`abc`)); err != nil {
		t.Fatal(err)
	}
	if acc.HexSum() != abcMD5 {
		t.Errorf(`expected reset accumulator to yield '%s', got '%s'`, abcMD5, acc.HexSum())
	}
}
