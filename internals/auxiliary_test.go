package internals

import (
	"testing"
)

func TestContains(t *testing.T) {
	set := []string{`MD5`, `SHA1`}
	if !contains(set, `SHA1`) {
		t.Errorf(`expected set to contain 'SHA1'`)
	}
	if contains(set, `sha1`) {
		t.Errorf(`expected matching to be case-sensitive`)
	}
}

func TestCompareBytes(t *testing.T) {
	if !compareBytes([]byte{1, 2, 3}, []byte{1, 2, 3}) {
		t.Errorf(`expected equal slices to compare equal`)
	}
	if compareBytes([]byte{1, 2, 3}, []byte{1, 2}) {
		t.Errorf(`expected slices of different length to compare unequal`)
	}
	if compareBytes([]byte{1, 2, 3}, []byte{1, 2, 4}) {
		t.Errorf(`expected different slices to compare unequal`)
	}
}

func TestHumanReadableBytes(t *testing.T) {
	tests := []struct {
		count    uint64
		expected string
	}{
		{0, `0.00 bytes`},
		{1023, `1023.00 bytes`},
		{2048, `2.00 KiB`},
		{1048576, `1.00 MiB`},
	}
	for _, test := range tests {
		actual := HumanReadableBytes(test.count)
		if actual != test.expected {
			t.Errorf(`expected '%s' for %d, got '%s'`, test.expected, test.count, actual)
		}
	}
}
