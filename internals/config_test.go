package internals

import (
	"errors"
	"os"
	"testing"
)

const exampleConfigYAML = `hash_args: "MD5, SHA1"
workers: 4
report: "-"
json: true
`

func TestLoadPipelineConfig(t *testing.T) {
	path := tempFileWith(t, []byte(exampleConfigYAML))
	defer os.Remove(path)

	config, err := LoadPipelineConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.HashArgs != `MD5, SHA1` {
		t.Errorf(`expected hash_args 'MD5, SHA1', got '%s'`, config.HashArgs)
	}
	if config.Workers != 4 {
		t.Errorf(`expected 4 workers, got %d`, config.Workers)
	}
	if config.Report != `-` || !config.JSON {
		t.Errorf(`expected report '-' and json true, got '%s' and %v`, config.Report, config.JSON)
	}

	sel, err := config.Selection()
	if err != nil {
		t.Fatal(err)
	}
	if sel.Len() != 2 {
		t.Errorf(`expected both algorithms selected, got %s`, sel.String())
	}
}

// TestLoadPipelineConfigDefaults checks that an absent hash_args key
// selects both algorithms
func TestLoadPipelineConfigDefaults(t *testing.T) {
	path := tempFileWith(t, []byte(`workers: 2`))
	defer os.Remove(path)

	config, err := LoadPipelineConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	sel, err := config.Selection()
	if err != nil {
		t.Fatal(err)
	}
	if !sel.Has(HashMD5) || !sel.Has(HashSHA1) {
		t.Errorf(`expected empty hash_args to select both algorithms, got %s`, sel.String())
	}
}

func TestLoadPipelineConfigInvalidHashArgs(t *testing.T) {
	path := tempFileWith(t, []byte(`hash_args: "XYZ"`))
	defer os.Remove(path)

	config, err := LoadPipelineConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = config.Selection()
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf(`expected ErrInvalidConfiguration, got %v`, err)
	}
}

func TestLoadPipelineConfigMissingFile(t *testing.T) {
	_, err := LoadPipelineConfig(`/nonexistent/pipeline.yml`)
	if err == nil {
		t.Errorf(`expected error for missing config file`)
	}
}
