package internals

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// PipelineConfig is the subset of the host pipeline configuration file
// consumed by this stage. The hash argument string is handed over verbatim
// to ParseHashArgs.
type PipelineConfig struct {
	// argument string selecting the hash algorithms, e.g. "MD5, SHA1";
	// empty means both
	HashArgs string `yaml:"hash_args"`
	// number of concurrent file computations; non-positive means number of CPUs
	Workers int `yaml:"workers"`
	// report output filepath, "-" means stdout
	Report string `yaml:"report"`
	// emit results as JSON
	JSON bool `yaml:"json"`
}

// LoadPipelineConfig reads the pipeline configuration file at the given filepath.
func LoadPipelineConfig(filepath string) (*PipelineConfig, error) {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf(`could not read config file '%s': %s`, filepath, err)
	}

	config := new(PipelineConfig)
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf(`could not parse config file '%s': %s`, filepath, err)
	}
	return config, nil
}

// Selection validates the configured hash arguments once and returns the
// resulting algorithm selection.
func (c *PipelineConfig) Selection() (Selection, error) {
	return ParseHashArgs(c.HashArgs)
}
