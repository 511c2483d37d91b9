package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/peterclemenko/hashcalc-go/internals"
	"gopkg.in/alecthomas/kingpin.v2"
)

// HashCommand defines the CLI command parameters
type HashCommand struct {
	Targets      []string `json:"targets"`
	HashArgs     string   `json:"hash-args"`
	ConfigFile   string   `json:"config-file"`
	Workers      int      `json:"workers"`
	Report       string   `json:"report"`
	ConfigOutput bool     `json:"config"`
	JSONOutput   bool     `json:"json"`
	Help         bool     `json:"help"`
}

// cliHashCommand defines the CLI arguments as kingpin requires them
type cliHashCommand struct {
	cmd          *kingpin.CmdClause
	Targets      *[]string
	HashArgs     *string
	ConfigFile   *string
	Workers      *int
	Report       *string
	ConfigOutput *bool
	JSONOutput   *bool
	Help         *bool
}

func newCLIHashCommand(app *kingpin.Application) *cliHashCommand {
	c := new(cliHashCommand)
	c.cmd = app.Command("hash", "Calculate the configured digests of the given files.")

	c.Targets = c.cmd.Arg("targets", "files to calculate digests for").Required().Strings()
	c.HashArgs = c.cmd.Flag("hash-args", "argument string selecting hash algorithms; empty selects MD5 and SHA1").Default(envOr("HASHCALC_HASH_ARGS", "")).Short('a').String()
	c.ConfigFile = c.cmd.Flag("config-file", "pipeline configuration file providing defaults").String()
	c.Workers = c.cmd.Flag("workers", "number of concurrent file computations").Int()
	c.Report = c.cmd.Flag("report", "write a digest report to this file, '-' is stdout").String()
	c.ConfigOutput = c.cmd.Flag("config", "only prints the configuration and terminates").Bool()
	c.JSONOutput = c.cmd.Flag("json", "return output as JSON, not as plain text").Bool()

	return c
}

func (c *cliHashCommand) Validate() (*HashCommand, error) {
	// migrate cliHashCommand to HashCommand
	cmd := new(HashCommand)
	cmd.Targets = append(cmd.Targets, *c.Targets...)
	cmd.HashArgs = *c.HashArgs
	cmd.ConfigFile = *c.ConfigFile
	cmd.Workers = *c.Workers
	cmd.Report = *c.Report
	cmd.ConfigOutput = *c.ConfigOutput
	cmd.JSONOutput = *c.JSONOutput
	cmd.Help = false

	// the pipeline configuration file provides defaults for unset flags
	if cmd.ConfigFile != "" {
		config, err := internals.LoadPipelineConfig(cmd.ConfigFile)
		if err != nil {
			return nil, err
		}
		if cmd.HashArgs == "" {
			cmd.HashArgs = config.HashArgs
		}
		if cmd.Workers == 0 {
			cmd.Workers = config.Workers
		}
		if cmd.Report == "" {
			cmd.Report = config.Report
		}
		cmd.JSONOutput = cmd.JSONOutput || config.JSON
	}

	// handle environment variables
	envJSON, errJSON := envToBool("HASHCALC_JSON")
	if errJSON == nil {
		cmd.JSONOutput = envJSON
	}
	if workers, ok := envToInt("HASHCALC_WORKERS"); ok && cmd.Workers == 0 {
		cmd.Workers = workers
	}

	// validate hash arguments once, before any file is processed
	if _, err := internals.ParseHashArgs(cmd.HashArgs); err != nil {
		return nil, err
	}

	return cmd, nil
}

// Run executes the CLI command hash on the given parameter set,
// writes the result to Output w and errors/information messages to log.
// It returns a tuple (exit code, error)
func (c *HashCommand) Run(w Output, log Output) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	sel, err := internals.ParseHashArgs(c.HashArgs)
	if err != nil {
		return 2, err
	}

	var report *internals.Report
	if c.Report != "" {
		report, err = internals.NewReportWriter(c.Report)
		if err != nil {
			return 2, err
		}
		defer report.Close()
		if err := report.HeadLine(sel); err != nil {
			return 2, err
		}
	}

	out := make(chan internals.FileResult)
	go internals.HashABatch(sel, c.Targets, c.Workers, out)

	// collect all results; workers emit them in arbitrary order
	results := make([]internals.FileResult, 0, len(c.Targets))
	for result := range out {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	store := internals.NewDigestStore()
	var totalBytes uint64
	failures := 0

	type fileOutput struct {
		Path      string            `json:"path"`
		Digests   map[string]string `json:"digests"`
		BytesRead uint64            `json:"bytes-read"`
		Error     string            `json:"error,omitempty"`
	}
	fileOutputs := make([]fileOutput, 0, len(results))

	for _, result := range results {
		if result.Err != nil {
			failures++
			log.Printfln(`error processing '%s': %s`, result.Path, result.Err.Error())
			fileOutputs = append(fileOutputs, fileOutput{Path: result.Path, Error: result.Err.Error()})
			continue
		}

		digests := result.FileDigests()
		store.Record(result.Path, digests)
		totalBytes += result.BytesRead

		if digests.Empty() {
			log.Printfln(`no digests recorded for empty file '%s'`, result.Path)
		}

		tags := make(map[string]string, len(result.Digests))
		for _, algo := range sel.Algos() {
			hexDigest, ok := result.Digests[algo]
			if !ok {
				continue
			}
			tags[string(algo)] = hexDigest
			if !c.JSONOutput {
				w.Printfln(`%s %s %s`, hexDigest, algo, result.Path)
			}
			if report != nil {
				if err := report.TailLine(algo, hexDigest, result.BytesRead, result.Path); err != nil {
					return 2, err
				}
			}
		}
		fileOutputs = append(fileOutputs, fileOutput{
			Path:      result.Path,
			Digests:   tags,
			BytesRead: result.BytesRead,
		})
	}

	if c.JSONOutput {
		type dataSet struct {
			Results  []fileOutput `json:"results"`
			Failures int          `json:"failures"`
		}
		b, err := json.Marshal(&dataSet{Results: fileOutputs, Failures: failures})
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
	} else {
		log.Printfln(`%d file(s) recorded, %s processed`, store.Len(), internals.HumanReadableBytes(totalBytes))
	}

	if failures > 0 {
		return 3, fmt.Errorf(`%d of %d files failed`, failures, len(c.Targets))
	}
	return 0, nil
}
